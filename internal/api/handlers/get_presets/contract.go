package get_presets

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/service/presets/models"
)

type PresetsService interface {
	Get(ctx context.Context) (*models.PresetsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
