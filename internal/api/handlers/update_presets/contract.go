package update_presets

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/service/presets/models"
)

type PresetsService interface {
	Update(ctx context.Context, req *models.UpdatePresetsRequest) (*models.PresetsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
