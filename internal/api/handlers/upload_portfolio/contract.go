package upload_portfolio

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/service/portfolio/models"
)

type PortfolioService interface {
	Upload(ctx context.Context, req *models.UploadRequest) (*models.ItemResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
