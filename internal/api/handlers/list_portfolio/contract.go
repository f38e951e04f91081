package list_portfolio

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/service/portfolio/models"
)

type PortfolioService interface {
	List(ctx context.Context, req *models.ListRequest) (*models.ListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
