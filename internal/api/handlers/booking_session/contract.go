package booking_session

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/service/wizard/models"
	submitBooking "github.com/m04kA/SMC-SalonBooking/internal/usecase/submit_booking"
)

type WizardService interface {
	Start(ctx context.Context) (*models.FormResponse, error)
	Get(ctx context.Context, sessionID string) (*models.FormResponse, error)
	Cancel(ctx context.Context, sessionID string) error
	SelectService(ctx context.Context, sessionID string, req *models.SelectServiceRequest) (*models.FormResponse, error)
	ToggleAddon(ctx context.Context, sessionID, addonID string) (*models.FormResponse, error)
	SelectDateTime(ctx context.Context, sessionID string, req *models.SelectDateTimeRequest) (*models.FormResponse, error)
	SetDetails(ctx context.Context, sessionID string, req *models.SetDetailsRequest) (*models.FormResponse, error)
	Next(ctx context.Context, sessionID string) (*models.FormResponse, error)
	Back(ctx context.Context, sessionID string) (*models.FormResponse, error)
	Submit(ctx context.Context, sessionID string, photo *submitBooking.Photo) (*submitBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
