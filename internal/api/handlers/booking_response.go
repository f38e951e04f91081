package handlers

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/usecase/submit_booking"
)

// BookingConfirmationResponse подтверждение созданного бронирования
// Общий ответ для отправки одной формой и пошаговой формой
type BookingConfirmationResponse struct {
	Success             bool     `json:"success"`
	ID                  int64    `json:"id"`
	Date                string   `json:"date"`
	DisplayDate         string   `json:"displayDate"`
	Time                string   `json:"time"`
	DisplayTime         string   `json:"displayTime"`
	CustomerName        string   `json:"customerName"`
	ContactMethod       string   `json:"contactMethod"`
	ContactDetail       string   `json:"contactDetail"`
	Service             string   `json:"service"`
	Addons              []string `json:"addons"`
	InspirationPhotoURL *string  `json:"inspirationPhotoUrl,omitempty"`
	EstimatedTotal      float64  `json:"estimatedTotal"`
	SlotReleased        bool     `json:"slotReleased"`
	CreatedAt           string   `json:"createdAt"`
}

// FromSubmitResponse конвертирует ответ use case в HTTP response
func FromSubmitResponse(resp *submit_booking.Response) *BookingConfirmationResponse {
	addons := resp.AddonNames
	if addons == nil {
		addons = []string{}
	}

	return &BookingConfirmationResponse{
		Success:             true,
		ID:                  resp.ID,
		Date:                resp.Date.Format(domain.DateFormat),
		DisplayDate:         resp.Date.Format(domain.LongDateFormat),
		Time:                resp.Time.String(),
		DisplayTime:         resp.Time.Display12h(),
		CustomerName:        resp.CustomerName,
		ContactMethod:       string(resp.ContactMethod),
		ContactDetail:       resp.ContactDetail,
		Service:             resp.ServiceName,
		Addons:              addons,
		InspirationPhotoURL: resp.InspirationPhotoURL,
		EstimatedTotal:      resp.EstimatedTotal,
		SlotReleased:        resp.SlotReleased,
		CreatedAt:           resp.CreatedAt.Format(time.RFC3339),
	}
}
