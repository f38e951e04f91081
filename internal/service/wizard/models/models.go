package models

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Request модели

// SelectServiceRequest выбор услуги (шаг 1)
type SelectServiceRequest struct {
	ServiceID string `json:"serviceId"`
}

// SelectDateTimeRequest выбор даты и времени (шаг 3)
type SelectDateTimeRequest struct {
	Date string `json:"date"` // "2025-01-10"
	Time string `json:"time"` // "09:00" или "09:00:00"
}

// SetDetailsRequest контактные данные (шаг 4)
type SetDetailsRequest struct {
	CustomerName  string `json:"customerName"`
	ContactMethod string `json:"contactMethod"`
	ContactDetail string `json:"contactDetail"`
}

// Response модели

// ServiceSummary выбранная услуга
type ServiceSummary struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// AddonSummary выбранное дополнение
type AddonSummary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// DetailsResponse введенные контактные данные
type DetailsResponse struct {
	CustomerName  string `json:"customerName"`
	ContactMethod string `json:"contactMethod"`
	ContactDetail string `json:"contactDetail"`
	FormatHint    string `json:"formatHint,omitempty"`
}

// FormResponse состояние формы бронирования
type FormResponse struct {
	SessionID      string          `json:"sessionId"`
	Step           int             `json:"step"`
	StepName       string          `json:"stepName"`
	CanProceed     bool            `json:"canProceed"`
	Service        *ServiceSummary `json:"service,omitempty"`
	Addons         []AddonSummary  `json:"addons"`
	Date           *string         `json:"date,omitempty"`        // "2025-01-10"
	DisplayDate    *string         `json:"displayDate,omitempty"` // "Friday, January 10, 2025"
	Time           *string         `json:"time,omitempty"`        // "09:00:00"
	DisplayTime    *string         `json:"displayTime,omitempty"` // "9:00 AM"
	Details        DetailsResponse `json:"details"`
	EstimatedTotal float64         `json:"estimatedTotal"`
	LastError      string          `json:"lastError,omitempty"`
	ExpiresAt      time.Time       `json:"expiresAt"`
}

// FromDomainForm конвертирует форму в DTO
// service и addons уже разрешены по каталогу
func FromDomainForm(f *domain.BookingForm, service *domain.Service, addons []*domain.Addon, ttl time.Duration) *FormResponse {
	resp := &FormResponse{
		SessionID:  f.SessionID,
		Step:       int(f.Step),
		StepName:   f.Step.String(),
		CanProceed: f.CanProceed(f.Step),
		Addons:     make([]AddonSummary, 0, len(addons)),
		Details: DetailsResponse{
			CustomerName:  f.Details.CustomerName,
			ContactMethod: string(f.Details.ContactMethod),
			ContactDetail: f.Details.ContactDetail,
			FormatHint:    f.Details.ContactMethod.FormatHint(),
		},
		EstimatedTotal: domain.EstimatedTotal(service, addons),
		LastError:      f.LastError,
		ExpiresAt:      f.UpdatedAt.Add(ttl),
	}

	if service != nil {
		resp.Service = &ServiceSummary{
			ID:              service.ID,
			Name:            service.Name,
			DurationMinutes: service.DurationMinutes,
			Price:           service.Price,
		}
	}

	for _, a := range addons {
		resp.Addons = append(resp.Addons, AddonSummary{ID: a.ID, Name: a.Name, Price: a.Price})
	}

	if f.Date != nil {
		date := f.Date.Format(domain.DateFormat)
		display := f.Date.Format(domain.LongDateFormat)
		resp.Date = &date
		resp.DisplayDate = &display
	}

	if !f.Time.IsZero() {
		t := f.Time.String()
		display := f.Time.Display12h()
		resp.Time = &t
		resp.DisplayTime = &display
	}

	return resp
}
