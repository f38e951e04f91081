package models

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Request модели

// ListBookingsRequest запрос на получение бронирований
type ListBookingsRequest struct {
	Date *string `json:"date,omitempty"` // "2025-01-10", опционально
}

// Response модели

// BookingResponse бронирование для админки
type BookingResponse struct {
	ID                  int64     `json:"id"`
	Date                string    `json:"date"`        // "2025-01-10"
	DisplayDate         string    `json:"displayDate"` // "Friday, January 10, 2025"
	Time                string    `json:"time"`        // "09:00:00"
	DisplayTime         string    `json:"displayTime"` // "9:00 AM"
	CustomerName        string    `json:"customerName"`
	ContactMethod       string    `json:"contactMethod"`
	ContactDetail       string    `json:"contactDetail"`
	Service             string    `json:"service"`
	Addons              []string  `json:"addons"`
	InspirationPhotoURL *string   `json:"inspirationPhotoUrl,omitempty"`
	EstimatedTotal      float64   `json:"estimatedTotal"`
	CreatedAt           time.Time `json:"createdAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	addons := b.AddonNames
	if addons == nil {
		addons = []string{}
	}

	return &BookingResponse{
		ID:                  b.ID,
		Date:                b.Date.Format(domain.DateFormat),
		DisplayDate:         b.Date.Format(domain.LongDateFormat),
		Time:                b.Time.String(),
		DisplayTime:         b.Time.Display12h(),
		CustomerName:        b.CustomerName,
		ContactMethod:       string(b.ContactMethod),
		ContactDetail:       b.ContactDetail,
		Service:             b.ServiceName,
		Addons:              addons,
		InspirationPhotoURL: photoURL(b),
		EstimatedTotal:      b.EstimatedTotal,
		CreatedAt:           b.CreatedAt,
	}
}

func photoURL(b *domain.Booking) *string {
	if !b.HasPhoto() {
		return nil
	}
	return b.InspirationPhotoURL
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}
	resp.Total = len(resp.Bookings)

	return resp
}
