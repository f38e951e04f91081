package domain

import "time"

// BookingEvent envelope sent to external notification channels
type BookingEvent struct {
	Event     string         `json:"event"`
	Timestamp time.Time      `json:"timestamp"`
	Data      BookingPayload `json:"data"`
}

// BookingPayload booking as seen by notification consumers
type BookingPayload struct {
	ID                  int64    `json:"id"`
	Date                string   `json:"date"`
	Time                string   `json:"time"`
	CustomerName        string   `json:"customer_name"`
	ContactMethod       string   `json:"contact_method"`
	ContactDetail       string   `json:"contact_detail"`
	Service             string   `json:"service"`
	Addons              []string `json:"addons"`
	InspirationPhotoURL *string  `json:"inspiration_photo_url,omitempty"`
	EstimatedTotal      float64  `json:"estimated_total"`
	CreatedAt           string   `json:"created_at"`
}

// NewBookingEvent builds the new_booking envelope
func NewBookingEvent(b *Booking, now time.Time) BookingEvent {
	addons := b.AddonNames
	if addons == nil {
		addons = []string{}
	}

	var photoURL *string
	if b.HasPhoto() {
		photoURL = b.InspirationPhotoURL
	}

	return BookingEvent{
		Event:     EventNewBooking,
		Timestamp: now.UTC(),
		Data: BookingPayload{
			ID:                  b.ID,
			Date:                b.Date.Format(DateFormat),
			Time:                b.Time.String(),
			CustomerName:        b.CustomerName,
			ContactMethod:       string(b.ContactMethod),
			ContactDetail:       b.ContactDetail,
			Service:             b.ServiceName,
			Addons:              addons,
			InspirationPhotoURL: photoURL,
			EstimatedTotal:      b.EstimatedTotal,
			CreatedAt:           b.CreatedAt.UTC().Format(time.RFC3339),
		},
	}
}
