package list_availability

import (
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	listAvailability "github.com/m04kA/SMC-SalonBooking/internal/usecase/list_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Days       []DayResponse `json:"days"`
	TotalSlots int           `json:"totalSlots"`
}

// DayResponse день со свободными слотами
type DayResponse struct {
	Date        string         `json:"date"`        // "2025-01-10"
	DisplayDate string         `json:"displayDate"` // "Friday, January 10, 2025"
	Slots       []SlotResponse `json:"slots"`
}

// SlotResponse свободный слот
type SlotResponse struct {
	ID          int64  `json:"id"`
	Time        string `json:"time"`        // "09:00:00"
	DisplayTime string `json:"displayTime"` // "9:00 AM"
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *listAvailability.Response) *AvailabilityResponse {
	result := &AvailabilityResponse{
		Days:       make([]DayResponse, 0, len(resp.Days)),
		TotalSlots: resp.TotalSlots,
	}

	for _, day := range resp.Days {
		dayResp := DayResponse{
			Date:        day.Date.Format(domain.DateFormat),
			DisplayDate: day.DisplayDate,
			Slots:       make([]SlotResponse, 0, len(day.Slots)),
		}
		for _, slot := range day.Slots {
			dayResp.Slots = append(dayResp.Slots, SlotResponse{
				ID:          slot.ID,
				Time:        slot.Time.String(),
				DisplayTime: slot.DisplayTime,
			})
		}
		result.Days = append(result.Days, dayResp)
	}

	return result
}
