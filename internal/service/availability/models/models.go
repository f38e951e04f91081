package models

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Request модели

// AddSlotRequest запрос на добавление слота
type AddSlotRequest struct {
	Date string `json:"date"` // "2025-01-10"
	Time string `json:"time"` // "09:00" или "09:00:00"
}

// ListSlotsRequest запрос на получение слотов для админки
type ListSlotsRequest struct {
	From *string `json:"from,omitempty"`
	To   *string `json:"to,omitempty"`
}

// Response модели

// SlotResponse слот доступности
type SlotResponse struct {
	ID          int64     `json:"id"`
	Date        string    `json:"date"`        // "2025-01-10"
	Time        string    `json:"time"`        // "09:00:00"
	DisplayTime string    `json:"displayTime"` // "9:00 AM"
	Status      string    `json:"status"`
	BookingID   *int64    `json:"bookingId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AddSlotResponse результат добавления: created=false, если слот уже был
type AddSlotResponse struct {
	Slot    SlotResponse `json:"slot"`
	Created bool         `json:"created"`
}

// AddPresetSlotsResponse результат добавления шаблонного дня
type AddPresetSlotsResponse struct {
	Date    string         `json:"date"`
	Added   []SlotResponse `json:"added"`
	Skipped []string       `json:"skipped"` // время уже существующих слотов
}

// SlotListResponse список слотов
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// DeleteSlotsResponse результат очистки дня
type DeleteSlotsResponse struct {
	Date    string `json:"date"`
	Deleted int64  `json:"deleted"`
}

// Методы конвертации

// FromDomainSlot конвертирует domain модель в DTO
func FromDomainSlot(s *domain.AvailabilitySlot) *SlotResponse {
	if s == nil {
		return nil
	}

	return &SlotResponse{
		ID:          s.ID,
		Date:        s.Date.Format(domain.DateFormat),
		Time:        s.Time.String(),
		DisplayTime: s.Time.Display12h(),
		Status:      string(s.Status),
		BookingID:   s.BookingID,
		CreatedAt:   s.CreatedAt,
	}
}

// FromDomainSlotList конвертирует список domain моделей в DTO
func FromDomainSlotList(slots []*domain.AvailabilitySlot) *SlotListResponse {
	resp := &SlotListResponse{
		Slots: make([]SlotResponse, 0, len(slots)),
	}

	for _, slot := range slots {
		if slotResp := FromDomainSlot(slot); slotResp != nil {
			resp.Slots = append(resp.Slots, *slotResp)
		}
	}

	return resp
}
