package add_preset_slots

// AddPresetSlotsRequest HTTP request model
type AddPresetSlotsRequest struct {
	Date string `json:"date"` // "2025-01-10"
}
