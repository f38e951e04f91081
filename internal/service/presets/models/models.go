package models

// UpdatePresetsRequest запрос на замену шаблонов
type UpdatePresetsRequest struct {
	Times []string `json:"times"` // ["09:00", "10:00"]
}

// PresetsResponse текущие шаблоны
type PresetsResponse struct {
	Times        []string `json:"times"`        // "09:00:00"
	DisplayTimes []string `json:"displayTimes"` // "9:00 AM"
	IsDefault    bool     `json:"isDefault"`    // true, если админ шаблоны не задавал
}
