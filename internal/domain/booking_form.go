package domain

import (
	"slices"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// WizardStep state of the booking wizard
type WizardStep int

const (
	StepSelectService  WizardStep = 1
	StepSelectAddons   WizardStep = 2
	StepSelectDateTime WizardStep = 3
	StepEnterDetails   WizardStep = 4
	StepSubmitting     WizardStep = 5
	StepSucceeded      WizardStep = 6
	StepFailed         WizardStep = 7
)

var stepNames = map[WizardStep]string{
	StepSelectService:  "selecting_service",
	StepSelectAddons:   "selecting_addons",
	StepSelectDateTime: "selecting_datetime",
	StepEnterDetails:   "entering_details",
	StepSubmitting:     "submitting",
	StepSucceeded:      "succeeded",
	StepFailed:         "failed",
}

func (s WizardStep) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "unknown"
}

// ContactDetails customer fields entered on the last step
type ContactDetails struct {
	CustomerName  string        `json:"customerName"`
	ContactMethod ContactMethod `json:"contactMethod"`
	ContactDetail string        `json:"contactDetail"`
}

// Complete returns true if name and contact are filled and the contact matches its method
func (d ContactDetails) Complete() bool {
	return strings.TrimSpace(d.CustomerName) != "" &&
		strings.TrimSpace(d.ContactDetail) != "" &&
		d.ContactMethod.Accepts(strings.TrimSpace(d.ContactDetail))
}

// BookingForm in-progress wizard state owned by one booking session
type BookingForm struct {
	SessionID string           `json:"sessionId"`
	Step      WizardStep       `json:"step"`
	ServiceID string           `json:"serviceId,omitempty"`
	AddonIDs  []string         `json:"addonIds"` // selection order, no duplicates
	Date      *time.Time       `json:"date,omitempty"`
	Time      types.TimeString `json:"time,omitempty"`
	Details   ContactDetails   `json:"details"`
	LastError string           `json:"lastError,omitempty"`
	BookingID *int64           `json:"bookingId,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// HasAddon returns true if the add-on is selected
func (f *BookingForm) HasAddon(id string) bool {
	for _, a := range f.AddonIDs {
		if a == id {
			return true
		}
	}
	return false
}

// ToggleAddon adds the add-on if absent, removes it otherwise. Returns the new selection state.
func (f *BookingForm) ToggleAddon(id string) bool {
	if f.HasAddon(id) {
		f.AddonIDs = slices.DeleteFunc(f.AddonIDs, func(a string) bool { return a == id })
		return false
	}
	f.AddonIDs = append(f.AddonIDs, id)
	return true
}

// CanProceed reports whether the gate of the given step holds
func (f *BookingForm) CanProceed(step WizardStep) bool {
	switch step {
	case StepSelectService:
		return f.ServiceID != ""
	case StepSelectAddons:
		return true
	case StepSelectDateTime:
		return f.Date != nil && !f.Time.IsZero()
	case StepEnterDetails, StepFailed:
		return f.Details.Complete()
	default:
		return false
	}
}
