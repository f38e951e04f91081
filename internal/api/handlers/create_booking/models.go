package create_booking

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	submitBooking "github.com/m04kA/SMC-SalonBooking/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

var (
	errInvalidDate = errors.New("invalid date")
	errInvalidTime = errors.New("invalid time")
)

// CreateBookingRequest HTTP request model
// Для multipart формы те же поля приходят form-значениями, addonIds можно повторять
type CreateBookingRequest struct {
	ServiceID     string   `json:"serviceId"`
	AddonIDs      []string `json:"addonIds"`
	Date          string   `json:"date"` // "2025-01-10"
	Time          string   `json:"time"` // "09:00" или "09:00:00"
	CustomerName  string   `json:"customerName"`
	ContactMethod string   `json:"contactMethod"`
	ContactDetail string   `json:"contactDetail"`
}

// FromForm заполняет запрос из разобранной multipart формы
func FromForm(r *http.Request) *CreateBookingRequest {
	req := &CreateBookingRequest{
		ServiceID:     r.FormValue("serviceId"),
		Date:          r.FormValue("date"),
		Time:          r.FormValue("time"),
		CustomerName:  r.FormValue("customerName"),
		ContactMethod: r.FormValue("contactMethod"),
		ContactDetail: r.FormValue("contactDetail"),
	}

	for _, raw := range r.MultipartForm.Value["addonIds"] {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				req.AddonIDs = append(req.AddonIDs, id)
			}
		}
	}

	return req
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(photo *submitBooking.Photo) (*submitBooking.Request, error) {
	date, err := domain.ParseDate(strings.TrimSpace(r.Date))
	if err != nil {
		return nil, errInvalidDate
	}

	t, err := types.NewTimeStringFromString(strings.TrimSpace(r.Time))
	if err != nil {
		return nil, errInvalidTime
	}

	return &submitBooking.Request{
		ServiceID:     strings.TrimSpace(r.ServiceID),
		AddonIDs:      r.AddonIDs,
		Date:          date,
		Time:          t,
		CustomerName:  r.CustomerName,
		ContactMethod: domain.ContactMethod(strings.ToLower(strings.TrimSpace(r.ContactMethod))),
		ContactDetail: r.ContactDetail,
		Photo:         photo,
	}, nil
}
