package submit_booking

import (
	"io"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Photo фото-пример, приложенный к бронированию
type Photo struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Request модель запроса на создание бронирования
type Request struct {
	ServiceID     string               // ID услуги из каталога
	AddonIDs      []string             // ID дополнений (опционально)
	Date          time.Time            // Дата визита (без времени)
	Time          types.TimeString     // Время слота ("09:00:00")
	CustomerName  string               // Имя клиента
	ContactMethod domain.ContactMethod // Способ связи
	ContactDetail string               // Телефон, email или instagram
	Photo         *Photo               // Фото-пример (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID                  int64
	Date                time.Time
	Time                types.TimeString
	CustomerName        string
	ContactMethod       domain.ContactMethod
	ContactDetail       string
	ServiceName         string
	AddonNames          []string
	InspirationPhotoURL *string
	EstimatedTotal      float64
	CreatedAt           time.Time

	// SlotReleased false, если слот не удалось пометить занятым (бронирование при этом создано)
	SlotReleased bool
}
