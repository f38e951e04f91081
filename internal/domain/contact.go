package domain

import "regexp"

// ContactMethod how the salon reaches the customer
type ContactMethod string

const (
	ContactEmail     ContactMethod = "email"
	ContactPhone     ContactMethod = "phone"
	ContactInstagram ContactMethod = "instagram"
)

// ContactMethods все способы связи в порядке отображения
var ContactMethods = []ContactMethod{ContactEmail, ContactPhone, ContactInstagram}

var contactPatterns = map[ContactMethod]*regexp.Regexp{
	ContactPhone:     regexp.MustCompile(`^\(\d{3}\)-\d{3}-\d{4}$`),
	ContactEmail:     regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`),
	ContactInstagram: regexp.MustCompile(`^@[a-zA-Z0-9._]{1,30}$`),
}

// IsValid returns true for a known contact method
func (m ContactMethod) IsValid() bool {
	_, ok := contactPatterns[m]
	return ok
}

// Accepts returns true if detail matches the format of the contact method
func (m ContactMethod) Accepts(detail string) bool {
	re, ok := contactPatterns[m]
	if !ok {
		return false
	}
	return re.MatchString(detail)
}

// FormatHint пример корректного значения для сообщения об ошибке
func (m ContactMethod) FormatHint() string {
	switch m {
	case ContactPhone:
		return "(555)-123-4567"
	case ContactEmail:
		return "name@example.com"
	case ContactInstagram:
		return "@username"
	default:
		return ""
	}
}
