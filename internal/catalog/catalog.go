package catalog

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

var (
	ErrServiceNotFound = errors.New("catalog: service not found")
	ErrAddonNotFound   = errors.New("catalog: addon not found")
)

// Option значение для выпадающего списка: идентификатор и подпись
type Option struct {
	Value string
	Label string
}

// Catalog статический прайс салона: услуги, дополнения, категории портфолио
// Неизменяем после создания, безопасен для конкурентного чтения
type Catalog struct {
	services   []*domain.Service
	addons     []*domain.Addon
	serviceIdx map[string]*domain.Service
	addonIdx   map[string]*domain.Addon
}

// New собирает каталог из переданных услуг и дополнений
func New(services []domain.Service, addons []domain.Addon) *Catalog {
	c := &Catalog{
		services:   make([]*domain.Service, 0, len(services)),
		addons:     make([]*domain.Addon, 0, len(addons)),
		serviceIdx: make(map[string]*domain.Service, len(services)),
		addonIdx:   make(map[string]*domain.Addon, len(addons)),
	}

	for i := range services {
		s := services[i]
		c.services = append(c.services, &s)
		c.serviceIdx[s.ID] = &s
	}
	for i := range addons {
		a := addons[i]
		c.addons = append(c.addons, &a)
		c.addonIdx[a.ID] = &a
	}

	return c
}

// Default каталог салона
func Default() *Catalog {
	return New(defaultServices, defaultAddons)
}

// Services все услуги в порядке отображения
func (c *Catalog) Services() []*domain.Service {
	return c.services
}

// Addons все дополнения в порядке отображения
func (c *Catalog) Addons() []*domain.Addon {
	return c.addons
}

// Service возвращает услугу по идентификатору
func (c *Catalog) Service(id string) (*domain.Service, error) {
	s, ok := c.serviceIdx[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrServiceNotFound, id)
	}
	return s, nil
}

// Addon возвращает дополнение по идентификатору
func (c *Catalog) Addon(id string) (*domain.Addon, error) {
	a, ok := c.addonIdx[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrAddonNotFound, id)
	}
	return a, nil
}

// AddonsByIDs возвращает дополнения в порядке ids, дубликаты отбрасываются
func (c *Catalog) AddonsByIDs(ids []string) ([]*domain.Addon, error) {
	result := make([]*domain.Addon, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))

	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		a, err := c.Addon(id)
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}

	return result, nil
}

// PortfolioCategories фильтры галереи, первым идет "all"
func (c *Catalog) PortfolioCategories() []Option {
	return portfolioCategories
}

// ContactMethods способы связи для формы записи
func (c *Catalog) ContactMethods() []Option {
	return contactMethods
}
