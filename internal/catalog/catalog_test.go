package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

func TestDefault(t *testing.T) {
	c := Default()

	assert.Len(t, c.Services(), 6)
	assert.Len(t, c.Addons(), 5)
	assert.Equal(t, "manicure-classic", c.Services()[0].ID)
	assert.Equal(t, "all", c.PortfolioCategories()[0].Value)
	assert.Len(t, c.ContactMethods(), len(domain.ContactMethods))
}

func TestCatalog_Lookup(t *testing.T) {
	c := Default()

	s, err := c.Service("manicure-classic")
	require.NoError(t, err)
	assert.Equal(t, 35.0, s.Price)
	assert.Equal(t, 45, s.DurationMinutes)

	_, err = c.Service("haircut")
	assert.ErrorIs(t, err, ErrServiceNotFound)

	_, err = c.Addon("addon-glitter")
	assert.ErrorIs(t, err, ErrAddonNotFound)
}

func TestCatalog_AddonsByIDs(t *testing.T) {
	c := Default()

	addons, err := c.AddonsByIDs([]string{"addon-massage", "addon-french", "addon-massage"})
	require.NoError(t, err)
	require.Len(t, addons, 2)
	assert.Equal(t, "addon-massage", addons[0].ID)
	assert.Equal(t, "addon-french", addons[1].ID)

	s, _ := c.Service("manicure-classic")
	assert.Equal(t, 60.0, domain.EstimatedTotal(s, addons))

	_, err = c.AddonsByIDs([]string{"addon-french", "nope"})
	assert.ErrorIs(t, err, ErrAddonNotFound)
}

func TestNew_CopiesInput(t *testing.T) {
	services := []domain.Service{{ID: "a", Price: 1}}
	c := New(services, nil)

	services[0].Price = 100
	s, err := c.Service("a")
	require.NoError(t, err)
	assert.Equal(t, 1.0, s.Price)
	assert.Same(t, c.Services()[0], s)
}
