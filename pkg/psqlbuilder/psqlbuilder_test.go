package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id", "date", "time").
		From("availabilities").
		Where(squirrel.Eq{"date": "2025-01-10"}).
		Where(squirrel.Eq{"status": "available"}).
		ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, date, time FROM availabilities WHERE date = $1 AND status = $2", query)
	assert.Equal(t, []interface{}{"2025-01-10", "available"}, args)
}

func TestInsert_Suffix(t *testing.T) {
	query, _, err := Insert("slot_presets").
		Columns("time").
		Values("09:00:00").
		Suffix("ON CONFLICT (time) DO NOTHING").
		ToSql()
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO slot_presets (time) VALUES ($1) ON CONFLICT (time) DO NOTHING", query)
}
