package list_availability

import (
	"context"
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

type fakeSlotRepo struct {
	slots      []*domain.AvailabilitySlot
	err        error
	lastFilter domain.SlotsFilter
}

func (r *fakeSlotRepo) List(_ context.Context, filter domain.SlotsFilter) ([]*domain.AvailabilitySlot, error) {
	r.lastFilter = filter
	return r.slots, r.err
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func day(d int) time.Time {
	return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC)
}

func slot(id int64, d int, t types.TimeString) *domain.AvailabilitySlot {
	return &domain.AvailabilitySlot{ID: id, Date: day(d), Time: t, Status: domain.SlotAvailable}
}

func TestGroupByDate_SingleDay(t *testing.T) {
	days := groupByDate([]*domain.AvailabilitySlot{
		slot(2, 10, "10:00:00"),
		slot(1, 10, "09:00:00"),
	})

	require.Len(t, days, 1)
	assert.Equal(t, "Friday, January 10, 2025", days[0].DisplayDate)
	require.Len(t, days[0].Slots, 2)
	assert.Equal(t, types.TimeString("09:00:00"), days[0].Slots[0].Time)
	assert.Equal(t, "9:00 AM", days[0].Slots[0].DisplayTime)
	assert.Equal(t, types.TimeString("10:00:00"), days[0].Slots[1].Time)
}

func TestGroupByDate_ManyDays(t *testing.T) {
	days := groupByDate([]*domain.AvailabilitySlot{
		slot(3, 11, "14:00:00"),
		slot(1, 10, "09:00:00"),
		slot(4, 11, "13:00:00"),
	})

	require.Len(t, days, 2)
	assert.True(t, domain.SameDay(day(10), days[0].Date))
	assert.Len(t, days[0].Slots, 1)
	assert.Equal(t, "1:00 PM", days[1].Slots[0].DisplayTime)
	assert.Equal(t, "2:00 PM", days[1].Slots[1].DisplayTime)
}

func TestExecute_UsesSalonToday(t *testing.T) {
	loc, err := time.LoadLocation("America/Toronto")
	require.NoError(t, err)

	repo := &fakeSlotRepo{slots: []*domain.AvailabilitySlot{slot(1, 10, "09:00:00")}}
	uc := NewUseCase(repo, loc, logger.NewNop())
	// 02:00 UTC 9 января - еще 8 января в Торонто
	uc.timeProvider = fixedTime{now: time.Date(2025, 1, 9, 2, 0, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.TotalSlots)
	require.NotNil(t, repo.lastFilter.From)
	assert.Equal(t, "2025-01-08", repo.lastFilter.From.Format(domain.DateFormat))
	assert.True(t, repo.lastFilter.AvailableOnly)
	assert.Nil(t, repo.lastFilter.To)
}

func TestExecute_SingleDate(t *testing.T) {
	repo := &fakeSlotRepo{}
	uc := NewUseCase(repo, time.UTC, logger.NewNop())
	uc.timeProvider = fixedTime{now: time.Date(2025, 1, 8, 12, 0, 0, 0, time.UTC)}

	date := day(10)
	resp, err := uc.Execute(context.Background(), &Request{Date: &date})
	require.NoError(t, err)
	assert.Empty(t, resp.Days)
	require.NotNil(t, repo.lastFilter.To)
	assert.Equal(t, "2025-01-10", repo.lastFilter.To.Format(domain.DateFormat))

	past := day(1)
	repo.lastFilter = domain.SlotsFilter{}
	resp, err = uc.Execute(context.Background(), &Request{Date: &past})
	require.NoError(t, err)
	assert.Empty(t, resp.Days)
	assert.Nil(t, repo.lastFilter.From)
}

func TestExecute_RepositoryError(t *testing.T) {
	uc := NewUseCase(&fakeSlotRepo{err: errors.New("timeout")}, time.UTC, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInternal)
}
