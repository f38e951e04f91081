package list_availability

import (
	"sort"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// groupByDate группирует слоты по дате: одна группа на день, дни и время по возрастанию
func groupByDate(slots []*domain.AvailabilitySlot) []Day {
	sorted := make([]*domain.AvailabilitySlot, len(slots))
	copy(sorted, slots)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !domain.SameDay(sorted[i].Date, sorted[j].Date) {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		return sorted[i].Time.IsBefore(sorted[j].Time)
	})

	days := make([]Day, 0)
	for _, s := range sorted {
		if len(days) == 0 || !domain.SameDay(days[len(days)-1].Date, s.Date) {
			date := domain.TruncateToDay(s.Date)
			days = append(days, Day{
				Date:        date,
				DisplayDate: date.Format(domain.LongDateFormat),
				Slots:       make([]Slot, 0, 1),
			})
		}

		last := &days[len(days)-1]
		last.Slots = append(last.Slots, Slot{
			ID:          s.ID,
			Time:        s.Time,
			DisplayTime: s.Time.Display12h(),
		})
	}

	return days
}
