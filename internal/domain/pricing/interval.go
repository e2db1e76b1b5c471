package pricing

import (
	"time"

	"github.com/google/uuid"
)

// PriceInterval is a dated validity window during which one price matrix
// applies. Start and end are inclusive calendar dates.
type PriceInterval struct {
	ID        uuid.UUID
	Name      *string
	StartDate time.Time
	EndDate   time.Time
}

func (iv PriceInterval) Covers(date time.Time) bool {
	d := toDate(date)
	return !d.Before(toDate(iv.StartDate)) && !d.After(toDate(iv.EndDate))
}

func (iv PriceInterval) DisplayName() string {
	if iv.Name != nil && *iv.Name != "" {
		return *iv.Name
	}
	return "Season"
}

// ResolveInterval returns the first interval covering the date. When
// intervals overlap, first match over the supplied slice order wins;
// upstream is expected to keep intervals non-overlapping.
func ResolveInterval(intervals []PriceInterval, date time.Time) (PriceInterval, bool) {
	for _, iv := range intervals {
		if iv.Covers(date) {
			return iv, true
		}
	}
	return PriceInterval{}, false
}

// toDate strips the time-of-day component; interval bounds are calendar dates.
func toDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
