package pricing

import "github.com/google/uuid"

// SupplementUnit is the billing unit an add-on charge is quoted per.
type SupplementUnit string

const (
	PerNight       SupplementUnit = "night"
	PerStay        SupplementUnit = "stay"
	PerPersonNight SupplementUnit = "person_night"
	PerPersonStay  SupplementUnit = "person_stay"
)

// Supplement is an optional add-on charge. Amount-based supplements are
// additive; percent-based ones are not part of this calculation path and
// are skipped until the percent extension lands.
type Supplement struct {
	ID        uuid.UUID
	Code      string
	Name      string
	Amount    *float64
	Percent   *float64
	Per       SupplementUnit
	Mandatory bool
}

// SupplementsTotal sums the selected supplements' contributions for a stay.
// childMultipliers carry each child's effective share of per-person charges
// (1 full price, fractional for PERCENT-discounted children, 0 for FREE).
func SupplementsTotal(supplements []Supplement, nights, adults int, childMultipliers []float64) float64 {
	persons := float64(adults)
	for _, m := range childMultipliers {
		persons += m
	}

	total := 0.0
	for _, s := range supplements {
		if s.Amount == nil {
			continue
		}
		amount := *s.Amount
		switch s.Per {
		case PerNight:
			total += amount * float64(nights)
		case PerPersonNight:
			total += amount * float64(nights) * persons
		case PerPersonStay:
			total += amount * persons
		default: // PerStay: flat, once
			total += amount
		}
	}
	return total
}
