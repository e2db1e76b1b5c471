package pricing

import "github.com/google/uuid"

// HotelPriceRow is one row of a package's price matrix: nightly per-person
// prices for an interval and room type, keyed by meal plan. A nil entry
// means no price is published for that plan; it is never a free price.
type HotelPriceRow struct {
	ID         uuid.UUID
	IntervalID uuid.UUID
	RoomTypeID uuid.UUID
	PriceND    *float64
	PriceBB    *float64
	PriceHB    *float64
	PriceFB    *float64
	PriceAI    *float64
}

// NightlyPrice reads the published per-person price for a meal plan.
// Missing, zero, or negative stored values are all treated as unavailable.
func (r HotelPriceRow) NightlyPrice(plan MealPlan) (float64, bool) {
	var p *float64
	switch plan {
	case MealPlanNone:
		p = r.PriceND
	case MealPlanBreakfast:
		p = r.PriceBB
	case MealPlanHalfBoard:
		p = r.PriceHB
	case MealPlanFullBoard:
		p = r.PriceFB
	case MealPlanAllInclusive:
		p = r.PriceAI
	}
	if p == nil || *p <= 0 {
		return 0, false
	}
	return *p, true
}

// LookupNightlyPrice resolves the per-person price for an interval, room
// type, and meal plan from the supplied matrix rows.
func LookupNightlyPrice(rows []HotelPriceRow, intervalID, roomTypeID uuid.UUID, plan MealPlan) (float64, bool) {
	for _, row := range rows {
		if row.IntervalID == intervalID && row.RoomTypeID == roomTypeID {
			return row.NightlyPrice(plan)
		}
	}
	return 0, false
}
