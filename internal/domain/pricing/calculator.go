package pricing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Package price semantics: whether the stored matrix amounts are per night
// or cover the whole stay.
const (
	PriceTypePerPersonPerNight = "per_person_per_night"
	PriceTypePerPersonPerStay  = "per_person_per_stay"
)

const DefaultDurationNights = 7

// PackageRecords is the full record set for one package, fetched by the
// caller immediately before a calculation. The engine never retrieves data
// itself and keeps no state between calls.
type PackageRecords struct {
	PackageID   uuid.UUID
	PriceType   string
	MealPlans   []MealPlan
	Intervals   []PriceInterval
	RoomTypes   []RoomType
	PriceRows   []HotelPriceRow
	PolicyRules []ChildPolicyRule
	Supplements []Supplement
}

// QuoteRequest selects a stay for one party: date, length, optional room and
// meal plan, and optional add-ons.
type QuoteRequest struct {
	Date          time.Time
	Nights        int
	Party         Party
	RoomTypeID    *uuid.UUID
	MealPlan      *MealPlan
	SupplementIDs []uuid.UUID
}

type ChildPriceDetail struct {
	Age             int
	Position        int
	OriginalPrice   float64
	DiscountedPrice float64
	DiscountType    DiscountType
	DiscountValue   *float64
	RuleName        string
	IsFree          bool
}

type Breakdown struct {
	AdultsCount         int
	AdultsTotal         float64
	AdultPricePerPerson float64
	ChildrenCount       int
	ChildrenTotal       float64
	SupplementsTotal    float64
	Children            []ChildPriceDetail
}

type ResolvedInterval struct {
	ID        uuid.UUID
	Name      string
	StartDate time.Time
	EndDate   time.Time
}

type ResolvedRoomType struct {
	ID   uuid.UUID
	Code string
	Name string
}

// PriceResult is the auditable outcome of one calculation. Expected "no
// data" conditions (no interval, no published price) surface as
// Success=false with Error set, never as a Go error, so batch callers can
// keep going.
type PriceResult struct {
	Success        bool
	Total          float64
	PerPersonAvg   float64
	Breakdown      Breakdown
	Interval       *ResolvedInterval
	RoomType       *ResolvedRoomType
	MealPlan       MealPlan
	DurationNights int
	PriceType      string
	Error          string
}

func FailedResult(msg string) PriceResult {
	return PriceResult{
		Success:   false,
		PriceType: "unknown",
		Error:     msg,
	}
}

// CalculateGroupPrice prices one package stay for a party: it resolves the
// interval covering the date, reads the nightly per-person base from the
// price matrix, applies child discount policy per child in input order, and
// adds selected supplements. Pure function over the supplied records.
func CalculateGroupPrice(rec PackageRecords, req QuoteRequest) PriceResult {
	nights := req.Nights
	if nights <= 0 {
		nights = DefaultDurationNights
	}

	interval, ok := ResolveInterval(rec.Intervals, req.Date)
	if !ok {
		return FailedResult(fmt.Sprintf("no price interval covers date %s", req.Date.Format("2006-01-02")))
	}

	roomType, ok := SelectRoomType(rec.RoomTypes, req.RoomTypeID, req.Party.Size())
	if !ok {
		if req.RoomTypeID != nil {
			return FailedResult("room type not found")
		}
		return FailedResult(fmt.Sprintf("no suitable room type for party of %d", req.Party.Size()))
	}

	mealPlan := selectMealPlan(rec.MealPlans, req.MealPlan)

	baseNightly, ok := LookupNightlyPrice(rec.PriceRows, interval.ID, roomType.ID, mealPlan)
	if !ok {
		return FailedResult(fmt.Sprintf(
			"no price published for room %s, meal plan %s in interval %s",
			roomType.Code, mealPlan, interval.DisplayName(),
		))
	}

	priceType := rec.PriceType
	if priceType == "" {
		priceType = PriceTypePerPersonPerNight
	}

	// Stay-priced packages carry the whole stay in the stored amount.
	billableUnits := 1
	if priceType == PriceTypePerPersonPerNight {
		billableUnits = nights
	}

	adults := req.Party.Adults()
	adultPricePerPerson := baseNightly * float64(billableUnits)
	adultsTotal := adultPricePerPerson * float64(adults)

	childAges := req.Party.ChildAges()
	children := make([]ChildPriceDetail, 0, len(childAges))
	childMultipliers := make([]float64, 0, len(childAges))
	childrenTotal := 0.0

	for i, age := range childAges {
		position := i + 1
		detail := ChildPriceDetail{
			Age:           age,
			Position:      position,
			OriginalPrice: baseNightly,
			DiscountType:  DiscountPercent,
			RuleName:      defaultChildRuleName(position),
		}

		rule, matched := ResolveChildRule(rec.PolicyRules, age, position, adults, roomType.Code)
		if matched {
			detail.DiscountedPrice = rule.NightlyPrice(baseNightly)
			detail.DiscountType = rule.DiscountType
			detail.DiscountValue = rule.DiscountValue
			detail.RuleName = rule.Name(position)
			detail.IsFree = rule.DiscountType == DiscountFree
			childMultipliers = append(childMultipliers, rule.Multiplier())
		} else {
			// No matching rule: the child pays the full adult price.
			detail.DiscountedPrice = baseNightly
			childMultipliers = append(childMultipliers, 1)
		}

		childrenTotal += detail.DiscountedPrice * float64(billableUnits)
		children = append(children, detail)
	}

	supplementsTotal := SupplementsTotal(
		selectedSupplements(rec.Supplements, req.SupplementIDs),
		nights, adults, childMultipliers,
	)

	total := adultsTotal + childrenTotal + supplementsTotal

	return PriceResult{
		Success:      true,
		Total:        total,
		PerPersonAvg: total / float64(req.Party.Size()),
		Breakdown: Breakdown{
			AdultsCount:         adults,
			AdultsTotal:         adultsTotal,
			AdultPricePerPerson: adultPricePerPerson,
			ChildrenCount:       len(childAges),
			ChildrenTotal:       childrenTotal,
			SupplementsTotal:    supplementsTotal,
			Children:            children,
		},
		Interval: &ResolvedInterval{
			ID:        interval.ID,
			Name:      interval.DisplayName(),
			StartDate: interval.StartDate,
			EndDate:   interval.EndDate,
		},
		RoomType: &ResolvedRoomType{
			ID:   roomType.ID,
			Code: roomType.Code,
			Name: roomType.Name,
		},
		MealPlan:       mealPlan,
		DurationNights: nights,
		PriceType:      priceType,
	}
}

// selectMealPlan keeps the requested plan when the package offers it,
// otherwise falls back to the package's first offered plan.
func selectMealPlan(offered []MealPlan, requested *MealPlan) MealPlan {
	if requested != nil {
		for _, plan := range offered {
			if plan == *requested {
				return *requested
			}
		}
		if len(offered) == 0 {
			return *requested
		}
	}
	if len(offered) > 0 {
		return offered[0]
	}
	return MealPlanAllInclusive
}

// selectedSupplements keeps the chosen optional add-ons. Mandatory rows are
// ignored here; they are not selectable.
func selectedSupplements(available []Supplement, ids []uuid.UUID) []Supplement {
	if len(ids) == 0 {
		return nil
	}
	chosen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		chosen[id] = true
	}
	var out []Supplement
	for _, s := range available {
		if chosen[s.ID] && !s.Mandatory {
			out = append(out, s)
		}
	}
	return out
}

func defaultChildRuleName(position int) string {
	return fmt.Sprintf("Child %d standard rate", position)
}
