package request

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"tripdesk/internal/domain/pricing"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// CalculatePriceQuery carries the public single-package quote parameters.
// List-ish values (child ages, supplement ids) arrive comma-separated since
// this is a GET endpoint.
type CalculatePriceQuery struct {
	PackageID     string `form:"package_id" binding:"required,uuid"`
	Date          string `form:"date" binding:"required"`
	Nights        int    `form:"nights"`
	Adults        int    `form:"adults" binding:"required,min=1"`
	ChildAges     string `form:"child_ages"`
	RoomTypeID    string `form:"room_type_id"`
	MealPlan      string `form:"meal_plan"`
	SupplementIDs string `form:"supplement_ids"`
}

func (q CalculatePriceQuery) ToDomain() (uuid.UUID, pricing.QuoteRequest, error) {
	packageID, err := uuid.Parse(q.PackageID)
	if err != nil {
		return uuid.Nil, pricing.QuoteRequest{}, fmt.Errorf("invalid package_id: %w", err)
	}

	date, err := time.Parse(dateLayout, q.Date)
	if err != nil {
		return uuid.Nil, pricing.QuoteRequest{}, fmt.Errorf("invalid date, expected YYYY-MM-DD: %w", err)
	}

	childAges, err := parseChildAges(q.ChildAges)
	if err != nil {
		return uuid.Nil, pricing.QuoteRequest{}, err
	}

	party, err := pricing.NewParty(q.Adults, childAges)
	if err != nil {
		return uuid.Nil, pricing.QuoteRequest{}, err
	}

	req := pricing.QuoteRequest{
		Date:   date,
		Nights: q.Nights,
		Party:  party,
	}

	if q.RoomTypeID != "" {
		roomTypeID, parseErr := uuid.Parse(q.RoomTypeID)
		if parseErr != nil {
			return uuid.Nil, pricing.QuoteRequest{}, fmt.Errorf("invalid room_type_id: %w", parseErr)
		}
		req.RoomTypeID = &roomTypeID
	}

	if q.MealPlan != "" {
		plan, parseErr := pricing.ParseMealPlan(q.MealPlan)
		if parseErr != nil {
			return uuid.Nil, pricing.QuoteRequest{}, parseErr
		}
		req.MealPlan = &plan
	}

	if q.SupplementIDs != "" {
		for _, part := range strings.Split(q.SupplementIDs, ",") {
			id, parseErr := uuid.Parse(strings.TrimSpace(part))
			if parseErr != nil {
				return uuid.Nil, pricing.QuoteRequest{}, fmt.Errorf("invalid supplement id %q: %w", part, parseErr)
			}
			req.SupplementIDs = append(req.SupplementIDs, id)
		}
	}

	return packageID, req, nil
}

// ListingPricesRequest prices many packages for one shared party. Date is
// optional; packages without one quote against their first published
// interval.
type ListingPricesRequest struct {
	PackageIDs []uuid.UUID `json:"package_ids" binding:"required,min=1"`
	Date       *string     `json:"date,omitempty"`
	Nights     int         `json:"nights"`
	Adults     int         `json:"adults" binding:"required,min=1"`
	ChildAges  []int       `json:"child_ages"`
}

func (r ListingPricesRequest) ToDomain() ([]uuid.UUID, *time.Time, int, pricing.Party, error) {
	var date *time.Time
	if r.Date != nil && *r.Date != "" {
		parsed, err := time.Parse(dateLayout, *r.Date)
		if err != nil {
			return nil, nil, 0, pricing.Party{}, fmt.Errorf("invalid date, expected YYYY-MM-DD: %w", err)
		}
		date = &parsed
	}

	party, err := pricing.NewParty(r.Adults, r.ChildAges)
	if err != nil {
		return nil, nil, 0, pricing.Party{}, err
	}

	return r.PackageIDs, date, r.Nights, party, nil
}

// StaffQuoteRequest is the internal quoting-tool variant of a single quote:
// same shape as the public query, posted as JSON.
type StaffQuoteRequest struct {
	PackageID     uuid.UUID   `json:"package_id" binding:"required"`
	Date          string      `json:"date" binding:"required"`
	Nights        int         `json:"nights"`
	Adults        int         `json:"adults" binding:"required,min=1"`
	ChildAges     []int       `json:"child_ages"`
	RoomTypeID    *uuid.UUID  `json:"room_type_id,omitempty"`
	MealPlan      *string     `json:"meal_plan,omitempty"`
	SupplementIDs []uuid.UUID `json:"supplement_ids"`
}

func (r StaffQuoteRequest) ToDomain() (uuid.UUID, pricing.QuoteRequest, error) {
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return uuid.Nil, pricing.QuoteRequest{}, fmt.Errorf("invalid date, expected YYYY-MM-DD: %w", err)
	}

	party, err := pricing.NewParty(r.Adults, r.ChildAges)
	if err != nil {
		return uuid.Nil, pricing.QuoteRequest{}, err
	}

	req := pricing.QuoteRequest{
		Date:          date,
		Nights:        r.Nights,
		Party:         party,
		RoomTypeID:    r.RoomTypeID,
		SupplementIDs: r.SupplementIDs,
	}

	if r.MealPlan != nil && *r.MealPlan != "" {
		plan, parseErr := pricing.ParseMealPlan(*r.MealPlan)
		if parseErr != nil {
			return uuid.Nil, pricing.QuoteRequest{}, parseErr
		}
		req.MealPlan = &plan
	}

	return r.PackageID, req, nil
}

func parseChildAges(raw string) ([]int, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ages := make([]int, 0, len(parts))
	for _, part := range parts {
		age, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid child age %q: %w", part, err)
		}
		ages = append(ages, age)
	}
	return ages, nil
}
