package response

import (
	"time"

	"tripdesk/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ChildPriceResponse struct {
	Age             int      `json:"age"`
	Position        int      `json:"position"`
	OriginalPrice   float64  `json:"originalPrice"`
	DiscountedPrice float64  `json:"discountedPrice"`
	DiscountType    string   `json:"discountType"`
	DiscountValue   *float64 `json:"discountValue,omitempty"`
	RuleName        string   `json:"ruleName"`
	IsFree          bool     `json:"isFree"`
}

type BreakdownResponse struct {
	AdultsCount         int                  `json:"adultsCount"`
	AdultsTotal         float64              `json:"adultsTotal"`
	AdultPricePerPerson float64              `json:"adultPricePerPerson"`
	ChildrenCount       int                  `json:"childrenCount"`
	ChildrenTotal       float64              `json:"childrenTotal"`
	SupplementsTotal    float64              `json:"supplementsTotal"`
	Children            []ChildPriceResponse `json:"children"`
}

type IntervalResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

type RoomTypeResponse struct {
	ID   uuid.UUID `json:"id"`
	Code string    `json:"code"`
	Name string    `json:"name"`
}

type PriceResultResponse struct {
	PackageID      uuid.UUID         `json:"packageId"`
	Success        bool              `json:"success"`
	Total          float64           `json:"total"`
	PerPersonAvg   float64           `json:"perPersonAvg"`
	Breakdown      BreakdownResponse `json:"breakdown"`
	Interval       *IntervalResponse `json:"interval,omitempty"`
	RoomType       *RoomTypeResponse `json:"roomType,omitempty"`
	MealPlan       string            `json:"mealPlan"`
	DurationNights int               `json:"durationNights"`
	PriceType      string            `json:"priceType"`
	Error          string            `json:"error,omitempty"`
}

type ListingPricesResponse struct {
	Results map[string]*PriceResultResponse `json:"results"`
}

func FromPriceResult(packageID uuid.UUID, r pricing.PriceResult) *PriceResultResponse {
	out := &PriceResultResponse{PackageID: packageID}
	// Field names line up with the domain result; copier handles the
	// nested breakdown and the named string types.
	_ = copier.Copy(out, &r)
	return out
}

func FromListingResults(results map[uuid.UUID]pricing.PriceResult) *ListingPricesResponse {
	out := &ListingPricesResponse{
		Results: make(map[string]*PriceResultResponse, len(results)),
	}
	for id, r := range results {
		out.Results[id.String()] = FromPriceResult(id, r)
	}
	return out
}
