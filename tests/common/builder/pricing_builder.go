//go:build unit || e2e

package builder

import (
	"time"

	"tripdesk/internal/domain/pricing"

	"github.com/google/uuid"
)

// PackageRecordsBuilder assembles the record set the pricing engine consumes:
// one interval, one room type, one price matrix row, plus whatever rules and
// supplements a test adds.
type PackageRecordsBuilder struct {
	PackageID   uuid.UUID
	PriceType   string
	MealPlans   []pricing.MealPlan
	Intervals   []pricing.PriceInterval
	RoomTypes   []pricing.RoomType
	PriceRows   []pricing.HotelPriceRow
	PolicyRules []pricing.ChildPolicyRule
	Supplements []pricing.Supplement

	IntervalID uuid.UUID
	RoomTypeID uuid.UUID
}

func NewPackageRecordsBuilder() *PackageRecordsBuilder {
	packageID := uuid.New()
	intervalID := uuid.New()
	roomTypeID := uuid.New()

	name := "Summer season"
	nightly := 50.0

	return &PackageRecordsBuilder{
		PackageID:  packageID,
		PriceType:  pricing.PriceTypePerPersonPerNight,
		MealPlans:  []pricing.MealPlan{pricing.MealPlanHalfBoard, pricing.MealPlanAllInclusive},
		IntervalID: intervalID,
		RoomTypeID: roomTypeID,
		Intervals: []pricing.PriceInterval{{
			ID:        intervalID,
			Name:      &name,
			StartDate: Date(2026, 6, 1),
			EndDate:   Date(2026, 8, 31),
		}},
		RoomTypes: []pricing.RoomType{{
			ID:         roomTypeID,
			Code:       "DBL",
			Name:       "Double room",
			MaxPersons: 4,
		}},
		PriceRows: []pricing.HotelPriceRow{{
			ID:         uuid.New(),
			IntervalID: intervalID,
			RoomTypeID: roomTypeID,
			PriceHB:    &nightly,
		}},
	}
}

func (b *PackageRecordsBuilder) With(mutate func(*PackageRecordsBuilder)) *PackageRecordsBuilder {
	mutate(b)
	return b
}

func (b *PackageRecordsBuilder) WithRule(rule pricing.ChildPolicyRule) *PackageRecordsBuilder {
	b.PolicyRules = append(b.PolicyRules, rule)
	return b
}

func (b *PackageRecordsBuilder) WithSupplement(s pricing.Supplement) *PackageRecordsBuilder {
	b.Supplements = append(b.Supplements, s)
	return b
}

func (b *PackageRecordsBuilder) WithNightlyPrice(plan pricing.MealPlan, price float64) *PackageRecordsBuilder {
	row := &b.PriceRows[0]
	switch plan {
	case pricing.MealPlanNone:
		row.PriceND = &price
	case pricing.MealPlanBreakfast:
		row.PriceBB = &price
	case pricing.MealPlanHalfBoard:
		row.PriceHB = &price
	case pricing.MealPlanFullBoard:
		row.PriceFB = &price
	case pricing.MealPlanAllInclusive:
		row.PriceAI = &price
	}
	return b
}

func (b *PackageRecordsBuilder) Build() pricing.PackageRecords {
	return pricing.PackageRecords{
		PackageID:   b.PackageID,
		PriceType:   b.PriceType,
		MealPlans:   b.MealPlans,
		Intervals:   b.Intervals,
		RoomTypes:   b.RoomTypes,
		PriceRows:   b.PriceRows,
		PolicyRules: b.PolicyRules,
		Supplements: b.Supplements,
	}
}

// RuleBuilder builds child policy rules with sensible defaults: a FREE rule
// covering ages 0-6.
type RuleBuilder struct {
	Rule pricing.ChildPolicyRule
}

func NewRuleBuilder() *RuleBuilder {
	name := "Infant free"
	return &RuleBuilder{Rule: pricing.ChildPolicyRule{
		ID:           uuid.New(),
		RuleName:     &name,
		AgeFrom:      0,
		AgeTo:        6,
		DiscountType: pricing.DiscountFree,
	}}
}

func (rb *RuleBuilder) Named(name string) *RuleBuilder {
	rb.Rule.RuleName = &name
	return rb
}

func (rb *RuleBuilder) Ages(from, to int) *RuleBuilder {
	rb.Rule.AgeFrom = from
	rb.Rule.AgeTo = to
	return rb
}

func (rb *RuleBuilder) Free() *RuleBuilder {
	rb.Rule.DiscountType = pricing.DiscountFree
	rb.Rule.DiscountValue = nil
	return rb
}

func (rb *RuleBuilder) Percent(value float64) *RuleBuilder {
	rb.Rule.DiscountType = pricing.DiscountPercent
	rb.Rule.DiscountValue = &value
	return rb
}

func (rb *RuleBuilder) Fixed(value float64) *RuleBuilder {
	rb.Rule.DiscountType = pricing.DiscountFixed
	rb.Rule.DiscountValue = &value
	return rb
}

func (rb *RuleBuilder) AdultsBetween(min, max int) *RuleBuilder {
	rb.Rule.MinAdults = &min
	rb.Rule.MaxAdults = &max
	return rb
}

func (rb *RuleBuilder) AtPosition(position int) *RuleBuilder {
	rb.Rule.ChildPosition = &position
	return rb
}

func (rb *RuleBuilder) InRooms(codes ...string) *RuleBuilder {
	rb.Rule.RoomTypeCodes = codes
	return rb
}

func (rb *RuleBuilder) Build() pricing.ChildPolicyRule {
	return rb.Rule
}

func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func MustParty(adults int, childAges ...int) pricing.Party {
	p, err := pricing.NewParty(adults, childAges)
	if err != nil {
		panic(err)
	}
	return p
}
