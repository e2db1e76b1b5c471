//go:build unit

package pricing_test

import (
	"testing"

	"tripdesk/internal/domain/pricing"
	"tripdesk/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quoteFor(b *builder.PackageRecordsBuilder, party pricing.Party) (pricing.PackageRecords, pricing.QuoteRequest) {
	return b.Build(), pricing.QuoteRequest{
		Date:   builder.Date(2026, 7, 10),
		Nights: 7,
		Party:  party,
	}
}

func TestCalculateGroupPrice(t *testing.T) {
	t.Run("full scenario: free infant, half-price child", func(t *testing.T) {
		b := builder.NewPackageRecordsBuilder().
			WithRule(builder.NewRuleBuilder().Ages(0, 6).Free().Named("0-6 free").Build()).
			WithRule(builder.NewRuleBuilder().Ages(7, 12).Percent(50).Named("7-12 half price").Build())
		rec, req := quoteFor(b, builder.MustParty(2, 5, 10))

		result := pricing.CalculateGroupPrice(rec, req)

		require.True(t, result.Success, "unexpected failure: %s", result.Error)
		assert.InDelta(t, 700.0, result.Breakdown.AdultsTotal, 1e-9) // 2 × 50 × 7
		assert.InDelta(t, 175.0, result.Breakdown.ChildrenTotal, 1e-9)
		assert.InDelta(t, 875.0, result.Total, 1e-9)
		assert.InDelta(t, 218.75, result.PerPersonAvg, 1e-9)
		assert.Equal(t, 7, result.DurationNights)
		assert.Equal(t, pricing.MealPlanHalfBoard, result.MealPlan)

		wantChildren := []pricing.ChildPriceDetail{
			{Age: 5, Position: 1, OriginalPrice: 50, DiscountedPrice: 0, DiscountType: pricing.DiscountFree, RuleName: "0-6 free", IsFree: true},
			{Age: 10, Position: 2, OriginalPrice: 50, DiscountedPrice: 25, DiscountType: pricing.DiscountPercent, RuleName: "7-12 half price"},
		}
		diff := cmp.Diff(wantChildren, result.Breakdown.Children,
			cmpopts.IgnoreFields(pricing.ChildPriceDetail{}, "DiscountValue"))
		assert.Empty(t, diff)
	})

	t.Run("child without matching rule pays the full adult rate", func(t *testing.T) {
		b := builder.NewPackageRecordsBuilder().
			WithRule(builder.NewRuleBuilder().Ages(0, 6).Free().Build())
		rec, req := quoteFor(b, builder.MustParty(2, 5, 10))

		result := pricing.CalculateGroupPrice(rec, req)

		require.True(t, result.Success)
		// child(10): 50 × 7 = 350 at the adult rate, never free
		assert.InDelta(t, 350.0, result.Breakdown.ChildrenTotal, 1e-9)
		assert.InDelta(t, 1050.0, result.Total, 1e-9)

		unmatched := result.Breakdown.Children[1]
		assert.InDelta(t, 50.0, unmatched.DiscountedPrice, 1e-9)
		assert.False(t, unmatched.IsFree)
	})

	t.Run("children keep input order, not age order", func(t *testing.T) {
		b := builder.NewPackageRecordsBuilder().
			WithRule(builder.NewRuleBuilder().Ages(0, 17).AtPosition(1).Percent(50).Build())
		rec, req := quoteFor(b, builder.MustParty(2, 12, 4))

		result := pricing.CalculateGroupPrice(rec, req)

		require.True(t, result.Success)
		require.Len(t, result.Breakdown.Children, 2)
		// The 12-year-old came first, so the position-1 rule applies to it.
		assert.Equal(t, 12, result.Breakdown.Children[0].Age)
		assert.InDelta(t, 25.0, result.Breakdown.Children[0].DiscountedPrice, 1e-9)
		assert.Equal(t, 4, result.Breakdown.Children[1].Age)
		assert.InDelta(t, 50.0, result.Breakdown.Children[1].DiscountedPrice, 1e-9)
	})

	t.Run("date outside every interval fails without a Go error", func(t *testing.T) {
		rec := builder.NewPackageRecordsBuilder().Build()
		result := pricing.CalculateGroupPrice(rec, pricing.QuoteRequest{
			Date:   builder.Date(2026, 12, 24),
			Nights: 7,
			Party:  builder.MustParty(2),
		})

		assert.False(t, result.Success)
		assert.Contains(t, result.Error, "no price interval covers date 2026-12-24")
		assert.Zero(t, result.Total)
	})

	t.Run("unpublished meal plan price fails", func(t *testing.T) {
		b := builder.NewPackageRecordsBuilder()
		b.MealPlans = []pricing.MealPlan{pricing.MealPlanAllInclusive}
		rec, req := quoteFor(b, builder.MustParty(2))

		result := pricing.CalculateGroupPrice(rec, req)

		assert.False(t, result.Success)
		assert.Contains(t, result.Error, "no price published")
	})

	t.Run("zero stored price treated as unavailable", func(t *testing.T) {
		b := builder.NewPackageRecordsBuilder().WithNightlyPrice(pricing.MealPlanHalfBoard, 0)
		rec, req := quoteFor(b, builder.MustParty(2))

		result := pricing.CalculateGroupPrice(rec, req)
		assert.False(t, result.Success)
	})

	t.Run("requested meal plan not offered falls back to first offered", func(t *testing.T) {
		rec := builder.NewPackageRecordsBuilder().Build()
		fb := pricing.MealPlanFullBoard

		result := pricing.CalculateGroupPrice(rec, pricing.QuoteRequest{
			Date:     builder.Date(2026, 7, 10),
			Nights:   7,
			Party:    builder.MustParty(2),
			MealPlan: &fb,
		})

		require.True(t, result.Success)
		assert.Equal(t, pricing.MealPlanHalfBoard, result.MealPlan)
	})

	t.Run("unknown explicit room type fails", func(t *testing.T) {
		rec := builder.NewPackageRecordsBuilder().Build()
		unknown := uuid.New()

		result := pricing.CalculateGroupPrice(rec, pricing.QuoteRequest{
			Date:       builder.Date(2026, 7, 10),
			Nights:     7,
			Party:      builder.MustParty(2),
			RoomTypeID: &unknown,
		})

		assert.False(t, result.Success)
		assert.Contains(t, result.Error, "room type not found")
	})
}

func TestCalculateGroupPriceSupplements(t *testing.T) {
	seaView := pricing.Supplement{ID: uuid.New(), Code: "SEA", Name: "Sea view", Per: pricing.PerPersonNight, Amount: fptr(4)}
	parking := pricing.Supplement{ID: uuid.New(), Code: "PARK", Name: "Parking", Per: pricing.PerNight, Amount: fptr(5)}
	transfer := pricing.Supplement{ID: uuid.New(), Code: "TRF", Name: "Airport transfer", Per: pricing.PerStay, Amount: fptr(40)}
	mandatory := pricing.Supplement{ID: uuid.New(), Code: "TAX", Name: "Resort fee", Per: pricing.PerStay, Amount: fptr(10), Mandatory: true}

	b := builder.NewPackageRecordsBuilder().
		WithRule(builder.NewRuleBuilder().Ages(0, 6).Free().Build()).
		WithSupplement(seaView).
		WithSupplement(parking).
		WithSupplement(transfer).
		WithSupplement(mandatory)
	rec := b.Build()

	result := pricing.CalculateGroupPrice(rec, pricing.QuoteRequest{
		Date:          builder.Date(2026, 7, 10),
		Nights:        7,
		Party:         builder.MustParty(2, 3),
		SupplementIDs: []uuid.UUID{seaView.ID, parking.ID, transfer.ID, mandatory.ID},
	})

	require.True(t, result.Success, "unexpected failure: %s", result.Error)

	// sea view: 4 × 7 × (2 adults + 0 for the free child) = 56
	// parking: 5 × 7 = 35; transfer: 40 flat; the mandatory row is not selectable
	assert.InDelta(t, 131.0, result.Breakdown.SupplementsTotal, 1e-9)
	assert.InDelta(t,
		result.Breakdown.AdultsTotal+result.Breakdown.ChildrenTotal+result.Breakdown.SupplementsTotal,
		result.Total, 1e-9)
}

func TestCalculateGroupPriceStayPriced(t *testing.T) {
	b := builder.NewPackageRecordsBuilder().
		WithRule(builder.NewRuleBuilder().Ages(0, 12).Percent(50).Build())
	b.PriceType = pricing.PriceTypePerPersonPerStay
	b.WithNightlyPrice(pricing.MealPlanHalfBoard, 400) // whole stay per person
	rec := b.Build()

	result := pricing.CalculateGroupPrice(rec, pricing.QuoteRequest{
		Date:   builder.Date(2026, 7, 10),
		Nights: 7,
		Party:  builder.MustParty(2, 8),
	})

	require.True(t, result.Success)
	assert.InDelta(t, 800.0, result.Breakdown.AdultsTotal, 1e-9)
	assert.InDelta(t, 200.0, result.Breakdown.ChildrenTotal, 1e-9)
	assert.InDelta(t, 1000.0, result.Total, 1e-9)
	assert.Equal(t, pricing.PriceTypePerPersonPerStay, result.PriceType)
}

func TestCalculateGroupPriceDefaultNights(t *testing.T) {
	rec := builder.NewPackageRecordsBuilder().Build()

	result := pricing.CalculateGroupPrice(rec, pricing.QuoteRequest{
		Date:  builder.Date(2026, 7, 10),
		Party: builder.MustParty(2),
	})

	require.True(t, result.Success)
	assert.Equal(t, pricing.DefaultDurationNights, result.DurationNights)
	assert.InDelta(t, 700.0, result.Total, 1e-9) // 2 × 50 × 7
}

func TestCalculateGroupPriceDeterminism(t *testing.T) {
	b := builder.NewPackageRecordsBuilder().
		WithRule(builder.NewRuleBuilder().Ages(0, 6).Free().Build()).
		WithRule(builder.NewRuleBuilder().Ages(7, 12).Percent(50).Build())
	rec := b.Build()
	req := pricing.QuoteRequest{
		Date:   builder.Date(2026, 7, 10),
		Nights: 7,
		Party:  builder.MustParty(2, 5, 10),
	}

	first := pricing.CalculateGroupPrice(rec, req)
	second := pricing.CalculateGroupPrice(rec, req)

	assert.Empty(t, cmp.Diff(first, second))
}
