//go:build unit

package pricing_test

import (
	"context"
	"testing"

	"tripdesk/internal/domain/pricing"
	"tripdesk/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBatch(t *testing.T) {
	shared := pricing.QuoteRequest{
		Date:   builder.Date(2026, 7, 10),
		Nights: 7,
		Party:  builder.MustParty(2, 5),
	}

	t.Run("one failing package does not abort its siblings", func(t *testing.T) {
		priced := builder.NewPackageRecordsBuilder().
			WithRule(builder.NewRuleBuilder().Ages(0, 6).Free().Build())
		unpriced := builder.NewPackageRecordsBuilder()
		unpriced.PriceRows = nil // interval resolves but no price row

		items := []pricing.BatchItem{
			{PackageID: priced.PackageID, Records: priced.Build()},
			{PackageID: unpriced.PackageID, Records: unpriced.Build()},
		}

		results := pricing.CalculateBatch(context.Background(), items, shared, 0)

		require.Len(t, results, 2)
		assert.True(t, results[priced.PackageID].Success)
		assert.InDelta(t, 700.0, results[priced.PackageID].Total, 1e-9)

		failed := results[unpriced.PackageID]
		assert.False(t, failed.Success)
		assert.NotEmpty(t, failed.Error)
	})

	t.Run("results keyed by package id regardless of concurrency", func(t *testing.T) {
		var items []pricing.BatchItem
		for range 20 {
			b := builder.NewPackageRecordsBuilder()
			items = append(items, pricing.BatchItem{PackageID: b.PackageID, Records: b.Build()})
		}

		results := pricing.CalculateBatch(context.Background(), items, shared, 3)

		require.Len(t, results, len(items))
		for _, item := range items {
			r, ok := results[item.PackageID]
			require.True(t, ok)
			assert.True(t, r.Success)
		}
	})

	t.Run("per-package date override", func(t *testing.T) {
		b := builder.NewPackageRecordsBuilder()
		// Shared date misses this package's interval; the synthetic departure hits it.
		departure := builder.Date(2026, 6, 1)
		items := []pricing.BatchItem{{PackageID: b.PackageID, Records: b.Build(), DateOverride: &departure}}

		offSeason := shared
		offSeason.Date = builder.Date(2026, 12, 1)

		results := pricing.CalculateBatch(context.Background(), items, offSeason, 0)
		assert.True(t, results[b.PackageID].Success)
	})

	t.Run("empty batch", func(t *testing.T) {
		results := pricing.CalculateBatch(context.Background(), nil, shared, 0)
		assert.Empty(t, results)
	})
}
