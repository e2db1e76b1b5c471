package pricing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const DefaultBatchConcurrency = 5

// BatchItem pairs a package with its own record set. DateOverride lets
// listing flows substitute a per-package departure date while the rest of
// the request is shared.
type BatchItem struct {
	PackageID    uuid.UUID
	Records      PackageRecords
	DateOverride *time.Time
}

// CalculateBatch prices many packages for one shared request. Each item is
// priced independently; a package with no resolvable price contributes a
// failed entry without aborting its siblings. Items run concurrently up to
// the given limit and the returned map is keyed by package id, so callers
// never depend on completion order.
func CalculateBatch(ctx context.Context, items []BatchItem, shared QuoteRequest, concurrency int) map[uuid.UUID]PriceResult {
	if concurrency <= 0 {
		concurrency = DefaultBatchConcurrency
	}

	resultSlots := make([]PriceResult, len(items))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				resultSlots[i] = FailedResult("calculation cancelled")
				return nil
			}
			req := shared
			if item.DateOverride != nil {
				req.Date = *item.DateOverride
			}
			resultSlots[i] = CalculateGroupPrice(item.Records, req)
			return nil
		})
	}
	// Workers never return errors; failures live in their result slots.
	_ = g.Wait()

	results := make(map[uuid.UUID]PriceResult, len(items))
	for i, item := range items {
		results[item.PackageID] = resultSlots[i]
	}
	return results
}
