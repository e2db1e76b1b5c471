package queries

import (
	"context"
	"log/slog"
	"time"

	"tripdesk/internal/domain/pricing"
	"tripdesk/internal/infra"
	"tripdesk/internal/pkg/errs"

	"github.com/google/uuid"
)

// PackageReadStore supplies the per-package record arrays the engine
// consumes. The data store itself is an external collaborator; the engine
// never fetches on its own.
type PackageReadStore interface {
	FindPackageRecords(ctx context.Context, packageID uuid.UUID) (*pricing.PackageRecords, error)
}

// DepartureKind tags where a listing departure date came from: a date the
// visitor actually picked, or one synthesized from the package's published
// intervals so the listing can still show a price.
type DepartureKind string

const (
	DepartureScheduled DepartureKind = "scheduled"
	DepartureSynthetic DepartureKind = "synthetic"
)

type Departure struct {
	Kind DepartureKind
	Date time.Time
}

type ListingRequest struct {
	Date   *time.Time
	Nights int
	Party  pricing.Party
}

type PricingQueries interface {
	QuotePackage(ctx context.Context, packageID uuid.UUID, req pricing.QuoteRequest) (pricing.PriceResult, error)
	QuoteListing(ctx context.Context, packageIDs []uuid.UUID, req ListingRequest) (map[uuid.UUID]pricing.PriceResult, error)
}

type pricingQueriesImpl struct {
	store            PackageReadStore
	defaultNights    int
	batchConcurrency int
}

func NewPricingQueries(store PackageReadStore, defaultNights, batchConcurrency int) PricingQueries {
	if defaultNights <= 0 {
		defaultNights = pricing.DefaultDurationNights
	}
	if batchConcurrency <= 0 {
		batchConcurrency = pricing.DefaultBatchConcurrency
	}
	return &pricingQueriesImpl{
		store:            store,
		defaultNights:    defaultNights,
		batchConcurrency: batchConcurrency,
	}
}

// QuotePackage prices a single package. Missing packages and unresolvable
// prices come back as failed results, not errors; only infrastructure
// failures surface as errors.
func (q *pricingQueriesImpl) QuotePackage(ctx context.Context, packageID uuid.UUID, req pricing.QuoteRequest) (pricing.PriceResult, error) {
	if req.Nights <= 0 {
		req.Nights = q.defaultNights
	}

	records, err := q.store.FindPackageRecords(ctx, packageID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return pricing.FailedResult("package not found"), nil
		}
		return pricing.PriceResult{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return pricing.CalculateGroupPrice(*records, req), nil
}

// QuoteListing prices many packages for one shared party. Packages whose
// records cannot be fetched get a failed entry; the sweep keeps going.
func (q *pricingQueriesImpl) QuoteListing(ctx context.Context, packageIDs []uuid.UUID, req ListingRequest) (map[uuid.UUID]pricing.PriceResult, error) {
	if len(packageIDs) == 0 {
		return nil, errs.ErrEmptyPackageList
	}

	nights := req.Nights
	if nights <= 0 {
		nights = q.defaultNights
	}

	results := make(map[uuid.UUID]pricing.PriceResult, len(packageIDs))
	items := make([]pricing.BatchItem, 0, len(packageIDs))

	for _, id := range packageIDs {
		records, err := q.store.FindPackageRecords(ctx, id)
		if err != nil {
			if !infra.IsKind(err, infra.KindNotFound) {
				slog.Warn("listing quote: package records fetch failed",
					"package_id", id, "error", err)
			}
			results[id] = pricing.FailedResult("package records unavailable")
			continue
		}

		departure, ok := departureFor(records, req.Date)
		if !ok {
			results[id] = pricing.FailedResult("no departures published")
			continue
		}

		item := pricing.BatchItem{PackageID: id, Records: *records}
		if departure.Kind == DepartureSynthetic {
			d := departure.Date
			item.DateOverride = &d
		}
		items = append(items, item)
	}

	shared := pricing.QuoteRequest{
		Nights: nights,
		Party:  req.Party,
	}
	if req.Date != nil {
		shared.Date = *req.Date
	}

	for id, result := range pricing.CalculateBatch(ctx, items, shared, q.batchConcurrency) {
		results[id] = result
	}
	return results, nil
}

// departureFor resolves the date a listing quote runs against. A visitor's
// chosen date is a scheduled departure; without one, the first published
// interval's start stands in as a synthetic departure.
func departureFor(records *pricing.PackageRecords, requested *time.Time) (Departure, bool) {
	if requested != nil {
		return Departure{Kind: DepartureScheduled, Date: *requested}, true
	}
	if len(records.Intervals) == 0 {
		return Departure{}, false
	}
	return Departure{Kind: DepartureSynthetic, Date: records.Intervals[0].StartDate}, true
}
