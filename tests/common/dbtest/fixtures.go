//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestPackage records the ids a seeded package was created with so tests can
// address its rooms, intervals and supplements directly.
type TestPackage struct {
	PackageID    uuid.UUID
	IntervalID   uuid.UUID
	DoubleRoomID uuid.UUID
	FamilyRoomID uuid.UUID
	SupplementID uuid.UUID
}

// CreateTestPackage seeds one fully priced summer package: a June-August
// interval, a double and a family room, an HB/AI price matrix, a FREE rule
// for ages 0-6, a 50 PERCENT rule for ages 7-11, and one optional transfer
// supplement billed per person per stay.
func CreateTestPackage(t *testing.T, db DBLike, name string) TestPackage {
	t.Helper()
	ctx := context.Background()

	tp := TestPackage{
		PackageID:    uuid.New(),
		IntervalID:   uuid.New(),
		DoubleRoomID: uuid.New(),
		FamilyRoomID: uuid.New(),
		SupplementID: uuid.New(),
	}

	_, err := db.Exec(ctx,
		`INSERT INTO packages (id, name, price_type, meal_plans)
		 VALUES ($1, $2, 'per_person_per_night', '{hb,ai}')`,
		tp.PackageID, name)
	require.NoError(t, err)

	_, err = db.Exec(ctx,
		`INSERT INTO price_intervals (id, package_id, name, start_date, end_date)
		 VALUES ($1, $2, 'Summer season', '2026-06-01', '2026-08-31')`,
		tp.IntervalID, tp.PackageID)
	require.NoError(t, err)

	_, err = db.Exec(ctx,
		`INSERT INTO room_types (id, package_id, code, name, max_persons)
		 VALUES ($1, $3, 'DBL', 'Double room', 2),
		        ($2, $3, 'FAM', 'Family room', 5)`,
		tp.DoubleRoomID, tp.FamilyRoomID, tp.PackageID)
	require.NoError(t, err)

	_, err = db.Exec(ctx,
		`INSERT INTO hotel_prices (package_id, interval_id, room_type_id, price_hb, price_ai)
		 VALUES ($1, $2, $3, 50, 65),
		        ($1, $2, $4, 50, 65)`,
		tp.PackageID, tp.IntervalID, tp.DoubleRoomID, tp.FamilyRoomID)
	require.NoError(t, err)

	_, err = db.Exec(ctx,
		`INSERT INTO children_policy_rules
		   (package_id, rule_name, priority, age_from, age_to, discount_type, discount_value)
		 VALUES ($1, 'Infant free', 10, 0, 6, 'FREE', NULL),
		        ($1, 'Child half price', 5, 7, 11, 'PERCENT', 50)`,
		tp.PackageID)
	require.NoError(t, err)

	_, err = db.Exec(ctx,
		`INSERT INTO package_supplements (id, package_id, code, name, amount, per, mandatory)
		 VALUES ($1, $2, 'TRANSFER', 'Airport transfer', 25, 'person_stay', false)`,
		tp.SupplementID, tp.PackageID)
	require.NoError(t, err)

	return tp
}

// inserts basic reference data needed by tests
func SeedReferenceData(_ *pgxpool.Pool) error {
	// Pricing data is seeded per test via CreateTestPackage; there is no
	// shared reference data.
	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
