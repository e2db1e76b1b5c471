package readstore

import (
	"context"

	"tripdesk/internal/domain/pricing"
	"tripdesk/internal/infra"
	"tripdesk/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PackageReadStore assembles the record arrays for one package: intervals,
// price matrix rows, room types, child policy rules, and the selectable
// supplements. Read-only; the engine discards everything after the
// calculation.
type PackageReadStore struct {
	pool *pgxpool.Pool
}

func NewPackageReadStore(pool *pgxpool.Pool) *PackageReadStore {
	return &PackageReadStore{pool: pool}
}

func (r *PackageReadStore) FindPackageRecords(ctx context.Context, packageID uuid.UUID) (*pricing.PackageRecords, error) {
	records := &pricing.PackageRecords{PackageID: packageID}

	var priceType pgtype.Text
	var mealPlans []string
	err := r.pool.QueryRow(ctx,
		`SELECT price_type, meal_plans FROM packages WHERE id = $1`,
		packageID,
	).Scan(&priceType, &mealPlans)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("package not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load package", err)
	}

	if priceType.Valid {
		records.PriceType = priceType.String
	}
	for _, code := range mealPlans {
		plan, err := pricing.ParseMealPlan(code)
		if err != nil {
			continue // tolerate unknown codes from legacy imports
		}
		records.MealPlans = append(records.MealPlans, plan)
	}

	if records.Intervals, err = r.loadIntervals(ctx, packageID); err != nil {
		return nil, err
	}
	if records.RoomTypes, err = r.loadRoomTypes(ctx, packageID); err != nil {
		return nil, err
	}
	if records.PriceRows, err = r.loadPriceRows(ctx, packageID); err != nil {
		return nil, err
	}
	if records.PolicyRules, err = r.loadPolicyRules(ctx, packageID); err != nil {
		return nil, err
	}
	if records.Supplements, err = r.loadSupplements(ctx, packageID); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *PackageReadStore) loadIntervals(ctx context.Context, packageID uuid.UUID) ([]pricing.PriceInterval, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, start_date, end_date
		   FROM price_intervals
		  WHERE package_id = $1
		  ORDER BY start_date`,
		packageID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load price intervals", err)
	}
	defer rows.Close()

	var intervals []pricing.PriceInterval
	for rows.Next() {
		var iv pricing.PriceInterval
		var name pgtype.Text
		var start, end pgtype.Date
		if err := rows.Scan(&iv.ID, &name, &start, &end); err != nil {
			return nil, infra.WrapRepoErr("failed to scan price interval", err)
		}
		iv.Name = pgconv.StringPtrFromPgtype(name)
		iv.StartDate = pgconv.DateFromPgtype(start)
		iv.EndDate = pgconv.DateFromPgtype(end)
		intervals = append(intervals, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read price intervals", err)
	}
	return intervals, nil
}

func (r *PackageReadStore) loadRoomTypes(ctx context.Context, packageID uuid.UUID) ([]pricing.RoomType, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, code, name, max_persons, min_adults, min_occupancy, single_surcharge_percent
		   FROM room_types
		  WHERE package_id = $1
		  ORDER BY max_persons`,
		packageID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load room types", err)
	}
	defer rows.Close()

	var roomTypes []pricing.RoomType
	for rows.Next() {
		var rt pricing.RoomType
		var surcharge pgtype.Numeric
		if err := rows.Scan(&rt.ID, &rt.Code, &rt.Name, &rt.MaxPersons, &rt.MinAdults, &rt.MinOccupancy, &surcharge); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room type", err)
		}
		if rt.SingleSurchargePercent, err = pgconv.Float64PtrFromNumeric(surcharge); err != nil {
			return nil, infra.WrapRepoErr("invalid single surcharge value", err)
		}
		roomTypes = append(roomTypes, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read room types", err)
	}
	return roomTypes, nil
}

func (r *PackageReadStore) loadPriceRows(ctx context.Context, packageID uuid.UUID) ([]pricing.HotelPriceRow, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, interval_id, room_type_id, price_nd, price_bb, price_hb, price_fb, price_ai
		   FROM hotel_prices
		  WHERE package_id = $1`,
		packageID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load hotel prices", err)
	}
	defer rows.Close()

	var priceRows []pricing.HotelPriceRow
	for rows.Next() {
		var row pricing.HotelPriceRow
		var nd, bb, hb, fb, ai pgtype.Numeric
		if err := rows.Scan(&row.ID, &row.IntervalID, &row.RoomTypeID, &nd, &bb, &hb, &fb, &ai); err != nil {
			return nil, infra.WrapRepoErr("failed to scan hotel price row", err)
		}
		if row.PriceND, err = pgconv.Float64PtrFromNumeric(nd); err != nil {
			return nil, infra.WrapRepoErr("invalid price value", err)
		}
		if row.PriceBB, err = pgconv.Float64PtrFromNumeric(bb); err != nil {
			return nil, infra.WrapRepoErr("invalid price value", err)
		}
		if row.PriceHB, err = pgconv.Float64PtrFromNumeric(hb); err != nil {
			return nil, infra.WrapRepoErr("invalid price value", err)
		}
		if row.PriceFB, err = pgconv.Float64PtrFromNumeric(fb); err != nil {
			return nil, infra.WrapRepoErr("invalid price value", err)
		}
		if row.PriceAI, err = pgconv.Float64PtrFromNumeric(ai); err != nil {
			return nil, infra.WrapRepoErr("invalid price value", err)
		}
		priceRows = append(priceRows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read hotel prices", err)
	}
	return priceRows, nil
}

func (r *PackageReadStore) loadPolicyRules(ctx context.Context, packageID uuid.UUID) ([]pricing.ChildPolicyRule, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, rule_name, priority, min_adults, max_adults, child_position,
		        room_type_codes, bed_type, age_from, age_to, discount_type, discount_value
		   FROM children_policy_rules
		  WHERE package_id = $1
		  ORDER BY priority DESC`,
		packageID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load child policy rules", err)
	}
	defer rows.Close()

	var rules []pricing.ChildPolicyRule
	for rows.Next() {
		var rule pricing.ChildPolicyRule
		var ruleName, bedType pgtype.Text
		var minAdults, maxAdults, childPosition pgtype.Int4
		var discountType string
		var discountValue pgtype.Numeric
		if err := rows.Scan(
			&rule.ID, &ruleName, &rule.Priority, &minAdults, &maxAdults, &childPosition,
			&rule.RoomTypeCodes, &bedType, &rule.AgeFrom, &rule.AgeTo, &discountType, &discountValue,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan child policy rule", err)
		}
		rule.RuleName = pgconv.StringPtrFromPgtype(ruleName)
		rule.BedType = pgconv.StringPtrFromPgtype(bedType)
		rule.MinAdults = pgconv.IntPtrFromPgtype(minAdults)
		rule.MaxAdults = pgconv.IntPtrFromPgtype(maxAdults)
		rule.ChildPosition = pgconv.IntPtrFromPgtype(childPosition)
		rule.DiscountType = pricing.DiscountType(discountType)
		if rule.DiscountValue, err = pgconv.Float64PtrFromNumeric(discountValue); err != nil {
			return nil, infra.WrapRepoErr("invalid discount value", err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read child policy rules", err)
	}
	return rules, nil
}

func (r *PackageReadStore) loadSupplements(ctx context.Context, packageID uuid.UUID) ([]pricing.Supplement, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, code, name, amount, percent, per, mandatory
		   FROM package_supplements
		  WHERE package_id = $1 AND mandatory = false
		  ORDER BY name`,
		packageID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load supplements", err)
	}
	defer rows.Close()

	var supplements []pricing.Supplement
	for rows.Next() {
		var s pricing.Supplement
		var amount, percent pgtype.Numeric
		var per string
		if err := rows.Scan(&s.ID, &s.Code, &s.Name, &amount, &percent, &per, &s.Mandatory); err != nil {
			return nil, infra.WrapRepoErr("failed to scan supplement", err)
		}
		if s.Amount, err = pgconv.Float64PtrFromNumeric(amount); err != nil {
			return nil, infra.WrapRepoErr("invalid supplement amount", err)
		}
		if s.Percent, err = pgconv.Float64PtrFromNumeric(percent); err != nil {
			return nil, infra.WrapRepoErr("invalid supplement percent", err)
		}
		s.Per = pricing.SupplementUnit(per)
		supplements = append(supplements, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read supplements", err)
	}
	return supplements, nil
}
