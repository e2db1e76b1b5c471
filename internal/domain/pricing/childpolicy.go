package pricing

import "github.com/google/uuid"

type DiscountType string

const (
	DiscountFree    DiscountType = "FREE"
	DiscountPercent DiscountType = "PERCENT"
	DiscountFixed   DiscountType = "FIXED"
)

// ChildPolicyRule is an age/position/room-scoped discount definition for
// child travelers. Optional bounds are nil when a rule does not restrict
// on them. Priority is an input hint only; ranking between applicable
// rules is computed by CompareRules.
type ChildPolicyRule struct {
	ID            uuid.UUID
	RuleName      *string
	Priority      int
	MinAdults     *int
	MaxAdults     *int
	ChildPosition *int
	RoomTypeCodes []string
	BedType       *string
	AgeFrom       int
	AgeTo         int
	DiscountType  DiscountType
	DiscountValue *float64
}

// AppliesTo reports whether the rule covers a child of the given age at the
// given 1-based position, traveling with adults in the given room.
func (r ChildPolicyRule) AppliesTo(age, position, adults int, roomCode string) bool {
	if age < r.AgeFrom || age > r.AgeTo {
		return false
	}
	if r.MinAdults != nil && adults < *r.MinAdults {
		return false
	}
	if r.MaxAdults != nil && adults > *r.MaxAdults {
		return false
	}
	if r.ChildPosition != nil && position != *r.ChildPosition {
		return false
	}
	if len(r.RoomTypeCodes) > 0 {
		found := false
		for _, code := range r.RoomTypeCodes {
			if code == roomCode {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// CompareRules is the total order between two applicable rules. It returns a
// negative value when a outranks b, positive when b outranks a, and zero for
// equally ranked rules.
//
//	| rank | rule                                                   |
//	|------|--------------------------------------------------------|
//	| 1    | FREE outranks any non-FREE rule                        |
//	| 2    | between PERCENT rules, larger discount_value wins      |
//	| 3    | PERCENT outranks FIXED, regardless of resulting price  |
//	| 4    | between FIXED rules, smaller discount_value wins       |
func CompareRules(a, b ChildPolicyRule) int {
	if a.DiscountType == DiscountFree && b.DiscountType != DiscountFree {
		return -1
	}
	if b.DiscountType == DiscountFree && a.DiscountType != DiscountFree {
		return 1
	}
	if a.DiscountType == DiscountPercent && b.DiscountType == DiscountPercent {
		switch {
		case a.discountValue() > b.discountValue():
			return -1
		case a.discountValue() < b.discountValue():
			return 1
		default:
			return 0
		}
	}
	if a.DiscountType == DiscountPercent && b.DiscountType == DiscountFixed {
		return -1
	}
	if b.DiscountType == DiscountPercent && a.DiscountType == DiscountFixed {
		return 1
	}
	if a.DiscountType == DiscountFixed && b.DiscountType == DiscountFixed {
		switch {
		case a.discountValue() < b.discountValue():
			return -1
		case a.discountValue() > b.discountValue():
			return 1
		default:
			return 0
		}
	}
	return 0
}

// ResolveChildRule filters the rule set down to applicable candidates and
// returns the best-ranked one. Ties keep the earlier rule in the slice, so
// resolution stays deterministic for identical inputs.
func ResolveChildRule(rules []ChildPolicyRule, age, position, adults int, roomCode string) (ChildPolicyRule, bool) {
	var best ChildPolicyRule
	found := false
	for _, rule := range rules {
		if !rule.AppliesTo(age, position, adults, roomCode) {
			continue
		}
		if !found || CompareRules(rule, best) < 0 {
			best = rule
			found = true
		}
	}
	return best, found
}

// NightlyPrice computes the child's per-night price from the adult base.
// FIXED is an absolute flat price, not an amount off the base; this is
// deliberately asymmetric with supplement amounts, which are additive.
func (r ChildPolicyRule) NightlyPrice(base float64) float64 {
	switch r.DiscountType {
	case DiscountFree:
		return 0
	case DiscountPercent:
		return base * (1 - r.discountValue()/100)
	case DiscountFixed:
		if r.DiscountValue == nil {
			return base
		}
		return *r.DiscountValue
	default:
		return base
	}
}

// Multiplier is the child's share of a per-person supplement: 0 for FREE,
// the discounted fraction for PERCENT, full share otherwise.
func (r ChildPolicyRule) Multiplier() float64 {
	switch r.DiscountType {
	case DiscountFree:
		return 0
	case DiscountPercent:
		return 1 - r.discountValue()/100
	default:
		return 1
	}
}

func (r ChildPolicyRule) Name(position int) string {
	if r.RuleName != nil && *r.RuleName != "" {
		return *r.RuleName
	}
	return defaultChildRuleName(position)
}

func (r ChildPolicyRule) discountValue() float64 {
	if r.DiscountValue == nil {
		return 0
	}
	return *r.DiscountValue
}
