//go:build unit

package pricing_test

import (
	"testing"

	"tripdesk/internal/domain/pricing"
	"tripdesk/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChildPolicyRuleAppliesTo(t *testing.T) {
	testCases := []struct {
		name     string
		rule     pricing.ChildPolicyRule
		age      int
		position int
		adults   int
		roomCode string
		want     bool
	}{
		{
			name: "age inside range",
			rule: builder.NewRuleBuilder().Ages(2, 11).Build(),
			age:  7, position: 1, adults: 2, roomCode: "DBL",
			want: true,
		},
		{
			name: "age range bounds inclusive",
			rule: builder.NewRuleBuilder().Ages(2, 11).Build(),
			age:  11, position: 1, adults: 2, roomCode: "DBL",
			want: true,
		},
		{
			name: "age above range",
			rule: builder.NewRuleBuilder().Ages(2, 11).Build(),
			age:  12, position: 1, adults: 2, roomCode: "DBL",
			want: false,
		},
		{
			name: "below min adults",
			rule: builder.NewRuleBuilder().Ages(0, 17).AdultsBetween(2, 4).Build(),
			age:  5, position: 1, adults: 1, roomCode: "DBL",
			want: false,
		},
		{
			name: "above max adults",
			rule: builder.NewRuleBuilder().Ages(0, 17).AdultsBetween(2, 2).Build(),
			age:  5, position: 1, adults: 3, roomCode: "DBL",
			want: false,
		},
		{
			name: "position mismatch",
			rule: builder.NewRuleBuilder().Ages(0, 17).AtPosition(2).Build(),
			age:  5, position: 1, adults: 2, roomCode: "DBL",
			want: false,
		},
		{
			name: "position match",
			rule: builder.NewRuleBuilder().Ages(0, 17).AtPosition(2).Build(),
			age:  5, position: 2, adults: 2, roomCode: "DBL",
			want: true,
		},
		{
			name: "room code not in restriction list",
			rule: builder.NewRuleBuilder().Ages(0, 17).InRooms("TRP", "APP").Build(),
			age:  5, position: 1, adults: 2, roomCode: "DBL",
			want: false,
		},
		{
			name: "room code in restriction list",
			rule: builder.NewRuleBuilder().Ages(0, 17).InRooms("TRP", "DBL").Build(),
			age:  5, position: 1, adults: 2, roomCode: "DBL",
			want: true,
		},
		{
			name: "empty room restriction applies to any room",
			rule: builder.NewRuleBuilder().Ages(0, 17).Build(),
			age:  5, position: 1, adults: 2, roomCode: "SGL",
			want: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.rule.AppliesTo(tc.age, tc.position, tc.adults, tc.roomCode)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCompareRules(t *testing.T) {
	free := builder.NewRuleBuilder().Free().Build()
	percent50 := builder.NewRuleBuilder().Percent(50).Build()
	percent30 := builder.NewRuleBuilder().Percent(30).Build()
	fixed20 := builder.NewRuleBuilder().Fixed(20).Build()
	fixed35 := builder.NewRuleBuilder().Fixed(35).Build()

	testCases := []struct {
		name string
		a, b pricing.ChildPolicyRule
		want int
	}{
		{name: "FREE outranks PERCENT", a: free, b: percent50, want: -1},
		{name: "FREE outranks FIXED", a: free, b: fixed20, want: -1},
		{name: "PERCENT loses to FREE", a: percent50, b: free, want: 1},
		{name: "larger PERCENT wins", a: percent50, b: percent30, want: -1},
		{name: "smaller PERCENT loses", a: percent30, b: percent50, want: 1},
		{name: "equal PERCENT ties", a: percent50, b: percent50, want: 0},
		{name: "PERCENT outranks FIXED regardless of resulting price", a: percent30, b: fixed20, want: -1},
		{name: "FIXED loses to PERCENT", a: fixed20, b: percent30, want: 1},
		{name: "cheaper FIXED wins", a: fixed20, b: fixed35, want: -1},
		{name: "pricier FIXED loses", a: fixed35, b: fixed20, want: 1},
		{name: "equal FIXED ties", a: fixed20, b: fixed20, want: 0},
		{name: "FREE vs FREE ties", a: free, b: free, want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pricing.CompareRules(tc.a, tc.b))
		})
	}
}

func TestResolveChildRule(t *testing.T) {
	t.Run("no applicable rule", func(t *testing.T) {
		rules := []pricing.ChildPolicyRule{builder.NewRuleBuilder().Ages(0, 6).Build()}
		_, found := pricing.ResolveChildRule(rules, 10, 1, 2, "DBL")
		assert.False(t, found)
	})

	t.Run("FREE selected over PERCENT", func(t *testing.T) {
		free := builder.NewRuleBuilder().Ages(0, 12).Free().Named("first child free").Build()
		percent := builder.NewRuleBuilder().Ages(0, 12).Percent(50).Build()

		got, found := pricing.ResolveChildRule([]pricing.ChildPolicyRule{percent, free}, 5, 1, 2, "DBL")
		require.True(t, found)
		assert.Equal(t, free.ID, got.ID)
	})

	t.Run("PERCENT selected over FIXED even when FIXED is cheaper", func(t *testing.T) {
		// 10% off a 100 base leaves 90/night; the FIXED rule would be 30/night.
		percent := builder.NewRuleBuilder().Ages(0, 12).Percent(10).Build()
		fixed := builder.NewRuleBuilder().Ages(0, 12).Fixed(30).Build()

		got, found := pricing.ResolveChildRule([]pricing.ChildPolicyRule{fixed, percent}, 5, 1, 2, "DBL")
		require.True(t, found)
		assert.Equal(t, percent.ID, got.ID)
	})

	t.Run("ties keep the earlier rule", func(t *testing.T) {
		first := builder.NewRuleBuilder().Ages(0, 12).Percent(50).Build()
		second := builder.NewRuleBuilder().Ages(0, 12).Percent(50).Build()

		got, found := pricing.ResolveChildRule([]pricing.ChildPolicyRule{first, second}, 5, 1, 2, "DBL")
		require.True(t, found)
		assert.Equal(t, first.ID, got.ID)
	})

	t.Run("inapplicable rules are ignored before ranking", func(t *testing.T) {
		freeButWrongRoom := builder.NewRuleBuilder().Ages(0, 12).Free().InRooms("APP").Build()
		fixed := builder.NewRuleBuilder().Ages(0, 12).Fixed(30).Build()

		got, found := pricing.ResolveChildRule([]pricing.ChildPolicyRule{freeButWrongRoom, fixed}, 5, 1, 2, "DBL")
		require.True(t, found)
		assert.Equal(t, fixed.ID, got.ID)
	})
}

func TestChildPolicyRuleNightlyPrice(t *testing.T) {
	testCases := []struct {
		name string
		rule pricing.ChildPolicyRule
		base float64
		want float64
	}{
		{name: "FREE is zero", rule: builder.NewRuleBuilder().Free().Build(), base: 100, want: 0},
		{name: "PERCENT halves the base", rule: builder.NewRuleBuilder().Percent(50).Build(), base: 100, want: 50},
		{name: "FIXED is an absolute flat price, not an amount off", rule: builder.NewRuleBuilder().Fixed(30).Build(), base: 100, want: 30},
		{name: "FIXED ignores the base entirely", rule: builder.NewRuleBuilder().Fixed(30).Build(), base: 25, want: 30},
		{name: "PERCENT without a value keeps the base", rule: pricing.ChildPolicyRule{DiscountType: pricing.DiscountPercent}, base: 100, want: 100},
		{name: "FIXED without a value keeps the base", rule: pricing.ChildPolicyRule{DiscountType: pricing.DiscountFixed}, base: 100, want: 100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, tc.rule.NightlyPrice(tc.base), 1e-9)
		})
	}
}

func TestChildPolicyRuleMultiplier(t *testing.T) {
	assert.Equal(t, 0.0, builder.NewRuleBuilder().Free().Build().Multiplier())
	assert.InDelta(t, 0.5, builder.NewRuleBuilder().Percent(50).Build().Multiplier(), 1e-9)
	assert.Equal(t, 1.0, builder.NewRuleBuilder().Fixed(30).Build().Multiplier())
}
