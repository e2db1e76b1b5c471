package pricing

import (
	"errors"
	"strings"
)

var ErrUnknownMealPlan = errors.New("unknown meal plan code")

// MealPlan is the board basis a nightly price is published for.
type MealPlan string

const (
	MealPlanNone         MealPlan = "ND" // no meals
	MealPlanBreakfast    MealPlan = "BB"
	MealPlanHalfBoard    MealPlan = "HB"
	MealPlanFullBoard    MealPlan = "FB"
	MealPlanAllInclusive MealPlan = "AI"
)

// ParseMealPlan accepts codes in either case; imported data uses lowercase.
func ParseMealPlan(code string) (MealPlan, error) {
	plan := MealPlan(strings.ToUpper(code))
	switch plan {
	case MealPlanNone, MealPlanBreakfast, MealPlanHalfBoard, MealPlanFullBoard, MealPlanAllInclusive:
		return plan, nil
	}
	return "", ErrUnknownMealPlan
}

func (m MealPlan) String() string {
	return string(m)
}
