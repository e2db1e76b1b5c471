package pricing

import "errors"

var (
	ErrNoAdults           = errors.New("party must include at least one adult")
	ErrChildAgeOutOfRange = errors.New("child age must be between 0 and 17")
)

const MaxChildAge = 17

// Party is the adults-plus-children composition of a booking request.
// Child position is 1-based and follows the order ages were supplied in,
// because position-scoped policy rules depend on it.
type Party struct {
	adults    int
	childAges []int
}

func NewParty(adults int, childAges []int) (Party, error) {
	if adults < 1 {
		return Party{}, ErrNoAdults
	}
	for _, age := range childAges {
		if age < 0 || age > MaxChildAge {
			return Party{}, ErrChildAgeOutOfRange
		}
	}
	ages := make([]int, len(childAges))
	copy(ages, childAges)
	return Party{adults: adults, childAges: ages}, nil
}

func (p Party) Adults() int {
	return p.adults
}

func (p Party) ChildAges() []int {
	ages := make([]int, len(p.childAges))
	copy(ages, p.childAges)
	return ages
}

func (p Party) ChildrenCount() int {
	return len(p.childAges)
}

func (p Party) Size() int {
	return p.adults + len(p.childAges)
}
