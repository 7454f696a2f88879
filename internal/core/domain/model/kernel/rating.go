package kernel

import "storefront/internal/pkg/errs"

const (
	MinRating = 1
	MaxRating = 5
)

// Rating is the 1..5 score a customer gives a delivered order. The zero value
// means "not rated yet", which is why Validate accepts it while NewRating
// does not.
//
// Example usage:
//
//	r, err := kernel.NewRating(4)
//	if err != nil {
//	    return err // errs.ErrValueIsOutOfRange
//	}
//	r.IsSet() // true
//
//	var unrated kernel.Rating
//	unrated.IsSet()    // false
//	unrated.Validate() // nil
type Rating int

// NewRating validates the score range.
//
// Parameters:
//   - value: the score picked by the customer
//
// Returns:
//   - the Rating when MinRating <= value <= MaxRating
//   - a ValueIsOutOfRangeError otherwise
func NewRating(value int) (Rating, error) {
	if value < MinRating || value > MaxRating {
		return 0, errs.NewValueIsOutOfRangeError("rating", value, MinRating, MaxRating)
	}
	return Rating(value), nil
}

func (r Rating) IsSet() bool {
	return r != 0
}

func (r Rating) Int() int {
	return int(r)
}

// Validate accepts the unset value and any score in range.
func (r Rating) Validate() error {
	if r == 0 {
		return nil
	}
	_, err := NewRating(int(r))
	return err
}
