package domain

// Rating is a book rating given by a user. Valid ratings are the
// integers from RatingMin to RatingMax inclusive.
//
// An unset rating ("read but not rated") is represented as a nil
// *Rating wherever a rating is optional. A rating of 0 is a real
// rating and is always recorded; unset and 0 are distinct values.
type Rating int

// Bounds of the valid rating range.
const (
	RatingMin Rating = 0
	RatingMax Rating = 4
)

// Valid reports whether the rating is within the valid range.
func (r Rating) Valid() bool {
	return r >= RatingMin && r <= RatingMax
}

// NewRating returns a pointer to the given rating value.
// It is a convenience for callers of APIs that take optional ratings.
func NewRating(v int) *Rating {
	r := Rating(v)
	return &r
}
