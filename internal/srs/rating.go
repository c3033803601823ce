package srs

import "fmt"

// Rating represents the user's assessment of recall quality.
// The box model collapses ratings into forgotten (Again) and
// remembered (everything else).
type Rating int

const (
	RatingAgain Rating = iota + 1
	RatingHard
	RatingGood
	RatingEasy
)

var ratingNames = map[Rating]string{
	RatingAgain: "again",
	RatingHard:  "hard",
	RatingGood:  "good",
	RatingEasy:  "easy",
}

var ratingsByName = map[string]Rating{
	"again": RatingAgain,
	"hard":  RatingHard,
	"good":  RatingGood,
	"easy":  RatingEasy,
}

// Valid reports whether the rating is one of the four known values.
func (r Rating) Valid() bool {
	_, ok := ratingNames[r]
	return ok
}

// Remembered reports whether the rating counts as a successful recall.
func (r Rating) Remembered() bool {
	return r.Valid() && r != RatingAgain
}

func (r Rating) String() string {
	if name, ok := ratingNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Rating(%d)", int(r))
}

// ParseRating converts a rating name into a Rating.
func ParseRating(name string) (Rating, error) {
	r, ok := ratingsByName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRating, name)
	}
	return r, nil
}
