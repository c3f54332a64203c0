package model

import "fmt"

// RequestRating is the difficulty a requester believes their level deserves.
// Stored as-is; the Geometry Dash wire codec lives in Stars().
type RequestRating string

const (
	RatingOne   RequestRating = "one"
	RatingTwo   RequestRating = "two"
	RatingThree RequestRating = "three"
	RatingFour  RequestRating = "four"
	RatingFive  RequestRating = "five"
	RatingSix   RequestRating = "six"
	RatingSeven RequestRating = "seven"
	RatingEight RequestRating = "eight"
	RatingNine  RequestRating = "nine"
	RatingTen   RequestRating = "ten"
)

var requestRatingStars = map[RequestRating]int{
	RatingOne:   1,
	RatingTwo:   2,
	RatingThree: 3,
	RatingFour:  4,
	RatingFive:  5,
	RatingSix:   6,
	RatingSeven: 7,
	RatingEight: 8,
	RatingNine:  9,
	RatingTen:   10,
}

func (r RequestRating) Valid() bool {
	_, ok := requestRatingStars[r]
	return ok
}

// Stars converts the rating to the star count the GD servers expect.
func (r RequestRating) Stars() int {
	return requestRatingStars[r]
}

// LevelLength mirrors the length classification returned by the GD servers.
type LevelLength string

const (
	LengthTiny       LevelLength = "tiny"
	LengthShort      LevelLength = "short"
	LengthMedium     LevelLength = "medium"
	LengthLong       LevelLength = "long"
	LengthExtraLong  LevelLength = "extra_long"
	LengthPlatformer LevelLength = "platformer"
)

// LevelLengthFromGD decodes the numeric length field of a getGJLevels payload.
func LevelLengthFromGD(raw int) (LevelLength, error) {
	switch raw {
	case 0:
		return LengthTiny, nil
	case 1:
		return LengthShort, nil
	case 2:
		return LengthMedium, nil
	case 3:
		return LengthLong, nil
	case 4:
		return LengthExtraLong, nil
	case 5:
		return LengthPlatformer, nil
	}
	return "", fmt.Errorf("unknown gd level length %d", raw)
}

// GDLevel is the canonical metadata fetched from the GD servers for a level.
type GDLevel struct {
	LevelID uint64      `json:"level_id"`
	Name    string      `json:"name"`
	Author  string      `json:"author"`
	Length  LevelLength `json:"length"`
}
