package model

import "time"

// SuggestedScore is the star score a moderator last suggested for a level.
// NoRate marks a level explicitly not recommended for rating; a decided
// level can never be moved back to NoRate.
type SuggestedScore string

const (
	ScoreNoRate SuggestedScore = "no_rate"
	ScoreRated  SuggestedScore = "rated"
	ScoreOne    SuggestedScore = "one"
	ScoreTwo    SuggestedScore = "two"
	ScoreThree  SuggestedScore = "three"
	ScoreFour   SuggestedScore = "four"
	ScoreFive   SuggestedScore = "five"
	ScoreSix    SuggestedScore = "six"
	ScoreSeven  SuggestedScore = "seven"
	ScoreEight  SuggestedScore = "eight"
	ScoreNine   SuggestedScore = "nine"
	ScoreTen    SuggestedScore = "ten"
)

var suggestedScoreStars = map[SuggestedScore]int{
	ScoreNoRate: 0,
	ScoreRated:  0,
	ScoreOne:    1,
	ScoreTwo:    2,
	ScoreThree:  3,
	ScoreFour:   4,
	ScoreFive:   5,
	ScoreSix:    6,
	ScoreSeven:  7,
	ScoreEight:  8,
	ScoreNine:   9,
	ScoreTen:    10,
}

func (s SuggestedScore) Valid() bool {
	_, ok := suggestedScoreStars[s]
	return ok
}

// Stars converts the score to the star count for the suggest endpoint.
func (s SuggestedScore) Stars() int {
	return suggestedScoreStars[s]
}

// SuggestedRating is the feature tier a moderator suggested.
type SuggestedRating string

const (
	SuggestedRate      SuggestedRating = "rate"
	SuggestedFeature   SuggestedRating = "feature"
	SuggestedEpic      SuggestedRating = "epic"
	SuggestedLegendary SuggestedRating = "legendary"
	SuggestedMythic    SuggestedRating = "mythic"
)

var suggestedRatingFeature = map[SuggestedRating]int{
	SuggestedRate:      0,
	SuggestedFeature:   1,
	SuggestedEpic:      2,
	SuggestedLegendary: 3,
	SuggestedMythic:    4,
}

func (r SuggestedRating) Valid() bool {
	_, ok := suggestedRatingFeature[r]
	return ok
}

// FeatureScore converts the rating to the feature value for the suggest
// endpoint.
func (r SuggestedRating) FeatureScore() int {
	return suggestedRatingFeature[r]
}

// ModerationDecision records what a moderator last suggested for a level.
type ModerationDecision struct {
	LevelID         uint64          `gorm:"primaryKey;autoIncrement:false" json:"level_id"`
	SuggestedScore  SuggestedScore  `gorm:"type:varchar(8);not null" json:"suggested_score"`
	SuggestedRating SuggestedRating `gorm:"type:varchar(12);not null" json:"suggested_rating"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (ModerationDecision) TableName() string {
	return "moderation_decisions"
}
