package model

import "testing"

func TestRequestRatingStars(t *testing.T) {
	if RatingOne.Stars() != 1 || RatingTen.Stars() != 10 {
		t.Fatal("rating star conversion broken")
	}
	if RequestRating("eleven").Valid() {
		t.Fatal("unknown rating must be invalid")
	}
}

func TestSuggestedScoreStars(t *testing.T) {
	if ScoreNoRate.Stars() != 0 {
		t.Fatal("no_rate must map to zero stars")
	}
	if ScoreRated.Stars() != 0 {
		t.Fatal("rated must map to zero stars")
	}
	if ScoreSeven.Stars() != 7 {
		t.Fatal("score star conversion broken")
	}
}

func TestSuggestedRatingFeatureScore(t *testing.T) {
	expected := map[SuggestedRating]int{
		SuggestedRate:      0,
		SuggestedFeature:   1,
		SuggestedEpic:      2,
		SuggestedLegendary: 3,
		SuggestedMythic:    4,
	}
	for rating, score := range expected {
		if rating.FeatureScore() != score {
			t.Fatalf("rating %s: expected feature %d, got %d", rating, score, rating.FeatureScore())
		}
	}
}

func TestLevelLengthFromGD(t *testing.T) {
	length, err := LevelLengthFromGD(5)
	if err != nil || length != LengthPlatformer {
		t.Fatalf("expected platformer, got %s (%v)", length, err)
	}
	if _, err := LevelLengthFromGD(6); err == nil {
		t.Fatal("expected error for unknown length code")
	}
}

func TestApplyGDLevel(t *testing.T) {
	request := &LevelRequest{LevelID: 1}
	request.ApplyGDLevel(&GDLevel{LevelID: 1, Name: "Amethyst", Author: "Creator", Length: LengthMedium})

	if request.LevelName == nil || *request.LevelName != "Amethyst" {
		t.Fatal("name not applied")
	}
	if request.LevelAuthor == nil || *request.LevelAuthor != "Creator" {
		t.Fatal("author not applied")
	}
	if request.LevelLength == nil || *request.LevelLength != LengthMedium {
		t.Fatal("length not applied")
	}
}
