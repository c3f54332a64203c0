package dto

import "github.com/quasar-gd/quasar_api/model"

type SubmitReviewRequest struct {
	LevelID           uint64 `json:"level_id" validate:"required"`
	ReviewerDiscordID uint64 `json:"reviewer_discord_id" validate:"required"`
	DiscordMessageID  uint64 `json:"discord_message_id" validate:"required"`
	ReviewContents    string `json:"review_contents" validate:"required"`
}

func (r SubmitReviewRequest) Validate() error {
	return validate.Struct(r)
}

type UpdateReviewMessageRequest struct {
	LevelID           uint64 `json:"level_id" validate:"required"`
	ReviewerDiscordID uint64 `json:"reviewer_discord_id" validate:"required"`
	DiscordMessageID  uint64 `json:"discord_message_id" validate:"required"`
}

func (r UpdateReviewMessageRequest) Validate() error {
	return validate.Struct(r)
}

type LevelReviewResponse struct {
	LevelID           uint64 `json:"level_id"`
	ReviewerDiscordID uint64 `json:"reviewer_discord_id"`
	DiscordMessageID  uint64 `json:"discord_message_id"`
	ReviewContents    string `json:"review_contents"`
	IsUpdate          bool   `json:"is_update"`
}

func NewLevelReviewResponse(review *model.Review) *LevelReviewResponse {
	return &LevelReviewResponse{
		LevelID:           review.LevelID,
		ReviewerDiscordID: review.ReviewerDiscordID,
		DiscordMessageID:  review.DiscordMessageID,
		ReviewContents:    review.ReviewContents,
		IsUpdate:          review.IsUpdate,
	}
}
