package dto

import "github.com/quasar-gd/quasar_api/model"

type AddReviewerRequest struct {
	DiscordID uint64 `json:"discord_id" validate:"required"`
}

func (r AddReviewerRequest) Validate() error {
	return validate.Struct(r)
}

type ReviewerResponse struct {
	DiscordID uint64 `json:"discord_id"`
	Active    bool   `json:"active"`
}

func NewReviewerResponse(reviewer *model.Reviewer) *ReviewerResponse {
	return &ReviewerResponse{
		DiscordID: reviewer.DiscordID,
		Active:    reviewer.Active,
	}
}
