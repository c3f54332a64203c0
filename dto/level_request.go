package dto

import (
	"time"

	"github.com/quasar-gd/quasar_api/model"
)

type CreateLevelRequestRequest struct {
	LevelID              uint64 `json:"level_id" validate:"required"`
	YouTubeVideoLink     string `json:"youtube_video_link" validate:"required,youtube_link"`
	DiscordUserID        uint64 `json:"discord_user_id" validate:"required"`
	RequestRating        string `json:"request_rating" validate:"required,request_rating"`
	HasRequestedFeedback bool   `json:"has_requested_feedback"`
	Notify               bool   `json:"notify"`
}

func (r CreateLevelRequestRequest) Validate() error {
	return validate.Struct(r)
}

type UpdateLevelRequestRequest struct {
	LevelID              uint64  `json:"level_id" validate:"required"`
	YouTubeVideoLink     *string `json:"youtube_video_link,omitempty" validate:"omitempty,youtube_link"`
	RequestRating        *string `json:"request_rating,omitempty" validate:"omitempty,request_rating"`
	HasRequestedFeedback *bool   `json:"has_requested_feedback,omitempty"`
	Notify               *bool   `json:"notify,omitempty"`
}

func (r UpdateLevelRequestRequest) Validate() error {
	return validate.Struct(r)
}

type AttachMessageRequest struct {
	LevelID          uint64 `json:"level_id" validate:"required"`
	DiscordMessageID uint64 `json:"discord_message_id" validate:"required"`
}

func (r AttachMessageRequest) Validate() error {
	return validate.Struct(r)
}

type AttachThreadRequest struct {
	LevelID         uint64 `json:"level_id" validate:"required"`
	DiscordThreadID uint64 `json:"discord_thread_id" validate:"required"`
}

func (r AttachThreadRequest) Validate() error {
	return validate.Struct(r)
}

type LevelRequestResponse struct {
	LevelID              uint64             `json:"level_id"`
	DiscordUserID        uint64             `json:"discord_user_id"`
	DiscordMessageID     *uint64            `json:"discord_message_id,omitempty"`
	DiscordThreadID      *uint64            `json:"discord_thread_id,omitempty"`
	LevelName            *string            `json:"level_name,omitempty"`
	LevelAuthor          *string            `json:"level_author,omitempty"`
	LevelLength          *model.LevelLength `json:"level_length,omitempty"`
	RequestRating        string             `json:"request_rating"`
	YouTubeVideoLink     string             `json:"youtube_video_link"`
	HasRequestedFeedback bool               `json:"has_requested_feedback"`
	Notify               bool               `json:"notify"`
	Timestamp            time.Time          `json:"timestamp"`
}

func NewLevelRequestResponse(req *model.LevelRequest) *LevelRequestResponse {
	return &LevelRequestResponse{
		LevelID:              req.LevelID,
		DiscordUserID:        req.DiscordUserID,
		DiscordMessageID:     req.DiscordMessageID,
		DiscordThreadID:      req.DiscordThreadID,
		LevelName:            req.LevelName,
		LevelAuthor:          req.LevelAuthor,
		LevelLength:          req.LevelLength,
		RequestRating:        string(req.RequestRating),
		YouTubeVideoLink:     req.YouTubeVideoLink,
		HasRequestedFeedback: req.HasRequestedFeedback,
		Notify:               req.Notify,
		Timestamp:            req.CreatedAt,
	}
}

// CooldownData rides on 429 responses so the bot can compute retry-after.
type CooldownData struct {
	LastRequestTime time.Time `json:"last_request_time"`
	CooldownMinutes int64     `json:"request_cooldown"`
}
