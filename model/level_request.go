package model

import "time"

// LevelRequest is one outstanding or resolved ask to have a level rated.
// LevelID is caller supplied and unique; metadata fields are only populated
// when the GD lookup was enabled at creation time.
type LevelRequest struct {
	LevelID              uint64        `gorm:"primaryKey;autoIncrement:false" json:"level_id"`
	DiscordUserID        uint64        `gorm:"not null;index" json:"discord_user_id"`
	DiscordMessageID     *uint64       `gorm:"uniqueIndex" json:"discord_message_id,omitempty"`
	DiscordThreadID      *uint64       `gorm:"uniqueIndex" json:"discord_thread_id,omitempty"`
	LevelName            *string       `json:"level_name,omitempty"`
	LevelAuthor          *string       `json:"level_author,omitempty"`
	LevelLength          *LevelLength  `gorm:"type:varchar(16)" json:"level_length,omitempty"`
	RequestRating        RequestRating `gorm:"type:varchar(8);not null" json:"request_rating"`
	YouTubeVideoLink     string        `gorm:"not null" json:"youtube_video_link"`
	HasRequestedFeedback bool          `gorm:"not null" json:"has_requested_feedback"`
	Notify               bool          `gorm:"not null" json:"notify"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
}

func (LevelRequest) TableName() string {
	return "level_requests"
}

// ApplyGDLevel copies fetched metadata onto the request.
func (r *LevelRequest) ApplyGDLevel(level *GDLevel) {
	r.LevelName = &level.Name
	r.LevelAuthor = &level.Author
	r.LevelLength = &level.Length
}
