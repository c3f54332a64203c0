package model

import "time"

// Review is one reviewer's feedback on one level request, keyed by
// (level, reviewer). IsUpdate is computed per call and never stored.
type Review struct {
	LevelID           uint64    `gorm:"primaryKey;autoIncrement:false" json:"level_id"`
	ReviewerDiscordID uint64    `gorm:"primaryKey;autoIncrement:false" json:"reviewer_discord_id"`
	DiscordMessageID  uint64    `gorm:"not null" json:"discord_message_id"`
	ReviewContents    string    `gorm:"type:text;not null" json:"review_contents"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	IsUpdate bool `gorm:"-" json:"is_update"`
}

func (Review) TableName() string {
	return "reviews"
}
