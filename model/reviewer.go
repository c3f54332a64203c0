package model

import "time"

// Reviewer is an identity authorized to leave reviews. Deactivation is a
// soft toggle so re-registration can flip the record back on.
type Reviewer struct {
	DiscordID uint64    `gorm:"primaryKey;autoIncrement:false" json:"discord_id"`
	Active    bool      `gorm:"not null" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Reviewer) TableName() string {
	return "reviewers"
}
