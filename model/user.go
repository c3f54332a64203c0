package model

import "time"

// User tracks a requester's rate-limit state. Created lazily on the first
// accepted request; LastRequestTime only ever advances.
type User struct {
	DiscordID       uint64     `gorm:"primaryKey;autoIncrement:false" json:"discord_id"`
	LastRequestTime *time.Time `json:"last_request_time,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
