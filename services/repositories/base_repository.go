package repositories

import (
	"gorm.io/gorm"
)

// BaseRepository carries the shared gorm handle every aggregate repository
// embeds. Repositories reach the handle through the embedded db field;
// nothing outside this package touches it directly.
type BaseRepository struct {
	db *gorm.DB
}

func NewBaseRepository(db *gorm.DB) BaseRepository {
	return BaseRepository{db: db}
}
