package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/quasar-gd/quasar_api/model"
)

// ModerationRepository handles moderator decision records
type ModerationRepository struct {
	BaseRepository
}

func NewModerationRepository(db *gorm.DB) *ModerationRepository {
	return &ModerationRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (r *ModerationRepository) GetDecision(levelID uint64) (*model.ModerationDecision, error) {
	var decision model.ModerationDecision
	if err := r.db.Where("level_id = ?", levelID).First(&decision).Error; err != nil {
		return nil, err
	}
	return &decision, nil
}

func (r *ModerationRepository) CreateDecision(decision *model.ModerationDecision) error {
	decision.CreatedAt = time.Now()
	decision.UpdatedAt = decision.CreatedAt
	return r.db.Create(decision).Error
}

func (r *ModerationRepository) UpdateDecision(decision *model.ModerationDecision) error {
	decision.UpdatedAt = time.Now()
	return r.db.Save(decision).Error
}
