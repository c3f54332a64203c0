package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/quasar-gd/quasar_api/model"
)

// LevelRequestRepository handles level request persistence
type LevelRequestRepository struct {
	BaseRepository
}

func NewLevelRequestRepository(db *gorm.DB) *LevelRequestRepository {
	return &LevelRequestRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (r *LevelRequestRepository) GetLevelRequest(levelID uint64) (*model.LevelRequest, error) {
	var request model.LevelRequest
	if err := r.db.Where("level_id = ?", levelID).First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// GetLevelRequestFilterFeedback only matches a request whose feedback flag
// equals hasRequestedFeedback.
func (r *LevelRequestRepository) GetLevelRequestFilterFeedback(levelID uint64, hasRequestedFeedback bool) (*model.LevelRequest, error) {
	var request model.LevelRequest
	err := r.db.Where("level_id = ? AND has_requested_feedback = ?", levelID, hasRequestedFeedback).First(&request).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *LevelRequestRepository) CreateLevelRequest(request *model.LevelRequest) error {
	request.CreatedAt = time.Now()
	request.UpdatedAt = request.CreatedAt
	return r.db.Create(request).Error
}

func (r *LevelRequestRepository) UpdateLevelRequest(request *model.LevelRequest) error {
	request.UpdatedAt = time.Now()
	return r.db.Save(request).Error
}

func (r *LevelRequestRepository) DeleteLevelRequest(request *model.LevelRequest) error {
	return r.db.Delete(request).Error
}
