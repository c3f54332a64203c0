package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/quasar-gd/quasar_api/model"
)

// ReviewRepository handles reviews, keyed by (level, reviewer)
type ReviewRepository struct {
	BaseRepository
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (r *ReviewRepository) GetReview(levelID, reviewerDiscordID uint64) (*model.Review, error) {
	var review model.Review
	err := r.db.Where("level_id = ? AND reviewer_discord_id = ?", levelID, reviewerDiscordID).First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) CreateReview(review *model.Review) error {
	review.CreatedAt = time.Now()
	review.UpdatedAt = review.CreatedAt
	return r.db.Create(review).Error
}

func (r *ReviewRepository) UpdateReview(review *model.Review) error {
	review.UpdatedAt = time.Now()
	return r.db.Save(review).Error
}
