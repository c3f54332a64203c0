package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/quasar-gd/quasar_api/model"
)

// ReviewerRepository handles the reviewer roster
type ReviewerRepository struct {
	BaseRepository
}

func NewReviewerRepository(db *gorm.DB) *ReviewerRepository {
	return &ReviewerRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

// GetReviewer matches any roster entry; activeFilter narrows to a specific
// active state when supplied.
func (r *ReviewerRepository) GetReviewer(discordID uint64, activeFilter *bool) (*model.Reviewer, error) {
	var reviewer model.Reviewer
	query := r.db.Where("discord_id = ?", discordID)
	if activeFilter != nil {
		query = query.Where("active = ?", *activeFilter)
	}
	if err := query.First(&reviewer).Error; err != nil {
		return nil, err
	}
	return &reviewer, nil
}

func (r *ReviewerRepository) CreateReviewer(reviewer *model.Reviewer) error {
	reviewer.CreatedAt = time.Now()
	reviewer.UpdatedAt = reviewer.CreatedAt
	return r.db.Create(reviewer).Error
}

func (r *ReviewerRepository) UpdateReviewer(reviewer *model.Reviewer) error {
	reviewer.UpdatedAt = time.Now()
	return r.db.Save(reviewer).Error
}
