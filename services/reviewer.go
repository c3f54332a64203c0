package services

import (
	"errors"
	"fmt"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/quasar-gd/quasar_api/model"
	"github.com/quasar-gd/quasar_api/services/repositories"
	"github.com/quasar-gd/quasar_api/shared"
)

// ReviewerService manages the reviewer roster. Removal is a soft deactivate
// so past reviews keep a valid author; re-adding a deactivated reviewer
// flips them back to active.
type ReviewerService struct {
	context.DefaultService

	reviewers reviewerStore
}

const REVIEWER_SVC = "reviewer_svc"

func (svc ReviewerService) Id() string {
	return REVIEWER_SVC
}

func (svc *ReviewerService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *ReviewerService) Start() error {
	db := svc.Service(POSTGRES_SVC).(*PostgresService).Db()
	svc.reviewers = repositories.NewReviewerRepository(db)
	return nil
}

// GetReviewer looks up a roster entry. activeFilter, when supplied, narrows
// the match to reviewers in that active state, so callers can find
// deactivated reviewers explicitly.
func (svc *ReviewerService) GetReviewer(discordID uint64, activeFilter *bool) (*model.Reviewer, error) {
	reviewer, err := svc.reviewers.GetReviewer(discordID, activeFilter)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, fmt.Sprintf("no reviewer %d", discordID))
		}
		return nil, shared.NewInternalError(err, "database error")
	}
	return reviewer, nil
}

// GetActiveReviewer returns the reviewer only while they are active.
func (svc *ReviewerService) GetActiveReviewer(discordID uint64) (*model.Reviewer, error) {
	active := true
	return svc.GetReviewer(discordID, &active)
}

// AddReviewer registers a reviewer. Idempotent: an already active reviewer
// is returned as-is, a deactivated one is reactivated.
func (svc *ReviewerService) AddReviewer(discordID uint64) (*model.Reviewer, error) {
	reviewer, err := svc.reviewers.GetReviewer(discordID, nil)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.NewInternalError(err, "database error")
	}

	if reviewer != nil {
		if !reviewer.Active {
			reviewer.Active = true
			if err := svc.reviewers.UpdateReviewer(reviewer); err != nil {
				return nil, shared.NewInternalError(err, "database error")
			}
			log.WithField("discord_id", discordID).Info("Reviewer reactivated")
		}
		return reviewer, nil
	}

	reviewer = &model.Reviewer{DiscordID: discordID, Active: true}
	if err := svc.reviewers.CreateReviewer(reviewer); err != nil {
		return nil, shared.NewInternalError(err, "database error")
	}
	log.WithField("discord_id", discordID).Info("Reviewer added")
	return reviewer, nil
}

// RemoveReviewer deactivates an active reviewer. Unknown or already
// deactivated reviewers yield not found.
func (svc *ReviewerService) RemoveReviewer(discordID uint64) (*model.Reviewer, error) {
	reviewer, err := svc.GetActiveReviewer(discordID)
	if err != nil {
		return nil, err
	}

	reviewer.Active = false
	if err := svc.reviewers.UpdateReviewer(reviewer); err != nil {
		return nil, shared.NewInternalError(err, "database error")
	}
	log.WithField("discord_id", discordID).Info("Reviewer removed")
	return reviewer, nil
}
