package services

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/quasar-gd/quasar_api/dto"
	"github.com/quasar-gd/quasar_api/model"
	"github.com/quasar-gd/quasar_api/services/repositories"
	"github.com/quasar-gd/quasar_api/shared"
)

// LevelReviewService records reviewer feedback against level requests.
// Reviews only attach to requests whose author asked for feedback; the bot
// admin bypasses that filter and may review any request.
type LevelReviewService struct {
	context.DefaultService

	reviews  reviewStore
	requests levelRequestStore

	adminDiscordID uint64
}

const LEVEL_REVIEW_SVC = "level_review_svc"

func (svc LevelReviewService) Id() string {
	return LEVEL_REVIEW_SVC
}

func (svc *LevelReviewService) Configure(ctx *context.Context) error {
	if raw := os.Getenv("DISCORD_BOT_ADMIN_ID"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid DISCORD_BOT_ADMIN_ID: %w", err)
		}
		svc.adminDiscordID = parsed
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *LevelReviewService) Start() error {
	db := svc.Service(POSTGRES_SVC).(*PostgresService).Db()
	svc.reviews = repositories.NewReviewRepository(db)
	svc.requests = repositories.NewLevelRequestRepository(db)
	return nil
}

// SubmitReview inserts or overwrites the reviewer's feedback for a level.
// On overwrite the stored Discord message ID is kept so the bot edits the
// original message instead of posting a new one; IsUpdate tells the caller
// which case applied.
func (svc *LevelReviewService) SubmitReview(req *dto.SubmitReviewRequest) (*model.Review, error) {
	if err := svc.requireReviewableRequest(req.LevelID, req.ReviewerDiscordID); err != nil {
		return nil, err
	}

	existing, err := svc.reviews.GetReview(req.LevelID, req.ReviewerDiscordID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.NewInternalError(err, "database error")
	}

	if existing != nil {
		existing.ReviewContents = req.ReviewContents
		existing.IsUpdate = true
		if err := svc.reviews.UpdateReview(existing); err != nil {
			return nil, shared.NewInternalError(err, "database error")
		}
		log.WithFields(log.Fields{
			"level_id":    req.LevelID,
			"reviewer_id": req.ReviewerDiscordID,
		}).Info("Review updated")
		return existing, nil
	}

	review := &model.Review{
		LevelID:           req.LevelID,
		ReviewerDiscordID: req.ReviewerDiscordID,
		DiscordMessageID:  req.DiscordMessageID,
		ReviewContents:    req.ReviewContents,
	}
	if err := svc.reviews.CreateReview(review); err != nil {
		return nil, shared.NewInternalError(err, "database error")
	}
	log.WithFields(log.Fields{
		"level_id":    req.LevelID,
		"reviewer_id": req.ReviewerDiscordID,
	}).Info("Review submitted")
	return review, nil
}

func (svc *LevelReviewService) GetReview(levelID, reviewerDiscordID uint64) (*model.Review, error) {
	review, err := svc.reviews.GetReview(levelID, reviewerDiscordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, fmt.Sprintf("no review for level %d by reviewer %d", levelID, reviewerDiscordID))
		}
		return nil, shared.NewInternalError(err, "database error")
	}
	return review, nil
}

// UpdateReviewMessage repoints a stored review at a new Discord message,
// used after the bot reposts feedback.
func (svc *LevelReviewService) UpdateReviewMessage(req *dto.UpdateReviewMessageRequest) (*model.Review, error) {
	review, err := svc.GetReview(req.LevelID, req.ReviewerDiscordID)
	if err != nil {
		return nil, err
	}

	review.DiscordMessageID = req.DiscordMessageID
	if err := svc.reviews.UpdateReview(review); err != nil {
		return nil, shared.NewInternalError(err, "database error")
	}
	return review, nil
}

// requireReviewableRequest checks the target request exists and, unless the
// reviewer is the bot admin, that its author asked for feedback.
func (svc *LevelReviewService) requireReviewableRequest(levelID, reviewerDiscordID uint64) error {
	var err error
	if svc.adminDiscordID != 0 && reviewerDiscordID == svc.adminDiscordID {
		_, err = svc.requests.GetLevelRequest(levelID)
	} else {
		_, err = svc.requests.GetLevelRequestFilterFeedback(levelID, true)
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shared.NewNotFoundError(err, fmt.Sprintf("no reviewable request for level %d", levelID))
		}
		return shared.NewInternalError(err, "database error")
	}
	return nil
}
