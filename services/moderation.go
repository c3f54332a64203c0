package services

import (
	"errors"
	"fmt"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/quasar-gd/quasar_api/dto"
	"github.com/quasar-gd/quasar_api/model"
	"github.com/quasar-gd/quasar_api/services/repositories"
	"github.com/quasar-gd/quasar_api/shared"
)

// ModerationService records moderator decisions and forwards rateable ones
// to the GD servers. A no-rate decision is stored for the audit trail but
// never dispatched; once a level has any decision on file a later no-rate is
// rejected rather than overwriting it.
type ModerationService struct {
	context.DefaultService

	decisions moderationStore
	requests  levelRequestStore
	gd        gdClient

	monitoringSvc *MonitoringService
}

const MODERATION_SVC = "moderation_svc"

func (svc ModerationService) Id() string {
	return MODERATION_SVC
}

func (svc *ModerationService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *ModerationService) Start() error {
	db := svc.Service(POSTGRES_SVC).(*PostgresService).Db()
	svc.decisions = repositories.NewModerationRepository(db)
	svc.requests = repositories.NewLevelRequestRepository(db)
	svc.gd = svc.Service(GEOMETRY_DASH_SVC).(*GeometryDashService)

	if monitoringSvc, ok := svc.Service(MONITORING_SVC).(*MonitoringService); ok {
		svc.monitoringSvc = monitoringSvc
	}
	return nil
}

// SendLevel upserts the decision for a requested level and, when the score
// is rateable, suggests it upstream. The local write commits before the
// dispatch and stands even when the GD servers reject the suggestion.
func (svc *ModerationService) SendLevel(req *dto.SendLevelRequest) (*model.LevelRequest, error) {
	request, err := svc.requests.GetLevelRequest(req.LevelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, fmt.Sprintf("no request for level %d", req.LevelID))
		}
		return nil, shared.NewInternalError(err, "database error")
	}

	score := model.SuggestedScore(req.SuggestedScore)
	rating := model.SuggestedRating(req.SuggestedRating)

	existing, err := svc.decisions.GetDecision(req.LevelID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.NewInternalError(err, "database error")
	}

	if existing != nil && score == model.ScoreNoRate {
		return nil, shared.NewConflictError(nil, fmt.Sprintf("level %d already has a decision and cannot be unsent", req.LevelID))
	}

	if existing != nil {
		existing.SuggestedScore = score
		existing.SuggestedRating = rating
		if err := svc.decisions.UpdateDecision(existing); err != nil {
			return nil, shared.NewInternalError(err, "database error")
		}
	} else {
		decision := &model.ModerationDecision{
			LevelID:         req.LevelID,
			SuggestedScore:  score,
			SuggestedRating: rating,
		}
		if err := svc.decisions.CreateDecision(decision); err != nil {
			return nil, shared.NewInternalError(err, "database error")
		}
		existing = decision
	}

	if score != model.ScoreNoRate {
		if err := svc.gd.SendLevel(existing); err != nil {
			log.WithError(err).WithField("level_id", req.LevelID).Error("GD suggestion dispatch failed")
			return nil, shared.NewBadGatewayError(err, "failed to send level to GD servers")
		}
		if svc.monitoringSvc != nil {
			svc.monitoringSvc.ModerationDispatched()
		}
	}

	log.WithFields(log.Fields{
		"level_id":         req.LevelID,
		"suggested_score":  score,
		"suggested_rating": rating,
	}).Info("Moderation decision recorded")

	return request, nil
}

func (svc *ModerationService) GetDecision(levelID uint64) (*model.ModerationDecision, error) {
	decision, err := svc.decisions.GetDecision(levelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, fmt.Sprintf("no decision for level %d", levelID))
		}
		return nil, shared.NewInternalError(err, "database error")
	}
	return decision, nil
}
