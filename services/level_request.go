package services

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/quasar-gd/quasar_api/dto"
	"github.com/quasar-gd/quasar_api/model"
	"github.com/quasar-gd/quasar_api/services/repositories"
	"github.com/quasar-gd/quasar_api/shared"
)

// LevelRequestService owns the request lifecycle: creation behind the global
// gate and per-user cooldown, metadata enrichment from the GD servers, and
// the Discord message/thread correlation updates the bot performs after
// posting.
type LevelRequestService struct {
	context.DefaultService

	requests levelRequestStore
	users    userStore
	gate     requestGate
	gd       gdClient

	monitoringSvc *MonitoringService

	youtubeRegex *regexp.Regexp
}

const LEVEL_REQUEST_SVC = "level_request_svc"

func (svc LevelRequestService) Id() string {
	return LEVEL_REQUEST_SVC
}

func (svc *LevelRequestService) Configure(ctx *context.Context) error {
	svc.youtubeRegex = regexp.MustCompile(shared.YouTubeLinkPattern)
	return svc.DefaultService.Configure(ctx)
}

func (svc *LevelRequestService) Start() error {
	db := svc.Service(POSTGRES_SVC).(*PostgresService).Db()
	svc.requests = repositories.NewLevelRequestRepository(db)
	svc.users = repositories.NewUserRepository(db)
	svc.gate = svc.Service(REQUEST_MANAGER_SVC).(*RequestManagerService)
	svc.gd = svc.Service(GEOMETRY_DASH_SVC).(*GeometryDashService)

	if monitoringSvc, ok := svc.Service(MONITORING_SVC).(*MonitoringService); ok {
		svc.monitoringSvc = monitoringSvc
	}
	return nil
}

// CreateLevelRequest runs the full admission pipeline: gate check, link
// validation, duplicate check, cooldown check and stamp, optional GD
// metadata lookup, then insert. The cooldown stamp is written before the GD
// lookup and deliberately not rolled back on lookup failure, so a failed
// enrichment still consumes the user's slot.
func (svc *LevelRequestService) CreateLevelRequest(req *dto.CreateLevelRequestRequest) (*model.LevelRequest, error) {
	if !svc.gate.RequestsEnabled() {
		return nil, shared.NewServiceUnavailableError(nil, "level requests are currently disabled")
	}

	if !svc.youtubeRegex.MatchString(req.YouTubeVideoLink) {
		return nil, shared.NewBadRequestError(nil, "youtube video link is malformed")
	}

	existing, err := svc.requests.GetLevelRequest(req.LevelID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.NewInternalError(err, "database error")
	}
	if existing != nil {
		return nil, shared.NewConflictError(nil, fmt.Sprintf("request for level %d already exists", req.LevelID))
	}

	if err := svc.consumeCooldown(req.DiscordUserID); err != nil {
		return nil, err
	}

	request := &model.LevelRequest{
		LevelID:              req.LevelID,
		DiscordUserID:        req.DiscordUserID,
		RequestRating:        model.RequestRating(req.RequestRating),
		YouTubeVideoLink:     req.YouTubeVideoLink,
		HasRequestedFeedback: req.HasRequestedFeedback,
		Notify:               req.Notify,
	}

	if svc.gate.GDRequestsEnabled() {
		level, err := svc.gd.GetLevelInfo(req.LevelID)
		if err != nil {
			log.WithError(err).WithField("level_id", req.LevelID).Error("GD metadata lookup failed")
			return nil, shared.NewBadGatewayError(err, "failed to fetch level data from GD servers")
		}
		request.ApplyGDLevel(level)
	}

	if err := svc.requests.CreateLevelRequest(request); err != nil {
		return nil, shared.NewInternalError(err, "database error")
	}

	if svc.monitoringSvc != nil {
		svc.monitoringSvc.LevelRequestCreated()
	}
	log.WithFields(log.Fields{
		"level_id":        request.LevelID,
		"discord_user_id": request.DiscordUserID,
	}).Info("Level request created")

	return request, nil
}

// consumeCooldown rejects the caller when their last request is still inside
// the cooldown window, otherwise stamps now as their last request time. The
// boundary is inclusive: a request exactly cooldown after the previous one
// is still rejected.
func (svc *LevelRequestService) consumeCooldown(discordUserID uint64) error {
	now := time.Now()

	user, err := svc.users.GetUser(discordUserID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return shared.NewInternalError(err, "database error")
		}
		user = &model.User{DiscordID: discordUserID, LastRequestTime: &now}
		if err := svc.users.CreateUser(user); err != nil {
			return shared.NewInternalError(err, "database error")
		}
		return nil
	}

	cooldown := svc.gate.Cooldown()
	if user.LastRequestTime != nil && !user.LastRequestTime.Add(cooldown).Before(now) {
		if svc.monitoringSvc != nil {
			svc.monitoringSvc.CooldownRejected()
		}
		return shared.NewTooManyRequestsError(nil, "user is on request cooldown", &dto.CooldownData{
			LastRequestTime: *user.LastRequestTime,
			CooldownMinutes: int64(cooldown.Minutes()),
		})
	}

	user.LastRequestTime = &now
	if err := svc.users.UpdateUser(user); err != nil {
		return shared.NewInternalError(err, "database error")
	}
	return nil
}

// GetLevelRequest returns any stored request for the level. feedbackFilter,
// when supplied, narrows the match to requests whose feedback flag equals it.
func (svc *LevelRequestService) GetLevelRequest(levelID uint64, feedbackFilter ...bool) (*model.LevelRequest, error) {
	var request *model.LevelRequest
	var err error
	if len(feedbackFilter) > 0 {
		request, err = svc.requests.GetLevelRequestFilterFeedback(levelID, feedbackFilter[0])
	} else {
		request, err = svc.requests.GetLevelRequest(levelID)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, fmt.Sprintf("no request for level %d", levelID))
		}
		return nil, shared.NewInternalError(err, "database error")
	}
	return request, nil
}

// UpdateLevelRequest applies the partial update; absent fields keep their
// stored value. The link is validated before any lookup.
func (svc *LevelRequestService) UpdateLevelRequest(req *dto.UpdateLevelRequestRequest) (*model.LevelRequest, error) {
	if req.YouTubeVideoLink != nil && !svc.youtubeRegex.MatchString(*req.YouTubeVideoLink) {
		return nil, shared.NewBadRequestError(nil, "youtube video link is malformed")
	}

	request, err := svc.GetLevelRequest(req.LevelID)
	if err != nil {
		return nil, err
	}

	if req.YouTubeVideoLink != nil {
		request.YouTubeVideoLink = *req.YouTubeVideoLink
	}
	if req.RequestRating != nil {
		request.RequestRating = model.RequestRating(*req.RequestRating)
	}
	if req.HasRequestedFeedback != nil {
		request.HasRequestedFeedback = *req.HasRequestedFeedback
	}
	if req.Notify != nil {
		request.Notify = *req.Notify
	}

	if err := svc.requests.UpdateLevelRequest(request); err != nil {
		return nil, shared.NewInternalError(err, "database error")
	}
	return request, nil
}

// AttachMessage records the Discord message the bot posted for this request.
func (svc *LevelRequestService) AttachMessage(req *dto.AttachMessageRequest) (*model.LevelRequest, error) {
	request, err := svc.GetLevelRequest(req.LevelID)
	if err != nil {
		return nil, err
	}

	request.DiscordMessageID = &req.DiscordMessageID
	if err := svc.requests.UpdateLevelRequest(request); err != nil {
		return nil, shared.NewInternalError(err, "database error")
	}
	return request, nil
}

// AttachThread records the feedback thread the bot opened for this request.
func (svc *LevelRequestService) AttachThread(req *dto.AttachThreadRequest) (*model.LevelRequest, error) {
	request, err := svc.GetLevelRequest(req.LevelID)
	if err != nil {
		return nil, err
	}

	request.DiscordThreadID = &req.DiscordThreadID
	if err := svc.requests.UpdateLevelRequest(request); err != nil {
		return nil, shared.NewInternalError(err, "database error")
	}
	return request, nil
}

// DeleteLevelRequest removes the request and returns the removed record so
// the caller can report what was dropped.
func (svc *LevelRequestService) DeleteLevelRequest(levelID uint64) (*model.LevelRequest, error) {
	request, err := svc.GetLevelRequest(levelID)
	if err != nil {
		return nil, err
	}

	if err := svc.requests.DeleteLevelRequest(request); err != nil {
		return nil, shared.NewInternalError(err, "database error")
	}
	log.WithField("level_id", levelID).Info("Level request deleted")
	return request, nil
}
