package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/quasar-gd/quasar_api/dto"
	"github.com/quasar-gd/quasar_api/model"
)

type LevelRequestServiceInterface interface {
	CreateLevelRequest(req *dto.CreateLevelRequestRequest) (*model.LevelRequest, error)
	GetLevelRequest(levelID uint64, feedbackFilter ...bool) (*model.LevelRequest, error)
	UpdateLevelRequest(req *dto.UpdateLevelRequestRequest) (*model.LevelRequest, error)
	AttachMessage(req *dto.AttachMessageRequest) (*model.LevelRequest, error)
	AttachThread(req *dto.AttachThreadRequest) (*model.LevelRequest, error)
	DeleteLevelRequest(levelID uint64) (*model.LevelRequest, error)
}

type LevelReviewServiceInterface interface {
	SubmitReview(req *dto.SubmitReviewRequest) (*model.Review, error)
	GetReview(levelID, reviewerDiscordID uint64) (*model.Review, error)
	UpdateReviewMessage(req *dto.UpdateReviewMessageRequest) (*model.Review, error)
}

type ModerationServiceInterface interface {
	SendLevel(req *dto.SendLevelRequest) (*model.LevelRequest, error)
	GetDecision(levelID uint64) (*model.ModerationDecision, error)
}

type ReviewerServiceInterface interface {
	GetReviewer(discordID uint64, activeFilter *bool) (*model.Reviewer, error)
	GetActiveReviewer(discordID uint64) (*model.Reviewer, error)
	AddReviewer(discordID uint64) (*model.Reviewer, error)
	RemoveReviewer(discordID uint64) (*model.Reviewer, error)
}

type RequestConfigServiceInterface interface {
	Cooldown() time.Duration
	SetCooldown(minutes uint64)
	RequestsEnabled() bool
	SetRequestsEnabled(enabled bool)
	GDRequestsEnabled() bool
	SetGDRequestsEnabled(enabled bool)
}

type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	RequiredAuth() fiber.Handler
}
