package services

import (
	"time"

	"github.com/quasar-gd/quasar_api/model"
)

// Narrow store/client surfaces consumed by the workflow services. Wired to
// the GORM repositories and the GD client in Start(); swapped for fakes in
// tests.

type levelRequestStore interface {
	GetLevelRequest(levelID uint64) (*model.LevelRequest, error)
	GetLevelRequestFilterFeedback(levelID uint64, hasRequestedFeedback bool) (*model.LevelRequest, error)
	CreateLevelRequest(request *model.LevelRequest) error
	UpdateLevelRequest(request *model.LevelRequest) error
	DeleteLevelRequest(request *model.LevelRequest) error
}

type userStore interface {
	GetUser(discordID uint64) (*model.User, error)
	CreateUser(user *model.User) error
	UpdateUser(user *model.User) error
}

type reviewStore interface {
	GetReview(levelID, reviewerDiscordID uint64) (*model.Review, error)
	CreateReview(review *model.Review) error
	UpdateReview(review *model.Review) error
}

type reviewerStore interface {
	GetReviewer(discordID uint64, activeFilter *bool) (*model.Reviewer, error)
	CreateReviewer(reviewer *model.Reviewer) error
	UpdateReviewer(reviewer *model.Reviewer) error
}

type moderationStore interface {
	GetDecision(levelID uint64) (*model.ModerationDecision, error)
	CreateDecision(decision *model.ModerationDecision) error
	UpdateDecision(decision *model.ModerationDecision) error
}

type accountStore interface {
	GetAccount(id string) (*model.Account, error)
	GetAccountByUsername(username string) (*model.Account, error)
	GetAccountByEmail(email string) (*model.Account, error)
	CreateAccount(account *model.Account) error
}

type gdClient interface {
	GetLevelInfo(levelID uint64) (*model.GDLevel, error)
	SendLevel(decision *model.ModerationDecision) error
}

// requestGate is the slice of the request manager the level request workflow
// reads on every create call.
type requestGate interface {
	RequestsEnabled() bool
	GDRequestsEnabled() bool
	Cooldown() time.Duration
}
