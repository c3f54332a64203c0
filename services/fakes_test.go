package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/quasar-gd/quasar_api/model"
)

// In-memory stores standing in for the GORM repositories. Misses surface as
// gorm.ErrRecordNotFound, same as the real layer.

type fakeRequestStore struct {
	requests  map[uint64]*model.LevelRequest
	createErr error
	updateErr error
}

func newFakeRequestStore() *fakeRequestStore {
	return &fakeRequestStore{requests: map[uint64]*model.LevelRequest{}}
}

func (s *fakeRequestStore) GetLevelRequest(levelID uint64) (*model.LevelRequest, error) {
	request, ok := s.requests[levelID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *request
	return &copied, nil
}

func (s *fakeRequestStore) GetLevelRequestFilterFeedback(levelID uint64, hasRequestedFeedback bool) (*model.LevelRequest, error) {
	request, ok := s.requests[levelID]
	if !ok || request.HasRequestedFeedback != hasRequestedFeedback {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *request
	return &copied, nil
}

func (s *fakeRequestStore) CreateLevelRequest(request *model.LevelRequest) error {
	if s.createErr != nil {
		return s.createErr
	}
	request.CreatedAt = time.Now()
	request.UpdatedAt = request.CreatedAt
	copied := *request
	s.requests[request.LevelID] = &copied
	return nil
}

func (s *fakeRequestStore) UpdateLevelRequest(request *model.LevelRequest) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	copied := *request
	s.requests[request.LevelID] = &copied
	return nil
}

func (s *fakeRequestStore) DeleteLevelRequest(request *model.LevelRequest) error {
	delete(s.requests, request.LevelID)
	return nil
}

type fakeUserStore struct {
	users map[uint64]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[uint64]*model.User{}}
}

func (s *fakeUserStore) GetUser(discordID uint64) (*model.User, error) {
	user, ok := s.users[discordID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *fakeUserStore) CreateUser(user *model.User) error {
	copied := *user
	s.users[user.DiscordID] = &copied
	return nil
}

func (s *fakeUserStore) UpdateUser(user *model.User) error {
	copied := *user
	s.users[user.DiscordID] = &copied
	return nil
}

type fakeReviewStore struct {
	reviews map[[2]uint64]*model.Review
}

func newFakeReviewStore() *fakeReviewStore {
	return &fakeReviewStore{reviews: map[[2]uint64]*model.Review{}}
}

func (s *fakeReviewStore) GetReview(levelID, reviewerDiscordID uint64) (*model.Review, error) {
	review, ok := s.reviews[[2]uint64{levelID, reviewerDiscordID}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *review
	return &copied, nil
}

func (s *fakeReviewStore) CreateReview(review *model.Review) error {
	copied := *review
	s.reviews[[2]uint64{review.LevelID, review.ReviewerDiscordID}] = &copied
	return nil
}

func (s *fakeReviewStore) UpdateReview(review *model.Review) error {
	copied := *review
	s.reviews[[2]uint64{review.LevelID, review.ReviewerDiscordID}] = &copied
	return nil
}

type fakeReviewerStore struct {
	reviewers map[uint64]*model.Reviewer
}

func newFakeReviewerStore() *fakeReviewerStore {
	return &fakeReviewerStore{reviewers: map[uint64]*model.Reviewer{}}
}

func (s *fakeReviewerStore) GetReviewer(discordID uint64, activeFilter *bool) (*model.Reviewer, error) {
	reviewer, ok := s.reviewers[discordID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if activeFilter != nil && reviewer.Active != *activeFilter {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *reviewer
	return &copied, nil
}

func (s *fakeReviewerStore) CreateReviewer(reviewer *model.Reviewer) error {
	copied := *reviewer
	s.reviewers[reviewer.DiscordID] = &copied
	return nil
}

func (s *fakeReviewerStore) UpdateReviewer(reviewer *model.Reviewer) error {
	copied := *reviewer
	s.reviewers[reviewer.DiscordID] = &copied
	return nil
}

type fakeModerationStore struct {
	decisions map[uint64]*model.ModerationDecision
}

func newFakeModerationStore() *fakeModerationStore {
	return &fakeModerationStore{decisions: map[uint64]*model.ModerationDecision{}}
}

func (s *fakeModerationStore) GetDecision(levelID uint64) (*model.ModerationDecision, error) {
	decision, ok := s.decisions[levelID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *decision
	return &copied, nil
}

func (s *fakeModerationStore) CreateDecision(decision *model.ModerationDecision) error {
	copied := *decision
	s.decisions[decision.LevelID] = &copied
	return nil
}

func (s *fakeModerationStore) UpdateDecision(decision *model.ModerationDecision) error {
	copied := *decision
	s.decisions[decision.LevelID] = &copied
	return nil
}

type fakeGDClient struct {
	level     *model.GDLevel
	lookupErr error
	sendErr   error

	lookups []uint64
	sent    []*model.ModerationDecision
}

func (c *fakeGDClient) GetLevelInfo(levelID uint64) (*model.GDLevel, error) {
	c.lookups = append(c.lookups, levelID)
	if c.lookupErr != nil {
		return nil, c.lookupErr
	}
	return c.level, nil
}

func (c *fakeGDClient) SendLevel(decision *model.ModerationDecision) error {
	if c.sendErr != nil {
		return c.sendErr
	}
	c.sent = append(c.sent, decision)
	return nil
}

type fakeGate struct {
	requestsEnabled   bool
	gdRequestsEnabled bool
	cooldown          time.Duration
}

func (g *fakeGate) RequestsEnabled() bool   { return g.requestsEnabled }
func (g *fakeGate) GDRequestsEnabled() bool { return g.gdRequestsEnabled }
func (g *fakeGate) Cooldown() time.Duration { return g.cooldown }
