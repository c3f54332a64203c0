package services

import (
	"errors"
	"net/http"
	"testing"

	"github.com/quasar-gd/quasar_api/dto"
	"github.com/quasar-gd/quasar_api/model"
)

func newTestModerationService(decisions *fakeModerationStore, requests *fakeRequestStore, gd *fakeGDClient) *ModerationService {
	return &ModerationService{
		decisions: decisions,
		requests:  requests,
		gd:        gd,
	}
}

func TestSendLevelMissingRequest(t *testing.T) {
	svc := newTestModerationService(newFakeModerationStore(), newFakeRequestStore(), &fakeGDClient{})

	_, err := svc.SendLevel(&dto.SendLevelRequest{
		LevelID:         404,
		SuggestedScore:  string(model.ScoreFive),
		SuggestedRating: string(model.SuggestedRate),
	})
	expectStatus(t, err, http.StatusNotFound)
}

func TestSendLevelDispatchesRateable(t *testing.T) {
	requests := newFakeRequestStore()
	requests.requests[10] = &model.LevelRequest{LevelID: 10, DiscordUserID: 1}
	decisions := newFakeModerationStore()
	gd := &fakeGDClient{}
	svc := newTestModerationService(decisions, requests, gd)

	request, err := svc.SendLevel(&dto.SendLevelRequest{
		LevelID:         10,
		SuggestedScore:  string(model.ScoreEight),
		SuggestedRating: string(model.SuggestedFeature),
	})
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if request.LevelID != 10 {
		t.Fatalf("expected the stored request back, got %+v", request)
	}

	if len(gd.sent) != 1 {
		t.Fatalf("expected one dispatch, got %d", len(gd.sent))
	}
	if gd.sent[0].SuggestedScore != model.ScoreEight {
		t.Fatalf("expected score eight dispatched, got %s", gd.sent[0].SuggestedScore)
	}

	stored, err := decisions.GetDecision(10)
	if err != nil {
		t.Fatalf("decision not stored: %v", err)
	}
	if stored.SuggestedRating != model.SuggestedFeature {
		t.Fatalf("expected feature rating stored, got %s", stored.SuggestedRating)
	}
}

func TestSendLevelFirstNoRateStoredNotDispatched(t *testing.T) {
	requests := newFakeRequestStore()
	requests.requests[10] = &model.LevelRequest{LevelID: 10}
	decisions := newFakeModerationStore()
	gd := &fakeGDClient{sendErr: errors.New("should not be called")}
	svc := newTestModerationService(decisions, requests, gd)

	_, err := svc.SendLevel(&dto.SendLevelRequest{
		LevelID:         10,
		SuggestedScore:  string(model.ScoreNoRate),
		SuggestedRating: string(model.SuggestedRate),
	})
	if err != nil {
		t.Fatalf("first no-rate failed: %v", err)
	}

	stored, err := decisions.GetDecision(10)
	if err != nil {
		t.Fatalf("no-rate decision not stored: %v", err)
	}
	if stored.SuggestedScore != model.ScoreNoRate {
		t.Fatalf("expected no_rate stored, got %s", stored.SuggestedScore)
	}
}

func TestSendLevelNoRateAfterDecisionConflicts(t *testing.T) {
	requests := newFakeRequestStore()
	requests.requests[10] = &model.LevelRequest{LevelID: 10}
	decisions := newFakeModerationStore()
	decisions.decisions[10] = &model.ModerationDecision{
		LevelID:         10,
		SuggestedScore:  model.ScoreFive,
		SuggestedRating: model.SuggestedRate,
	}
	svc := newTestModerationService(decisions, requests, &fakeGDClient{})

	_, err := svc.SendLevel(&dto.SendLevelRequest{
		LevelID:         10,
		SuggestedScore:  string(model.ScoreNoRate),
		SuggestedRating: string(model.SuggestedRate),
	})
	expectStatus(t, err, http.StatusConflict)

	// The prior decision must be untouched.
	stored, _ := decisions.GetDecision(10)
	if stored.SuggestedScore != model.ScoreFive {
		t.Fatalf("expected prior decision preserved, got %s", stored.SuggestedScore)
	}
}

func TestSendLevelUpdatesExistingDecision(t *testing.T) {
	requests := newFakeRequestStore()
	requests.requests[10] = &model.LevelRequest{LevelID: 10}
	decisions := newFakeModerationStore()
	decisions.decisions[10] = &model.ModerationDecision{
		LevelID:         10,
		SuggestedScore:  model.ScoreFive,
		SuggestedRating: model.SuggestedRate,
	}
	gd := &fakeGDClient{}
	svc := newTestModerationService(decisions, requests, gd)

	_, err := svc.SendLevel(&dto.SendLevelRequest{
		LevelID:         10,
		SuggestedScore:  string(model.ScoreTen),
		SuggestedRating: string(model.SuggestedEpic),
	})
	if err != nil {
		t.Fatalf("resend failed: %v", err)
	}

	stored, _ := decisions.GetDecision(10)
	if stored.SuggestedScore != model.ScoreTen || stored.SuggestedRating != model.SuggestedEpic {
		t.Fatalf("expected decision replaced, got %+v", stored)
	}
	if len(gd.sent) != 1 {
		t.Fatalf("expected one dispatch, got %d", len(gd.sent))
	}
}

func TestSendLevelGDFailureKeepsDecision(t *testing.T) {
	requests := newFakeRequestStore()
	requests.requests[10] = &model.LevelRequest{LevelID: 10}
	decisions := newFakeModerationStore()
	gd := &fakeGDClient{sendErr: errors.New("upstream down")}
	svc := newTestModerationService(decisions, requests, gd)

	_, err := svc.SendLevel(&dto.SendLevelRequest{
		LevelID:         10,
		SuggestedScore:  string(model.ScoreSeven),
		SuggestedRating: string(model.SuggestedRate),
	})
	expectStatus(t, err, http.StatusBadGateway)

	// The local commit stands even when the dispatch fails.
	if _, err := decisions.GetDecision(10); err != nil {
		t.Fatalf("expected decision stored despite dispatch failure: %v", err)
	}
}
