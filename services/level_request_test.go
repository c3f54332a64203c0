package services

import (
	"errors"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/quasar-gd/quasar_api/dto"
	"github.com/quasar-gd/quasar_api/model"
	"github.com/quasar-gd/quasar_api/shared"
)

func newTestLevelRequestService(requests *fakeRequestStore, users *fakeUserStore, gate *fakeGate, gd *fakeGDClient) *LevelRequestService {
	return &LevelRequestService{
		requests:     requests,
		users:        users,
		gate:         gate,
		gd:           gd,
		youtubeRegex: regexp.MustCompile(shared.YouTubeLinkPattern),
	}
}

func validCreateRequest() *dto.CreateLevelRequestRequest {
	return &dto.CreateLevelRequestRequest{
		LevelID:          91500192,
		YouTubeVideoLink: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		DiscordUserID:    500,
		RequestRating:    string(model.RatingSeven),
		Notify:           true,
	}
}

func expectStatus(t *testing.T, err error, status int) *shared.AppError {
	t.Helper()
	appErr, ok := shared.GetAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.StatusCode != status {
		t.Fatalf("expected status %d, got %d (%s)", status, appErr.StatusCode, appErr.Message)
	}
	return appErr
}

func TestCreateLevelRequest(t *testing.T) {
	requests := newFakeRequestStore()
	users := newFakeUserStore()
	gate := &fakeGate{requestsEnabled: true, gdRequestsEnabled: true, cooldown: time.Hour}
	gd := &fakeGDClient{level: &model.GDLevel{
		LevelID: 91500192,
		Name:    "Amethyst",
		Author:  "Creator",
		Length:  model.LengthLong,
	}}
	svc := newTestLevelRequestService(requests, users, gate, gd)

	request, err := svc.CreateLevelRequest(validCreateRequest())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if request.LevelName == nil || *request.LevelName != "Amethyst" {
		t.Fatalf("expected metadata applied, got %+v", request)
	}
	if request.LevelLength == nil || *request.LevelLength != model.LengthLong {
		t.Fatalf("expected length applied, got %+v", request.LevelLength)
	}

	stored, err := requests.GetLevelRequest(91500192)
	if err != nil {
		t.Fatalf("request not persisted: %v", err)
	}
	if stored.RequestRating != model.RatingSeven {
		t.Fatalf("expected rating seven, got %s", stored.RequestRating)
	}

	user, err := users.GetUser(500)
	if err != nil {
		t.Fatalf("user not created: %v", err)
	}
	if user.LastRequestTime == nil {
		t.Fatal("expected cooldown stamp on new user")
	}
}

func TestCreateLevelRequestDisabled(t *testing.T) {
	svc := newTestLevelRequestService(newFakeRequestStore(), newFakeUserStore(),
		&fakeGate{requestsEnabled: false}, &fakeGDClient{})

	_, err := svc.CreateLevelRequest(validCreateRequest())
	expectStatus(t, err, http.StatusServiceUnavailable)
}

func TestCreateLevelRequestMalformedLink(t *testing.T) {
	svc := newTestLevelRequestService(newFakeRequestStore(), newFakeUserStore(),
		&fakeGate{requestsEnabled: true}, &fakeGDClient{})

	req := validCreateRequest()
	req.YouTubeVideoLink = "https://example.com/watch?v=abc"
	_, err := svc.CreateLevelRequest(req)
	expectStatus(t, err, http.StatusBadRequest)
}

func TestCreateLevelRequestShortLink(t *testing.T) {
	requests := newFakeRequestStore()
	svc := newTestLevelRequestService(requests, newFakeUserStore(),
		&fakeGate{requestsEnabled: true, cooldown: time.Hour}, &fakeGDClient{})

	req := validCreateRequest()
	req.YouTubeVideoLink = "https://youtu.be/dQw4w9WgXcQ"
	if _, err := svc.CreateLevelRequest(req); err != nil {
		t.Fatalf("youtu.be link rejected: %v", err)
	}
}

func TestCreateLevelRequestDuplicate(t *testing.T) {
	requests := newFakeRequestStore()
	requests.requests[91500192] = &model.LevelRequest{LevelID: 91500192, DiscordUserID: 42}
	svc := newTestLevelRequestService(requests, newFakeUserStore(),
		&fakeGate{requestsEnabled: true}, &fakeGDClient{})

	_, err := svc.CreateLevelRequest(validCreateRequest())
	expectStatus(t, err, http.StatusConflict)
}

func TestCreateLevelRequestCooldown(t *testing.T) {
	users := newFakeUserStore()
	last := time.Now().Add(-30 * time.Minute)
	users.users[500] = &model.User{DiscordID: 500, LastRequestTime: &last}

	svc := newTestLevelRequestService(newFakeRequestStore(), users,
		&fakeGate{requestsEnabled: true, cooldown: time.Hour}, &fakeGDClient{})

	_, err := svc.CreateLevelRequest(validCreateRequest())
	appErr := expectStatus(t, err, http.StatusTooManyRequests)

	data, ok := appErr.Data.(*dto.CooldownData)
	if !ok {
		t.Fatalf("expected CooldownData payload, got %T", appErr.Data)
	}
	if !data.LastRequestTime.Equal(last) {
		t.Fatalf("expected last request time %v, got %v", last, data.LastRequestTime)
	}
	if data.CooldownMinutes != 60 {
		t.Fatalf("expected 60 minute cooldown, got %d", data.CooldownMinutes)
	}
}

func TestCreateLevelRequestCooldownBoundaryInclusive(t *testing.T) {
	users := newFakeUserStore()
	last := time.Now().Add(-time.Hour)
	users.users[500] = &model.User{DiscordID: 500, LastRequestTime: &last}

	svc := newTestLevelRequestService(newFakeRequestStore(), users,
		&fakeGate{requestsEnabled: true, cooldown: time.Hour}, &fakeGDClient{})

	_, err := svc.CreateLevelRequest(validCreateRequest())
	expectStatus(t, err, http.StatusTooManyRequests)
}

func TestCreateLevelRequestCooldownElapsed(t *testing.T) {
	users := newFakeUserStore()
	last := time.Now().Add(-2 * time.Hour)
	users.users[500] = &model.User{DiscordID: 500, LastRequestTime: &last}

	svc := newTestLevelRequestService(newFakeRequestStore(), users,
		&fakeGate{requestsEnabled: true, cooldown: time.Hour}, &fakeGDClient{})

	if _, err := svc.CreateLevelRequest(validCreateRequest()); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	user, _ := users.GetUser(500)
	if !user.LastRequestTime.After(last) {
		t.Fatal("expected cooldown stamp refreshed")
	}
}

func TestCreateLevelRequestGDFailureKeepsCooldownStamp(t *testing.T) {
	requests := newFakeRequestStore()
	users := newFakeUserStore()
	gd := &fakeGDClient{lookupErr: errors.New("upstream down")}
	svc := newTestLevelRequestService(requests, users,
		&fakeGate{requestsEnabled: true, gdRequestsEnabled: true, cooldown: time.Hour}, gd)

	_, err := svc.CreateLevelRequest(validCreateRequest())
	expectStatus(t, err, http.StatusBadGateway)

	if _, err := requests.GetLevelRequest(91500192); err == nil {
		t.Fatal("request should not be stored on GD failure")
	}

	// The failed attempt still consumes the user's cooldown slot.
	user, err := users.GetUser(500)
	if err != nil {
		t.Fatalf("expected user record: %v", err)
	}
	if user.LastRequestTime == nil {
		t.Fatal("expected cooldown stamp to survive GD failure")
	}
}

func TestCreateLevelRequestGDDisabledSkipsLookup(t *testing.T) {
	gd := &fakeGDClient{lookupErr: errors.New("should not be called")}
	svc := newTestLevelRequestService(newFakeRequestStore(), newFakeUserStore(),
		&fakeGate{requestsEnabled: true, gdRequestsEnabled: false, cooldown: time.Hour}, gd)

	request, err := svc.CreateLevelRequest(validCreateRequest())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if len(gd.lookups) != 0 {
		t.Fatal("GD lookup should be skipped when disabled")
	}
	if request.LevelName != nil {
		t.Fatal("metadata should stay empty without a lookup")
	}
}

func TestAttachMessageAndThread(t *testing.T) {
	requests := newFakeRequestStore()
	requests.requests[10] = &model.LevelRequest{LevelID: 10, DiscordUserID: 1}
	svc := newTestLevelRequestService(requests, newFakeUserStore(),
		&fakeGate{requestsEnabled: true}, &fakeGDClient{})

	request, err := svc.AttachMessage(&dto.AttachMessageRequest{LevelID: 10, DiscordMessageID: 777})
	if err != nil {
		t.Fatalf("attach message failed: %v", err)
	}
	if request.DiscordMessageID == nil || *request.DiscordMessageID != 777 {
		t.Fatalf("expected message id 777, got %+v", request.DiscordMessageID)
	}

	request, err = svc.AttachThread(&dto.AttachThreadRequest{LevelID: 10, DiscordThreadID: 888})
	if err != nil {
		t.Fatalf("attach thread failed: %v", err)
	}
	if request.DiscordThreadID == nil || *request.DiscordThreadID != 888 {
		t.Fatalf("expected thread id 888, got %+v", request.DiscordThreadID)
	}
	if request.DiscordMessageID == nil || *request.DiscordMessageID != 777 {
		t.Fatal("attach thread must not clear the message correlation")
	}
}

func TestUpdateLevelRequestPartial(t *testing.T) {
	requests := newFakeRequestStore()
	requests.requests[10] = &model.LevelRequest{
		LevelID:          10,
		DiscordUserID:    1,
		RequestRating:    model.RatingTwo,
		YouTubeVideoLink: "https://youtu.be/original",
	}
	svc := newTestLevelRequestService(requests, newFakeUserStore(),
		&fakeGate{requestsEnabled: true}, &fakeGDClient{})

	rating := string(model.RatingNine)
	request, err := svc.UpdateLevelRequest(&dto.UpdateLevelRequestRequest{LevelID: 10, RequestRating: &rating})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if request.RequestRating != model.RatingNine {
		t.Fatalf("expected rating nine, got %s", request.RequestRating)
	}
	if request.YouTubeVideoLink != "https://youtu.be/original" {
		t.Fatal("absent fields must keep their stored value")
	}
}

func TestGetLevelRequestMissing(t *testing.T) {
	svc := newTestLevelRequestService(newFakeRequestStore(), newFakeUserStore(),
		&fakeGate{requestsEnabled: true}, &fakeGDClient{})

	_, err := svc.GetLevelRequest(404404)
	expectStatus(t, err, http.StatusNotFound)
}

func TestDeleteLevelRequest(t *testing.T) {
	requests := newFakeRequestStore()
	requests.requests[10] = &model.LevelRequest{LevelID: 10, DiscordUserID: 7}
	svc := newTestLevelRequestService(requests, newFakeUserStore(),
		&fakeGate{requestsEnabled: true}, &fakeGDClient{})

	deleted, err := svc.DeleteLevelRequest(10)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if deleted.DiscordUserID != 7 {
		t.Fatalf("expected the removed record back, got %+v", deleted)
	}
	if _, err := svc.DeleteLevelRequest(10); err == nil {
		t.Fatal("second delete should report not found")
	}
}

func TestGetLevelRequestFeedbackFilter(t *testing.T) {
	requests := newFakeRequestStore()
	requests.requests[10] = &model.LevelRequest{LevelID: 10, HasRequestedFeedback: false}
	svc := newTestLevelRequestService(requests, newFakeUserStore(),
		&fakeGate{requestsEnabled: true}, &fakeGDClient{})

	if _, err := svc.GetLevelRequest(10); err != nil {
		t.Fatalf("unfiltered get failed: %v", err)
	}
	if _, err := svc.GetLevelRequest(10, false); err != nil {
		t.Fatalf("matching filter failed: %v", err)
	}
	_, err := svc.GetLevelRequest(10, true)
	expectStatus(t, err, http.StatusNotFound)
}
