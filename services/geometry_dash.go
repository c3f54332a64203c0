package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	appContext "github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/quasar-gd/quasar_api/model"
)

// GeometryDashService talks to the Boomlings servers: level metadata lookups
// for the request workflow and star/feature suggestions for the moderation
// workflow. Lookups are cached in Redis for a day; the cache is best-effort
// and the service works without it.
type GeometryDashService struct {
	appContext.DefaultService

	httpClient *http.Client
	redisSvc   *RedisService

	baseURL     string
	accountID   string
	gjp         string
	cacheExpiry time.Duration
}

const GEOMETRY_DASH_SVC = "geometry_dash_svc"

const gdSecret = "Wmfd2893gb7"

// ErrGDLevelNotFound marks a lookup whose ID matched nothing upstream.
var ErrGDLevelNotFound = errors.New("level not found on gd servers")

func (svc GeometryDashService) Id() string {
	return GEOMETRY_DASH_SVC
}

func (svc *GeometryDashService) Configure(ctx *appContext.Context) error {
	svc.httpClient = &http.Client{
		Timeout: 10 * time.Second,
	}
	svc.baseURL = os.Getenv("GD_BASE_URL")
	if svc.baseURL == "" {
		svc.baseURL = "http://www.boomlings.com/database"
	}
	svc.accountID = os.Getenv("GD_ACCOUNT_ID")
	svc.gjp = os.Getenv("GD_GJP")
	svc.cacheExpiry = 24 * time.Hour

	return svc.DefaultService.Configure(ctx)
}

func (svc *GeometryDashService) Start() error {
	if redisSvc, ok := svc.Service(REDIS_SVC).(*RedisService); ok {
		svc.redisSvc = redisSvc
	}
	return nil
}

// GetLevelInfo fetches canonical level metadata by ID.
func (svc *GeometryDashService) GetLevelInfo(levelID uint64) (*model.GDLevel, error) {
	ctx := context.Background()
	cacheKey := fmt.Sprintf("gd:level:%d", levelID)

	if svc.redisSvc != nil {
		var cached model.GDLevel
		if err := svc.redisSvc.GetJSON(ctx, cacheKey, &cached); err == nil && cached.LevelID != 0 {
			log.WithField("level_id", levelID).Debug("GD level cache hit")
			return &cached, nil
		}
	}

	form := url.Values{}
	form.Set("gameVersion", "21")
	form.Set("binaryVersion", "35")
	form.Set("type", "0")
	form.Set("str", strconv.FormatUint(levelID, 10))
	form.Set("secret", gdSecret)

	body, err := svc.post("/getGJLevels21.php", form)
	if err != nil {
		return nil, err
	}

	level, err := parseGetLevelsResponse(levelID, body)
	if err != nil {
		return nil, err
	}

	if svc.redisSvc != nil {
		if err := svc.redisSvc.Set(ctx, cacheKey, level, svc.cacheExpiry); err != nil {
			log.WithError(err).WithField("level_id", levelID).Warn("Failed to cache GD level")
		}
	}

	return level, nil
}

// SendLevel dispatches a moderator's suggestion to the GD servers.
func (svc *GeometryDashService) SendLevel(decision *model.ModerationDecision) error {
	form := url.Values{}
	form.Set("accountID", svc.accountID)
	form.Set("gjp2", svc.gjp)
	form.Set("levelID", strconv.FormatUint(decision.LevelID, 10))
	form.Set("stars", strconv.Itoa(decision.SuggestedScore.Stars()))
	form.Set("feature", strconv.Itoa(decision.SuggestedRating.FeatureScore()))
	form.Set("secret", gdSecret)

	body, err := svc.post("/suggestGJStars20.php", form)
	if err != nil {
		return err
	}

	if strings.TrimSpace(body) != "1" {
		return fmt.Errorf("gd servers rejected suggestion for level %d: %q", decision.LevelID, body)
	}
	return nil
}

func (svc *GeometryDashService) post(path string, form url.Values) (string, error) {
	resp, err := svc.httpClient.Post(
		svc.baseURL+path,
		"application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		log.WithError(err).Error("Error calling GD servers")
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gd servers returned status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// parseGetLevelsResponse decodes the colon-separated getGJLevels payload:
// levels '#' creators '#' songs '#' page info. Level fields come in k:v
// pairs; creator entries are playerID:name:accountID.
func parseGetLevelsResponse(levelID uint64, body string) (*model.GDLevel, error) {
	if strings.TrimSpace(body) == "-1" {
		return nil, ErrGDLevelNotFound
	}

	segments := strings.Split(body, "#")
	if len(segments) < 2 {
		return nil, fmt.Errorf("malformed gd response for level %d", levelID)
	}

	levels := strings.Split(segments[0], "|")
	if len(levels) == 0 || levels[0] == "" {
		return nil, ErrGDLevelNotFound
	}

	fields := splitFields(levels[0])
	id, err := strconv.ParseUint(fields["1"], 10, 64)
	if err != nil || id != levelID {
		return nil, ErrGDLevelNotFound
	}

	rawLength, err := strconv.Atoi(fields["15"])
	if err != nil {
		return nil, fmt.Errorf("malformed gd length field for level %d: %w", levelID, err)
	}
	length, err := model.LevelLengthFromGD(rawLength)
	if err != nil {
		return nil, err
	}

	level := &model.GDLevel{
		LevelID: levelID,
		Name:    fields["2"],
		Length:  length,
	}

	// Resolve the author through the creators segment.
	playerID := fields["6"]
	for _, entry := range strings.Split(segments[1], "|") {
		parts := strings.Split(entry, ":")
		if len(parts) >= 2 && parts[0] == playerID {
			level.Author = parts[1]
			break
		}
	}

	return level, nil
}

func splitFields(entry string) map[string]string {
	parts := strings.Split(entry, ":")
	fields := make(map[string]string, len(parts)/2)
	for i := 0; i+1 < len(parts); i += 2 {
		fields[parts[i]] = parts[i+1]
	}
	return fields
}
