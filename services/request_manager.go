package services

import (
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
)

// RequestManagerService holds the process-wide request gate: cooldown
// duration and the two enable flags. Reads and writes are individually
// atomic; a create call that straddles a flip may observe both states.
// Last write wins, nothing is persisted.
type RequestManagerService struct {
	context.DefaultService

	mu sync.RWMutex

	cooldown          time.Duration
	requestsEnabled   bool
	gdRequestsEnabled bool
}

const REQUEST_MANAGER_SVC = "request_manager_svc"

const defaultCooldownMinutes = 60

func (svc RequestManagerService) Id() string {
	return REQUEST_MANAGER_SVC
}

func (svc *RequestManagerService) Configure(ctx *context.Context) error {
	svc.loadDefaults()
	return svc.DefaultService.Configure(ctx)
}

func (svc *RequestManagerService) loadDefaults() {
	minutes := int64(defaultCooldownMinutes)
	if raw := os.Getenv("REQUEST_COOLDOWN_MINUTES"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed >= 0 {
			minutes = parsed
		}
	}

	svc.cooldown = time.Duration(minutes) * time.Minute
	svc.requestsEnabled = true
	svc.gdRequestsEnabled = true
}

func (svc *RequestManagerService) Start() error {
	return nil
}

func (svc *RequestManagerService) Cooldown() time.Duration {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return svc.cooldown
}

func (svc *RequestManagerService) SetCooldown(minutes uint64) {
	svc.mu.Lock()
	svc.cooldown = time.Duration(minutes) * time.Minute
	svc.mu.Unlock()
	log.WithField("minutes", minutes).Info("Request cooldown updated")
}

func (svc *RequestManagerService) RequestsEnabled() bool {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return svc.requestsEnabled
}

func (svc *RequestManagerService) SetRequestsEnabled(enabled bool) {
	svc.mu.Lock()
	svc.requestsEnabled = enabled
	svc.mu.Unlock()
	log.WithField("enabled", enabled).Info("Level requests toggled")
}

func (svc *RequestManagerService) GDRequestsEnabled() bool {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return svc.gdRequestsEnabled
}

func (svc *RequestManagerService) SetGDRequestsEnabled(enabled bool) {
	svc.mu.Lock()
	svc.gdRequestsEnabled = enabled
	svc.mu.Unlock()
	log.WithField("enabled", enabled).Info("GD metadata lookups toggled")
}
