package services

import (
	"testing"
	"time"
)

func TestRequestManagerDefaults(t *testing.T) {
	t.Setenv("REQUEST_COOLDOWN_MINUTES", "")

	svc := &RequestManagerService{}
	svc.loadDefaults()

	if !svc.RequestsEnabled() {
		t.Fatal("requests should default to enabled")
	}
	if !svc.GDRequestsEnabled() {
		t.Fatal("GD lookups should default to enabled")
	}
	if svc.Cooldown() != time.Hour {
		t.Fatalf("expected 60 minute default cooldown, got %v", svc.Cooldown())
	}
}

func TestRequestManagerSetters(t *testing.T) {
	svc := &RequestManagerService{}
	svc.loadDefaults()

	svc.SetCooldown(15)
	if svc.Cooldown() != 15*time.Minute {
		t.Fatalf("expected 15 minute cooldown, got %v", svc.Cooldown())
	}

	svc.SetRequestsEnabled(false)
	if svc.RequestsEnabled() {
		t.Fatal("expected requests disabled")
	}

	svc.SetGDRequestsEnabled(false)
	if svc.GDRequestsEnabled() {
		t.Fatal("expected GD lookups disabled")
	}

	svc.SetCooldown(0)
	if svc.Cooldown() != 0 {
		t.Fatalf("expected zero cooldown, got %v", svc.Cooldown())
	}
}
