package config

import (
	"os"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"KIOSK_PARTICLE_COUNT",
		"KIOSK_LOADING_DWELL",
		"KIOSK_ANIMATION_DELAY",
		"KIOSK_CSE_FORM_URL",
		"KIOSK_GENERAL_FORM_URL",
		"KIOSK_MUTE",
	} {
		// t.Setenv registers the restore; Unsetenv leaves the variable
		// absent for the test body.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ParticleCount != 50 {
		t.Errorf("ParticleCount = %d, want 50", cfg.ParticleCount)
	}
	if cfg.LoadingDwell != 1500*time.Millisecond {
		t.Errorf("LoadingDwell = %v, want 1.5s", cfg.LoadingDwell)
	}
	if cfg.AnimationDelay != 100*time.Millisecond {
		t.Errorf("AnimationDelay = %v, want 100ms", cfg.AnimationDelay)
	}
	if cfg.CSEFormURL == "" || cfg.GeneralFormURL == "" {
		t.Errorf("form URLs must default to non-empty values")
	}
	if cfg.Mute {
		t.Errorf("Mute must default to false")
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("KIOSK_PARTICLE_COUNT", "10")
	t.Setenv("KIOSK_LOADING_DWELL", "250ms")
	t.Setenv("KIOSK_CSE_FORM_URL", "https://forms.example.com/alt-cse?src=test")
	t.Setenv("KIOSK_MUTE", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ParticleCount != 10 {
		t.Errorf("ParticleCount = %d, want 10", cfg.ParticleCount)
	}
	if cfg.LoadingDwell != 250*time.Millisecond {
		t.Errorf("LoadingDwell = %v, want 250ms", cfg.LoadingDwell)
	}
	if cfg.CSEFormURL != "https://forms.example.com/alt-cse?src=test" {
		t.Errorf("CSEFormURL = %q", cfg.CSEFormURL)
	}
	if !cfg.Mute {
		t.Errorf("Mute override not applied")
	}
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("KIOSK_LOADING_DWELL", "soon")

	if _, err := Load(); err == nil {
		t.Fatalf("expected an error for a malformed duration")
	}
}
