package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	WindowWidth  = 960
	WindowHeight = 640

	// Department grid metrics
	GridColumns  = 3
	ButtonWidth  = 240
	ButtonHeight = 64
	ButtonGapX   = 28
	ButtonGapY   = 24

	RegisterWidth  = 280
	RegisterHeight = 56
)

// Particle parameter bounds. Size is in pixels, the rest are animation
// timings; hue is always one of exactly two values.
const (
	ParticleSizeMin  = 2.0
	ParticleSizeMax  = 6.0
	ParticleDelayMax = 5 * time.Second
	ParticleRiseMin  = 6 * time.Second
	ParticleRiseMax  = 12 * time.Second
	ParticleHueAzure = 210.0
	ParticleHueViola = 280.0
)

// Fixed animation timings
const (
	LoadingFade    = 600 * time.Millisecond
	RippleLife     = 500 * time.Millisecond
	LabelPulse     = 350 * time.Millisecond
	ShakeLife      = 400 * time.Millisecond
	ErrorDismiss   = 3 * time.Second
	RedirectDelay  = 500 * time.Millisecond
	ResizeDebounce = 250 * time.Millisecond
)

// Config is the environment-backed configuration surface. Every option has a
// working default, so an empty environment is fully valid.
type Config struct {
	ParticleCount int           `env:"KIOSK_PARTICLE_COUNT" envDefault:"50"`
	LoadingDwell  time.Duration `env:"KIOSK_LOADING_DWELL" envDefault:"1500ms"`

	// AnimationDelay is recognized for compatibility with older deployments
	// but nothing consumes it.
	AnimationDelay time.Duration `env:"KIOSK_ANIMATION_DELAY" envDefault:"100ms"`

	CSEFormURL     string `env:"KIOSK_CSE_FORM_URL" envDefault:"https://forms.example.com/techfest-cse"`
	GeneralFormURL string `env:"KIOSK_GENERAL_FORM_URL" envDefault:"https://forms.example.com/techfest-general"`

	Mute bool `env:"KIOSK_MUTE" envDefault:"false"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
