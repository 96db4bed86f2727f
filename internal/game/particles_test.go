package game

import (
	"math/rand"
	"testing"

	"regkiosk/internal/config"
)

func TestRegenerateCountAndBounds(t *testing.T) {
	f := newParticleField(50, rand.New(rand.NewSource(1)))
	f.regenerate(960, 640)

	if len(f.particles) != 50 {
		t.Fatalf("expected 50 particles, got %d", len(f.particles))
	}

	delayMax := durationTicks(config.ParticleDelayMax)
	riseMin := durationTicks(config.ParticleRiseMin)
	riseMax := durationTicks(config.ParticleRiseMax)

	for i, p := range f.particles {
		if p.size < config.ParticleSizeMin || p.size >= config.ParticleSizeMax {
			t.Errorf("particle %d: size %v out of bounds", i, p.size)
		}
		if p.x < 0 || p.x >= 960 {
			t.Errorf("particle %d: x %v out of bounds", i, p.x)
		}
		if p.delay < 0 || p.delay >= delayMax {
			t.Errorf("particle %d: delay %d out of bounds", i, p.delay)
		}
		if p.duration < riseMin || p.duration >= riseMax {
			t.Errorf("particle %d: duration %d out of bounds", i, p.duration)
		}
		if p.hue != config.ParticleHueAzure && p.hue != config.ParticleHueViola {
			t.Errorf("particle %d: hue %v not in the two-hue palette", i, p.hue)
		}
	}
}

func TestRegenerateReplacesPrior(t *testing.T) {
	f := newParticleField(10, rand.New(rand.NewSource(2)))
	f.regenerate(960, 640)

	for i := 0; i < 500; i++ {
		f.step()
	}

	f.regenerate(800, 600)
	if len(f.particles) != 10 {
		t.Fatalf("expected 10 particles after regeneration, got %d", len(f.particles))
	}
	if f.w != 800 || f.h != 600 {
		t.Fatalf("field did not adopt the new size: %dx%d", f.w, f.h)
	}
	for i, p := range f.particles {
		if p.age != 0 {
			t.Errorf("particle %d: regeneration kept a prior age %d", i, p.age)
		}
	}
}

func TestRegenerateGuards(t *testing.T) {
	f := newParticleField(10, rand.New(rand.NewSource(3)))
	f.regenerate(0, 640)
	if len(f.particles) != 0 {
		t.Fatalf("expected no particles for a zero-width surface")
	}

	empty := newParticleField(0, rand.New(rand.NewSource(4)))
	empty.regenerate(960, 640)
	if len(empty.particles) != 0 {
		t.Fatalf("expected no particles for a zero count")
	}
}

func TestStepWrapsRise(t *testing.T) {
	f := newParticleField(5, rand.New(rand.NewSource(5)))
	f.regenerate(960, 640)

	// Run far past the longest possible delay plus rise.
	total := durationTicks(config.ParticleDelayMax) + 2*durationTicks(config.ParticleRiseMax)
	for i := 0; i < total; i++ {
		f.step()
	}
	for i, p := range f.particles {
		if p.delay != 0 {
			t.Errorf("particle %d: delay %d not yet spent", i, p.delay)
		}
		if p.age < 0 || p.age >= p.duration {
			t.Errorf("particle %d: age %d escaped [0,%d)", i, p.age, p.duration)
		}
	}
}
