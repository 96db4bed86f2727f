package game

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"regkiosk/internal/config"
)

// particle is a decorative background mote. It waits out its delay, then
// rises from below the bottom edge to above the top edge over its duration
// and rewraps. All parameters are drawn once at regeneration and never
// re-derived.
type particle struct {
	x        float64 // column in pixels
	size     float64
	hue      float64
	delay    int // ticks before the first rise starts
	duration int // ticks for one full rise
	age      int // ticks into the current rise
}

// particleField owns the decorative backdrop. Regeneration discards every
// particle and draws a fresh set, so repeated calls fully replace prior
// state.
type particleField struct {
	particles []particle
	count     int
	w, h      int
	rng       *rand.Rand
}

func newParticleField(count int, rng *rand.Rand) *particleField {
	return &particleField{count: count, rng: rng}
}

func (f *particleField) regenerate(w, h int) {
	if w <= 0 || h <= 0 || f.count <= 0 {
		f.particles = nil
		return
	}
	f.w, f.h = w, h
	f.particles = make([]particle, f.count)
	for i := range f.particles {
		hue := config.ParticleHueAzure
		if f.rng.Intn(2) == 1 {
			hue = config.ParticleHueViola
		}
		f.particles[i] = particle{
			x:        f.rng.Float64() * float64(w),
			size:     config.ParticleSizeMin + f.rng.Float64()*(config.ParticleSizeMax-config.ParticleSizeMin),
			hue:      hue,
			delay:    f.rng.Intn(durationTicks(config.ParticleDelayMax)),
			duration: durationTicks(config.ParticleRiseMin) + f.rng.Intn(durationTicks(config.ParticleRiseMax-config.ParticleRiseMin)),
		}
	}
}

func (f *particleField) step() {
	for i := range f.particles {
		p := &f.particles[i]
		if p.delay > 0 {
			p.delay--
			continue
		}
		p.age++
		if p.age >= p.duration {
			p.age = 0
		}
	}
}

func (f *particleField) draw(screen *ebiten.Image) {
	for i := range f.particles {
		p := &f.particles[i]
		if p.delay > 0 {
			continue
		}
		progress := float64(p.age) / float64(p.duration)
		travel := float64(f.h) + 2*p.size
		y := float64(f.h) + p.size - progress*travel

		// Fade in near the bottom, out near the top.
		fade := clamp01(progress*6) * clamp01((1-progress)*6)
		r, g, b := hsvToRgb(p.hue, 0.6, 0.95)
		clr := rgba(r, g, b, uint8(170*fade))
		vector.DrawFilledCircle(screen, float32(p.x), float32(y), float32(p.size), clr, false)
	}
}
