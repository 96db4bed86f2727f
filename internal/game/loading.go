package game

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"regkiosk/internal/config"
)

// loadingOverlay is the splash shown while the kiosk "boots". It dwells at
// full opacity, fades over a fixed period, then is removed outright and
// never drawn again. Not cancellable.
type loadingOverlay struct {
	dwell int // ticks left at full opacity
	fade  int // fade ticks left once the dwell is spent
	spin  int
	gone  bool
}

func newLoadingOverlay(dwell time.Duration) *loadingOverlay {
	return &loadingOverlay{
		dwell: durationTicks(dwell),
		fade:  durationTicks(config.LoadingFade),
	}
}

func (o *loadingOverlay) step() {
	if o.gone {
		return
	}
	o.spin++
	if o.dwell > 0 {
		o.dwell--
		return
	}
	o.fade--
	if o.fade <= 0 {
		o.gone = true
	}
}

// blocking reports whether the overlay still covers the page and should
// swallow input.
func (o *loadingOverlay) blocking() bool { return !o.gone }

func (o *loadingOverlay) alpha() float64 {
	if o.gone {
		return 0
	}
	if o.dwell > 0 {
		return 1
	}
	return float64(o.fade) / float64(durationTicks(config.LoadingFade))
}

func (o *loadingOverlay) draw(screen *ebiten.Image, w, h int) {
	if o.gone {
		return
	}
	a := o.alpha()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), rgba(8, 10, 18, uint8(255*a)), false)

	cx := float64(w) / 2
	cy := float64(h) / 2
	for i := 0; i < 8; i++ {
		ang := float64(o.spin)*0.08 + float64(i)*math.Pi/4
		dotA := (0.25 + 0.75*float64(i)/8) * a
		x := cx + math.Cos(ang)*26
		y := cy + math.Sin(ang)*26
		vector.DrawFilledCircle(screen, float32(x), float32(y), 4, rgba(120, 160, 255, uint8(255*dotA)), false)
	}

	if a > 0.5 {
		title := "TechFest Registration"
		ebitenutil.DebugPrintAt(screen, title, int(cx)-len(title)*8/2, int(cy)+48)
	}
}
