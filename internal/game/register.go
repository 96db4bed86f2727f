package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"regkiosk/internal/config"
)

const errorText = "Please select a department before registering"

func (k *Kiosk) registerRect() rect {
	gridBottom := k.gridTop() + gridRows()*(config.ButtonHeight+config.ButtonGapY) - config.ButtonGapY
	return rect{
		x: (k.viewW - config.RegisterWidth) / 2,
		y: gridBottom + 36,
		w: config.RegisterWidth,
		h: config.RegisterHeight,
	}
}

// submit runs the two-branch registration decision. Without a selection it
// raises the transient validation error and the shake rejection; with one it
// latches the submitting state and arms the redirect countdown. Once
// submitting, further activations are ignored.
func (k *Kiosk) submit() {
	if k.submitting {
		return
	}
	if k.selected == "" {
		k.errorTicks = durationTicks(config.ErrorDismiss)
		k.shakeTicks = durationTicks(config.ShakeLife)
		k.sound.reject()
		return
	}
	k.errorTicks = 0
	k.submitting = true
	k.redirectIn = durationTicks(config.RedirectDelay)
}

func (k *Kiosk) errorVisible() bool { return k.errorTicks > 0 }

// shakeOffset is the horizontal displacement of the register control during
// the rejection animation, decaying to zero.
func (k *Kiosk) shakeOffset() float64 {
	if k.shakeTicks <= 0 {
		return 0
	}
	t := float64(k.shakeTicks) / float64(durationTicks(config.ShakeLife))
	return math.Sin(float64(k.shakeTicks)*1.3) * 6 * t
}

func (k *Kiosk) drawRegister(screen *ebiten.Image) {
	r := k.registerRect()
	x := float32(float64(r.x) + k.shakeOffset())

	var fill [3]uint8
	switch {
	case k.submitting:
		fill = [3]uint8{45, 50, 65}
	case k.hovered == hoverRegister:
		fill = [3]uint8{70, 140, 90}
	default:
		fill = [3]uint8{55, 120, 75}
	}
	vector.DrawFilledRect(screen, x, float32(r.y), float32(r.w), float32(r.h),
		rgba(fill[0], fill[1], fill[2], 255), false)
	vector.StrokeRect(screen, x, float32(r.y), float32(r.w), float32(r.h), 2,
		rgba(110, 170, 130, 255), false)
	if k.focus == focusRegister {
		vector.StrokeRect(screen, x-4, float32(r.y-4), float32(r.w+8), float32(r.h+8), 1,
			rgba(200, 255, 215, 200), false)
	}

	label := "Register Now"
	if k.submitting {
		label = "Redirecting..."
	}
	ebitenutil.DebugPrintAt(screen, label, int(x)+(r.w-len(label)*8)/2, r.y+(r.h-8)/2)

	if k.errorVisible() {
		ex := k.viewW/2 - len(errorText)*8/2
		ey := r.y + r.h + 22
		vector.DrawFilledRect(screen, float32(ex-10), float32(ey-6), float32(len(errorText)*8+20), 28,
			rgba(120, 40, 45, 220), false)
		ebitenutil.DebugPrintAt(screen, errorText, ex, ey)
	}
}
