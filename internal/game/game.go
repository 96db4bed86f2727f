// Package game implements the registration kiosk: a loading splash, a
// decorative particle backdrop, a single-select department grid and a
// register action that hands the user off to an external form in the
// system browser.
package game

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"regkiosk/internal/config"
)

const (
	hoverNone = -1
	focusNone = -1
)

// The register control shares the index space with the grid, one slot past
// the last department.
var (
	hoverRegister = len(departments)
	focusRegister = len(departments)
)

// Kiosk owns all page-session state: the single optional department
// selection, focus and hover, the validation error, the submission latch and
// every running tick countdown. All mutation happens on the update loop.
type Kiosk struct {
	cfg config.Config

	loading  *loadingOverlay
	field    *particleField
	sound    *soundBank
	navigate Navigator

	selected   string // department code, "" until the first pick
	focus      int
	hovered    int
	labelPulse int // ticks left on the selection-label highlight
	ripples    []ripple
	errorTicks int // ticks left on the validation error, 0 = hidden
	shakeTicks int
	submitting bool
	redirectIn int // ticks until navigation once submitting

	viewW, viewH int
	lastW, lastH int
	resizeWait   int // trailing debounce before particle regeneration

	tick    int
	prevKey map[ebiten.Key]bool
}

func New(cfg config.Config, nav Navigator) *Kiosk {
	k := &Kiosk{
		cfg:      cfg,
		loading:  newLoadingOverlay(cfg.LoadingDwell),
		field:    newParticleField(cfg.ParticleCount, rand.New(rand.NewSource(time.Now().UnixNano()))),
		navigate: nav,
		focus:    focusNone,
		hovered:  hoverNone,
		viewW:    config.WindowWidth,
		viewH:    config.WindowHeight,
		prevKey:  map[ebiten.Key]bool{},
	}
	k.lastW, k.lastH = k.viewW, k.viewH
	k.field.regenerate(k.viewW, k.viewH)

	if !cfg.Mute {
		snd, err := newSoundBank()
		if err != nil {
			log.Printf("audio unavailable, continuing silent: %v", err)
		} else {
			k.sound = snd
		}
	}
	return k
}

func (k *Kiosk) Update() error {
	justPressed := func(key ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(key)
		jp := pressed && !k.prevKey[key]
		k.prevKey[key] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if k.loading.blocking() {
		k.hovered = hoverNone
		return k.step()
	}

	mx, my := ebiten.CursorPosition()
	k.hovered = k.hitTest(mx, my)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && k.hovered != hoverNone {
		k.activate(k.hovered)
	}

	if justPressed(ebiten.KeyTab) || justPressed(ebiten.KeyArrowRight) || justPressed(ebiten.KeyArrowDown) {
		k.moveFocus(1)
	}
	if justPressed(ebiten.KeyArrowLeft) || justPressed(ebiten.KeyArrowUp) {
		k.moveFocus(-1)
	}
	if justPressed(ebiten.KeyEnter) || justPressed(ebiten.KeySpace) {
		if k.focus != focusNone {
			k.activate(k.focus)
		}
	}

	return k.step()
}

// activate dispatches a pointer click or keyboard activation on slot i.
func (k *Kiosk) activate(i int) {
	if i == focusRegister {
		k.submit()
		return
	}
	k.selectDepartment(i)
}

func (k *Kiosk) hitTest(px, py int) int {
	if k.registerRect().contains(px, py) {
		return hoverRegister
	}
	for i := range departments {
		if k.departmentRect(i).contains(px, py) {
			return i
		}
	}
	return hoverNone
}

func (k *Kiosk) moveFocus(delta int) {
	slots := len(departments) + 1
	if k.focus == focusNone {
		if delta > 0 {
			k.focus = 0
		} else {
			k.focus = slots - 1
		}
		return
	}
	k.focus = (k.focus + delta + slots) % slots
}

// step advances every tick countdown by one update. The redirect countdown
// is the only one with a side effect beyond visuals: on expiry it launches
// the browser and ends the run.
func (k *Kiosk) step() error {
	k.tick++
	if k.viewW != k.lastW || k.viewH != k.lastH {
		k.lastW, k.lastH = k.viewW, k.viewH
		k.resizeWait = durationTicks(config.ResizeDebounce)
	}
	k.loading.step()
	k.field.step()
	k.stepRipples()
	if k.labelPulse > 0 {
		k.labelPulse--
	}
	if k.shakeTicks > 0 {
		k.shakeTicks--
	}
	if k.errorTicks > 0 {
		k.errorTicks--
	}
	if k.resizeWait > 0 {
		k.resizeWait--
		if k.resizeWait == 0 {
			k.field.regenerate(k.viewW, k.viewH)
		}
	}
	if k.submitting && k.redirectIn > 0 {
		k.redirectIn--
		if k.redirectIn == 0 {
			target := redirectURL(k.cfg.CSEFormURL, k.cfg.GeneralFormURL, k.selected)
			if err := k.navigate(target); err != nil {
				return fmt.Errorf("open registration form: %w", err)
			}
			return ebiten.Termination
		}
	}
	return nil
}

func (k *Kiosk) Draw(screen *ebiten.Image) {
	k.drawBackground(screen)
	k.field.draw(screen)

	title := "TechFest - Event Registration"
	ebitenutil.DebugPrintAt(screen, title, k.viewW/2-len(title)*8/2, 48)

	k.drawSelector(screen)
	k.drawRegister(screen)

	hint := "Click a department or use Tab/Arrows + Enter. Esc quits."
	ebitenutil.DebugPrintAt(screen, hint, 12, k.viewH-24)

	k.loading.draw(screen, k.viewW, k.viewH)
}

func (k *Kiosk) drawBackground(screen *ebiten.Image) {
	for y := 0; y < k.viewH; y += 4 {
		ratio := float64(y) / float64(k.viewH)
		r := uint8(14 + 10*math.Sin(float64(k.tick)*0.004+ratio*math.Pi))
		g := uint8(16 + 8*math.Cos(float64(k.tick)*0.003+ratio*math.Pi))
		b := uint8(30 + 18*math.Sin(float64(k.tick)*0.005+ratio*math.Pi))
		vector.DrawFilledRect(screen, 0, float32(y), float32(k.viewW), 4, rgba(r, g, b, 255), false)
	}
}

func (k *Kiosk) Layout(outsideWidth, outsideHeight int) (int, int) {
	k.viewW, k.viewH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
