package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"regkiosk/internal/config"
)

// departmentOption pairs a department code with its display label.
type departmentOption struct {
	Code  string
	Label string
}

// The selectable set. The code is what travels in the redirect URL.
var departments = []departmentOption{
	{Code: "CSE", Label: "Computer Science"},
	{Code: "ECE", Label: "Electronics and Comm."},
	{Code: "EEE", Label: "Electrical"},
	{Code: "MECH", Label: "Mechanical"},
	{Code: "CIVIL", Label: "Civil"},
	{Code: "IT", Label: "Information Tech."},
}

type rect struct {
	x, y, w, h int
}

func (r rect) contains(px, py int) bool {
	return px >= r.x && px < r.x+r.w && py >= r.y && py < r.y+r.h
}

// ripple is the expanding-and-fading acknowledgment overlay spawned on an
// activated item. It is dropped from the active list once its life is spent.
type ripple struct {
	x, y float64 // center at spawn time
	max  float64 // final radius
	age  int
	life int
}

func gridRows() int {
	return (len(departments) + config.GridColumns - 1) / config.GridColumns
}

func (k *Kiosk) gridTop() int { return 150 }

func (k *Kiosk) departmentRect(i int) rect {
	total := config.GridColumns*config.ButtonWidth + (config.GridColumns-1)*config.ButtonGapX
	startX := (k.viewW - total) / 2
	col := i % config.GridColumns
	row := i / config.GridColumns
	return rect{
		x: startX + col*(config.ButtonWidth+config.ButtonGapX),
		y: k.gridTop() + row*(config.ButtonHeight+config.ButtonGapY),
		w: config.ButtonWidth,
		h: config.ButtonHeight,
	}
}

// selectDepartment records departments[i] as the current choice. Every other
// item is implicitly deselected since selection is keyed by code. Re-picking
// the current item keeps the state but replays the feedback.
func (k *Kiosk) selectDepartment(i int) {
	if i < 0 || i >= len(departments) {
		return
	}
	k.selected = departments[i].Code
	k.labelPulse = durationTicks(config.LabelPulse)
	k.errorTicks = 0

	r := k.departmentRect(i)
	k.ripples = append(k.ripples, ripple{
		x:    float64(r.x + r.w/2),
		y:    float64(r.y + r.h/2),
		max:  float64(r.w) * 0.75,
		life: durationTicks(config.RippleLife),
	})
	k.sound.click()
}

func (k *Kiosk) isSelected(i int) bool {
	return k.selected != "" && departments[i].Code == k.selected
}

func (k *Kiosk) stepRipples() {
	alive := 0
	for i := range k.ripples {
		k.ripples[i].age++
		if k.ripples[i].age >= k.ripples[i].life {
			continue
		}
		k.ripples[alive] = k.ripples[i]
		alive++
	}
	k.ripples = k.ripples[:alive]
}

func (k *Kiosk) drawSelector(screen *ebiten.Image) {
	// Selection label, pulsing briefly after each pick
	label := "Select your department"
	if k.selected != "" {
		label = "Selected: " + k.selected
	}
	lx := k.viewW/2 - len(label)*8/2
	ly := 110
	if k.labelPulse > 0 {
		pulse := float64(k.labelPulse) / float64(durationTicks(config.LabelPulse))
		vector.DrawFilledRect(screen, float32(lx-10), float32(ly-6), float32(len(label)*8+20), 28,
			rgba(90, 130, 220, uint8(90*pulse)), false)
	}
	ebitenutil.DebugPrintAt(screen, label, lx, ly)

	for i, opt := range departments {
		r := k.departmentRect(i)

		var fill [3]uint8
		switch {
		case k.isSelected(i):
			fill = [3]uint8{60, 90, 170}
		case k.hovered == i:
			fill = [3]uint8{55, 65, 100}
		default:
			fill = [3]uint8{38, 45, 70}
		}
		vector.DrawFilledRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h),
			rgba(fill[0], fill[1], fill[2], 255), false)

		border := rgba(90, 105, 150, 255)
		if k.isSelected(i) {
			border = rgba(150, 180, 255, 255)
		}
		vector.StrokeRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), 2, border, false)
		if k.focus == i {
			vector.StrokeRect(screen, float32(r.x-4), float32(r.y-4), float32(r.w+8), float32(r.h+8), 1,
				rgba(200, 215, 255, 200), false)
		}

		ebitenutil.DebugPrintAt(screen, opt.Code, r.x+(r.w-len(opt.Code)*8)/2, r.y+14)
		ebitenutil.DebugPrintAt(screen, opt.Label, r.x+(r.w-len(opt.Label)*8)/2, r.y+34)
	}

	for i := range k.ripples {
		rp := &k.ripples[i]
		t := float64(rp.age) / float64(rp.life)
		radius := t * rp.max
		vector.StrokeCircle(screen, float32(rp.x), float32(rp.y), float32(radius), 3,
			rgba(170, 200, 255, uint8(200*(1-t))), false)
	}
}
