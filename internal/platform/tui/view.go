package tui

import (
	"fmt"

	"github.com/okarpov/cowherd/internal/config"
	"github.com/okarpov/cowherd/internal/sim"
)

// Characters used for game elements.
const (
	WaterChar    = '~'
	FenceChar    = '═'
	GatePostChar = '╬'
	CowChar      = 'Ω'
	DrownChar    = 'ω'
	FarmerChar   = '@'
	SafeChar     = '·'
)

// fieldView maps simulation field coordinates onto the screen buffer. The
// top screen row is reserved for the HUD; the field y axis points up, so the
// ditch lands at the bottom of the terminal.
type fieldView struct {
	field   config.FieldConfig
	screenW int
	screenH int // Rows available to the field, excluding the HUD row
}

func newFieldView(field config.FieldConfig, screenW, screenH int) fieldView {
	if screenW < 1 {
		screenW = 1
	}
	if screenH < 2 {
		screenH = 2
	}
	return fieldView{
		field:   field,
		screenW: screenW,
		screenH: screenH - 1,
	}
}

// cell converts a field point to screen coordinates.
func (v fieldView) cell(x, y float64) (int, int) {
	cx := int(x / v.field.Width * float64(v.screenW))
	cy := 1 + int((1-y/v.field.Height)*float64(v.screenH-1))
	return cx, cy
}

// point converts a screen cell (e.g. a mouse click) to a field point at the
// cell's center.
func (v fieldView) point(cx, cy int) (float64, float64) {
	x := (float64(cx) + 0.5) / float64(v.screenW) * v.field.Width
	y := (1 - (float64(cy)-0.5)/float64(v.screenH-1)) * v.field.Height
	return x, y
}

// draw renders one snapshot into the screen buffer.
func (v fieldView) draw(dst *Screen, snap sim.Snapshot) {
	dst.Clear()

	// Safe zone pasture above the fence.
	_, fenceRow := v.cell(0, v.field.FenceY)
	for y := 1; y < fenceRow; y++ {
		for x := 0; x < v.screenW; x += 2 {
			dst.SetColored(x, y, SafeChar, ColorGreen)
		}
	}

	// Fence with the gate gap.
	opening := snap.Gate.FullWidth * snap.Gate.OpenAmount
	gapLeft, _ := v.cell(snap.Gate.CenterX-opening/2, 0)
	gapRight, _ := v.cell(snap.Gate.CenterX+opening/2, 0)
	for x := 0; x < v.screenW; x++ {
		if snap.Gate.OpenAmount > 0 && x > gapLeft && x < gapRight {
			continue
		}
		dst.SetColored(x, fenceRow, FenceChar, ColorYellow)
	}
	postLeft, _ := v.cell(snap.Gate.CenterX-snap.Gate.FullWidth/2, 0)
	postRight, _ := v.cell(snap.Gate.CenterX+snap.Gate.FullWidth/2, 0)
	dst.SetColored(postLeft, fenceRow, GatePostChar, ColorOrange)
	dst.SetColored(postRight, fenceRow, GatePostChar, ColorOrange)

	// Ditch water at the bottom.
	_, ditchRow := v.cell(0, v.field.DitchTop)
	for y := ditchRow; y <= v.screenH; y++ {
		for x := 0; x < v.screenW; x++ {
			dst.SetColored(x, y, WaterChar, ColorBlue)
		}
	}

	// Cows.
	for _, c := range snap.Cows {
		cx, cy := v.cell(c.X, c.Y)
		switch c.State {
		case sim.CowDrowning:
			dst.SetColored(cx, cy, DrownChar, ColorBrightCyan)
			// Countdown above the drowning cow so the player can triage.
			dst.DrawTextColored(cx, cy-1, fmt.Sprintf("%.0f", c.DrownRemaining), ColorWhite)
		default:
			dst.SetColored(cx, cy, CowChar, ColorWhite)
		}
	}

	// Farmer on top.
	fx, fy := v.cell(snap.Farmer.X, snap.Farmer.Y)
	color := ColorBrightYellow
	if snap.Farmer.Dragging {
		color = ColorOrange
	}
	dst.SetColored(fx, fy, FarmerChar, color)

	// HUD.
	hud := fmt.Sprintf(" Score: %d  Lives: %d  Level: %d  Gate: %s  %.0fs ",
		snap.Score, snap.Lives, snap.Level, snap.Gate.State, snap.Elapsed)
	dst.DrawText(1, 0, hud)
}
