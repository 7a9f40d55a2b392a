package tui

import (
	"math"
	"strings"
	"testing"

	"github.com/okarpov/cowherd/internal/config"
	"github.com/okarpov/cowherd/internal/sim"
)

func testView(t *testing.T, screenW, screenH int) fieldView {
	t.Helper()
	return newFieldView(config.Default().Field, screenW, screenH)
}

func TestViewOrientation(t *testing.T) {
	v := testView(t, 40, 21)

	// Field y points up: the field top maps to the first row below the HUD,
	// the field bottom maps to the last row.
	_, top := v.cell(0, v.field.Height)
	_, bottom := v.cell(0, 0)
	if top != 1 {
		t.Errorf("field top mapped to row %d, expected 1", top)
	}
	if bottom != 20 {
		t.Errorf("field bottom mapped to row %d, expected 20", bottom)
	}

	_, fenceRow := v.cell(0, v.field.FenceY)
	_, ditchRow := v.cell(0, v.field.DitchTop)
	if fenceRow >= ditchRow {
		t.Errorf("fence row %d should be above ditch row %d", fenceRow, ditchRow)
	}
}

func TestViewPointRoundTrip(t *testing.T) {
	v := testView(t, 40, 21)

	cellW := v.field.Width / 40
	cellH := v.field.Height / 19

	points := []struct{ x, y float64 }{
		{200, 300},
		{10, 620},
		{390, 50},
		{123.4, 456.7},
	}
	for _, p := range points {
		cx, cy := v.cell(p.x, p.y)
		gx, gy := v.point(cx, cy)
		if math.Abs(gx-p.x) > cellW || math.Abs(gy-p.y) > cellH {
			t.Errorf("round trip of (%.1f, %.1f) gave (%.1f, %.1f), off by more than one cell",
				p.x, p.y, gx, gy)
		}
	}
}

func TestViewDraw(t *testing.T) {
	v := testView(t, 40, 21)
	s := NewScreen(40, 21)

	snap := sim.Snapshot{
		Farmer: sim.FarmerSnapshot{X: 200, Y: 300, Radius: 20},
		Cows: []sim.CowSnapshot{
			{ID: 1, X: 100, Y: 400, Radius: 14, State: sim.CowWandering},
			{ID: 2, X: 300, Y: 40, Radius: 14, State: sim.CowDrowning, DrownRemaining: 5},
		},
		Gate:  sim.GateSnapshot{State: sim.GateOpen, OpenAmount: 1.0, CenterX: 200, FullWidth: 120},
		Score: 7,
		Lives: 2,
		Level: 1,
	}
	v.draw(s, snap)

	// HUD on the top row
	hudRow := strings.Split(s.String(), "\n")[0]
	if !strings.Contains(hudRow, "Score: 7") || !strings.Contains(hudRow, "Lives: 2") {
		t.Errorf("HUD row missing score/lives: %q", hudRow)
	}

	// Farmer
	fx, fy := v.cell(200, 300)
	if s.GetCell(fx, fy).Rune != FarmerChar {
		t.Errorf("expected farmer at (%d, %d), got %q", fx, fy, s.GetCell(fx, fy).Rune)
	}

	// Cows: wandering and drowning use distinct glyphs
	cx, cy := v.cell(100, 400)
	if s.GetCell(cx, cy).Rune != CowChar {
		t.Errorf("expected cow at (%d, %d), got %q", cx, cy, s.GetCell(cx, cy).Rune)
	}
	dx, dy := v.cell(300, 40)
	if s.GetCell(dx, dy).Rune != DrownChar {
		t.Errorf("expected drowning cow at (%d, %d), got %q", dx, dy, s.GetCell(dx, dy).Rune)
	}
	if s.GetCell(dx, dy-1).Rune != '5' {
		t.Errorf("expected drown countdown above the cow, got %q", s.GetCell(dx, dy-1).Rune)
	}

	// Fence spans the row except for the open gate gap
	_, fenceRow := v.cell(0, v.field.FenceY)
	if s.GetCell(0, fenceRow).Rune != FenceChar {
		t.Errorf("expected fence at the left edge of row %d", fenceRow)
	}
	gapX, _ := v.cell(200, 0)
	if s.GetCell(gapX, fenceRow).Rune == FenceChar {
		t.Error("gate gap should not contain fence while fully open")
	}
	postX, _ := v.cell(200-60, 0)
	if s.GetCell(postX, fenceRow).Rune != GatePostChar {
		t.Errorf("expected gate post at (%d, %d), got %q", postX, fenceRow, s.GetCell(postX, fenceRow).Rune)
	}

	// Ditch water at the bottom rows
	_, ditchRow := v.cell(0, v.field.DitchTop)
	if s.GetCell(0, ditchRow).Rune != WaterChar {
		t.Errorf("expected water at row %d", ditchRow)
	}
	if s.GetCell(0, 20).Rune != WaterChar {
		t.Error("expected water at the bottom row")
	}
}

func TestViewDrawClosedGateFullFence(t *testing.T) {
	v := testView(t, 40, 21)
	s := NewScreen(40, 21)

	snap := sim.Snapshot{
		Farmer: sim.FarmerSnapshot{X: 200, Y: 300, Radius: 20},
		Gate:   sim.GateSnapshot{State: sim.GateClosed, OpenAmount: 0, CenterX: 200, FullWidth: 120},
		Lives:  3,
	}
	v.draw(s, snap)

	_, fenceRow := v.cell(0, v.field.FenceY)
	postLeft, _ := v.cell(200-60, 0)
	postRight, _ := v.cell(200+60, 0)
	for x := 0; x < 40; x++ {
		r := s.GetCell(x, fenceRow).Rune
		if x == postLeft || x == postRight {
			if r != GatePostChar {
				t.Errorf("expected gate post at column %d, got %q", x, r)
			}
			continue
		}
		if r != FenceChar {
			t.Errorf("expected unbroken fence at column %d while closed, got %q", x, r)
		}
	}
}
