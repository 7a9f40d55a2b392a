package sim

import (
	"testing"

	"github.com/okarpov/cowherd/internal/config"
)

func newTestFarmer() *Farmer {
	cfg := config.Default()
	return NewFarmer(cfg.Field, cfg.Farmer)
}

func TestFarmerClampedToFieldStrip(t *testing.T) {
	f := newTestFarmer()

	tests := []struct {
		name   string
		target Vec2
		want   Vec2
	}{
		{"inside", Vec2{150, 250}, Vec2{150, 250}},
		{"left wall", Vec2{-50, 250}, Vec2{20, 250}},
		{"right wall", Vec2{900, 250}, Vec2{380, 250}},
		{"into the ditch", Vec2{150, 0}, Vec2{150, 100}},
		{"past the fence", Vec2{150, 900}, Vec2{150, 540}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f.MoveTo(tc.target)
			if f.Pos != tc.want {
				t.Errorf("MoveTo(%v) = %v, expected %v", tc.target, f.Pos, tc.want)
			}
		})
	}
}

func TestFarmerDragOffset(t *testing.T) {
	f := newTestFarmer()
	f.MoveTo(Vec2{200, 300})

	// Grab off-center: the avatar must not jump under the pointer.
	if !f.StartDrag(Vec2{210, 310}) {
		t.Fatal("Grab inside the pick-up radius should start a drag")
	}
	f.Drag(Vec2{250, 350})
	if f.Pos != (Vec2{240, 340}) {
		t.Errorf("Drag should preserve the grab offset, got %v", f.Pos)
	}

	f.EndDrag()
	f.Drag(Vec2{100, 100})
	if f.Pos != (Vec2{240, 340}) {
		t.Error("Drag after release should not move the farmer")
	}
}

func TestFarmerGrabRadius(t *testing.T) {
	f := newTestFarmer()
	f.MoveTo(Vec2{200, 300})

	// Pick-up radius is 2.5x the collision radius (50 units by default).
	if f.StartDrag(Vec2{200, 360}) {
		t.Error("Grab outside the pick-up radius should not start a drag")
	}
	if !f.StartDrag(Vec2{200, 349}) {
		t.Error("Grab just inside the pick-up radius should start a drag")
	}
}

func TestFarmerLassoReady(t *testing.T) {
	f := newTestFarmer()

	f.MoveTo(Vec2{200, 120})
	if !f.LassoReady() {
		t.Error("Farmer 40 units above the ditch should be lasso-ready")
	}

	f.MoveTo(Vec2{200, 181})
	if f.LassoReady() {
		t.Error("Farmer beyond the lasso range should not be ready")
	}
}
