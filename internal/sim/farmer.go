package sim

import "github.com/okarpov/cowherd/internal/config"

// Farmer is the player avatar. It lives for the whole session and is moved
// only by pointer input, always clamped to the strip of field between the
// ditch and the fence.
type Farmer struct {
	Pos        Vec2
	Radius     float64
	Dragging   bool
	DragOffset Vec2

	field config.FieldConfig
	cfg   config.FarmerConfig
}

// NewFarmer creates the farmer at its configured start position, clamped into
// bounds in case the config places it outside.
func NewFarmer(field config.FieldConfig, cfg config.FarmerConfig) *Farmer {
	f := &Farmer{
		Radius: cfg.Radius,
		field:  field,
		cfg:    cfg,
	}
	f.MoveTo(Vec2{cfg.StartX, cfg.StartY})
	return f
}

// MoveTo places the farmer at p, clamped to the playfield bounds.
func (f *Farmer) MoveTo(p Vec2) {
	f.Pos = Vec2{
		X: clampF(p.X, f.Radius, f.field.Width-f.Radius),
		Y: clampF(p.Y, f.field.DitchTop+f.Radius, f.field.FenceY-f.Radius),
	}
}

// StartDrag begins dragging if p is within the grab radius. The offset from
// the grab point to the farmer center is preserved so the avatar does not jump
// under the pointer.
func (f *Farmer) StartDrag(p Vec2) bool {
	if Dist(p, f.Pos) > f.cfg.GrabScale*f.Radius {
		return false
	}
	f.Dragging = true
	f.DragOffset = f.Pos.Sub(p)
	return true
}

// Drag moves the farmer while a drag is active.
func (f *Farmer) Drag(p Vec2) {
	if !f.Dragging {
		return
	}
	f.MoveTo(p.Add(f.DragOffset))
}

// EndDrag releases the drag.
func (f *Farmer) EndDrag() {
	f.Dragging = false
}

// LassoReady reports whether the farmer stands close enough to the ditch to
// throw the lasso.
func (f *Farmer) LassoReady() bool {
	return f.Pos.Y-f.field.DitchTop <= f.cfg.LassoRange
}
