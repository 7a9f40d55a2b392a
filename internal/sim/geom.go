// Package sim implements the gameplay simulation for Cowherd: a single-screen
// arcade game where the player drags a farmer around a field to herd wandering
// cows away from a ditch and through a periodically opening gate into the safe
// zone beyond the fence.
//
// The package is pure game logic with no terminal or rendering dependencies.
// Coordinates are continuous field units with the y axis pointing up: the ditch
// spans the bottom of the field, the fence (with its gate) sits near the top.
// All randomness flows through a seeded source so a session is fully
// deterministic given its seed and input sequence.
package sim

import "math"

// Vec2 is a 2D point or velocity in field units.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns the component-wise difference of two vectors.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns the vector multiplied by a scalar.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{v.X * k, v.Y * k}
}

// Len returns the Euclidean length of the vector.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// clampF restricts a value to [min, max].
func clampF(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// clamp01 restricts a value to the unit interval.
func clamp01(v float64) float64 {
	return clampF(v, 0, 1)
}
