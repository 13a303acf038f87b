// Package core provides fundamental types and utilities for the lander.
// It contains no external dependencies (especially no Bubble Tea) to keep
// simulation logic pure and testable.
package core

import "math"

// Span is a closed interval [Min, Max] on one playfield axis.
// Used for the landing pad band and other axis-aligned zones.
type Span struct {
	Min, Max float64
}

// NewSpan creates a span, swapping the bounds if given in reverse.
func NewSpan(a, b float64) Span {
	if a > b {
		a, b = b, a
	}
	return Span{Min: a, Max: b}
}

// Contains returns true if v lies inside the span, bounds included.
func (s Span) Contains(v float64) bool {
	return v >= s.Min && v <= s.Max
}

// Width returns the length of the span.
func (s Span) Width() float64 {
	return s.Max - s.Min
}

// Center returns the midpoint of the span.
func (s Span) Center() float64 {
	return s.Min + s.Width()/2
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// WrapF renormalizes val into [0, period).
// Values that land exactly on period after rounding fold back to 0.
func WrapF(val, period float64) float64 {
	if period <= 0 {
		return val
	}
	w := math.Mod(val, period)
	if w < 0 {
		w += period
	}
	if w >= period {
		w = 0
	}
	return w
}

// Truncate drops the fractional part of val, rounding toward zero.
func Truncate(val float64) int {
	return int(math.Trunc(val))
}
