package math

import "math"

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to the range [0, 1].
func Clamp01(v float32) float32 {
	return Clamp(v, 0, 1)
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Smoothstep01 evaluates the cubic smoothstep t*t*(3-2t) on t clamped to [0,1].
// Continuous in value and first derivative at both ends.
func Smoothstep01(t float32) float32 {
	t = Clamp01(t)
	return t * t * (3 - 2*t)
}

// Round rounds to the nearest integer, halves away from zero.
func Round(v float32) float32 {
	return float32(math.Round(float64(v)))
}

// RoundToInt rounds to the nearest integer, halves away from zero.
func RoundToInt(v float32) int {
	return int(math.Round(float64(v)))
}

// Sqrt returns the square root of v.
func Sqrt(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}

// Sincos returns the sine and cosine of the angle in radians.
func Sincos(angle float32) (sin, cos float32) {
	s, c := math.Sincos(float64(angle))
	return float32(s), float32(c)
}
