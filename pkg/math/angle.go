package math

import "math"

// DegToRad converts degrees to radians when multiplied.
const DegToRad = math.Pi / 180

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * DegToRad
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad / DegToRad
}

func approx(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
