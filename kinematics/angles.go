package kinematics

import "math"

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }

// Normalize360 wraps an angle in degrees into [0, 360).
func Normalize360(deg float64) float64 {
	a := math.Mod(deg, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a -= 360
	}

	return a
}

// AngleDiff returns the signed difference a − b in degrees, wrapped into
// (−180, 180].
func AngleDiff(a, b float64) float64 {
	d := Normalize360(a - b)
	if d > 180 {
		d -= 360
	}

	return d
}

func cosd(deg float64) float64 { return math.Cos(Radians(deg)) }
func sind(deg float64) float64 { return math.Sin(Radians(deg)) }
