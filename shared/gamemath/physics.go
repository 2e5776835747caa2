package gamemath

import "math"

// Approach moves value toward target by at most delta without overshooting.
// A non-finite or negative delta leaves value unchanged, except +Inf which
// snaps straight to target.
func Approach(value, target, delta float64) float64 {
	if math.IsNaN(delta) || delta <= 0 {
		return value
	}
	if value < target {
		return math.Min(target, value+delta)
	}
	if value > target {
		return math.Max(target, value-delta)
	}
	return value
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// SanitizeDelta returns dt, or 0 when dt is negative or NaN.
func SanitizeDelta(dt float64) float64 {
	if math.IsNaN(dt) || dt < 0 {
		return 0
	}
	return dt
}

// Sign returns -1 for negative values and +1 otherwise.
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
