package gamemath

// ApplyFriction scales speed by factor. The result approaches zero but is
// never snapped to it.
func ApplyFriction(speed, factor float64) float64 {
	return speed * factor
}

// Clamp limits v to [lo, hi]. When hi < lo the lower bound wins.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Approach moves current toward target by the given fraction of the gap.
func Approach(current, target, fraction float64) float64 {
	return current + (target-current)*fraction
}
