package math

// Lerp returns a + (b-a)*t. t is not clamped.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// InverseLerp returns where v sits between a and b, 0 when a == b.
func InverseLerp(a, b, v float32) float32 {
	if a == b {
		return 0
	}
	return (v - a) / (b - a)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Remap maps v from [inLo, inHi] onto [outLo, outHi] without clamping.
func Remap(v, inLo, inHi, outLo, outHi float32) float32 {
	return Lerp(outLo, outHi, InverseLerp(inLo, inHi, v))
}
