package common

const (
	BaseWidth  = 1280
	BaseHeight = 720
	TPS        = 60
)

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
