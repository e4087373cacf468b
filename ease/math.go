package ease

import "math"

func pow2(exp float64) float64 {
	return math.Pow(2, exp)
}

func asinRatio(ratio float64) float64 {
	if ratio > 1 {
		ratio = 1
	} else if ratio < -1 {
		ratio = -1
	}
	return math.Asin(ratio)
}

func sinTerm(progression, s, period float64) float64 {
	return math.Sin((progression - s) * (2 * math.Pi) / period)
}
