package repository

import "math"

// roundMoney rounds to 2 decimal places at computation time so stored
// amounts never accumulate sub-cent drift.
func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
