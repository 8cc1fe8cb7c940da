package utils

import (
	crand "crypto/rand"
	"fmt"
	"math"
	"math/big"
	"math/rand"
)

// FullTurn is the number of degrees in one revolution
const FullTurn = 360.0

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(min, max int) int {
	if min > max {
		return min
	}
	return rand.Intn(max-min+1) + min //nolint:gosec // Game logic randomness, not security critical
}

// SecureRandomInt returns a random integer between min and max (inclusive) using crypto/rand
func SecureRandomInt(min, max int) (int, error) {
	if min > max {
		return 0, fmt.Errorf("min cannot be greater than max")
	}
	diff := big.NewInt(int64(max - min + 1))
	n, err := crand.Int(crand.Reader, diff)
	if err != nil {
		return 0, err
	}
	return int(n.Int64()) + min, nil
}

// NormalizeAngle wraps any angle in degrees into [0,360).
func NormalizeAngle(deg float64) float64 {
	a := math.Mod(deg, FullTurn)
	if a < 0 {
		a += FullTurn
	}
	// -tiny + 360 rounds to 360 in float64
	if a >= FullTurn {
		a = 0
	}
	return a
}
