package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxPlaneSize is the largest plane Plane will enumerate.
const MaxPlaneSize = 1 << 30

// PlaneSize returns the number of configurations on the sigma-plane,
// (sigma+1)(sigma+2)/2. Negative sigma yields zero; counts that do not fit in
// an int saturate at math.MaxInt.
func PlaneSize(sigma int) int {
	if sigma < 0 {
		return 0
	}
	if sigma > math.MaxInt-2 || sigma+1 > math.MaxInt/(sigma+2) {
		return math.MaxInt
	}
	return (sigma + 1) * (sigma + 2) / 2
}

// CheckSigma validates sigma against an upper bound; a non-positive limit
// leaves only the MaxPlaneSize limit.
func CheckSigma(sigma, limit int) error {
	if sigma < 0 {
		return fmt.Errorf("%w: %d is negative", ErrInvalidSigma, sigma)
	}
	if limit > 0 && sigma > limit {
		return fmt.Errorf("%w: %d exceeds the maximum of %d", ErrInvalidSigma, sigma, limit)
	}
	if PlaneSize(sigma) > MaxPlaneSize {
		return fmt.Errorf("%w: %d gives a plane larger than %d nodes", ErrInvalidSigma, sigma, MaxPlaneSize)
	}
	return nil
}

// Plane enumerates every configuration whose chips sum to sigma. The order is
// a ascending, then b ascending, with c = sigma-a-b.
func Plane(sigma int) ([]Config, error) {
	if err := CheckSigma(sigma, 0); err != nil {
		return nil, err
	}
	nodes := make([]Config, 0, PlaneSize(sigma))
	for a := 0; a <= sigma; a++ {
		for b := 0; b <= sigma-a; b++ {
			nodes = append(nodes, Config{a, b, sigma - a - b})
		}
	}
	return nodes, nil
}

// ParseSigma converts user input into a plane parameter. Anything other than
// a non-negative base-10 integer is rejected.
func ParseSigma(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidSigma)
	}
	sigma, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidSigma, s)
	}
	if sigma < 0 {
		return 0, fmt.Errorf("%w: %d is negative", ErrInvalidSigma, sigma)
	}
	return sigma, nil
}
