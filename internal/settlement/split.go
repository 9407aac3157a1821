package settlement

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidAmount is returned when an amount cannot be parsed.
var ErrInvalidAmount = errors.New("invalid amount")

// EqualSplit divides total evenly among count members.
// It reports false, meaning "leave the owed amounts unchanged", when there are
// no members or the total is not a finite number.
func EqualSplit(total float64, count int) (float64, bool) {
	if count <= 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return 0, false
	}
	return total / float64(count), true
}

// ParseAmount parses a user-entered amount such as "12.34" or "12,34".
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidAmount
	}
	return v, nil
}
