// Package utils provides small, generic helper functions used across
// different layers of the application. These utilities are independent
// of domain or business logic.
package utils

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidLimit reports a limit query value that is not a non-negative
// integer.
var ErrInvalidLimit = errors.New("limit must be a non-negative integer")

// ParseLimit parses a limit query parameter. An empty or all-whitespace
// value yields def; anything that is not a non-negative integer yields
// ErrInvalidLimit. Zero is a valid limit and is returned as-is.
//
// Example:
//
//	n, err := utils.ParseLimit("25", 50) // 25, nil
//	n, err = utils.ParseLimit("", 50)    // 50, nil
//	n, err = utils.ParseLimit("-3", 50)  // 0, ErrInvalidLimit
func ParseLimit(raw string, def int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, ErrInvalidLimit
	}
	return n, nil
}
