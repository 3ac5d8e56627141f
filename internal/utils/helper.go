package utils

import (
	"errors"
	"strconv"
)

var ErrInvalidID = errors.New("id must be a non-negative integer")

// ParseID parses a path identifier. Zero parses; no row ever has it, so it
// ends up as not found.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
