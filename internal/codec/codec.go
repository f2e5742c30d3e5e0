// Package codec serializes domain records to the string values the
// key-value store holds. The format is plain JSON; Decode(Encode(x)) == x
// for every valid record.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrParse indicates a stored value is not valid encoded data
var ErrParse = errors.New("codec: malformed payload")

// Encode serializes v to its stored string form
func Encode(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("codec: encode: %w", err)
	}
	return string(raw), nil
}

// Decode parses a stored string back into T. Malformed input fails with
// ErrParse so callers can substitute a default instead of aborting.
func Decode[T any](text string) (T, error) {
	var v T
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return v, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return v, nil
}
