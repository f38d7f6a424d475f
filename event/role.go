// SPDX-License-Identifier: MIT

package event

import (
	"fmt"
	"strconv"
	"strings"
)

// Role separates background beds from foreground events.
type Role int

const (
	Foreground Role = iota
	Background
)

// Identifier prefixes.
const (
	ForegroundPrefix = "fg"
	BackgroundPrefix = "bg"
)

func (r Role) String() string {
	switch r {
	case Foreground:
		return "foreground"
	case Background:
		return "background"
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// Prefix returns "fg" or "bg".
func (r Role) Prefix() (string, error) {
	switch r {
	case Foreground:
		return ForegroundPrefix, nil
	case Background:
		return BackgroundPrefix, nil
	}
	return "", fmt.Errorf("Prefix: %v: %w", r, ErrUnknownRole)
}

// MarshalText encodes the role by name.
func (r Role) MarshalText() ([]byte, error) {
	if _, err := r.Prefix(); err != nil {
		return nil, err
	}
	return []byte(r.String()), nil
}

// UnmarshalText decodes "foreground" or "background".
func (r *Role) UnmarshalText(b []byte) error {
	switch string(b) {
	case "foreground":
		*r = Foreground
	case "background":
		*r = Background
	default:
		return fmt.Errorf("UnmarshalText(%q): %w", b, ErrUnknownRole)
	}
	return nil
}

// ID returns the identifier of the idx-th event of a role, e.g. "fg3".
//
// Errors: ErrUnknownRole, ErrMalformedID for negative idx.
func ID(r Role, idx int) (string, error) {
	prefix, err := r.Prefix()
	if err != nil {
		return "", fmt.Errorf("ID: %w", err)
	}
	if idx < 0 {
		return "", fmt.Errorf("ID: negative index %d: %w", idx, ErrMalformedID)
	}
	return prefix + strconv.Itoa(idx), nil
}

// ParseID extracts the index from an identifier of the given role.
//
// Errors: ErrUnknownRole, ErrMalformedID.
func ParseID(id string, r Role) (int, error) {
	prefix, err := r.Prefix()
	if err != nil {
		return 0, fmt.Errorf("ParseID: %w", err)
	}
	rest, ok := strings.CutPrefix(id, prefix)
	if !ok || rest == "" {
		return 0, fmt.Errorf("ParseID(%q): %w", id, ErrMalformedID)
	}
	idx, err := strconv.Atoi(rest)
	if err != nil || idx < 0 || strconv.Itoa(idx) != rest {
		return 0, fmt.Errorf("ParseID(%q): %w", id, ErrMalformedID)
	}
	return idx, nil
}
