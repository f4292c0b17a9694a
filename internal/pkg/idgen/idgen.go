// Package idgen provides id generation for user-created records.
package idgen

import (
	"strings"

	"github.com/google/uuid"
)

const habitPrefix = "custom_"

// NewHabitID returns a fresh unique custom-habit id.
func NewHabitID() string {
	return habitPrefix + strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}

// IsHabitID reports whether an id was minted by NewHabitID.
func IsHabitID(id string) bool {
	return strings.HasPrefix(id, habitPrefix)
}
