package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewID produces ids like "user_3f2a9c81d04b", matching the stored data.
func NewID(prefix string) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "_" + hex[:12]
}

func newID(prefix string) string { return NewID(prefix) }

func nowUTC(now func() time.Time) string {
	return now().UTC().Format(time.RFC3339Nano)
}
