package utils

import "github.com/google/uuid"

// NewId returns "<prefix>-<uuid>".
func NewId(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
