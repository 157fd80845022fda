package utils

import (
	"github.com/google/uuid"
)

// GenerateUUIDString creates an opaque, collision-resistant booking identifier
func GenerateUUIDString() string {
	return uuid.New().String()
}
