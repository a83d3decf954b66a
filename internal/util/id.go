package util

import (
	"time"

	"github.com/google/uuid"
)

// NewID returns a random identifier for products, zones, orders and reviews.
func NewID() string {
	return uuid.NewString()
}

// NewUserID mirrors the short "u"-prefixed ids of ad-hoc customer sessions.
func NewUserID() string {
	return "u" + uuid.NewString()[:8]
}

// Now is the timestamp format stored on orders, reviews and users.
func Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
