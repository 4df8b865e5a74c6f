package utils

import "github.com/google/uuid"

// GenerateID returns a fresh random identifier for products, bids and
// image references.
func GenerateID() string {
	return uuid.NewString()
}
