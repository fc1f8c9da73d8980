package model

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// NewID returns a fresh 12-character hex identifier derived from a
// random UUID.  Short enough to type at the console, random enough to
// never collide within one installation's collections.
func NewID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])[:12]
}
