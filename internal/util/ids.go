package util

import (
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// NewImageID builds a request-scoped image identifier from the current
// unix timestamp and a short random suffix. IDs are never persisted or
// checked for collisions; uniqueness is only probabilistic within the
// same second.
func NewImageID() string {
	suffix, err := gonanoid.New(8)
	if err != nil {
		// gonanoid only fails when the OS entropy source does.
		suffix = fmt.Sprintf("%08x", time.Now().UnixNano()&0xffffffff)
	}
	return fmt.Sprintf("%d_%s", time.Now().Unix(), suffix)
}
