package task

import (
	"math/rand"
	"strconv"
	"time"
)

// NewID returns an identifier unique within a running session: the creation
// instant in base36 milliseconds plus a random base36 suffix. Not a UUID and
// not guaranteed unique across devices.
func NewID(now time.Time) string {
	suffix := rand.Int63n(36 * 36 * 36 * 36 * 36 * 36)
	return strconv.FormatInt(now.UnixMilli(), 36) + "-" + pad36(suffix, 6)
}

func pad36(v int64, width int) string {
	s := strconv.FormatInt(v, 36)
	for len(s) < width {
		s = "0" + s
	}
	return s
}
