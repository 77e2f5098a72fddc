package api

import (
	"context"
	"time"
)

// pause waits d before a response goes out. It reports false if ctx ended
// first, in which case nothing should be written.
func pause(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
