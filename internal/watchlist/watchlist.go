// Package watchlist tracks symbols that recently triggered a
// high-signal purchase alert, each for a fixed forward window.
package watchlist

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one watched symbol. At most one live entry exists per
// symbol; re-adding while an entry is live is a no-op (first trigger
// wins, the window is not refreshed).
type Entry struct {
	ID        uuid.UUID
	Symbol    string
	AddedAt   time.Time
	ExpiresAt time.Time
}

// Active reports whether the entry is still inside its window at the
// given instant.
func (e *Entry) Active(at time.Time) bool {
	return at.Before(e.ExpiresAt)
}
