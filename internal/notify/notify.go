// Package notify delivers insider-signal alerts to the configured
// sinks. Delivery is fire-and-forget from the pipeline's point of
// view: a failed notification never rolls back ingested rows.
package notify

import "context"

// Event is the flat record handed to every sink when a transaction
// trips the alert predicate.
type Event struct {
	Symbol       string
	Code         string
	DollarValue  float64
	PctADV       *float64
	IsOfficer    bool
	OfficerTitle string
	Is10b51Plan  bool
	DocumentsURL string
	Score        int
}

type Notifier interface {
	Notify(ctx context.Context, event Event) error
}

// Multi fans an event out to several sinks, returning the first error
// after attempting all of them.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, event Event) error {
	var firstErr error

	for _, n := range m {
		if err := n.Notify(ctx, event); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
