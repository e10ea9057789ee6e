package discovery

import (
	"context"

	"mdnsbrowse/internal/registry"
)

// Event is a single result from a resolver: either a discovered record or an error.
type Event struct {
	Record registry.ServiceRecord
	Err    error
}

// Discovered wraps a record in an Event.
func Discovered(rec registry.ServiceRecord) Event {
	return Event{Record: rec}
}

// Failed wraps an error in an Event.
func Failed(err error) Event {
	return Event{Err: err}
}

// IsError reports whether the event carries a failure.
func (e Event) IsError() bool {
	return e.Err != nil
}

// Resolver is the external multicast discovery collaborator.
//
// Browse starts browsing for serviceType and sends every result on events
// until ctx is done. It must not close events. A returned error means the
// browse session could not be started or broke down; returning nil after ctx
// is cancelled is the normal way to stop.
type Resolver interface {
	Browse(ctx context.Context, serviceType registry.ServiceType, events chan<- Event) error
}
