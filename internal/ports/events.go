package ports

import (
	"context"

	"github.com/sprintdeck/scrumcore/internal/domain"
)

// EventDispatcher delivers domain events drained from an aggregate after a
// successful save. Implementations must tolerate being called with an empty
// slice. Delivery failures are the dispatcher's problem: application services
// treat dispatch as best-effort and never roll back a committed save over it.
type EventDispatcher interface {
	// Dispatch delivers the events recorded by one aggregate, in order.
	Dispatch(ctx context.Context, events []domain.Event) error
}
