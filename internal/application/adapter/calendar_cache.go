// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// CalendarCache defines the interface for caching rendered month views.
// The view key carries both the month and the reference date the view was
// built against. Entries carry a short TTL; writes to a user's bills
// invalidate the user's cached views.
type CalendarCache interface {
	// Get retrieves a cached month view. Returns (nil, nil) on cache miss.
	Get(ctx context.Context, userID uuid.UUID, view string) ([]byte, error)

	// Set stores a rendered month view.
	Set(ctx context.Context, userID uuid.UUID, view string, payload []byte) error

	// InvalidateUser drops all cached views for a user.
	InvalidateUser(ctx context.Context, userID uuid.UUID) error
}
