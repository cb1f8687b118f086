package restaurant

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrRestaurantNotFound is returned when no restaurant has the given ID.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// Filter narrows a catalog listing.
type Filter struct {
	// Search matches case-insensitively against name, agency, and city.
	Search string

	// KosherCategory restricts to one category when non-empty.
	KosherCategory KosherCategory

	// City restricts to an exact city (case-insensitive) when non-empty.
	City string

	// Limit caps the page size (default 50). Offset skips ahead.
	Limit  int
	Offset int
}

// Repository defines the interface for catalog storage.
type Repository interface {
	// Get retrieves a restaurant by ID.
	Get(ctx context.Context, id uuid.UUID) (*Restaurant, error)

	// List retrieves restaurants matching the filter, ordered by name.
	List(ctx context.Context, f Filter) ([]*Restaurant, error)

	// Count returns how many restaurants match the filter, ignoring paging.
	Count(ctx context.Context, f Filter) (int, error)

	// Upsert creates or replaces a restaurant.
	Upsert(ctx context.Context, r *Restaurant) error

	// Delete removes a restaurant by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
