package restaurant

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryRepository is an in-memory implementation of Repository. It backs
// the service in deployments that load the catalog at startup, and tests.
type InMemoryRepository struct {
	mu          sync.RWMutex
	restaurants map[uuid.UUID]*Restaurant
}

// NewInMemoryRepository creates an empty in-memory repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		restaurants: make(map[uuid.UUID]*Restaurant),
	}
}

// NewInMemoryRepositoryWithCatalog creates a repository pre-loaded with the
// given restaurants.
func NewInMemoryRepositoryWithCatalog(catalog []*Restaurant) *InMemoryRepository {
	repo := NewInMemoryRepository()
	for _, r := range catalog {
		repo.restaurants[r.ID] = r
	}
	return repo
}

// Get retrieves a restaurant by ID.
func (r *InMemoryRepository) Get(_ context.Context, id uuid.UUID) (*Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rest, ok := r.restaurants[id]
	if !ok {
		return nil, ErrRestaurantNotFound
	}
	return rest, nil
}

// List retrieves restaurants matching the filter, ordered by name.
func (r *InMemoryRepository) List(_ context.Context, f Filter) ([]*Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := r.match(f)
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Name < matched[j].Name
	})

	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= len(matched) {
		return []*Restaurant{}, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

// Count returns how many restaurants match the filter.
func (r *InMemoryRepository) Count(_ context.Context, f Filter) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.match(f)), nil
}

// Upsert creates or replaces a restaurant.
func (r *InMemoryRepository) Upsert(_ context.Context, rest *Restaurant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rest.UpdatedAt = time.Now()
	r.restaurants[rest.ID] = rest
	return nil
}

// Delete removes a restaurant by ID.
func (r *InMemoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.restaurants[id]; !ok {
		return ErrRestaurantNotFound
	}
	delete(r.restaurants, id)
	return nil
}

// match applies the filter. Caller holds at least a read lock.
func (r *InMemoryRepository) match(f Filter) []*Restaurant {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	city := strings.ToLower(strings.TrimSpace(f.City))

	var matched []*Restaurant
	for _, rest := range r.restaurants {
		if f.KosherCategory != "" && rest.KosherCategory != f.KosherCategory {
			continue
		}
		if city != "" && strings.ToLower(rest.City) != city {
			continue
		}
		if search != "" && !matchesSearch(rest, search) {
			continue
		}
		matched = append(matched, rest)
	}
	return matched
}

func matchesSearch(rest *Restaurant, search string) bool {
	for _, field := range []string{rest.Name, rest.CertifyingAgency, rest.City} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

// Ensure InMemoryRepository implements Repository.
var _ Repository = (*InMemoryRepository)(nil)
