package restaurant

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jewgo/jewgo/internal/hours"
)

// ServiceConfig holds configuration for the catalog service.
type ServiceConfig struct {
	Repository Repository
	Logger     zerolog.Logger
}

// Service provides catalog reads and hours-status computation.
type Service struct {
	repo   Repository
	logger zerolog.Logger
}

// NewService creates a new catalog service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}
}

// List retrieves restaurants matching the filter plus the total match count.
func (s *Service) List(ctx context.Context, f Filter) ([]*Restaurant, int, error) {
	items, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Get retrieves a single restaurant.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Restaurant, error) {
	return s.repo.Get(ctx, id)
}

// HoursStatus computes the restaurant's open/closed status at the given
// instant, evaluated in the restaurant's own timezone. The clock is always
// supplied by the caller so the computation stays deterministic under test.
func (s *Service) HoursStatus(ctx context.Context, id uuid.UUID, now time.Time) (*Restaurant, hours.Status, error) {
	rest, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, hours.Status{}, err
	}

	loc := hours.ResolveLocation(rest.Timezone, rest.State)
	status := hours.StatusAt(rest.Hours, now.In(loc))

	s.logger.Debug().
		Str("restaurant_id", id.String()).
		Str("timezone", loc.String()).
		Str("status", string(status.Type)).
		Msg("computed hours status")

	return rest, status, nil
}

// WeeklySchedule is the display form of a restaurant's full week.
type WeeklySchedule struct {
	// Display is the joined one-line form, or the "not available" text.
	Display string

	// Days holds the seven per-day rows; nil when no usable hours exist.
	Days []hours.DayHours
}

// WeeklyHours renders the restaurant's full 7-day schedule for display.
func (s *Service) WeeklyHours(ctx context.Context, id uuid.UUID) (*Restaurant, *WeeklySchedule, error) {
	rest, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return rest, &WeeklySchedule{
		Display: hours.FormatWeek(rest.Hours),
		Days:    hours.WeekRows(rest.Hours),
	}, nil
}
