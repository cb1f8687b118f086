package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jewgo/jewgo/internal/api/models"
	"github.com/jewgo/jewgo/internal/api/response"
	"github.com/jewgo/jewgo/internal/hours"
	"github.com/jewgo/jewgo/internal/restaurant"
)

// RestaurantHandler handles restaurant directory endpoints.
type RestaurantHandler struct {
	service *restaurant.Service
}

// NewRestaurantHandler creates a new RestaurantHandler.
func NewRestaurantHandler(service *restaurant.Service) *RestaurantHandler {
	return &RestaurantHandler{service: service}
}

// ListRestaurants handles GET /v1/restaurants - list the directory.
// Supports search, kosherCategory, city, limit, and offset query parameters.
// Each item carries its computed open/closed status so clients can render
// listing cards in a single round trip.
func (h *RestaurantHandler) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := restaurant.Filter{
		Search: q.Get("search"),
		City:   q.Get("city"),
	}

	var fieldErrors []models.FieldError

	if raw := q.Get("kosherCategory"); raw != "" {
		category, ok := restaurant.ParseKosherCategory(raw)
		if !ok {
			fieldErrors = append(fieldErrors, models.FieldError{
				Field:   "kosherCategory",
				Message: "must be one of: meat, dairy, pareve",
				Code:    "invalid_enum",
			})
		}
		filter.KosherCategory = category
	}

	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > 100 {
			fieldErrors = append(fieldErrors, models.FieldError{
				Field:   "limit",
				Message: "must be an integer between 1 and 100",
				Code:    "out_of_range",
			})
		}
		filter.Limit = limit
	}

	if raw := q.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			fieldErrors = append(fieldErrors, models.FieldError{
				Field:   "offset",
				Message: "must be a non-negative integer",
				Code:    "out_of_range",
			})
		}
		filter.Offset = offset
	}

	if len(fieldErrors) > 0 {
		response.BadRequest(w, r, "invalid query parameters", fieldErrors)
		return
	}

	items, total, err := h.service.List(r.Context(), filter)
	if err != nil {
		response.InternalError(w, r, "failed to list restaurants")
		return
	}

	now := time.Now()
	resp := models.PagedRestaurants{
		Items: make([]models.Restaurant, 0, len(items)),
		Meta: models.PagedResponseMeta{
			Total:  total,
			Limit:  filter.Limit,
			Offset: filter.Offset,
		},
	}
	for _, item := range items {
		dto := models.NewRestaurant(item)
		dto.HoursStatus = computeStatus(item, now)
		resp.Items = append(resp.Items, dto)
	}

	w.Header().Set("Cache-Control", "public, max-age=60")
	response.JSON(w, r, http.StatusOK, resp)
}

// GetRestaurant handles GET /v1/restaurants/{restaurantId} - fetch one
// listing with its computed open/closed status embedded.
func (h *RestaurantHandler) GetRestaurant(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRestaurantID(w, r)
	if !ok {
		return
	}

	rest, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, restaurant.ErrRestaurantNotFound) {
			response.NotFound(w, r, "restaurant not found")
			return
		}
		response.InternalError(w, r, "failed to fetch restaurant")
		return
	}

	dto := models.NewRestaurant(rest)
	dto.HoursStatus = computeStatus(rest, time.Now())

	response.JSON(w, r, http.StatusOK, dto)
}

// GetHoursStatus handles GET /v1/restaurants/{restaurantId}/hours/status.
// The optional at query parameter (RFC3339) evaluates the status at a
// specific instant instead of the current time.
func (h *RestaurantHandler) GetHoursStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRestaurantID(w, r)
	if !ok {
		return
	}

	now := time.Now()
	if raw := r.URL.Query().Get("at"); raw != "" {
		at, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			response.BadRequest(w, r, "invalid query parameters", []models.FieldError{
				{Field: "at", Message: "must be an RFC3339 timestamp", Code: "invalid_format"},
			})
			return
		}
		now = at
	}

	rest, status, err := h.service.HoursStatus(r.Context(), id, now)
	if err != nil {
		if errors.Is(err, restaurant.ErrRestaurantNotFound) {
			response.NotFound(w, r, "restaurant not found")
			return
		}
		response.InternalError(w, r, "failed to compute hours status")
		return
	}

	loc := hours.ResolveLocation(rest.Timezone, rest.State)
	local := now.In(loc)

	response.JSON(w, r, http.StatusOK, models.NewHoursStatus(status, local.Format(time.RFC3339), loc.String()))
}

// GetWeeklyHours handles GET /v1/restaurants/{restaurantId}/hours/week -
// the full 7-day display schedule, Monday first.
func (h *RestaurantHandler) GetWeeklyHours(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRestaurantID(w, r)
	if !ok {
		return
	}

	_, week, err := h.service.WeeklyHours(r.Context(), id)
	if err != nil {
		if errors.Is(err, restaurant.ErrRestaurantNotFound) {
			response.NotFound(w, r, "restaurant not found")
			return
		}
		response.InternalError(w, r, "failed to render weekly hours")
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=300")
	response.JSON(w, r, http.StatusOK, models.NewWeeklyHours(week))
}

// parseRestaurantID extracts and validates the restaurantId path parameter.
// Writes a 400 response and returns false when the ID is not a valid UUID.
func parseRestaurantID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "restaurantId"))
	if err != nil {
		response.BadRequest(w, r, "invalid restaurant ID", []models.FieldError{
			{Field: "restaurantId", Message: "must be a valid UUID", Code: "invalid_format"},
		})
		return uuid.Nil, false
	}
	return id, true
}

// computeStatus evaluates a listing's open/closed status in its own timezone.
func computeStatus(rest *restaurant.Restaurant, now time.Time) *models.HoursStatus {
	loc := hours.ResolveLocation(rest.Timezone, rest.State)
	local := now.In(loc)
	status := hours.StatusAt(rest.Hours, local)
	return models.NewHoursStatus(status, local.Format(time.RFC3339), loc.String())
}
