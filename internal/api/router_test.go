package api_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jewgo/jewgo/internal/api"
	"github.com/jewgo/jewgo/internal/api/models"
	"github.com/jewgo/jewgo/internal/restaurant"
)

// Seeded catalog IDs used by the route tests.
const (
	grillTimeID     = "7a5a2c1e-0b3f-4f9e-9a41-5f0d8c2e6b10"
	falafelCornerID = "b4c8e2a6-5d19-4c3b-8e7f-1a6d9b0c3e44"
	mazelGrillID    = "c1a4f8d2-6b3e-4a7c-9f05-7e2b5d8a1c88"
)

func newTestRouter() http.Handler {
	logger := zerolog.New(io.Discard)
	repo := restaurant.NewInMemoryRepositoryWithCatalog(restaurant.DefaultCatalog())
	svc := restaurant.NewService(restaurant.ServiceConfig{
		Repository: repo,
		Logger:     logger,
	})

	return api.NewRouter(api.RouterConfig{
		Version:           "test",
		BuildTime:         "2026-01-01T00:00:00Z",
		Logger:            logger,
		RestaurantService: svc,
	})
}

func TestRouter_HealthCheck(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/ops/health", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))

	var health models.Health
	err := json.Unmarshal(w.Body.Bytes(), &health)
	require.NoError(t, err)

	assert.Equal(t, models.HealthStatusOK, health.Status)
	assert.Equal(t, "test", health.Details["version"])
}

func TestRouter_ReadinessCheck(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/ops/ready", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var health models.Health
	err := json.Unmarshal(w.Body.Bytes(), &health)
	require.NoError(t, err)

	assert.Equal(t, models.HealthStatusOK, health.Status)
}

func TestRouter_SystemStatus(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/ops/status", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var status models.SystemStatus
	err := json.Unmarshal(w.Body.Bytes(), &status)
	require.NoError(t, err)

	assert.Equal(t, models.HealthStatusOK, status.Status)
	require.Len(t, status.Subsystems, 1)
	assert.Equal(t, "catalog", status.Subsystems[0].Name)
	assert.Equal(t, models.HealthStatusOK, status.Subsystems[0].Status)
}

func TestRouter_ListRestaurants(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/restaurants", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.PagedRestaurants
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)

	require.Len(t, resp.Items, 5)
	assert.Equal(t, 5, resp.Meta.Total)

	// Ordered by name; every item carries a computed status
	assert.Equal(t, "Bagel Boss Cafe", resp.Items[0].Name)
	for _, item := range resp.Items {
		require.NotNil(t, item.HoursStatus, "item %s missing hours status", item.Name)
		assert.NotEmpty(t, item.HoursStatus.Type)
		assert.NotEmpty(t, item.HoursStatus.Label)
		assert.NotEmpty(t, item.HoursStatus.Timezone)
	}
}

func TestRouter_ListRestaurants_CategoryFilter(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/restaurants?kosherCategory=meat", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.PagedRestaurants
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)

	require.Len(t, resp.Items, 2)
	for _, item := range resp.Items {
		assert.Equal(t, "meat", item.KosherCategory)
	}
}

func TestRouter_ListRestaurants_InvalidCategory(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/restaurants?kosherCategory=vegan", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))

	var problem models.Problem
	err := json.Unmarshal(w.Body.Bytes(), &problem)
	require.NoError(t, err)

	assert.Equal(t, models.ProblemTypeValidation, problem.Type)
	require.Len(t, problem.Errors, 1)
	assert.Equal(t, "kosherCategory", problem.Errors[0].Field)
}

func TestRouter_ListRestaurants_InvalidLimit(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/restaurants?limit=5000", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var problem models.Problem
	err := json.Unmarshal(w.Body.Bytes(), &problem)
	require.NoError(t, err)

	require.Len(t, problem.Errors, 1)
	assert.Equal(t, "limit", problem.Errors[0].Field)
}

func TestRouter_GetRestaurant(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/restaurants/"+grillTimeID, http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var rest models.Restaurant
	err := json.Unmarshal(w.Body.Bytes(), &rest)
	require.NoError(t, err)

	assert.Equal(t, grillTimeID, rest.ID)
	assert.Equal(t, "Grill Time", rest.Name)
	require.NotNil(t, rest.HoursStatus)
	assert.Equal(t, "America/New_York", rest.HoursStatus.Timezone)
}

func TestRouter_GetRestaurant_NotFound(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/restaurants/00000000-0000-0000-0000-000000000000", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))

	var problem models.Problem
	err := json.Unmarshal(w.Body.Bytes(), &problem)
	require.NoError(t, err)

	assert.Equal(t, models.ProblemTypeNotFound, problem.Type)
	assert.NotEmpty(t, problem.TraceID)
}

func TestRouter_GetRestaurant_InvalidID(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/restaurants/not-a-uuid", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var problem models.Problem
	err := json.Unmarshal(w.Body.Bytes(), &problem)
	require.NoError(t, err)

	assert.Equal(t, models.ProblemTypeValidation, problem.Type)
	require.Len(t, problem.Errors, 1)
	assert.Equal(t, "restaurantId", problem.Errors[0].Field)
}

func TestRouter_GetHoursStatus_AtInstant(t *testing.T) {
	router := newTestRouter()

	// Monday noon Eastern; Falafel Corner is open 11:00-21:00 that day
	req := httptest.NewRequest(http.MethodGet,
		"/v1/restaurants/"+falafelCornerID+"/hours/status?at=2026-08-24T12:00:00-04:00", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var status models.HoursStatus
	err := json.Unmarshal(w.Body.Bytes(), &status)
	require.NoError(t, err)

	assert.Equal(t, "open", status.Type)
	assert.True(t, status.IsOpenNow)
	assert.False(t, status.IsClosedForToday)
	assert.Equal(t, "Open now • Closes 9:00 PM", status.Label)
	assert.Equal(t, "green", status.Badge)
	assert.Equal(t, "9:00 PM", status.ClosingTime)
	assert.Equal(t, "America/New_York", status.Timezone)
}

func TestRouter_GetHoursStatus_ClosedDay(t *testing.T) {
	router := newTestRouter()

	// Wednesday; Falafel Corner has no Wednesday entry, reopens Thursday
	req := httptest.NewRequest(http.MethodGet,
		"/v1/restaurants/"+falafelCornerID+"/hours/status?at=2026-08-26T12:00:00-04:00", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var status models.HoursStatus
	err := json.Unmarshal(w.Body.Bytes(), &status)
	require.NoError(t, err)

	assert.Equal(t, "opensTomorrow", status.Type)
	assert.False(t, status.IsOpenNow)
	assert.True(t, status.IsClosedForToday)
	assert.Equal(t, "Opens 11:00 AM tomorrow", status.Label)
	assert.Equal(t, "11:00 AM", status.NextOpenTime)
}

func TestRouter_GetHoursStatus_NoHours(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet,
		"/v1/restaurants/"+mazelGrillID+"/hours/status", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var status models.HoursStatus
	err := json.Unmarshal(w.Body.Bytes(), &status)
	require.NoError(t, err)

	assert.Equal(t, "unknown", status.Type)
	assert.Equal(t, "Hours not available", status.Label)
	assert.Equal(t, "gray", status.Badge)
}

func TestRouter_GetHoursStatus_InvalidAt(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet,
		"/v1/restaurants/"+falafelCornerID+"/hours/status?at=yesterday", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var problem models.Problem
	err := json.Unmarshal(w.Body.Bytes(), &problem)
	require.NoError(t, err)

	require.Len(t, problem.Errors, 1)
	assert.Equal(t, "at", problem.Errors[0].Field)
}

func TestRouter_GetWeeklyHours(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet,
		"/v1/restaurants/"+falafelCornerID+"/hours/week", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var week models.WeeklyHours
	err := json.Unmarshal(w.Body.Bytes(), &week)
	require.NoError(t, err)

	assert.True(t, week.Available)
	require.Len(t, week.Days, 7)
	assert.Equal(t, "Monday", week.Days[0].Day)
	assert.Equal(t, "11:00 AM–9:00 PM", week.Days[0].Hours)
	assert.Equal(t, "Closed", week.Days[2].Hours) // Wednesday
	assert.Equal(t, "Sunday", week.Days[6].Day)
}

func TestRouter_GetWeeklyHours_NoHours(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet,
		"/v1/restaurants/"+mazelGrillID+"/hours/week", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var week models.WeeklyHours
	err := json.Unmarshal(w.Body.Bytes(), &week)
	require.NoError(t, err)

	assert.False(t, week.Available)
	assert.Equal(t, "Hours not available", week.Display)
	assert.Empty(t, week.Days)
}

func TestRouter_GetEnums(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/metadata/enums", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var enums models.Enums
	err := json.Unmarshal(w.Body.Bytes(), &enums)
	require.NoError(t, err)

	assert.Contains(t, enums.StatusTypes, "open")
	assert.Contains(t, enums.StatusTypes, "opensTomorrow")
	assert.Contains(t, enums.StatusTypes, "unknown")
	assert.Contains(t, enums.Badges, "green")
	assert.Contains(t, enums.KosherCategories, "meat")
	assert.Contains(t, enums.KosherCategories, "pareve")
}

func TestRouter_RequestID_Generated(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/ops/health", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	requestID := w.Header().Get("X-Request-Id")
	assert.NotEmpty(t, requestID)
	assert.Contains(t, requestID, "req_")
}

func TestRouter_RequestID_Preserved(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/ops/health", http.NoBody)
	req.Header.Set("X-Request-Id", "custom_request_id")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, "custom_request_id", w.Header().Get("X-Request-Id"))
}

func TestRouter_SecurityHeaders(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/ops/health", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, w.Header().Get("Strict-Transport-Security"))
}

func TestRouter_NotFound(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/nonexistent", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
