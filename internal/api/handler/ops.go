// Package handler provides HTTP handlers for the JewGo API.
package handler

import (
	"net/http"
	"time"

	"github.com/jewgo/jewgo/internal/api/models"
	"github.com/jewgo/jewgo/internal/api/response"
	"github.com/jewgo/jewgo/internal/restaurant"
)

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version   string
	buildTime string
	catalog   *restaurant.Service
}

// NewOpsHandler creates a new OpsHandler.
func NewOpsHandler(version, buildTime string, catalog *restaurant.Service) *OpsHandler {
	return &OpsHandler{
		version:   version,
		buildTime: buildTime,
		catalog:   catalog,
	}
}

// HealthCheck handles GET /v1/ops/health - liveness check.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
		Details: map[string]interface{}{
			"version":   h.version,
			"buildTime": h.buildTime,
		},
	}
	response.JSON(w, r, http.StatusOK, health)
}

// ReadinessCheck handles GET /v1/ops/ready - readiness check.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	if _, _, err := h.catalog.List(r.Context(), restaurant.Filter{Limit: 1}); err != nil {
		response.ServiceUnavailable(w, r, "catalog is not ready")
		return
	}

	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
	}
	response.JSON(w, r, http.StatusOK, health)
}

// SystemStatus handles GET /v1/ops/status - subsystem status.
func (h *OpsHandler) SystemStatus(w http.ResponseWriter, r *http.Request) {
	catalogStatus := models.HealthStatusOK
	var catalogDetail *string
	if _, _, err := h.catalog.List(r.Context(), restaurant.Filter{Limit: 1}); err != nil {
		catalogStatus = models.HealthStatusFail
		msg := err.Error()
		catalogDetail = &msg
	}

	overall := models.HealthStatusOK
	if catalogStatus != models.HealthStatusOK {
		overall = models.HealthStatusDegraded
	}

	status := models.SystemStatus{
		Status: overall,
		Time:   models.Timestamp(time.Now()),
		Subsystems: []models.SubsystemStatus{
			{Name: "catalog", Status: catalogStatus, Detail: catalogDetail},
		},
	}
	response.JSON(w, r, http.StatusOK, status)
}
