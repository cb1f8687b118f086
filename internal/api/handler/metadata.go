package handler

import (
	"net/http"

	"github.com/jewgo/jewgo/internal/api/models"
	"github.com/jewgo/jewgo/internal/api/response"
	"github.com/jewgo/jewgo/internal/hours"
	"github.com/jewgo/jewgo/internal/restaurant"
)

// MetadataHandler handles metadata endpoints.
type MetadataHandler struct{}

// NewMetadataHandler creates a new MetadataHandler.
func NewMetadataHandler() *MetadataHandler {
	return &MetadataHandler{}
}

// GetEnums handles GET /v1/metadata/enums - get enum values used by the API.
func (h *MetadataHandler) GetEnums(w http.ResponseWriter, r *http.Request) {
	enums := models.Enums{
		StatusTypes: []string{
			string(hours.StatusOpen),
			string(hours.StatusOpensToday),
			string(hours.StatusOpensTomorrow),
			string(hours.StatusOpensLater),
			string(hours.StatusClosed),
			string(hours.StatusUnknown),
		},
		Badges: []string{
			string(hours.BadgeGreen),
			string(hours.BadgeRed),
			string(hours.BadgeGray),
		},
		KosherCategories: []string{
			string(restaurant.KosherMeat),
			string(restaurant.KosherDairy),
			string(restaurant.KosherPareve),
		},
	}

	w.Header().Set("Cache-Control", "public, max-age=3600")
	response.JSON(w, r, http.StatusOK, enums)
}
