package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vig-dev/catalog-service/internal/helpers"
	"github.com/vig-dev/catalog-service/internal/metrics"
	"github.com/vig-dev/catalog-service/internal/models"
	"github.com/vig-dev/catalog-service/internal/stores"
)

type CreateEventRequest struct {
	VenueID     int        `json:"venue_id" binding:"required"`
	Title       string     `json:"title" binding:"required"`
	Type        *string    `json:"type"`
	StartTime   time.Time  `json:"start_time" binding:"required"`
	EndTime     *time.Time `json:"end_time"`
	Status      string     `json:"status" binding:"omitempty,oneof=ON_SALE SOLD_OUT CANCELLED"`
	Description *string    `json:"description"`
}

func (h *CatalogHandler) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := helpers.BindJSONStrict(c, &req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	event := models.Event{
		VenueID:     req.VenueID,
		Title:       req.Title,
		Type:        req.Type,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Status:      req.Status,
		Description: req.Description,
	}

	created, err := h.catalog.CreateEvent(&event)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	metrics.EventsCreated.Inc()
	c.JSON(http.StatusCreated, created)
}

func (h *CatalogHandler) ListEvents(c *gin.Context) {
	filters := stores.EventFilters{
		City:   c.Query("city"),
		Type:   c.Query("type"),
		Status: c.Query("status"),
	}

	events, err := h.catalog.ListEvents(filters)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	metrics.EventsListed.Inc()
	c.JSON(http.StatusOK, events)
}

func (h *CatalogHandler) GetEvent(c *gin.Context) {
	id, err := helpers.StringToInt(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event ID.")
		return
	}

	event, err := h.catalog.GetEventByID(id)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "not found")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, event)
}
