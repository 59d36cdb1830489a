package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vig-dev/catalog-service/internal/helpers"
	"github.com/vig-dev/catalog-service/internal/metrics"
	"github.com/vig-dev/catalog-service/internal/models"
)

type CreateVenueRequest struct {
	Name     string `json:"name" binding:"required"`
	City     string `json:"city" binding:"required"`
	Address  string `json:"address" binding:"required"`
	Capacity *int   `json:"capacity" binding:"required,gte=0"`
}

func (h *CatalogHandler) CreateVenue(c *gin.Context) {
	var req CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	venue := models.Venue{
		Name:     req.Name,
		City:     &req.City,
		Address:  &req.Address,
		Capacity: req.Capacity,
	}

	created, err := h.catalog.CreateVenue(&venue)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	metrics.VenuesCreated.Inc()
	c.JSON(http.StatusCreated, created)
}
