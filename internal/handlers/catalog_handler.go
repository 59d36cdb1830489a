package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vig-dev/catalog-service/internal/models"
	"github.com/vig-dev/catalog-service/internal/stores"
)

// Catalog is what the handlers need from the facade.
type Catalog interface {
	CreateVenue(venue *models.Venue) (*models.Venue, error)
	CreateEvent(event *models.Event) (*models.Event, error)
	ListEvents(filters stores.EventFilters) ([]models.Event, error)
	GetEventByID(id int) (*models.Event, error)
}

type CatalogHandler struct {
	catalog Catalog
}

func NewCatalogHandler(catalog Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"service": "catalog-service",
	})
}
