package server

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vig-dev/catalog-service/config"
	"github.com/vig-dev/catalog-service/internal/catalog"
	"github.com/vig-dev/catalog-service/internal/handlers"
	"github.com/vig-dev/catalog-service/internal/middleware"
	"github.com/vig-dev/catalog-service/internal/stores"
	"gorm.io/gorm"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}
	log.Println("Catalog DB initialized")

	r := gin.Default()

	setupRoutes(r, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return r.Run(":" + port)
}

func setupRoutes(r *gin.Engine, db *gorm.DB) {
	r.Use(middleware.RequestID())

	venueStore := stores.NewVenueStore(db)
	eventStore := stores.NewEventStore(db)
	handler := handlers.NewCatalogHandler(catalog.New(venueStore, eventStore))

	r.GET("/health", handler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	{
		v1.POST("/venues", handler.CreateVenue)

		events := v1.Group("/events")
		{
			events.POST("", handler.CreateEvent)
			events.GET("", handler.ListEvents)
			events.GET("/:id", handler.GetEvent)
		}
	}
}
