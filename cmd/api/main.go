package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fitpulsehq/gym-manager/internal/cache"
	"github.com/fitpulsehq/gym-manager/internal/config"
	dbpkg "github.com/fitpulsehq/gym-manager/internal/db"
	"github.com/fitpulsehq/gym-manager/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	store, err := cache.New(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, store)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
