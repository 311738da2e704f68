package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/styllus/barber-site/internal/config"
	"github.com/styllus/barber-site/internal/middleware"
	"github.com/styllus/barber-site/internal/routes"
)

func main() {

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.LoadHTMLGlob("web/templates/*")
	r.Static("/static", "./web/static")

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
