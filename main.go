package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rpa-orchestrator/api-go/internal/config"
	"github.com/rpa-orchestrator/api-go/internal/db"
	"github.com/rpa-orchestrator/api-go/internal/handlers/bots"
	"github.com/rpa-orchestrator/api-go/internal/handlers/vms"
	"github.com/rpa-orchestrator/api-go/internal/middleware"
)

func main() {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	d, err := db.Open(cfg.DatabaseURL, cfg.MaxOpenConns)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer d.Close()

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	vmH := vms.New(d)
	botH := bots.New(d)

	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "Hello World!") })
	r.GET("/api/healthcheck", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"sucess": true}) })

	r.GET("/api/vms", vmH.List)
	r.POST("/api/vms", vmH.Create)
	r.PATCH("/api/vms/:id", vmH.Update)
	r.DELETE("/api/vms/:id", vmH.Delete)

	r.GET("/api/bots", botH.List)
	r.POST("/api/bots", botH.Create)
	r.PATCH("/api/bots/:id", botH.Update)
	r.DELETE("/api/bots/:id", botH.Delete)

	log.Printf("listening on %s", cfg.ServerAddress)
	if err := r.Run(cfg.ServerAddress); err != nil {
		log.Fatalf("serve: %v", err)
	}
}
