package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cortefacil/corte-facil-api/internal/config"
	dbpkg "github.com/cortefacil/corte-facil-api/internal/db"
	"github.com/cortefacil/corte-facil-api/internal/logging"
	"github.com/cortefacil/corte-facil-api/internal/middleware"
	"github.com/cortefacil/corte-facil-api/internal/routes"
)

func main() {

	cfg := config.Load()

	log := logging.New(cfg.Environment)
	defer log.Sync()

	db := dbpkg.Connect(cfg, log)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(middleware.RequestID())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, log)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
