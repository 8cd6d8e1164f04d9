package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SweepOpsFR/sweep-scheduler/internal/config"
	dbpkg "github.com/SweepOpsFR/sweep-scheduler/internal/db"
	"github.com/SweepOpsFR/sweep-scheduler/internal/logger"
	"github.com/SweepOpsFR/sweep-scheduler/internal/middleware"
	"github.com/SweepOpsFR/sweep-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	log := logger.New()
	defer log.Sync()

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, log)

	log.Info("server listening", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
