package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/LavaJatoPro/carwash-scheduler/internal/config"
	dbpkg "github.com/LavaJatoPro/carwash-scheduler/internal/db"
	"github.com/LavaJatoPro/carwash-scheduler/internal/routes"
)

func main() {

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()
	db := dbpkg.NewDB(cfg, log)

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.WithError(err).Warn("invalid REDIS_URL, settings cache disabled")
		} else {
			rdb = redis.NewClient(opts)
		}
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg, log)

	log.WithField("addr", cfg.Addr()).Info("server starting")
	if err := r.Run(cfg.Addr()); err != nil {
		log.WithError(err).Fatal("failed to start server")
	}
}
