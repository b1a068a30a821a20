package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/dcarehealth/transport-api/internal/config"
	dbpkg "github.com/dcarehealth/transport-api/internal/db"
	"github.com/dcarehealth/transport-api/internal/dispatch"
	"github.com/dcarehealth/transport-api/internal/middleware"
	"github.com/dcarehealth/transport-api/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	// Redis is optional: without it urgent bookings simply skip the
	// dispatch-desk announcement.
	var notifier dispatch.Notifier = dispatch.NoopNotifier{}
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Printf("invalid REDIS_URL, urgent dispatch notifications disabled: %v", err)
		} else {
			client := redis.NewClient(opt)
			if err := client.Ping(context.Background()).Err(); err != nil {
				log.Printf("redis unreachable, urgent dispatch notifications disabled: %v", err)
			} else {
				notifier = dispatch.NewRedisNotifier(client)
			}
		}
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, notifier)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
