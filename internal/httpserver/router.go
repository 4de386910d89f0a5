package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"mailtriage/internal/api"
	"mailtriage/pkg/mq"
)

type Router struct {
	Engine *gin.Engine
}

// NewRouter wires the HTTP surface. db, publisher and rdb may be nil when
// the corresponding backends are not configured; readiness skips them then.
// jwtSecret empty disables auth on the process endpoint.
func NewRouter(
	processHandler *api.ProcessHandler,
	db *pgxpool.Pool,
	publisher *mq.Publisher,
	rdb *redis.Client,
	jwtSecret string,
) *Router {
	r := gin.Default()

	r.Use(TraceMiddleware())
	r.Use(MetricsMiddleware())

	// Health endpoints (放在最前面)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.HEAD("/healthz", func(c *gin.Context) {
		c.Status(200)
	})

	r.GET("/readyz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c, 1*time.Second)
		defer cancel()

		if db != nil {
			if err := db.Ping(ctx); err != nil {
				c.JSON(500, gin.H{"status": "db_not_ready", "error": err.Error()})
				return
			}
		}

		if publisher != nil && !publisher.IsConnected() {
			c.JSON(500, gin.H{"status": "mq_not_ready"})
			return
		}

		if rdb != nil {
			if err := rdb.Ping(ctx).Err(); err != nil {
				c.JSON(500, gin.H{"status": "redis_not_ready", "error": err.Error()})
				return
			}
		}

		c.JSON(200, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Batch processing endpoint
	v1 := r.Group("/v1")
	if jwtSecret != "" {
		v1.Use(AuthMiddleware(jwtSecret))
	}
	v1.POST("/emails/process", processHandler.ProcessBatch)

	return &Router{Engine: r}
}

func (r *Router) Run(port string) error {
	return r.Engine.Run(port)
}
