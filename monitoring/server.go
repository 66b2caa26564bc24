package monitoring

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"ticketq/utils"
)

// StartMetricsServer serves the Prometheus endpoint and a liveness check on
// a separate port. Runs in the background until the process exits.
func StartMetricsServer(port string, redisClient *redis.Client) {
	e := echo.New()

	e.GET("/metrics", func(c echo.Context) error {
		promhttp.Handler().ServeHTTP(c.Response(), c.Request())
		return nil
	})
	e.GET("/healthz", func(c echo.Context) error {
		if err := utils.RedisHealthCheck(redisClient); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"error":  err.Error(),
			})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})

	go func() {
		if err := http.ListenAndServe(":"+port, e); err != nil {
			log.Printf("Metrics server stopped: %v", err)
		}
	}()
}
