package middleware

import (
	"strconv"
	"time"

	"careergps/internal/metrics"

	"github.com/gofiber/fiber/v3"
)

const unmatchedRoute = "unmatched"

// Metrics records request count and latency per route pattern. Unmatched
// paths share one label so scanners cannot blow up cardinality.
func Metrics() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = statusFromError(err)
		}

		route := unmatchedRoute
		if r := c.Route(); r != nil && r.Path != "" && (r.Path != "/" || c.Path() == "/") {
			route = r.Path
		}

		metrics.HTTPRequests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		metrics.HTTPDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}
