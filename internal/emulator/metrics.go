package emulator

import (
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestsTotal = promauto.NewCounterVec( //nolint:gochecknoglobals
	prometheus.CounterOpts{
		Namespace: "dtlpy",
		Subsystem: "emulator",
		Name:      "requests_total",
		Help:      "Number of handled settings API requests by route and status.",
	},
	[]string{"method", "route", "status"},
)

// countRequests records every request that reached a route.
func countRequests(c fiber.Ctx) error {
	err := c.Next()

	status := c.Response().StatusCode()
	if fe, ok := asFiberError(err); ok {
		status = fe.Code
	} else if err != nil {
		status = fiber.StatusInternalServerError
	}

	requestsTotal.WithLabelValues(c.Method(), c.Route().Path, strconv.Itoa(status)).Inc()

	return err
}
