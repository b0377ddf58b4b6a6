package handlers

import (
	"strconv"
	"time"

	"bandgap_lab/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "requestId"
)

// requestMiddleware tags each request with an id, then records latency.
// An incoming X-Request-ID is kept so callers can correlate logs.
func (h *Handler) requestMiddleware(c *gin.Context) {
	start := time.Now()

	reqID := c.GetHeader(requestIDHeader)
	if reqID == "" {
		reqID = uuid.NewString()
	}
	c.Set(requestIDKey, reqID)
	c.Header(requestIDHeader, reqID)

	c.Next()

	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	status := c.Writer.Status()
	elapsed := time.Since(start)

	metrics.HTTPRequestLatency.
		WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).
		Observe(elapsed.Seconds())

	h.log.Debugw("http_request",
		"request_id", reqID,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", status,
		"latency", elapsed,
	)
}
