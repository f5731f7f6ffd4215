package v1handler

import (
	"net/http"
	"strconv"
	"time"

	"easyrent/pkg/metrics"
	"easyrent/pkg/serrors"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// maxUploadMemory is how much of a multipart form is kept in memory before
// the rest spills to temporary files.
const maxUploadMemory = 32 << 20

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint: gochecknoglobals
	Name:    "easyrent_http_request_duration_seconds",
	Help:    "Duration of v1 API requests by route and status.",
	Buckets: metrics.DefaultBuckets,
}, []string{"method", "route", "status"})

// Instrument records the request latency under the route template, so ids
// in paths do not create new series.
func Instrument() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		requestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

// NewRouter returns the gin engine serving every route under /v1. Access
// logs and CORS are handled by the outer mux.
func NewRouter(h *Handler, sec *SecHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), Instrument())
	router.MaxMultipartMemory = maxUploadMemory
	router.HandleMethodNotAllowed = true
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, Error{Code: serrors.ErrNotFound.Error(), Message: "route not found"})
	})

	h.Register(router.Group("/v1"), sec)

	return router
}
