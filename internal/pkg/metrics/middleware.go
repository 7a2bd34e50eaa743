package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Middleware returns a gin middleware recording request counts and latency.
// Routes are labelled by their registered template so path parameters do not
// blow up label cardinality.
func (c *Collector) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}

		c.ObserveHTTPRequest(
			ctx.Request.Method,
			route,
			strconv.Itoa(ctx.Writer.Status()),
			time.Since(start).Seconds(),
		)
	}
}
