package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"shop-payout-api/internal/idgen"
)

// Trace 为每个请求分配 trace id（snowflake），写入响应头与上下文
func Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := strconv.FormatUint(idgen.New(), 10)
		c.Set("trace_id", traceID)
		c.Writer.Header().Set("X-Trace-ID", traceID)
		c.Next()
	}
}
