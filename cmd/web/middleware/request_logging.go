package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"social-spark/cmd/internal/logger"
	"social-spark/cmd/web/metrics"
)

// RequestMetrics 는 라우트별 요청 수를 prometheus 에 기록하고 처리 시간을 디버그 로그로 남긴다.
// 라벨에는 실제 경로가 아니라 등록된 라우트 패턴을 쓴다.
func RequestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Inc()

		logger.Log.Debugf(
			"api_request method=%s route=%s status=%d duration_ms=%d",
			c.Request.Method,
			route,
			status,
			time.Since(start).Milliseconds(),
		)
	}
}
