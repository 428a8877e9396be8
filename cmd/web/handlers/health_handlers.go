package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"social-spark/cmd/web/dto"
	"social-spark/cmd/web/services"
)

// HealthHandler 는 Ollama 응답 여부와 설정된 모델이 받아져 있는지를 보고한다.
// 둘 중 하나라도 아니면 503 degraded 다.
func HealthHandler(svc *services.HealthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		status := svc.Check(ctx)
		out := dto.HealthResponseDTO{
			Status:         "ok",
			Ollama:         "up",
			Model:          status.Model,
			ModelAvailable: status.ModelAvailable,
		}
		if !status.OllamaReachable {
			out.Ollama = "down"
		}
		if status.Err != nil {
			out.Error = status.Err.Error()
		}
		if !status.OK() {
			out.Status = "degraded"
			c.JSON(http.StatusServiceUnavailable, out)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}
