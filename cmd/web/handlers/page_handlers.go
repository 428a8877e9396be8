package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"social-spark/cmd/web/dto"
	"social-spark/cmd/web/services"
	"social-spark/cmd/web/view"
	"social-spark/spark"
)

// IndexPageHandler 는 기본값이 채워진 빈 폼을 그린다.
func IndexPageHandler(renderer *view.Renderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := renderer.Page(view.FormFromRequest(spark.DefaultRequest()))
		c.HTML(http.StatusOK, view.IndexTemplate, page)
	}
}

// SubmitPageHandler 는 폼 제출을 처리하고 같은 페이지에 경고, 에러 또는 아이디어 목록을
// 입력값과 함께 다시 그린다.
func SubmitPageHandler(svc *services.IdeaService, renderer *view.Renderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.GenerateIdeasRequestDTO
		if err := c.ShouldBind(&in); err != nil {
			page := renderer.Page(view.FormFromRequest(spark.DefaultRequest()))
			page.Form.Topic = in.Topic
			page.Error = "Invalid form input: " + err.Error()
			c.HTML(http.StatusBadRequest, view.IndexTemplate, page)
			return
		}

		req := in.ToRequest()
		page := renderer.Page(view.FormFromRequest(req))

		result, genErr := svc.Generate(c.Request.Context(), req)
		if genErr != nil {
			if genErr.ErrorCode == "empty_topic" {
				page.Warning = genErr.Message
			} else {
				page.Error = genErr.Message
				page.Hint = genErr.Hint
			}
			c.HTML(genErr.StatusCode, view.IndexTemplate, page)
			return
		}

		page.Generated = true
		page.Ideas = result.Ideas
		page.Model = result.Model
		c.HTML(http.StatusOK, view.IndexTemplate, page)
	}
}
