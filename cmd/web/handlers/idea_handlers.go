package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"social-spark/cmd/web/dto"
	"social-spark/cmd/web/services"
)

// GenerateIdeasHandler godoc
// @Summary      Generate post ideas
// @Description  Builds a prompt from the inputs, calls the local model once and returns one idea per non-empty line.
// @Tags         ideas
// @Accept       json
// @Produce      json
// @Param        body  body      dto.GenerateIdeasRequestDTO  true  "generation inputs"
// @Success      200   {object}  dto.GenerateIdeasResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO  "empty_topic or invalid_request"
// @Failure      502   {object}  dto.ErrorResponseDTO  "generation_failed"
// @Failure      503   {object}  dto.ErrorResponseDTO  "ollama_unreachable"
// @Router       /ideas [post]
func GenerateIdeasHandler(svc *services.IdeaService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.GenerateIdeasRequestDTO
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request", Message: err.Error()})
			return
		}

		result, genErr := svc.Generate(c.Request.Context(), in.ToRequest())
		if genErr != nil {
			c.JSON(genErr.StatusCode, dto.ErrorResponseDTO{
				Error:   genErr.ErrorCode,
				Message: genErr.Message,
				Hint:    genErr.Hint,
			})
			return
		}

		c.JSON(http.StatusOK, dto.GenerateIdeasResponseDTO{Ideas: result.Ideas, Model: result.Model})
	}
}

// ListOptionsHandler godoc
// @Summary      List form options
// @Description  Platforms, tones and the idea count bounds accepted by /ideas
// @Tags         ideas
// @Produce      json
// @Success      200  {object}  dto.OptionsResponseDTO
// @Router       /options [get]
func ListOptionsHandler() gin.HandlerFunc {
	options := dto.NewOptionsResponseDTO()
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, options)
	}
}
