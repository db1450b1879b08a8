package summarize

import (
	"errors"

	"github.com/aisumm/core/internal/middleware"
	"github.com/aisumm/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/summarize", authMW, h.summarize)
}

func (h *Handler) summarize(c *gin.Context) {
	var dto SummarizeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	out, err := h.svc.Summarize(c.Request.Context(), middleware.CurrentUserID(c), &dto)
	if err != nil {
		switch {
		case IsRequestError(err):
			response.BadRequest(c, err.Error())
		case errors.Is(err, ErrExtraction):
			response.UnprocessableEntity(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}

	response.OK(c, summarizeResponse{
		ID:        out.ID,
		Title:     out.Title,
		Summary:   out.Summary,
		Keywords:  out.Keywords,
		WordCount: out.WordCount,
		Saved:     out.Saved,
	})
}
