package report

import (
	"errors"

	"github.com/florarium/core/internal/middleware"
	"github.com/florarium/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	reports := rg.Group("/reports", authMW)
	reports.POST("", h.create)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateReportDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	r, err := h.svc.Create(middleware.CurrentUserID(c), &dto)
	if err != nil {
		switch {
		case errors.Is(err, errUnknownCategory):
			response.BadRequest(c, err.Error())
		case errors.Is(err, errFloraNotFound):
			response.NotFoundMsg(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.Created(c, r)
}
