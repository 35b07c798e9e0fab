package flora

import (
	"errors"
	"strconv"

	"github.com/florarium/core/internal/middleware"
	"github.com/florarium/core/internal/models"
	"github.com/florarium/core/internal/pkg/access"
	"github.com/florarium/core/internal/pkg/pagination"
	"github.com/florarium/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	floras := rg.Group("/floras")
	floras.GET("", h.list)
	floras.GET("/:id", h.get)

	authed := floras.Group("", authMW, middleware.RequireRole(models.RoleCultivator, models.RoleAdmin))
	authed.POST("", h.create)
	authed.PATCH("/:id", h.update)
	authed.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	q := ListQuery{
		Status:   c.Query("status"),
		AuthorID: c.Query("authorId"),
	}
	if q.Status != "" && !models.ValidFloraStatus(q.Status) {
		response.BadRequest(c, "unknown status")
		return
	}
	if raw := c.Query("generation"); raw != "" {
		gen, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(c, "generation must be a number")
			return
		}
		q.Generation = &gen
	}

	floras, page, err := h.svc.List(q, pagination.FromContext(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, floras, page)
}

func (h *Handler) get(c *gin.Context) {
	f, err := h.svc.Get(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if f == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, f)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateFloraDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	f, err := h.svc.Create(middleware.CurrentUser(c), &dto)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.NotFoundMsg(c, "parent flora not found")
		case errors.Is(err, errModerationOnly), errors.Is(err, errUnknownStatus):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.Created(c, f)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateFloraDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	actor := access.Context{UserID: middleware.CurrentUserID(c), Role: middleware.CurrentRole(c)}
	f, err := h.svc.Update(actor, c.Param("id"), &dto)
	if err != nil {
		switch {
		case errors.Is(err, errForbidden):
			response.Forbidden(c)
		case errors.Is(err, errImmutableText),
			errors.Is(err, errModerationOnly),
			errors.Is(err, errSealedFinal),
			errors.Is(err, errUnknownStatus):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	if f == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, f)
}

func (h *Handler) delete(c *gin.Context) {
	actor := access.Context{UserID: middleware.CurrentUserID(c), Role: middleware.CurrentRole(c)}
	if err := h.svc.Delete(actor, c.Param("id")); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.NotFound(c)
		case errors.Is(err, errForbidden):
			response.Forbidden(c)
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.NoContent(c)
}
