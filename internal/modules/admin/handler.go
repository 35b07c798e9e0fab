package admin

import (
	"errors"

	"github.com/florarium/core/internal/middleware"
	"github.com/florarium/core/internal/models"
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

// RegisterRoutes mounts the moderation surface. The role gate runs before
// every handler: a non-admin request is rejected before any handler logic,
// so it can never reach the store.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	a := rg.Group("/admin", authMW, middleware.RequireRole(models.RoleAdmin))

	a.GET("/metrics", h.metrics)
	a.GET("/usage", h.usage)

	a.GET("/users", h.listUsers)
	a.PATCH("/users/:id/role", h.updateUserRole)
	a.PATCH("/users/:id/status", h.updateUserStatus)
	a.DELETE("/users/:id", h.softDeleteUser)

	a.GET("/reports", h.listReports)
	a.PATCH("/reports/:id", h.reviewReport)

	a.GET("/flagged", h.listFlagged)
	a.PATCH("/floras/:id/status", h.moderateFlora)
}

func (h *Handler) actor(c *gin.Context) Actor {
	user := middleware.CurrentUser(c)
	a := Actor{IP: c.ClientIP()}
	if user != nil {
		a.ID = user.ID
		a.Username = user.Username
	}
	return a
}

func (h *Handler) metrics(c *gin.Context) {
	m, err := h.svc.Metrics(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, m)
}

func (h *Handler) usage(c *gin.Context) {
	u, err := h.svc.Usage()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, u)
}

func (h *Handler) listUsers(c *gin.Context) {
	users, page, err := h.svc.ListUsers(pagination.FromContext(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, users, page)
}

func (h *Handler) updateUserRole(c *gin.Context) {
	var dto UpdateUserRoleDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, err := h.svc.UpdateUserRole(h.actor(c), c.Param("id"), &dto)
	if err != nil {
		if errors.Is(err, errUnknownRole) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	if user == nil {
		response.NotFoundMsg(c, "user not found")
		return
	}
	response.OK(c, user)
}

func (h *Handler) updateUserStatus(c *gin.Context) {
	var dto UpdateUserStatusDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, err := h.svc.UpdateUserStatus(h.actor(c), c.Param("id"), &dto)
	if err != nil {
		if errors.Is(err, errUnknownStatus) || errors.Is(err, errDeletionViaStatus) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	if user == nil {
		response.NotFoundMsg(c, "user not found")
		return
	}
	response.OK(c, user)
}

func (h *Handler) softDeleteUser(c *gin.Context) {
	var dto SoftDeleteUserDTO
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&dto); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	}
	if err := h.svc.SoftDeleteUser(h.actor(c), c.Param("id"), &dto); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFoundMsg(c, "user not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) listReports(c *gin.Context) {
	status := c.Query("status")
	if status != "" && !models.ValidReportStatus(status) {
		response.BadRequest(c, "unknown status")
		return
	}
	reports, page, err := h.svc.ListReports(status, pagination.FromContext(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, reports, page)
}

func (h *Handler) reviewReport(c *gin.Context) {
	var dto ReviewReportDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	report, err := h.svc.ReviewReport(h.actor(c), c.Param("id"), &dto)
	if err != nil {
		switch {
		case errors.Is(err, errUnknownStatus),
			errors.Is(err, errUnknownAction),
			errors.Is(err, errBadTransition),
			errors.Is(err, errTerminalReport):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	if report == nil {
		response.NotFoundMsg(c, "report not found")
		return
	}
	response.OK(c, report)
}

func (h *Handler) listFlagged(c *gin.Context) {
	floras, page, err := h.svc.ListFlagged(pagination.FromContext(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, floras, page)
}

func (h *Handler) moderateFlora(c *gin.Context) {
	var dto ModerateFloraDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	flora, err := h.svc.ModerateFlora(h.actor(c), c.Param("id"), &dto)
	if err != nil {
		if errors.Is(err, errUnknownStatus) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	if flora == nil {
		response.NotFoundMsg(c, "flora not found")
		return
	}
	response.OK(c, flora)
}
