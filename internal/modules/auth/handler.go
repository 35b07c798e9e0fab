package auth

import (
	"errors"

	"github.com/florarium/core/internal/middleware"
	"github.com/florarium/core/internal/models"
	"github.com/florarium/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type service interface {
	Signup(dto *SignupDTO) (*models.UserModel, string, error)
	Signin(email, password string) (*models.UserModel, string, error)
}

type Handler struct {
	svc service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	a := rg.Group("/auth")
	a.POST("/signup", h.signup)
	a.POST("/signin", h.signin)
	a.GET("/me", authMW, h.me)
}

func (h *Handler) signup(c *gin.Context) {
	var dto SignupDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	u, token, err := h.svc.Signup(&dto)
	if err != nil {
		if errors.Is(err, errUserExists) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, authResponse{Token: token, User: toProfile(u)})
}

func (h *Handler) signin(c *gin.Context) {
	var dto SigninDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	u, token, err := h.svc.Signin(dto.Email, dto.Password)
	if err != nil {
		if errors.Is(err, errInvalidCredentials) {
			response.Unauthorized(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, authResponse{Token: token, User: toProfile(u)})
}

func (h *Handler) me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		response.Unauthorized(c)
		return
	}
	response.OK(c, toProfile(user))
}
