package middleware

import (
	"errors"
	"strings"

	"github.com/florarium/core/internal/models"
	"github.com/florarium/core/internal/pkg/jwt"
	"github.com/florarium/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	ContextKeyUserID = "user_id"
	ContextKeyRole   = "user_role"
	ContextKeyUser   = "user"
)

var errInactiveAccount = errors.New("account is not active")

// Auth returns a middleware that enforces bearer-token authentication.
// The subject is reloaded from the store on every request: a suspended or
// soft-deleted account invalidates all of its outstanding tokens
// immediately, regardless of token expiry.
func Auth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := resolveUser(db, extractToken(c))
		if err != nil {
			response.Unauthorized(c)
			return
		}
		c.Set(ContextKeyUserID, user.ID)
		c.Set(ContextKeyRole, user.Role)
		c.Set(ContextKeyUser, user)
		c.Next()
	}
}

// RequireRole returns a middleware allowing only the given roles. It is a
// pure role-membership check: ownership is a per-resource concern handled
// by the access predicate inside services.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := CurrentRole(c)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		response.Forbidden(c)
	}
}

// resolveUser verifies the token and loads the live subject.
func resolveUser(db *gorm.DB, rawToken string) (*models.UserModel, error) {
	token := NormalizeToken(rawToken)
	if token == "" {
		return nil, errors.New("token is required")
	}

	claims, err := jwt.Parse(token)
	if err != nil {
		return nil, err
	}

	var user models.UserModel
	if err := db.First(&user, "id = ?", claims.UserID).Error; err != nil {
		return nil, err
	}
	if user.AccountStatus != models.AccountActive {
		return nil, errInactiveAccount
	}
	return &user, nil
}

// CurrentUserID extracts the authenticated user ID from context.
func CurrentUserID(c *gin.Context) string {
	v, _ := c.Get(ContextKeyUserID)
	id, _ := v.(string)
	return id
}

// CurrentRole extracts the authenticated user's role from context.
func CurrentRole(c *gin.Context) string {
	v, _ := c.Get(ContextKeyRole)
	role, _ := v.(string)
	return role
}

// CurrentUser extracts the authenticated user record from context.
func CurrentUser(c *gin.Context) *models.UserModel {
	v, _ := c.Get(ContextKeyUser)
	user, _ := v.(*models.UserModel)
	return user
}

// IsAuthenticated returns true if the request has a valid auth token.
func IsAuthenticated(c *gin.Context) bool {
	return CurrentUserID(c) != ""
}

func extractToken(c *gin.Context) string {
	return NormalizeToken(c.GetHeader("Authorization"))
}

// NormalizeToken trims spaces and strips an optional Bearer prefix.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if token == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
