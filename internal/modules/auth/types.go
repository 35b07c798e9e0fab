package auth

import "github.com/florarium/core/internal/models"

type SignupDTO struct {
	Username    string `json:"username" binding:"required,min=3,max=32"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"    binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8,max=72"`
}

type SigninDTO struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

// profile is the user shape returned by auth endpoints. The credential
// hash never leaves the service.
type profile struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	DisplayName   string `json:"displayName"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	AccountStatus string `json:"accountStatus"`
}

func toProfile(u *models.UserModel) profile {
	p := profile{
		ID:            u.ID,
		Username:      u.Username,
		DisplayName:   u.DisplayName,
		Role:          u.Role,
		AccountStatus: u.AccountStatus,
	}
	if u.Email != nil {
		p.Email = *u.Email
	}
	return p
}

type authResponse struct {
	Token string  `json:"token"`
	User  profile `json:"user"`
}
