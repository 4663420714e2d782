package dto

import (
	"jumpy/infras/jwt"
	"jumpy/internal/domains/adminuser/model"
)

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8"`
}

type AdminUserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func (r *AdminUserResponse) FromModel(m model.AdminUser) {
	r.ID = m.ID
	r.Email = m.Email
	r.Name = m.Name
	r.Role = m.Role
}

type LoginResponse struct {
	User   AdminUserResponse `json:"user"`
	Tokens jwt.TokenPair     `json:"tokens"`
}
