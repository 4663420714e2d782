package model

import (
	"time"

	"jumpy/shared/model"
)

const (
	TableName  = "admin_users"
	EntityName = "admin_user"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldLastLogin = "last_login"
)

type AdminUser struct {
	ID           string     `db:"id"`
	Email        string     `db:"email"`
	PasswordHash string     `db:"password_hash"`
	Name         string     `db:"name"`
	Role         string     `db:"role"`
	LastLogin    *time.Time `db:"last_login"`
	Active       bool       `db:"active"`
	model.Metadata
}
