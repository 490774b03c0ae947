package dto

import "time"

// CreateUserRequest body para POST /api/users.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=60"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required,max=120"`
	Role     string `json:"role" validate:"required,oneof=admin operador"`
}

// UserResponse usuario sin hash de contraseña.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
