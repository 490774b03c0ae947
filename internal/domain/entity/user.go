package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador"
)

// User representa un operador del sistema. No hay sesiones ni tokens:
// el usuario se referencia por ID en cada operación mutante del ledger.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FullName     string
	Role         string
	CreatedAt    time.Time
}
