package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// UserUseCase administra los operadores del sistema. Sin sesiones ni tokens:
// el operador solo se referencia por ID en las operaciones del ledger.
type UserUseCase struct {
	repo repository.UserRepository
	now  func() time.Time
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo, now: time.Now}
}

// AddUser crea un operador con la contraseña hasheada (bcrypt). Username
// duplicado devuelve ErrDuplicate.
func (uc *UserUseCase) AddUser(ctx context.Context, input dto.CreateUserRequest) (*dto.UserResponse, error) {
	if input.Username == "" || input.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     input.Username,
		PasswordHash: string(hash),
		FullName:     input.FullName,
		Role:         input.Role,
		CreatedAt:    uc.now(),
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return userToResponse(user), nil
}

// ListUsers devuelve todos los operadores, sin hash de contraseña.
func (uc *UserUseCase) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *userToResponse(u))
	}
	return out, nil
}

func userToResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
