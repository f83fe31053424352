package input

import (
	"context"

	"gather/internal/domain/entities"
)

// RegisterInput lists every field accepted at registration.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type UserUseCase interface {
	Register(ctx context.Context, in RegisterInput) (*entities.User, error)
	// Login returns domain.ErrInvalidCredentials for unknown email and wrong
	// password alike.
	Login(ctx context.Context, email, password string) (*entities.User, error)
	GetUser(ctx context.Context, id int64) (*entities.User, error)
}
