package user

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/mohammadpnp/user-registry/internal/domain/user"
)

type CreateUserInput struct {
	UserFieldsInput
}

type CreateUser interface {
	Execute(ctx context.Context, in CreateUserInput) (UserOutput, error)
}

type userCreator interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u domain.User) (domain.User, error)
}

type createUser struct {
	repo userCreator
}

func NewCreateUser(repo userCreator) CreateUser {
	return &createUser{repo: repo}
}

func (uc *createUser) Execute(ctx context.Context, in CreateUserInput) (UserOutput, error) {
	u, err := domain.NewUser("", in.toDomain())
	if err != nil {
		return UserOutput{}, err
	}

	if _, err := uc.repo.FindByEmail(ctx, u.Email); err == nil {
		return UserOutput{}, ErrEmailAlreadyExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return UserOutput{}, fmt.Errorf("%w: %v", ErrCreateUser, err)
	}

	created, err := uc.repo.Create(ctx, u)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return UserOutput{}, ErrEmailAlreadyExists
		}
		return UserOutput{}, fmt.Errorf("%w: %v", ErrCreateUser, err)
	}

	return toUserOutput(created), nil
}
