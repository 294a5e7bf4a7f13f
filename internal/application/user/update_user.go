package user

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/mohammadpnp/user-registry/internal/domain/user"
)

type UpdateUserInput struct {
	ID string
	UserFieldsInput
}

type UpdateUser interface {
	Execute(ctx context.Context, in UpdateUserInput) (UserOutput, error)
}

type userUpdater interface {
	GetByID(ctx context.Context, userID string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, u domain.User) (domain.User, error)
}

type updateUser struct {
	repo userUpdater
}

func NewUpdateUser(repo userUpdater) UpdateUser {
	return &updateUser{repo: repo}
}

// Execute replaces every field of an existing user except its id.
func (uc *updateUser) Execute(ctx context.Context, in UpdateUserInput) (UserOutput, error) {
	if !userIDPattern.MatchString(in.ID) {
		return UserOutput{}, ErrInvalidUserID
	}

	u, err := domain.NewUser(in.ID, in.toDomain())
	if err != nil {
		return UserOutput{}, err
	}

	if _, err := uc.repo.GetByID(ctx, in.ID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return UserOutput{}, ErrUserNotFound
		}
		return UserOutput{}, fmt.Errorf("%w: %v", ErrUpdateUser, err)
	}

	owner, err := uc.repo.FindByEmail(ctx, u.Email)
	switch {
	case err == nil && owner.ID != in.ID:
		return UserOutput{}, ErrEmailAlreadyExists
	case err != nil && !errors.Is(err, domain.ErrUserNotFound):
		return UserOutput{}, fmt.Errorf("%w: %v", ErrUpdateUser, err)
	}

	updated, err := uc.repo.Update(ctx, u)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			return UserOutput{}, ErrEmailAlreadyExists
		case errors.Is(err, domain.ErrUserNotFound):
			return UserOutput{}, ErrUserNotFound
		}
		return UserOutput{}, fmt.Errorf("%w: %v", ErrUpdateUser, err)
	}

	return toUserOutput(updated), nil
}
