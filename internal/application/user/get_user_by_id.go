package user

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/mohammadpnp/user-registry/internal/domain/user"
)

type GetUserByIDInput struct {
	ID string
}

type GetUserByID interface {
	Execute(ctx context.Context, in GetUserByIDInput) (UserOutput, error)
}

type userGetter interface {
	GetByID(ctx context.Context, userID string) (*domain.User, error)
}

type getUserByID struct {
	repo userGetter
}

func NewGetUserByID(repo userGetter) GetUserByID {
	return &getUserByID{repo: repo}
}

func (uc *getUserByID) Execute(ctx context.Context, in GetUserByIDInput) (UserOutput, error) {
	if !userIDPattern.MatchString(in.ID) {
		return UserOutput{}, ErrInvalidUserID
	}

	u, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return UserOutput{}, ErrUserNotFound
		}
		return UserOutput{}, fmt.Errorf("%w: %v", ErrGetUserByID, err)
	}

	return toUserOutput(*u), nil
}
