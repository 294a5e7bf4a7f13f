package user

import (
	"context"
	"fmt"

	domain "github.com/mohammadpnp/user-registry/internal/domain/user"
)

type ListUsers interface {
	Execute(ctx context.Context) ([]UserOutput, error)
}

type userLister interface {
	List(ctx context.Context) ([]domain.User, error)
}

type listUsers struct {
	repo userLister
}

func NewListUsers(repo userLister) ListUsers {
	return &listUsers{repo: repo}
}

func (uc *listUsers) Execute(ctx context.Context) ([]UserOutput, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListUsers, err)
	}

	out := make([]UserOutput, 0, len(users))
	for _, u := range users {
		out = append(out, toUserOutput(u))
	}
	return out, nil
}
