package user

import (
	"errors"

	domain "github.com/mohammadpnp/user-registry/internal/domain/user"
)

var (
	ErrInvalidUserID      = errors.New("invalid user id")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrGetUserByID        = errors.New("failed to get user by id")
	ErrListUsers          = errors.New("failed to list users")
	ErrCreateUser         = errors.New("failed to create user")
	ErrUpdateUser         = errors.New("failed to update user")
	ErrDeleteUser         = errors.New("failed to delete user")
	ErrUnreadableFile     = errors.New("unreadable import file")
	ErrEmptySheet         = errors.New("import file is empty")
	ErrImportUsers        = errors.New("failed to import users")
	ErrGenerateTemplate   = errors.New("failed to generate import template")
)

type (
	ValidationError = domain.ValidationError
	Violation       = domain.Violation
	ImportResult    = domain.ImportResult
	RowError        = domain.RowError
)
