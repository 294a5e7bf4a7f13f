package user

import "errors"

var (
	ErrInvalidUser        = errors.New("invalid user")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrUnreadableFile     = errors.New("unreadable spreadsheet")
	ErrEmptySheet         = errors.New("spreadsheet has no data rows")
)
