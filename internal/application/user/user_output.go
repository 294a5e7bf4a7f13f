package user

import (
	"regexp"
	"time"

	domain "github.com/mohammadpnp/user-registry/internal/domain/user"
)

var userIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[1-5][0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`)

type UserOutput struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	PANNumber   string    `json:"pan_number"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toUserOutput(u domain.User) UserOutput {
	return UserOutput{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		PANNumber:   u.PANNumber,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// UserFieldsInput is the submitted form of a single user record.
type UserFieldsInput struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	PANNumber   string
}

func (in UserFieldsInput) toDomain() domain.Fields {
	return domain.Fields{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		PANNumber:   in.PANNumber,
	}
}
