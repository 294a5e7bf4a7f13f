package user

import "time"

type User struct {
	ID          string
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	PANNumber   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewUser(id string, fields Fields) (User, error) {
	fields.Normalize()

	if violations := ValidateFields(fields); len(violations) > 0 {
		return User{}, &ValidationError{Violations: violations}
	}

	return User{
		ID:          id,
		FirstName:   fields.FirstName,
		LastName:    fields.LastName,
		Email:       fields.Email,
		PhoneNumber: fields.PhoneNumber,
		PANNumber:   fields.PANNumber,
	}, nil
}

func (u User) Fields() Fields {
	return Fields{
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		PANNumber:   u.PANNumber,
	}
}
