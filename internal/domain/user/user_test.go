package user_test

import (
	"errors"
	"testing"

	domain "github.com/mohammadpnp/user-registry/internal/domain/user"
)

func validFields() domain.Fields {
	return domain.Fields{
		FirstName:   "Alice",
		LastName:    "Smith",
		Email:       "alice@example.com",
		PhoneNumber: "1234567890",
		PANNumber:   "ABCDE1234F",
	}
}

func TestNewUserValid(t *testing.T) {
	t.Parallel()

	u, err := domain.NewUser("a3f91a91-7fdd-43bf-bfd2-00bc02f6c53e", validFields())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if u.Email != "alice@example.com" {
		t.Fatalf("unexpected email: %s", u.Email)
	}
	if u.ID != "a3f91a91-7fdd-43bf-bfd2-00bc02f6c53e" {
		t.Fatalf("unexpected id: %s", u.ID)
	}
}

func TestNewUserInvalidEmail(t *testing.T) {
	t.Parallel()

	fields := validFields()
	fields.Email = "alice-at-example.com"

	_, err := domain.NewUser("", fields)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, domain.ErrInvalidUser) {
		t.Fatalf("expected ErrInvalidUser, got %v", err)
	}

	var validationErr *domain.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(validationErr.Violations) != 1 || validationErr.Violations[0].Field != domain.FieldEmail {
		t.Fatalf("unexpected violations: %#v", validationErr.Violations)
	}
}

func TestNewUserNormalizesFields(t *testing.T) {
	t.Parallel()

	fields := domain.Fields{
		FirstName:   "  Alice ",
		LastName:    "Smith",
		Email:       " alice@example.com ",
		PhoneNumber: "1234567890",
		PANNumber:   "abcde1234f",
	}

	u, err := domain.NewUser("", fields)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if u.FirstName != "Alice" {
		t.Fatalf("unexpected first name: %q", u.FirstName)
	}
	if u.Email != "alice@example.com" {
		t.Fatalf("unexpected email: %q", u.Email)
	}
	if u.PANNumber != "ABCDE1234F" {
		t.Fatalf("expected upper-cased PAN, got %q", u.PANNumber)
	}
}

func TestNewUserBlankName(t *testing.T) {
	t.Parallel()

	fields := validFields()
	fields.LastName = "   "

	_, err := domain.NewUser("", fields)
	if !errors.Is(err, domain.ErrInvalidUser) {
		t.Fatalf("expected ErrInvalidUser, got %v", err)
	}
}
