package user_test

import (
	"context"
	"errors"
	"testing"

	app "github.com/mohammadpnp/user-registry/internal/application/user"
	domain "github.com/mohammadpnp/user-registry/internal/domain/user"
	"github.com/stretchr/testify/require"
)

func validFieldsInput() app.UserFieldsInput {
	return app.UserFieldsInput{
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane@x.com",
		PhoneNumber: "1234567890",
		PANNumber:   "ABCDE1234F",
	}
}

func TestCreateUserSuccess(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	in := validFieldsInput()
	in.FirstName = "  Jane "
	in.PANNumber = "abcde1234f"

	out, err := app.NewCreateUser(repo).Execute(context.Background(), app.CreateUserInput{UserFieldsInput: in})
	require.NoError(t, err)
	require.NotEmpty(t, out.ID)
	require.Equal(t, "Jane", out.FirstName)
	require.Equal(t, "ABCDE1234F", out.PANNumber)
	require.Len(t, repo.created, 1)
}

func TestCreateUserValidationFailure(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	in := validFieldsInput()
	in.Email = "jane-at-x"
	in.PhoneNumber = "123"

	_, err := app.NewCreateUser(repo).Execute(context.Background(), app.CreateUserInput{UserFieldsInput: in})
	require.ErrorIs(t, err, domain.ErrInvalidUser)

	var verr *app.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Violations, 2)
	require.Equal(t, domain.FieldEmail, verr.Violations[0].Field)
	require.Equal(t, domain.FieldPhoneNumber, verr.Violations[1].Field)
	require.Zero(t, repo.findCalls)
	require.Empty(t, repo.created)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	t.Parallel()

	existing := alice()
	existing.Email = "jane@x.com"
	repo := newFakeUserRepo(existing)

	_, err := app.NewCreateUser(repo).Execute(context.Background(), app.CreateUserInput{UserFieldsInput: validFieldsInput()})
	require.ErrorIs(t, err, app.ErrEmailAlreadyExists)
	require.Empty(t, repo.created)
}

func TestCreateUserUniqueViolationOnInsert(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	repo.createErr = domain.ErrEmailAlreadyExists

	_, err := app.NewCreateUser(repo).Execute(context.Background(), app.CreateUserInput{UserFieldsInput: validFieldsInput()})
	require.ErrorIs(t, err, app.ErrEmailAlreadyExists)
}

func TestCreateUserRepositoryFailure(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	repo.findErr = errors.New("db down")

	_, err := app.NewCreateUser(repo).Execute(context.Background(), app.CreateUserInput{UserFieldsInput: validFieldsInput()})
	require.ErrorIs(t, err, app.ErrCreateUser)
}
