package user_test

import (
	"context"
	"errors"
	"testing"

	app "github.com/mohammadpnp/user-registry/internal/application/user"
	domain "github.com/mohammadpnp/user-registry/internal/domain/user"
	"github.com/stretchr/testify/require"
)

func TestUpdateUserSuccess(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo(alice())
	in := validFieldsInput()

	out, err := app.NewUpdateUser(repo).Execute(context.Background(), app.UpdateUserInput{ID: aliceID, UserFieldsInput: in})
	require.NoError(t, err)
	require.Equal(t, aliceID, out.ID)
	require.Equal(t, "jane@x.com", out.Email)
	require.Len(t, repo.updated, 1)
}

func TestUpdateUserKeepsOwnEmail(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo(alice())
	in := validFieldsInput()
	in.Email = "alice@example.com"
	in.LastName = "Jones"

	out, err := app.NewUpdateUser(repo).Execute(context.Background(), app.UpdateUserInput{ID: aliceID, UserFieldsInput: in})
	require.NoError(t, err)
	require.Equal(t, "Jones", out.LastName)
}

func TestUpdateUserEmailOwnedByAnotherUser(t *testing.T) {
	t.Parallel()

	other := alice()
	other.ID = "d5987b5f-506d-4d84-934f-d5b5535a64e8"
	other.Email = "jane@x.com"
	repo := newFakeUserRepo(alice(), other)

	_, err := app.NewUpdateUser(repo).Execute(context.Background(), app.UpdateUserInput{ID: aliceID, UserFieldsInput: validFieldsInput()})
	require.ErrorIs(t, err, app.ErrEmailAlreadyExists)
	require.Empty(t, repo.updated)
}

func TestUpdateUserNotFound(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()

	_, err := app.NewUpdateUser(repo).Execute(context.Background(), app.UpdateUserInput{ID: aliceID, UserFieldsInput: validFieldsInput()})
	require.ErrorIs(t, err, app.ErrUserNotFound)
}

func TestUpdateUserInvalidInput(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo(alice())
	in := validFieldsInput()
	in.PANNumber = "ABCDE12345"

	_, err := app.NewUpdateUser(repo).Execute(context.Background(), app.UpdateUserInput{ID: aliceID, UserFieldsInput: in})

	var verr *app.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, domain.FieldPANNumber, verr.Violations[0].Field)
	require.Empty(t, repo.updated)
}

func TestUpdateUserInvalidID(t *testing.T) {
	t.Parallel()

	_, err := app.NewUpdateUser(newFakeUserRepo()).Execute(context.Background(), app.UpdateUserInput{ID: "42", UserFieldsInput: validFieldsInput()})
	require.ErrorIs(t, err, app.ErrInvalidUserID)
}

func TestDeleteUser(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo(alice())
	uc := app.NewDeleteUser(repo)

	require.NoError(t, uc.Execute(context.Background(), app.DeleteUserInput{ID: aliceID}))
	require.Equal(t, []string{aliceID}, repo.deletedIDs)

	err := uc.Execute(context.Background(), app.DeleteUserInput{ID: aliceID})
	require.ErrorIs(t, err, app.ErrUserNotFound)
}

func TestDeleteUserFailures(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo(alice())
	repo.deleteErr = errors.New("locked")
	uc := app.NewDeleteUser(repo)

	require.ErrorIs(t, uc.Execute(context.Background(), app.DeleteUserInput{ID: aliceID}), app.ErrDeleteUser)
	require.ErrorIs(t, uc.Execute(context.Background(), app.DeleteUserInput{ID: "nope"}), app.ErrInvalidUserID)
}
