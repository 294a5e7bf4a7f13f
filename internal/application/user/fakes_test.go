package user_test

import (
	"context"
	"sync"

	domain "github.com/mohammadpnp/user-registry/internal/domain/user"
)

type fakeUserRepo struct {
	mu         sync.Mutex
	users      map[string]domain.User
	findErr    error
	getErr     error
	createErr  error
	updateErr  error
	deleteErr  error
	listErr    error
	findCalls  int
	created    []domain.User
	updated    []domain.User
	deletedIDs []string
}

func newFakeUserRepo(users ...domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[string]domain.User{}}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (f *fakeUserRepo) List(ctx context.Context) ([]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]domain.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.findCalls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, u := range f.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return domain.User{}, f.createErr
	}
	u.ID = "0b0c5a9e-7d1f-4a6b-9c3e-1f2a3b4c5d6e"
	f.users[u.ID] = u
	f.created = append(f.created, u)
	return u, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u domain.User) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.updateErr != nil {
		return domain.User{}, f.updateErr
	}
	f.users[u.ID] = u
	f.updated = append(f.updated, u)
	return u, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.users[userID]; !ok {
		return domain.ErrUserNotFound
	}
	delete(f.users, userID)
	f.deletedIDs = append(f.deletedIDs, userID)
	return nil
}

type fakeSpreadsheetReader struct {
	rows []domain.ImportRow
	err  error
}

func (f *fakeSpreadsheetReader) ReadRows(ctx context.Context, content []byte) ([]domain.ImportRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

type fakeBulkInserter struct {
	calls int
	users []domain.User
	err   error
}

func (f *fakeBulkInserter) InsertMany(ctx context.Context, users []domain.User) (int64, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	f.users = append(f.users, users...)
	return int64(len(users)), nil
}

type fakeObserver struct {
	outcomes []domain.ImportOutcome
}

func (f *fakeObserver) ObserveImport(outcome domain.ImportOutcome, result domain.ImportResult) {
	f.outcomes = append(f.outcomes, outcome)
}

func importRow(number int, firstName, lastName, email, phone, pan string) domain.ImportRow {
	return domain.ImportRow{
		Number: number,
		Cells: map[string]string{
			domain.ColumnFirstName:   firstName,
			domain.ColumnLastName:    lastName,
			domain.ColumnEmail:       email,
			domain.ColumnPhoneNumber: phone,
			domain.ColumnPANNumber:   pan,
		},
	}
}
