package user

import "context"

type UserRepository interface {
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, userID string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, u User) (User, error)
	Update(ctx context.Context, u User) (User, error)
	Delete(ctx context.Context, userID string) error
}

// BulkUserInserter persists a batch of new users atomically: either every
// record is stored or none is.
type BulkUserInserter interface {
	InsertMany(ctx context.Context, users []User) (int64, error)
}
