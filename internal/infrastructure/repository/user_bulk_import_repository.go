package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	domain "github.com/mohammadpnp/user-registry/internal/domain/user"
)

var userCopyColumns = []string{
	"id",
	"first_name",
	"last_name",
	"email",
	"phone_number",
	"pan_number",
	"created_at",
	"updated_at",
}

var _ domain.BulkUserInserter = (*UserBulkImportRepository)(nil)

type UserBulkImportRepository struct {
	pool *pgxpool.Pool
}

func NewUserBulkImportRepository(pool *pgxpool.Pool) *UserBulkImportRepository {
	return &UserBulkImportRepository{pool: pool}
}

// InsertMany copies every user into the users table inside one transaction.
// A unique-email violation aborts the whole batch and surfaces as
// domain.ErrEmailAlreadyExists.
func (r *UserBulkImportRepository) InsertMany(ctx context.Context, users []domain.User) (int64, error) {
	if len(users) == 0 {
		return 0, nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now().UTC()
	rows := make([][]any, 0, len(users))
	for _, u := range users {
		id := u.ID
		if id == "" {
			id = uuid.NewString()
		}
		rows = append(rows, []any{id, u.FirstName, u.LastName, u.Email, u.PhoneNumber, u.PANNumber, now, now})
	}

	copied, err := tx.CopyFrom(ctx, pgx.Identifier{"users"}, userCopyColumns, pgx.CopyFromRows(rows))
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: %v", domain.ErrEmailAlreadyExists, err)
		}
		return 0, fmt.Errorf("copy users: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: %v", domain.ErrEmailAlreadyExists, err)
		}
		return 0, fmt.Errorf("commit user import: %w", err)
	}

	return copied, nil
}
