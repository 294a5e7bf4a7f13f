package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	domain "github.com/mohammadpnp/user-registry/internal/domain/user"
	"github.com/mohammadpnp/user-registry/internal/infrastructure/db/models"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

var _ domain.UserRepository = (*UserRepository)(nil)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Migrate creates or extends the users table, including the unique email
// index the import pipeline relies on.
func (r *UserRepository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&models.User{}); err != nil {
		return fmt.Errorf("migrate users: %w", err)
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var rows []models.User
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, toDomain(row))
	}
	return users, nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.first(ctx, "get user by id", "id = ?", userID)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.first(ctx, "find user by email", "email = ?", email)
}

func (r *UserRepository) first(ctx context.Context, op string, query string, arg any) (*domain.User, error) {
	var row models.User

	err := r.db.WithContext(ctx).First(&row, query, arg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	u := toDomain(row)
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u domain.User) (domain.User, error) {
	row := toModel(u)
	if row.ID == "" {
		row.ID = uuid.NewString()
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, domain.ErrEmailAlreadyExists
		}
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	return toDomain(row), nil
}

func (r *UserRepository) Update(ctx context.Context, u domain.User) (domain.User, error) {
	result := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", u.ID).
		Updates(map[string]any{
			"first_name":   u.FirstName,
			"last_name":    u.LastName,
			"email":        u.Email,
			"phone_number": u.PhoneNumber,
			"pan_number":   u.PANNumber,
		})
	if err := result.Error; err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, domain.ErrEmailAlreadyExists
		}
		return domain.User{}, fmt.Errorf("update user: %w", err)
	}
	if result.RowsAffected == 0 {
		return domain.User{}, domain.ErrUserNotFound
	}

	updated, err := r.GetByID(ctx, u.ID)
	if err != nil {
		return domain.User{}, err
	}
	return *updated, nil
}

func (r *UserRepository) Delete(ctx context.Context, userID string) error {
	result := r.db.WithContext(ctx).Delete(&models.User{}, "id = ?", userID)
	if err := result.Error; err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func toDomain(row models.User) domain.User {
	return domain.User{
		ID:          row.ID,
		FirstName:   row.FirstName,
		LastName:    row.LastName,
		Email:       row.Email,
		PhoneNumber: row.PhoneNumber,
		PANNumber:   row.PANNumber,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func toModel(u domain.User) models.User {
	return models.User{
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

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
