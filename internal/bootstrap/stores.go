package bootstrap

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mohammadpnp/user-registry/internal/config"
	"github.com/mohammadpnp/user-registry/internal/infrastructure/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Stores holds both database handles: gorm for record CRUD and a pgx pool for
// the transactional COPY used by bulk imports.
type Stores struct {
	DB           *gorm.DB
	Pool         *pgxpool.Pool
	Users        *repository.UserRepository
	BulkInserter *repository.UserBulkImportRepository
}

func OpenStores(ctx context.Context, cfg config.DatabaseOptions) (*Stores, error) {
	db, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	pool, err := pgxpool.New(ctx, cfg.URL)
	if err != nil {
		closeGorm(db)
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}

	stores := &Stores{
		DB:           db,
		Pool:         pool,
		Users:        repository.NewUserRepository(db),
		BulkInserter: repository.NewUserBulkImportRepository(pool),
	}

	if cfg.AutoMigrate {
		if err := stores.Users.Migrate(ctx); err != nil {
			stores.Close()
			return nil, err
		}
	}

	return stores, nil
}

func (s *Stores) Close() {
	s.Pool.Close()
	closeGorm(s.DB)
}

func closeGorm(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
