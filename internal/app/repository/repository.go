package repository

import (
	"errors"
	"fmt"
	"time"

	"printshop/internal/app/ds"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
)

type Repository struct {
	db *gorm.DB
}

func New(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger: logger.New(logrus.StandardLogger(), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, err
	}

	repo := NewWithDB(db)
	if err := repo.Migrate(); err != nil {
		return nil, err
	}
	return repo, nil
}

// NewWithDB wraps an already opened connection.
func NewWithDB(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates all tables.
func (r *Repository) Migrate() error {
	err := r.db.AutoMigrate(
		&ds.Order{},
		&ds.Document{},
		&ds.PaymentProof{},
		&ds.Staff{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
