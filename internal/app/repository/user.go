package repository

import (
	"context"
	"errors"

	"printshop/internal/app/ds"
	"printshop/internal/app/role"

	"gorm.io/gorm"
)

// Staff accounts (ORM)

func (r *Repository) GetStaffByID(ctx context.Context, id uint) (*ds.Staff, error) {
	var staff ds.Staff
	err := r.db.WithContext(ctx).First(&staff, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &staff, nil
}

func (r *Repository) GetStaffByLogin(ctx context.Context, login string) (*ds.Staff, error) {
	var staff ds.Staff
	err := r.db.WithContext(ctx).Where("login = ?", login).First(&staff).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &staff, nil
}

// CreateStaff stores a new account; passwordHash must already be hashed.
func (r *Repository) CreateStaff(ctx context.Context, login, passwordHash, fullName string, rl role.Role) (*ds.Staff, error) {
	_, err := r.GetStaffByLogin(ctx, login)
	if err == nil {
		return nil, ErrAlreadyExists
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	staff := ds.Staff{
		Login:    login,
		Password: passwordHash,
		FullName: fullName,
		Role:     int(rl),
	}
	if err := r.db.WithContext(ctx).Create(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}
	return &staff, nil
}
