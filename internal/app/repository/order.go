package repository

import (
	"context"
	"errors"
	"fmt"

	"printshop/internal/app/ds"

	"gorm.io/gorm"
)

// OrderFilter narrows the staff order listing.
type OrderFilter struct {
	ServiceType string
	Limit       int
	Offset      int
}

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// CreateOrder inserts the order with its documents and payment proof in one transaction.
func (r *Repository) CreateOrder(ctx context.Context, order *ds.Order) error {
	if order.Status == "" {
		order.Status = ds.StatusPending
	}

	err := r.db.WithContext(ctx).Create(order).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

func (r *Repository) GetOrderByID(ctx context.Context, id uint) (*ds.Order, error) {
	var order ds.Order
	err := r.db.WithContext(ctx).
		Preload("Documents").
		Preload("PaymentProof").
		First(&order, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &order, nil
}

func (r *Repository) GetOrderByReference(ctx context.Context, reference string) (*ds.Order, error) {
	var order ds.Order
	err := r.db.WithContext(ctx).
		Preload("Documents").
		Preload("PaymentProof").
		Where("reference = ?", reference).
		First(&order).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &order, nil
}

// ListOrders returns the newest orders first together with the unpaged total.
func (r *Repository) ListOrders(ctx context.Context, f OrderFilter) ([]ds.Order, int64, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	query := r.db.WithContext(ctx).Model(&ds.Order{})
	if f.ServiceType != "" {
		query = query.Where("service_type = ?", f.ServiceType)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	var orders []ds.Order
	err := query.
		Preload("Documents").
		Preload("PaymentProof").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&orders).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	return orders, total, nil
}
