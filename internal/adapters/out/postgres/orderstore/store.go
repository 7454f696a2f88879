// Package orderstore implements ports.OrderStore on PostgreSQL with GORM.
//
// The current order lives in current_orders, one row per user. Delivered
// orders are copied into user_order_history (keyed by user and order number)
// and order_history (keyed by order number). History inserts ignore
// conflicts, which makes archiving idempotent.
package orderstore

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ ports.OrderStore = (*GormOrderStore)(nil)

type GormOrderStore struct {
	db *gorm.DB
}

func NewGormOrderStore(db *gorm.DB) *GormOrderStore {
	return &GormOrderStore{db: db}
}

func (s *GormOrderStore) ReadCurrentOrder(ctx context.Context, userKey string) (*order.Order, error) {
	var dto CurrentOrderDTO
	if err := s.db.WithContext(ctx).First(&dto, "user_key = ?", userKey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("current order", userKey)
		}
		return nil, err
	}

	return toDomain(dto.OrderColumns)
}

func (s *GormOrderStore) WriteCurrentOrder(ctx context.Context, userKey string, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	dto := CurrentOrderDTO{UserKey: userKey, OrderColumns: fromDomain(o)}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_key"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}

func (s *GormOrderStore) AppendToHistory(ctx context.Context, userKey string, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	dto := UserHistoryDTO{UserKey: userKey, OrderColumns: fromDomain(o)}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_key"}, {Name: "order_number"}},
			DoNothing: true,
		}).
		Create(&dto).Error
}

func (s *GormOrderStore) AppendToGlobalHistory(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	dto := GlobalHistoryDTO{OrderColumns: fromDomain(o)}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_number"}},
			DoNothing: true,
		}).
		Create(&dto).Error
}

// UpdateHistoryRating rates both history rows in one transaction.
func (s *GormOrderStore) UpdateHistoryRating(
	ctx context.Context,
	userKey, orderNumber string,
	rating kernel.Rating,
) error {
	if err := rating.Validate(); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		userRows := tx.Model(&UserHistoryDTO{}).
			Where("user_key = ? AND order_number = ?", userKey, orderNumber).
			Update("rating", rating.Int())
		if userRows.Error != nil {
			return userRows.Error
		}

		globalRows := tx.Model(&GlobalHistoryDTO{}).
			Where("order_number = ?", orderNumber).
			Update("rating", rating.Int())
		if globalRows.Error != nil {
			return globalRows.Error
		}

		if userRows.RowsAffected+globalRows.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("history entry", orderNumber)
		}
		return nil
	})
}

func (s *GormOrderStore) ListHistory(ctx context.Context, userKey string) ([]*order.Order, error) {
	var dtos []UserHistoryDTO
	if err := s.db.WithContext(ctx).
		Where("user_key = ?", userKey).
		Order("archived_seq DESC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto.OrderColumns)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (s *GormOrderStore) ListGlobalHistory(ctx context.Context) ([]*order.Order, error) {
	var dtos []GlobalHistoryDTO
	if err := s.db.WithContext(ctx).
		Order("archived_seq DESC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto.OrderColumns)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
