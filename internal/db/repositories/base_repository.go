package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// baseRepository carries the lookups every content table shares. Writes
// never touch associations; relations are saved by id only.
type baseRepository[T any] struct {
	db     *gorm.DB
	entity string
}

func (r *baseRepository[T]) findOne(ctx context.Context, query string, args ...interface{}) (*T, error) {
	var row T

	err := r.db.WithContext(ctx).
		Where(query, args...).
		First(&row).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch %s: %w", r.entity, err)
	}

	return &row, nil
}

// GetByID returns the row regardless of is_active; writes may revive a row.
func (r *baseRepository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	return r.findOne(ctx, "id = ?", id)
}

// GetActiveByID is the lookup used by public reads.
func (r *baseRepository[T]) GetActiveByID(ctx context.Context, id string) (*T, error) {
	return r.findOne(ctx, "id = ? AND is_active = ?", id, true)
}

func (r *baseRepository[T]) exists(ctx context.Context, query string, args ...interface{}) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(new(T)).
		Where(query, args...).
		Count(&count).Error

	if err != nil {
		return false, fmt.Errorf("failed to check %s: %w", r.entity, err)
	}
	return count > 0, nil
}

func (r *baseRepository[T]) Create(ctx context.Context, row *T) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(row).Error; err != nil {
		return fmt.Errorf("failed to create %s: %w", r.entity, err)
	}
	return nil
}

func (r *baseRepository[T]) Save(ctx context.Context, row *T) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(row).Error; err != nil {
		return fmt.Errorf("failed to update %s: %w", r.entity, err)
	}
	return nil
}

// Deactivate soft-deletes by clearing is_active. It reports whether a row changed.
func (r *baseRepository[T]) Deactivate(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(new(T)).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)

	if result.Error != nil {
		return false, fmt.Errorf("failed to deactivate %s: %w", r.entity, result.Error)
	}
	return result.RowsAffected > 0, nil
}

// lockTable serialises check-then-write sequences on postgres. SQLite
// already serialises writers.
func lockTable(tx *gorm.DB, table string) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	if err := tx.Exec("LOCK TABLE " + table + " IN SHARE ROW EXCLUSIVE MODE").Error; err != nil {
		return fmt.Errorf("failed to lock %s: %w", table, err)
	}
	return nil
}
