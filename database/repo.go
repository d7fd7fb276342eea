package database

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/errs"
)

// repo holds the CRUD every entity repository shares. Lookups that match no
// row return errs.ErrNotFound.
type repo[T any] struct {
	db *gorm.DB
}

// GetDB returns the underlying database connection for debugging purposes
func (r repo[T]) GetDB() *gorm.DB {
	return r.db
}

func (r repo[T]) findAll(ctx context.Context, order any) ([]*T, error) {
	records := []*T{}
	err := r.db.WithContext(ctx).Order(order).Find(&records).Error
	return records, err
}

// FindByID returns the record with the given id
func (r repo[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var record T
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &record, nil
}

// Add inserts a new record
func (r repo[T]) Add(ctx context.Context, record *T) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// Update writes every column of an existing record
func (r repo[T]) Update(ctx context.Context, record *T) error {
	return r.db.WithContext(ctx).Save(record).Error
}

// Delete removes a record permanently
func (r repo[T]) Delete(ctx context.Context, id uuid.UUID) error {
	var zero T
	res := r.db.WithContext(ctx).Delete(&zero, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Count returns the number of stored records
func (r repo[T]) Count(ctx context.Context) (int64, error) {
	var zero T
	var n int64
	err := r.db.WithContext(ctx).Model(&zero).Count(&n).Error
	return n, err
}

func notFoundErr(err error) bool {
	return errors.Is(err, errs.ErrNotFound)
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrNotFound
	}
	return err
}
