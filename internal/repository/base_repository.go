package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	appErr "github.com/HakimZ78/devhakim-api/pkg/errors"
)

// BaseRepository defines common CRUD operations shared by every collection.
type BaseRepository[T any] interface {
	Create(ctx context.Context, obj *T) error
	GetByID(ctx context.Context, id any, dest *T) error
	Update(ctx context.Context, obj *T) error
	Delete(ctx context.Context, id any) error
	// List returns the whole collection ordered by order_index, then creation
	// time. order_index values need not be contiguous.
	List(ctx context.Context) ([]T, error)
	// SwapOrder exchanges the order_index of two rows in a single transaction.
	// Either both rows move or neither does.
	SwapOrder(ctx context.Context, a, b any) error
}

type baseRepository[T any] struct {
	db *gorm.DB
}

func NewBaseRepository[T any](db *gorm.DB) BaseRepository[T] {
	return &baseRepository[T]{db: db}
}

func (r *baseRepository[T]) Create(ctx context.Context, obj *T) error {
	if err := r.db.WithContext(ctx).Create(obj).Error; err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "create entity failed")
	}
	return nil
}

func (r *baseRepository[T]) GetByID(ctx context.Context, id any, dest *T) error {
	if err := r.db.WithContext(ctx).First(dest, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return appErr.New(appErr.CodeNotFound, "entity not found")
		}
		return appErr.Wrap(err, appErr.CodeInternal, "get entity failed")
	}
	return nil
}

func (r *baseRepository[T]) Update(ctx context.Context, obj *T) error {
	if err := r.db.WithContext(ctx).Save(obj).Error; err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "update entity failed")
	}
	return nil
}

func (r *baseRepository[T]) Delete(ctx context.Context, id any) error {
	var t T
	res := r.db.WithContext(ctx).Delete(&t, "id = ?", id)
	if res.Error != nil {
		return appErr.Wrap(res.Error, appErr.CodeInternal, "delete entity failed")
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, fmt.Sprintf("entity %v not found", id))
	}
	return nil
}

func (r *baseRepository[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.db.WithContext(ctx).Order("order_index ASC, created_at ASC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list entities failed")
	}
	return out, nil
}

func (r *baseRepository[T]) SwapOrder(ctx context.Context, a, b any) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var t T
		var orderA, orderB int

		row := tx.Model(&t).Select("order_index").Where("id = ?", a).Row()
		if err := row.Scan(&orderA); err != nil {
			return appErr.Newf(appErr.CodeNotFound, "entity %v not found", a)
		}
		row = tx.Model(&t).Select("order_index").Where("id = ?", b).Row()
		if err := row.Scan(&orderB); err != nil {
			return appErr.Newf(appErr.CodeNotFound, "entity %v not found", b)
		}

		if err := tx.Model(&t).Where("id = ?", a).Update("order_index", orderB).Error; err != nil {
			return err
		}
		if err := tx.Model(&t).Where("id = ?", b).Update("order_index", orderA).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if ae, ok := err.(*appErr.AppError); ok {
			return ae
		}
		return appErr.Wrap(err, appErr.CodeInternal, "swap order failed")
	}
	return nil
}
