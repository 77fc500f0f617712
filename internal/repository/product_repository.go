package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// 商品の永続化（保存・取得）だけを約束。
// FindAllはid降順で返す。UpdateとToggleAvailabilityは
// 読み取りと書き込みを1トランザクションで行う。
type ProductRepository interface {
	FindAll(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) (model.Product, error)
	ToggleAvailability(ctx context.Context, id int64) (model.Product, error)
	Delete(ctx context.Context, id int64) error
}
