package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 全商品をid降順で返す
func (r *ProductGormRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	products := make([]model.Product, 0)
	if err := r.db.WithContext(ctx).Order("id desc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 商品の作成
func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 商品の全項目更新。更新と再取得を1トランザクションで行い、
// 同一IDへの同時更新でlost updateにならないようにする。
func (r *ProductGormRepository) Update(ctx context.Context, p model.Product) (model.Product, error) {
	var updated model.Product
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Product{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
			"name":         p.Name,
			"price":        p.Price,
			"availability": p.Availability,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repo.ErrNotFound
		}
		return tx.First(&updated, p.ID).Error
	})
	if err != nil {
		return model.Product{}, err
	}
	return updated, nil
}

// availabilityを現在値の論理否定に更新する
func (r *ProductGormRepository) ToggleAvailability(ctx context.Context, id int64) (model.Product, error) {
	var updated model.Product
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p model.Product
		if err := tx.First(&p, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repo.ErrNotFound
			}
			return err
		}

		res := tx.Model(&model.Product{}).
			Where("id = ?", id).
			Update("availability", !p.Availability)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repo.ErrNotFound
		}

		return tx.First(&updated, id).Error
	})
	if err != nil {
		return model.Product{}, err
	}
	return updated, nil
}

// 商品削除（物理削除）
func (r *ProductGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
