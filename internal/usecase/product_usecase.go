package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

const (
	MsgNotFound = "Producto No Encontrado"
	MsgDeleted  = "Producto Eliminado"
)

type ProductUsecase struct {
	productRepo repo.ProductRepository
	logger      *slog.Logger
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository, logger *slog.Logger) *ProductUsecase {
	return &ProductUsecase{
		productRepo: productRepo,
		logger:      logger,
	}
}

// POST /api/productsの入力DTO
type CreateProductInput struct {
	Name  string
	Price float64
}

// PUT /api/products/:idの入力DTO
type UpdateProductInput struct {
	Name         string
	Price        float64
	Availability bool
}

func (u *ProductUsecase) ListProducts(ctx context.Context) ([]model.Product, error) {
	items, err := u.productRepo.FindAll(ctx)
	if err != nil {
		u.logger.Error("list products", "error", err)
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return items, nil
}

func (u *ProductUsecase) GetProduct(ctx context.Context, id int64) (model.Product, error) {
	p, err := u.productRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, MsgNotFound)
	}
	if err != nil {
		u.logger.Error("get product", "id", id, "error", err)
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return p, nil
}

// availabilityは常にtrueで作成する
func (u *ProductUsecase) CreateProduct(ctx context.Context, in CreateProductInput) (model.Product, error) {
	p, err := u.productRepo.Create(ctx, model.Product{
		Name:         strings.TrimSpace(in.Name),
		Price:        in.Price,
		Availability: true,
	})
	if err != nil {
		u.logger.Error("create product", "error", err)
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return p, nil
}

func (u *ProductUsecase) UpdateProduct(ctx context.Context, id int64, in UpdateProductInput) (model.Product, error) {
	p, err := u.productRepo.Update(ctx, model.Product{
		ID:           id,
		Name:         strings.TrimSpace(in.Name),
		Price:        in.Price,
		Availability: in.Availability,
	})
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, MsgNotFound)
	}
	if err != nil {
		u.logger.Error("update product", "id", id, "error", err)
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return p, nil
}

func (u *ProductUsecase) ToggleAvailability(ctx context.Context, id int64) (model.Product, error) {
	p, err := u.productRepo.ToggleAvailability(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, MsgNotFound)
	}
	if err != nil {
		u.logger.Error("toggle availability", "id", id, "error", err)
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return p, nil
}

func (u *ProductUsecase) DeleteProduct(ctx context.Context, id int64) error {
	err := u.productRepo.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, MsgNotFound)
	}
	if err != nil {
		u.logger.Error("delete product", "id", id, "error", err)
		return NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return nil
}
