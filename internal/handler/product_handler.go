package handler

import (
	"net/http"
	"strconv"

	mw "app/internal/middleware"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/labstack/echo/v4"
)

type DataResponse struct {
	Data any `json:"data"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// /api/productsの公開API
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// 商品のルートを登録。バリデータ→ハンドラの順のチェーン。
func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/products")
	g.GET("", h.list)
	g.GET("/:id", h.getByID, mw.Validate(validator.ProductIDRules()))
	g.POST("", h.create, mw.Validate(validator.ProductCreateRules()))
	g.PUT("/:id", h.update, mw.Validate(validator.ProductUpdateRules()))
	g.PATCH("/:id", h.toggleAvailability, mw.Validate(validator.ProductIDRules()))
	g.DELETE("/:id", h.remove, mw.Validate(validator.ProductIDRules()))
}

func (h *ProductHandler) list(c echo.Context) error {
	items, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, DataResponse{Data: items})
}

func (h *ProductHandler) getByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	p, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, DataResponse{Data: p})
}

func (h *ProductHandler) create(c echo.Context) error {
	body := mw.Body(c)
	name, _ := body["name"].(string)
	price, _ := body["price"].(float64)

	p, err := h.uc.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		Name:  name,
		Price: price,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, DataResponse{Data: p})
}

func (h *ProductHandler) update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	body := mw.Body(c)
	name, _ := body["name"].(string)
	price, _ := body["price"].(float64)
	availability, _ := body["availability"].(bool)

	p, err := h.uc.UpdateProduct(c.Request().Context(), id, usecase.UpdateProductInput{
		Name:         name,
		Price:        price,
		Availability: availability,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, DataResponse{Data: p})
}

func (h *ProductHandler) toggleAvailability(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	p, err := h.uc.ToggleAvailability(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	//201
	return c.JSON(http.StatusCreated, DataResponse{Data: p})
}

func (h *ProductHandler) remove(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, DataResponse{Data: usecase.MsgDeleted})
}

func pathID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
