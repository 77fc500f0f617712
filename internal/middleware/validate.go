package middleware

import (
	"encoding/json"
	"io"
	"net/http"

	"app/internal/validator"

	"github.com/labstack/echo/v4"
)

const CtxBodyKey = "validated_body" // map[string]any

// Validateはルール一式をリクエストに適用するミドルウェア。
// 失敗が1つでもあれば400で打ち切り、ハンドラは実行しない。
// 成功時はデコード済みボディをcontextに置く（ボディは1回しか読めない）。
func Validate(rules []validator.Rule) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := validator.Request{
				Params: map[string]string{},
				Body:   map[string]any{},
			}
			for _, name := range c.ParamNames() {
				req.Params[name] = c.Param(name)
			}

			if validator.HasBodyRules(rules) && c.Request().Body != nil {
				defer c.Request().Body.Close()
				if err := json.NewDecoder(c.Request().Body).Decode(&req.Body); err != nil && err != io.EOF {
					return c.JSON(http.StatusBadRequest, echo.Map{
						"errors": []validator.FieldError{{Field: "body", Message: "JSON no válido"}},
					})
				}
			}

			if errs := validator.Apply(rules, req); len(errs) > 0 {
				return c.JSON(http.StatusBadRequest, echo.Map{"errors": errs})
			}

			c.Set(CtxBodyKey, req.Body)
			return next(c)
		}
	}
}

// BodyはValidateがデコードしたボディを取り出す
func Body(c echo.Context) map[string]any {
	m, _ := c.Get(CtxBodyKey).(map[string]any)
	return m
}
