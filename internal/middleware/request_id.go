package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const RequestIDHeader = "X-Request-Id"

// RequestIDはX-Request-Idを引き継ぐか、無ければ生成する。
// UUIDとして不正な値は捨てて振り直す。
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(RequestIDHeader)
			if _, err := uuid.Parse(id); id == "" || err != nil {
				id = uuid.NewString()
			}
			c.Response().Header().Set(RequestIDHeader, id)
			return next(c)
		}
	}
}
