package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// DevOperator stamps a development operator id into the context, creating a
// cookie on first contact. Use StrictOperator in real deployments.
func DevOperator() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := ""
			if ck, err := c.Cookie("OPERATOR_UID"); err == nil {
				uid = ck.Value
			}
			if uid == "" {
				if q := c.QueryParam("uid"); q != "" {
					c.SetCookie(&http.Cookie{Name: "OPERATOR_UID", Value: q, Path: "/"})
					uid = q
				} else {
					uid = "OP_DEV_DEFAULT"
					c.SetCookie(&http.Cookie{Name: "OPERATOR_UID", Value: uid, Path: "/"})
				}
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}

// StrictOperator requires an operator id from the frontend gateway. When
// enabled=false it passes through (use DevOperator instead). Every version and
// history write downstream refuses an empty uid, so this is the outer gate.
func StrictOperator(enabled bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !enabled {
				return next(c) // bypass in development
			}
			uid := c.Request().Header.Get("X-Operator-Id")
			if uid == "" {
				if ck, err := c.Cookie("OPERATOR_UID"); err == nil {
					uid = ck.Value
				}
			}
			if uid == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "operator identity is required"})
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
