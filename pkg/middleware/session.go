package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jornales/pkg/auth/service"
)

const SessionCookie = "JORNALES_SESSION"

// Session resolves the current identity from the session cookie (or a bearer
// header) into the request context. When required=true, requests without a
// valid session are rejected with 401.
func Session(auth service.AuthService, required bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := ""
			if ck, err := c.Cookie(SessionCookie); err == nil {
				token = ck.Value
			}
			if token == "" {
				if h := c.Request().Header.Get(echo.HeaderAuthorization); len(h) > 7 && h[:7] == "Bearer " {
					token = h[7:]
				}
			}

			if token != "" {
				if id, err := auth.Parse(token); err == nil {
					c.Set("email", id.Email)
					c.Set("rol", id.Rol)
					return next(c)
				}
			}
			if required {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "sesión requerida"})
			}
			return next(c)
		}
	}
}
