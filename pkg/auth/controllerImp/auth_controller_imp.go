package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jornales/pkg/auth/controller"
	"jornales/pkg/auth/service"
	"jornales/pkg/middleware"
)

type authCtrl struct{ svc service.AuthService }

func New(svc service.AuthService) controller.AuthController { return &authCtrl{svc} }

type loginReq struct {
	Email  string `json:"email"`
	Secret string `json:"password"`
}

func (h *authCtrl) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}

	token, id, err := h.svc.Login(req.Email, req.Secret)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
	return c.JSON(http.StatusOK, id)
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	email, _ := c.Get("email").(string)
	rol, _ := c.Get("rol").(string)
	return c.JSON(http.StatusOK, map[string]string{"email": email, "rol": rol})
}

func (h *authCtrl) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:   middleware.SessionCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
