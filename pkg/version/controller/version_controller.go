package controller

import "github.com/labstack/echo/v4"

type VersionController interface {
	Create(c echo.Context) error
	List(c echo.Context) error
	Detail(c echo.Context) error
}
