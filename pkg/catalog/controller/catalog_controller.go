package controller

import "github.com/labstack/echo/v4"

type CatalogController interface {
	Departments(c echo.Context) error
	Bundle(c echo.Context) error
}
