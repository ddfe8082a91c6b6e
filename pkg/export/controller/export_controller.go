package controller

import "github.com/labstack/echo/v4"

type ExportController interface {
	Plan(c echo.Context) error
	Version(c echo.Context) error
}
