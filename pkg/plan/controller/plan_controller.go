package controller

import "github.com/labstack/echo/v4"

type PlanController interface {
	Open(c echo.Context) error
	State(c echo.Context) error
	Reload(c echo.Context) error
	Save(c echo.Context) error

	AddRow(c echo.Context) error
	DuplicateRow(c echo.Context) error
	RemoveRow(c echo.Context) error
	UpdateRow(c echo.Context) error

	CopyDay(c echo.Context) error
	MoveDay(c echo.Context) error
	CopyRange(c echo.Context) error
	MoveRange(c echo.Context) error
	CopyRowRange(c echo.Context) error

	Totals(c echo.Context) error
	Summary(c echo.Context) error
}
