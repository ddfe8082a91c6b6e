package router

import (
	"github.com/labstack/echo/v4"

	authCtrl "jornales/pkg/auth/controller"
	authSvc "jornales/pkg/auth/service"
	catCtrl "jornales/pkg/catalog/controller"
	expCtrl "jornales/pkg/export/controller"
	healthCtrl "jornales/pkg/health/controllerImp"
	"jornales/pkg/middleware"
	planCtrl "jornales/pkg/plan/controller"
	verCtrl "jornales/pkg/version/controller"
)

func New(
	e *echo.Echo,
	auth authSvc.AuthService,
	aCtrl authCtrl.AuthController,
	cCtrl catCtrl.CatalogController,
	pCtrl planCtrl.PlanController,
	vCtrl verCtrl.VersionController,
	xCtrl expCtrl.ExportController,
	hCtrl *healthCtrl.HealthCtrl,
) *echo.Echo {
	e.GET("/healthz", hCtrl.Health)
	e.POST("/api/auth/login", aCtrl.Login)

	api := e.Group("/api", middleware.Session(auth, true))
	api.GET("/auth/whoami", aCtrl.WhoAmI)
	api.POST("/auth/logout", aCtrl.Logout)

	api.GET("/deptos", cCtrl.Departments)
	api.GET("/deptos/:id/catalog", cCtrl.Bundle)

	api.POST("/plan/open", pCtrl.Open)
	api.GET("/plan/:id", pCtrl.State)
	api.POST("/plan/:id/reload", pCtrl.Reload)
	api.POST("/plan/:id/save", pCtrl.Save)

	api.POST("/plan/:id/rows", pCtrl.AddRow)
	api.POST("/plan/:id/rows/:uiid/duplicate", pCtrl.DuplicateRow)
	api.DELETE("/plan/:id/rows/:uiid", pCtrl.RemoveRow)
	api.PATCH("/plan/:id/rows/:uiid", pCtrl.UpdateRow)

	api.POST("/plan/:id/copy-day", pCtrl.CopyDay)
	api.POST("/plan/:id/move-day", pCtrl.MoveDay)
	api.POST("/plan/:id/copy-range", pCtrl.CopyRange)
	api.POST("/plan/:id/move-range", pCtrl.MoveRange)
	api.POST("/plan/:id/copy-row-range", pCtrl.CopyRowRange)

	api.GET("/plan/:id/totales", pCtrl.Totals)
	api.GET("/plan/:id/resumen", pCtrl.Summary)

	api.POST("/plan/:id/versiones", vCtrl.Create)
	api.GET("/plan/:id/versiones", vCtrl.List)
	api.GET("/versiones/:id", vCtrl.Detail)

	api.GET("/plan/:id/export", xCtrl.Plan)
	api.GET("/versiones/:id/export", xCtrl.Version)

	return e
}
