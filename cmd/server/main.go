package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"jornales/config"
	"jornales/database"
	"jornales/router"

	// Auth
	authCtrlImp "jornales/pkg/auth/controllerImp"
	authRepoImp "jornales/pkg/auth/repositoryImp"
	authSvcImp "jornales/pkg/auth/serviceImp"

	// Catalog
	catCtrlImp "jornales/pkg/catalog/controllerImp"
	catRepoImp "jornales/pkg/catalog/repositoryImp"
	catSvcImp "jornales/pkg/catalog/serviceImp"

	// Plan
	planCtrlImp "jornales/pkg/plan/controllerImp"
	planRepoImp "jornales/pkg/plan/repositoryImp"
	planSvcImp "jornales/pkg/plan/serviceImp"

	// Versions
	verCtrlImp "jornales/pkg/version/controllerImp"
	verRepoImp "jornales/pkg/version/repositoryImp"
	verSvcImp "jornales/pkg/version/serviceImp"

	// Export
	expCtrlImp "jornales/pkg/export/controllerImp"
	expSvcImp "jornales/pkg/export/serviceImp"

	// Health
	healthCtrlImp "jornales/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Logger())

	// 4) Repos
	authRepo := authRepoImp.New(db)
	catRepo := catRepoImp.New(db)
	planRepo := planRepoImp.New(db)
	verRepo := verRepoImp.New(db)

	// 5) Services
	authSvc := authSvcImp.New(authRepo, cfg.SessionSecret)
	catSvc := catSvcImp.New(catRepo)
	planSvc := planSvcImp.New(planRepo, catSvc)
	verSvc := verSvcImp.New(verRepo, planRepo)
	expSvc := expSvcImp.New(planSvc, verRepo, catSvc)

	// 6) Controllers
	aCtrl := authCtrlImp.New(authSvc)
	cCtrl := catCtrlImp.New(catSvc)
	pCtrl := planCtrlImp.New(planSvc)
	vCtrl := verCtrlImp.New(verSvc)
	xCtrl := expCtrlImp.New(expSvc)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 7) Router
	r := router.New(e, authSvc, aCtrl, cCtrl, pCtrl, vCtrl, xCtrl, hCtrl)

	// 8) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
