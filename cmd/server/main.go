package main

import (
	"log"
	"os"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"tripkit/config"
	"tripkit/database"
	"tripkit/router"

	// Auth + Health
	authCtrlImp "tripkit/pkg/auth/controllerImp"
	healthCtrlImp "tripkit/pkg/health/controllerImp"

	// Client
	clientCtrlImp "tripkit/pkg/client/controllerImp"
	clientRepoImp "tripkit/pkg/client/repositoryImp"

	// Catalog
	catalogCtrlImp "tripkit/pkg/catalog/controllerImp"
	"tripkit/pkg/catalog/importer"
	catalogRepoImp "tripkit/pkg/catalog/repositoryImp"

	// Itinerary
	itinCtrlImp "tripkit/pkg/itinerary/controllerImp"
	versionRepoImp "tripkit/pkg/itinerary/repositoryImp"
	itinSvcImp "tripkit/pkg/itinerary/serviceImp"

	// Follow-up
	fuCtrlImp "tripkit/pkg/followup/controllerImp"
	fuRepoImp "tripkit/pkg/followup/repositoryImp"
	fuSvcImp "tripkit/pkg/followup/serviceImp"

	// Booking
	bookCtrlImp "tripkit/pkg/booking/controllerImp"
	bookRepoImp "tripkit/pkg/booking/repositoryImp"
	bookSvcImp "tripkit/pkg/booking/serviceImp"

	"tripkit/pkg/middleware"
	"tripkit/pkg/pricing"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	if cfg.StrictAuth {
		e.Use(middleware.StrictOperator(true))
	} else {
		e.Use(middleware.DevOperator())
	}

	// Static operator UI shell
	e.Static("/static", "static")
	e.File("/", "static/index.html")
	if _, err := os.Stat("static/app.js"); err != nil {
		log.Printf("WARN: static/app.js not found: %v", err)
	}

	// 4) Catalog + optional workbook seed
	catRepo := catalogRepoImp.New(db)
	if cfg.CatalogXLSX != "" {
		if rows, err := importer.ParseWorkbook(cfg.CatalogXLSX); err != nil {
			log.Printf("catalog warn: %v", err)
		} else if n, err := importer.Import(catRepo, rows); err != nil {
			log.Printf("catalog warn: %v", err)
		} else {
			log.Printf("catalog: imported %d room types from %s", n, cfg.CatalogXLSX)
		}
	}
	catCtrl := catalogCtrlImp.New(catRepo)
	catCtrl.Register(e)

	// 5) Pricing engine
	engine := pricing.New()

	// 6) Repos/Services/Controllers
	clRepo := clientRepoImp.New(db)
	vRepo := versionRepoImp.New(db)
	fuRepo := fuRepoImp.New(db)
	bkRepo := bookRepoImp.New(db)

	itinSvc := itinSvcImp.New(engine, catRepo, vRepo)
	fuSvc := fuSvcImp.New(fuRepo, vRepo)
	bkSvc := bookSvcImp.New(bkRepo, vRepo, catRepo)

	clCtrl := clientCtrlImp.New(clRepo)
	itCtrl := itinCtrlImp.New(itinSvc, clRepo)
	fCtrl := fuCtrlImp.New(fuSvc, clRepo)
	bCtrl := bookCtrlImp.New(bkSvc, clRepo)

	authCtrl := authCtrlImp.NewAuthController()
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 7) Router
	r := router.New(e, clCtrl, itCtrl, fCtrl, bCtrl, authCtrl, hCtrl)

	// 8) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
