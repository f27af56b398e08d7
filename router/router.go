package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	clientCtrl interface {
		Create(echo.Context) error
		Get(echo.Context) error
		List(echo.Context) error
	},
	itinCtrl interface {
		Quote(echo.Context) error
		CreateVersion(echo.Context) error
		List(echo.Context) error
		Latest(echo.Context) error
	},
	fuCtrl interface {
		Transition(echo.Context) error
		History(echo.Context) error
		SuggestNext(echo.Context) error
	},
	bookCtrl interface {
		Confirm(echo.Context) error
		Checklist(echo.Context) error
		PatchItem(echo.Context) error
	},
	authCtrl interface {
		DevLogin(echo.Context) error
		WhoAmI(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	api := e.Group("")

	api.GET("/whoami", authCtrl.WhoAmI)
	api.GET("/devlogin", authCtrl.DevLogin)
	e.GET("/health", healthCtrl.Health)

	api.POST("/clients", clientCtrl.Create)
	api.GET("/clients", clientCtrl.List)
	api.GET("/clients/:id", clientCtrl.Get)

	g := e.Group("/clients")
	g.POST("/:id/quote", itinCtrl.Quote)
	g.POST("/:id/versions", itinCtrl.CreateVersion)
	g.GET("/:id/versions", itinCtrl.List)
	g.GET("/:id/versions/latest", itinCtrl.Latest)

	g.POST("/:id/followups", fuCtrl.Transition)
	g.GET("/:id/followups", fuCtrl.History)
	g.GET("/:id/followups/next", fuCtrl.SuggestNext)

	g.POST("/:id/confirm", bookCtrl.Confirm)
	g.GET("/:id/checklist", bookCtrl.Checklist)
	api.PATCH("/checklist/:item_id", bookCtrl.PatchItem)

	return e
}
