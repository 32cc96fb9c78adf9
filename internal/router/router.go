package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateReservation(c *ginext.Context)
	UpdateReservation(c *ginext.Context)
	CancelReservation(c *ginext.Context)
	GetReservation(c *ginext.Context)
	ListReservations(c *ginext.Context)
	ListUserReservations(c *ginext.Context)
	ListSpaceReservations(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Reservations
		api.POST("/reservations", h.CreateReservation)
		api.GET("/reservations", h.ListReservations)
		api.GET("/reservations/:id", h.GetReservation)
		api.PUT("/reservations/:id", h.UpdateReservation)
		api.DELETE("/reservations/:id", h.CancelReservation)

		// Reservations by referencing entity
		api.GET("/users/:id/reservations", h.ListUserReservations)
		api.GET("/spaces/:id/reservations", h.ListSpaceReservations)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
