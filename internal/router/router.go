package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListSlots(c *ginext.Context)
	CreateSlot(c *ginext.Context)
	BulkCreateSlots(c *ginext.Context)
	UpdateSlot(c *ginext.Context)
	DeleteSlot(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	CancelBooking(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Slots
		api.GET("/slots", h.ListSlots)
		api.POST("/slots", h.CreateSlot)
		api.POST("/slots/bulk", h.BulkCreateSlots)
		api.PATCH("/slots/:id", h.UpdateSlot)
		api.DELETE("/slots/:id", h.DeleteSlot)

		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
		api.PATCH("/bookings/:id/cancel", h.CancelBooking)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
