package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/avelkner/innkeeper/internal/app"
	"github.com/avelkner/innkeeper/internal/service"
)

type Handler struct {
	app *app.App
}

func NewHandler(app *app.App) *Handler {
	return &Handler{
		app: app,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/hotels", h.HandleCreateHotel)
	r.GET("/hotels", h.HandleListHotels)
	r.GET("/hotels/:id", h.HandleGetHotel)
	r.PATCH("/hotels/:id", h.HandleModifyHotel)
	r.DELETE("/hotels/:id", h.HandleDeleteHotel)
	r.POST("/hotels/:id/reserve", h.HandleReserveRoom)
	r.POST("/hotels/:id/release", h.HandleReleaseRoom)

	r.POST("/customers", h.HandleCreateCustomer)
	r.GET("/customers", h.HandleListCustomers)
	r.GET("/customers/:id", h.HandleGetCustomer)
	r.PATCH("/customers/:id", h.HandleModifyCustomer)
	r.DELETE("/customers/:id", h.HandleDeleteCustomer)

	r.POST("/reservations", h.HandleCreateReservation)
	r.GET("/reservations", h.HandleListReservations)
	r.GET("/reservations/:id", h.HandleGetReservation)
	r.POST("/reservations/:id/cancel", h.HandleCancelReservation)
}

// respondError maps domain failures onto the statuses clients branch
// on. Anything unrecognized is a 500.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		ctx.JSON(404, gin.H{
			"error":  "Not found",
			"detail": err.Error(),
		})
	case errors.Is(err, service.ErrAlreadyExists):
		ctx.JSON(409, gin.H{
			"error":  "Already exists",
			"detail": err.Error(),
		})
	case errors.Is(err, service.ErrAlreadyCancelled):
		ctx.JSON(409, gin.H{
			"error":  "Already cancelled",
			"detail": err.Error(),
		})
	case errors.Is(err, service.ErrNoRoomsAvailable):
		ctx.JSON(409, gin.H{
			"error":  "No rooms available",
			"detail": err.Error(),
		})
	case errors.Is(err, service.ErrValidation):
		ctx.JSON(400, gin.H{
			"error":  "Invalid input",
			"detail": err.Error(),
		})
	default:
		ctx.JSON(500, gin.H{
			"error":   "Internal server error",
			"message": "Failed to process request, please try again later",
		})
	}
}
