package handler

import (
	"github.com/gin-gonic/gin"
)

func (h *Handler) HandleCreateReservation(ctx *gin.Context) {
	var req CreateReservationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(400, gin.H{
			"error":  "Invalid request format",
			"detail": err.Error(),
		})
		return
	}

	reservation, err := h.app.ReservationWorkflow.CreateReservation(
		req.ReservationID, req.CustomerID, req.HotelID, req.CheckIn, req.CheckOut)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(201, reservation)
}

func (h *Handler) HandleListReservations(ctx *gin.Context) {
	reservations, err := h.app.ReservationService.GetAllReservations()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(200, reservations)
}

func (h *Handler) HandleGetReservation(ctx *gin.Context) {
	reservation, err := h.app.ReservationService.GetReservationByID(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(200, reservation)
}

func (h *Handler) HandleCancelReservation(ctx *gin.Context) {
	if err := h.app.ReservationWorkflow.CancelReservation(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(200, gin.H{
		"message": "Reservation cancelled",
		"status":  "cancelled",
	})
}

type CreateReservationRequest struct {
	// may be left empty to have one generated
	ReservationID string `json:"reservation_id"`
	CustomerID    string `json:"customer_id"`
	HotelID       string `json:"hotel_id"`
	CheckIn       string `json:"check_in"`
	CheckOut      string `json:"check_out"`
}
