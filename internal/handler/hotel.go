package handler

import (
	"github.com/gin-gonic/gin"
)

func (h *Handler) HandleCreateHotel(ctx *gin.Context) {
	var req CreateHotelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(400, gin.H{
			"error":  "Invalid request format",
			"detail": err.Error(),
		})
		return
	}

	hotel, err := h.app.HotelService.CreateHotel(
		req.HotelID, req.Name, req.Location, req.Rating, req.TotalRooms)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(201, hotel)
}

func (h *Handler) HandleListHotels(ctx *gin.Context) {
	hotels, err := h.app.HotelService.GetAllHotels()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(200, hotels)
}

func (h *Handler) HandleGetHotel(ctx *gin.Context) {
	hotel, err := h.app.HotelService.GetHotelByID(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(200, hotel)
}

func (h *Handler) HandleModifyHotel(ctx *gin.Context) {
	var fields map[string]any
	if err := ctx.ShouldBindJSON(&fields); err != nil {
		ctx.JSON(400, gin.H{
			"error":  "Invalid request format",
			"detail": err.Error(),
		})
		return
	}

	if err := h.app.HotelService.ModifyHotel(ctx.Param("id"), fields); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(200, gin.H{
		"message": "Hotel updated",
	})
}

func (h *Handler) HandleDeleteHotel(ctx *gin.Context) {
	if err := h.app.HotelService.DeleteHotel(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(200, gin.H{
		"message": "Hotel deleted",
	})
}

func (h *Handler) HandleReserveRoom(ctx *gin.Context) {
	var req RoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(400, gin.H{
			"error":  "Invalid request format",
			"detail": err.Error(),
		})
		return
	}

	if err := h.app.HotelService.ReserveRoom(ctx.Param("id"), req.ReservationID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(200, gin.H{
		"message": "Room reserved",
	})
}

func (h *Handler) HandleReleaseRoom(ctx *gin.Context) {
	var req RoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(400, gin.H{
			"error":  "Invalid request format",
			"detail": err.Error(),
		})
		return
	}

	if err := h.app.HotelService.CancelReservation(ctx.Param("id"), req.ReservationID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(200, gin.H{
		"message": "Room released",
	})
}

type CreateHotelRequest struct {
	HotelID    string  `json:"hotel_id"`
	Name       string  `json:"name"`
	Location   string  `json:"location"`
	Rating     float64 `json:"rating"`
	TotalRooms int     `json:"total_rooms"`
}

type RoomRequest struct {
	ReservationID string `json:"reservation_id"`
}
