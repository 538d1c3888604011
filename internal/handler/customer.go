package handler

import (
	"github.com/gin-gonic/gin"
)

func (h *Handler) HandleCreateCustomer(ctx *gin.Context) {
	var req CreateCustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(400, gin.H{
			"error":  "Invalid request format",
			"detail": err.Error(),
		})
		return
	}

	customer, err := h.app.CustomerService.CreateCustomer(
		req.CustomerID, req.Name, req.Email, req.Phone)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(201, customer)
}

func (h *Handler) HandleListCustomers(ctx *gin.Context) {
	customers, err := h.app.CustomerService.GetAllCustomers()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(200, customers)
}

func (h *Handler) HandleGetCustomer(ctx *gin.Context) {
	customer, err := h.app.CustomerService.GetCustomerByID(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(200, customer)
}

func (h *Handler) HandleModifyCustomer(ctx *gin.Context) {
	var fields map[string]any
	if err := ctx.ShouldBindJSON(&fields); err != nil {
		ctx.JSON(400, gin.H{
			"error":  "Invalid request format",
			"detail": err.Error(),
		})
		return
	}

	if err := h.app.CustomerService.ModifyCustomer(ctx.Param("id"), fields); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(200, gin.H{
		"message": "Customer updated",
	})
}

func (h *Handler) HandleDeleteCustomer(ctx *gin.Context) {
	if err := h.app.CustomerService.DeleteCustomer(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(200, gin.H{
		"message": "Customer deleted",
	})
}

type CreateCustomerRequest struct {
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}
