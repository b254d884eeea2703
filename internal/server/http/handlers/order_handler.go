package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecosystuz/tezkor-backend/internal/domain/model"
	"github.com/ecosystuz/tezkor-backend/internal/domain/repository"
	"github.com/ecosystuz/tezkor-backend/internal/server/http/dto"
)

// OrderHandler manages order workflow endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders/create.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	order, err := h.facade.SubmitOrder(c.Request.Context(), repository.NewOrder{
		ChatID:             req.ChatID,
		ServiceType:        req.ServiceType,
		ProblemDescription: req.ProblemDescription,
		Location:           req.Location,
		Time:               req.Time,
		Name:               req.Name,
		Number:             req.Number,
		Address:            req.Address,
		Price:              req.Price,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "order created", "data": toOrderResponse(order)})
}

// ListByChat handles GET /api/orders/user/:chatId.
func (h *OrderHandler) ListByChat(c *gin.Context) {
	chatID, ok := chatIDParam(c)
	if !ok {
		return
	}

	orders, err := h.facade.OrdersByChat(c.Request.Context(), chatID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": toOrderResponses(orders)})
}

// ListAll handles GET /api/orders/all.
func (h *OrderHandler) ListAll(c *gin.Context) {
	orders, err := h.facade.AllOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": toOrderResponses(orders)})
}

// Update handles PUT /api/orders/:orderId.
func (h *OrderHandler) Update(c *gin.Context) {
	var req dto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	var status *model.OrderStatus
	if req.Status != nil {
		s := model.OrderStatus(*req.Status)
		status = &s
	}

	order, err := h.facade.UpdateOrder(c.Request.Context(), c.Param("orderId"), repository.OrderUpdate{
		Status:   status,
		MasterID: req.MasterID,
		Price:    req.Price,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "order updated", "data": toOrderResponse(order)})
}

// Assign handles PUT /api/masters/assign/:orderId.
func (h *OrderHandler) Assign(c *gin.Context) {
	var req dto.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	order, err := h.facade.AssignMaster(c.Request.Context(), c.Param("orderId"), req.MasterID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "master assigned", "order": toOrderResponse(order)})
}

// Pay handles PUT /api/orders/:orderId/pay.
func (h *OrderHandler) Pay(c *gin.Context) {
	var req dto.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsPaid == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "isPaid must be provided"})
		return
	}

	order, err := h.facade.SetOrderPayment(c.Request.Context(), c.Param("orderId"), *req.IsPaid)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "payment cancelled"
	if order.IsPaid {
		message = "payment recorded"
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message, "data": toOrderResponse(order)})
}
