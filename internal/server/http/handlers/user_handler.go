package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecosystuz/tezkor-backend/internal/server/http/dto"
)

// UserHandler manages user registration and profile endpoints.
type UserHandler struct {
	facade UserFacade
}

// NewUserHandler constructs UserHandler.
func NewUserHandler(facade UserFacade) *UserHandler {
	return &UserHandler{facade: facade}
}

// Register handles POST /api/users/register.
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	user, err := h.facade.RegisterUser(c.Request.Context(), req.ChatID, req.Name, req.Phone, req.City, req.Language)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "user registered", "user": toUserResponse(user)})
}

// Check handles GET /api/users/check/:chatId. A missing user responds 200
// with registered=false, not 404.
func (h *UserHandler) Check(c *gin.Context) {
	chatID, ok := chatIDParam(c)
	if !ok {
		return
	}

	user, err := h.facade.CheckUser(c.Request.Context(), chatID)
	if err != nil {
		respondError(c, err)
		return
	}

	if user == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "registered": false, "message": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "registered": user.Registered, "user": toUserResponse(user)})
}

// Subscription handles PATCH /api/users/subscription/:chatId.
func (h *UserHandler) Subscription(c *gin.Context) {
	chatID, ok := chatIDParam(c)
	if !ok {
		return
	}

	var req dto.SubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	user, err := h.facade.SetSubscription(c.Request.Context(), chatID, req.Subscribe)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "subscription cancelled"
	if user.IsSubscribed {
		message = "subscription activated"
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message, "user": toUserResponse(user)})
}

// UpdateLanguage handles PATCH /api/users/update-language/:chatId.
func (h *UserHandler) UpdateLanguage(c *gin.Context) {
	chatID, ok := chatIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	user, err := h.facade.UpdateUserLanguage(c.Request.Context(), chatID, req.Language)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "language updated", "user": toUserResponse(user)})
}

// UpdateName handles PATCH /api/users/update-name/:chatId.
func (h *UserHandler) UpdateName(c *gin.Context) {
	chatID, ok := chatIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	user, err := h.facade.UpdateUserName(c.Request.Context(), chatID, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "name updated", "user": toUserResponse(user)})
}

// Stats handles GET /api/users/subscribers/analytics.
func (h *UserHandler) Stats(c *gin.Context) {
	stats, err := h.facade.SubscriberStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	monthly := make([]dto.MonthlySubscribersResponse, 0, len(stats.Monthly))
	for _, m := range stats.Monthly {
		monthly = append(monthly, dto.MonthlySubscribersResponse{Month: m.Month, Count: m.Count})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": dto.SubscriberStatsResponse{
		Total:               stats.Total,
		NewLastMonth:        stats.NewLastMonth,
		MonthlyDistribution: monthly,
	}})
}
