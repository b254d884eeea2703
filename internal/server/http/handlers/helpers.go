package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/ecosystuz/tezkor-backend/internal/domain/errors"
	"github.com/ecosystuz/tezkor-backend/internal/domain/model"
	"github.com/ecosystuz/tezkor-backend/internal/server/http/dto"
)

// chatIDParam parses the :chatId path segment. A malformed id aborts the
// request with 400.
func chatIDParam(c *gin.Context) (int64, bool) {
	chatID, err := strconv.ParseInt(c.Param("chatId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid chatId"})
		return 0, false
	}
	return chatID, true
}

// respondError translates domain errors into the structured failure
// responses of the request boundary.
func respondError(c *gin.Context, err error) {
	if ve, ok := domainErrors.AsValidation(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "validation failed", "errors": ve.Fields})
		return
	}

	switch {
	case errors.Is(err, domainErrors.ErrUserNotFound),
		errors.Is(err, domainErrors.ErrMasterNotFound),
		errors.Is(err, domainErrors.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, domainErrors.ErrMasterBusy),
		errors.Is(err, domainErrors.ErrOrderNotCompleted),
		errors.Is(err, domainErrors.ErrOrderUnpriced),
		errors.Is(err, domainErrors.ErrPaymentUnchanged),
		errors.Is(err, domainErrors.ErrInvalidLanguage),
		errors.Is(err, domainErrors.ErrEmptyName):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal server error"})
	}
}

func toUserResponse(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:           u.ID,
		ChatID:       u.ChatID,
		Name:         u.Name,
		Phone:        u.Phone,
		City:         u.City,
		Language:     u.Language,
		Registered:   u.Registered,
		IsSubscribed: u.IsSubscribed,
		SubscribedAt: u.SubscribedAt,
	}
}

func toMasterResponse(m *model.Master) dto.MasterResponse {
	return dto.MasterResponse{
		ID:          m.ID,
		Name:        m.Name,
		Phone:       m.Phone,
		ServiceType: m.ServiceType,
		IsAvailable: m.IsAvailable,
		Location:    m.Location,
		Earnings: dto.EarningsResponse{
			Total:        m.Earnings.Total,
			CurrentMonth: m.Earnings.CurrentMonth,
		},
	}
}

func toMasterResponses(masters []model.Master) []dto.MasterResponse {
	out := make([]dto.MasterResponse, 0, len(masters))
	for i := range masters {
		out = append(out, toMasterResponse(&masters[i]))
	}
	return out
}

func toOrderResponse(o *model.Order) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:                 o.ID,
		ChatID:             o.ChatID,
		ServiceType:        o.ServiceType,
		ProblemDescription: o.ProblemDescription,
		Location:           o.Location,
		Time:               o.Time,
		Status:             string(o.Status),
		Name:               o.Name,
		Number:             o.Number,
		Address:            o.Address,
		MasterID:           o.MasterID,
		Price:              o.Price,
		IsPaid:             o.IsPaid,
		CreatedAt:          o.CreatedAt,
	}
	if o.Master != nil {
		resp.Master = &dto.MasterContactResponse{Name: o.Master.Name, Phone: o.Master.Phone}
	}
	return resp
}

func toOrderResponses(orders []model.Order) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, toOrderResponse(&orders[i]))
	}
	return out
}
