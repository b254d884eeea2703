package handlers

import (
	"context"

	"github.com/ecosystuz/tezkor-backend/internal/domain/model"
	"github.com/ecosystuz/tezkor-backend/internal/domain/repository"
)

// UserFacade describes user operations required by handlers.
type UserFacade interface {
	RegisterUser(ctx context.Context, chatID int64, name, phone, city, language string) (*model.User, error)
	CheckUser(ctx context.Context, chatID int64) (*model.User, error)
	SetSubscription(ctx context.Context, chatID int64, target *bool) (*model.User, error)
	UpdateUserLanguage(ctx context.Context, chatID int64, language string) (*model.User, error)
	UpdateUserName(ctx context.Context, chatID int64, name string) (*model.User, error)
	SubscriberStats(ctx context.Context) (*model.SubscriberStats, error)
}

// MasterFacade describes master registry operations exposed via HTTP.
type MasterFacade interface {
	RegisterMaster(ctx context.Context, name, phone, serviceType, location string) (*model.Master, error)
	Masters(ctx context.Context) ([]model.Master, error)
	AvailableMasters(ctx context.Context, serviceType string) ([]model.Master, error)
}

// OrderFacade describes order workflow operations exposed via HTTP.
type OrderFacade interface {
	SubmitOrder(ctx context.Context, order repository.NewOrder) (*model.Order, error)
	OrdersByChat(ctx context.Context, chatID int64) ([]model.Order, error)
	AllOrders(ctx context.Context) ([]model.Order, error)
	UpdateOrder(ctx context.Context, orderID string, upd repository.OrderUpdate) (*model.Order, error)
	AssignMaster(ctx context.Context, orderID, masterID string) (*model.Order, error)
	SetOrderPayment(ctx context.Context, orderID string, isPaid bool) (*model.Order, error)
}

// DispatchFacade aggregates the full set of operations used across handlers.
type DispatchFacade interface {
	UserFacade
	MasterFacade
	OrderFacade
}
