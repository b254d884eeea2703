package app

import (
	"context"

	"github.com/ecosystuz/tezkor-backend/internal/domain/model"
	"github.com/ecosystuz/tezkor-backend/internal/domain/repository"
	"github.com/ecosystuz/tezkor-backend/internal/usecase"
)

// DispatchFacade aggregates the application use cases behind a single
// surface consumed by HTTP handlers and the maintenance worker.
type DispatchFacade struct {
	users   *usecase.UserUseCase
	masters *usecase.MasterUseCase
	orders  *usecase.OrderUseCase
}

// NewDispatchFacade constructs DispatchFacade.
func NewDispatchFacade(users *usecase.UserUseCase, masters *usecase.MasterUseCase, orders *usecase.OrderUseCase) *DispatchFacade {
	return &DispatchFacade{users: users, masters: masters, orders: orders}
}

func (f *DispatchFacade) RegisterUser(ctx context.Context, chatID int64, name, phone, city, language string) (*model.User, error) {
	return f.users.Register(ctx, chatID, name, phone, city, language)
}

func (f *DispatchFacade) CheckUser(ctx context.Context, chatID int64) (*model.User, error) {
	return f.users.Check(ctx, chatID)
}

func (f *DispatchFacade) SetSubscription(ctx context.Context, chatID int64, target *bool) (*model.User, error) {
	return f.users.SetSubscription(ctx, chatID, target)
}

func (f *DispatchFacade) UpdateUserLanguage(ctx context.Context, chatID int64, language string) (*model.User, error) {
	return f.users.UpdateLanguage(ctx, chatID, language)
}

func (f *DispatchFacade) UpdateUserName(ctx context.Context, chatID int64, name string) (*model.User, error) {
	return f.users.UpdateName(ctx, chatID, name)
}

func (f *DispatchFacade) SubscriberStats(ctx context.Context) (*model.SubscriberStats, error) {
	return f.users.SubscriberStats(ctx)
}

func (f *DispatchFacade) RegisterMaster(ctx context.Context, name, phone, serviceType, location string) (*model.Master, error) {
	return f.masters.Register(ctx, name, phone, serviceType, location)
}

func (f *DispatchFacade) Masters(ctx context.Context) ([]model.Master, error) {
	return f.masters.List(ctx)
}

func (f *DispatchFacade) AvailableMasters(ctx context.Context, serviceType string) ([]model.Master, error) {
	return f.masters.ListAvailable(ctx, serviceType)
}

func (f *DispatchFacade) RolloverEarnings(ctx context.Context, month string) (bool, error) {
	return f.masters.RolloverEarnings(ctx, month)
}

func (f *DispatchFacade) SubmitOrder(ctx context.Context, order repository.NewOrder) (*model.Order, error) {
	return f.orders.Submit(ctx, order)
}

func (f *DispatchFacade) OrdersByChat(ctx context.Context, chatID int64) ([]model.Order, error) {
	return f.orders.ListByChat(ctx, chatID)
}

func (f *DispatchFacade) AllOrders(ctx context.Context) ([]model.Order, error) {
	return f.orders.ListAll(ctx)
}

func (f *DispatchFacade) UpdateOrder(ctx context.Context, orderID string, upd repository.OrderUpdate) (*model.Order, error) {
	return f.orders.Update(ctx, orderID, upd)
}

func (f *DispatchFacade) AssignMaster(ctx context.Context, orderID, masterID string) (*model.Order, error) {
	return f.orders.Assign(ctx, orderID, masterID)
}

func (f *DispatchFacade) SetOrderPayment(ctx context.Context, orderID string, isPaid bool) (*model.Order, error) {
	return f.orders.SetPayment(ctx, orderID, isPaid)
}
