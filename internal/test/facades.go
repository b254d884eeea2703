package test

import (
	"context"
	"time"

	domainErrors "github.com/ecosystuz/tezkor-backend/internal/domain/errors"
	"github.com/ecosystuz/tezkor-backend/internal/domain/model"
	"github.com/ecosystuz/tezkor-backend/internal/domain/repository"
)

// UserFacadeStub implements handlers.UserFacade with overridable functions.
type UserFacadeStub struct {
	RegisterUserFn       func(context.Context, int64, string, string, string, string) (*model.User, error)
	CheckUserFn          func(context.Context, int64) (*model.User, error)
	SetSubscriptionFn    func(context.Context, int64, *bool) (*model.User, error)
	UpdateUserLanguageFn func(context.Context, int64, string) (*model.User, error)
	UpdateUserNameFn     func(context.Context, int64, string) (*model.User, error)
	SubscriberStatsFn    func(context.Context) (*model.SubscriberStats, error)
}

func (s *UserFacadeStub) RegisterUser(ctx context.Context, chatID int64, name, phone, city, language string) (*model.User, error) {
	if s.RegisterUserFn != nil {
		return s.RegisterUserFn(ctx, chatID, name, phone, city, language)
	}
	now := time.Now()
	return &model.User{ID: RandomASCIIString(8, 8), ChatID: chatID, Name: name, Phone: phone, City: city, Language: language, Registered: true, IsSubscribed: true, SubscribedAt: &now}, nil
}

func (s *UserFacadeStub) CheckUser(ctx context.Context, chatID int64) (*model.User, error) {
	if s.CheckUserFn != nil {
		return s.CheckUserFn(ctx, chatID)
	}
	return nil, nil
}

func (s *UserFacadeStub) SetSubscription(ctx context.Context, chatID int64, target *bool) (*model.User, error) {
	if s.SetSubscriptionFn != nil {
		return s.SetSubscriptionFn(ctx, chatID, target)
	}
	return nil, domainErrors.ErrUserNotFound
}

func (s *UserFacadeStub) UpdateUserLanguage(ctx context.Context, chatID int64, language string) (*model.User, error) {
	if s.UpdateUserLanguageFn != nil {
		return s.UpdateUserLanguageFn(ctx, chatID, language)
	}
	return nil, domainErrors.ErrUserNotFound
}

func (s *UserFacadeStub) UpdateUserName(ctx context.Context, chatID int64, name string) (*model.User, error) {
	if s.UpdateUserNameFn != nil {
		return s.UpdateUserNameFn(ctx, chatID, name)
	}
	return nil, domainErrors.ErrUserNotFound
}

func (s *UserFacadeStub) SubscriberStats(ctx context.Context) (*model.SubscriberStats, error) {
	if s.SubscriberStatsFn != nil {
		return s.SubscriberStatsFn(ctx)
	}
	return &model.SubscriberStats{}, nil
}

// MasterFacadeStub implements handlers.MasterFacade with overridable functions.
type MasterFacadeStub struct {
	RegisterMasterFn   func(context.Context, string, string, string, string) (*model.Master, error)
	MastersFn          func(context.Context) ([]model.Master, error)
	AvailableMastersFn func(context.Context, string) ([]model.Master, error)
}

func (s *MasterFacadeStub) RegisterMaster(ctx context.Context, name, phone, serviceType, location string) (*model.Master, error) {
	if s.RegisterMasterFn != nil {
		return s.RegisterMasterFn(ctx, name, phone, serviceType, location)
	}
	return &model.Master{ID: RandomASCIIString(8, 8), Name: name, Phone: phone, ServiceType: serviceType, IsAvailable: true, Location: location}, nil
}

func (s *MasterFacadeStub) Masters(ctx context.Context) ([]model.Master, error) {
	if s.MastersFn != nil {
		return s.MastersFn(ctx)
	}
	return nil, nil
}

func (s *MasterFacadeStub) AvailableMasters(ctx context.Context, serviceType string) ([]model.Master, error) {
	if s.AvailableMastersFn != nil {
		return s.AvailableMastersFn(ctx, serviceType)
	}
	return nil, nil
}

// OrderFacadeStub implements handlers.OrderFacade with overridable functions.
type OrderFacadeStub struct {
	SubmitOrderFn     func(context.Context, repository.NewOrder) (*model.Order, error)
	OrdersByChatFn    func(context.Context, int64) ([]model.Order, error)
	AllOrdersFn       func(context.Context) ([]model.Order, error)
	UpdateOrderFn     func(context.Context, string, repository.OrderUpdate) (*model.Order, error)
	AssignMasterFn    func(context.Context, string, string) (*model.Order, error)
	SetOrderPaymentFn func(context.Context, string, bool) (*model.Order, error)
}

func (s *OrderFacadeStub) SubmitOrder(ctx context.Context, order repository.NewOrder) (*model.Order, error) {
	if s.SubmitOrderFn != nil {
		return s.SubmitOrderFn(ctx, order)
	}
	return &model.Order{ID: RandomASCIIString(8, 8), ChatID: order.ChatID, ServiceType: order.ServiceType, Location: order.Location, Time: order.Time, Status: model.OrderStatusPending, CreatedAt: time.Now()}, nil
}

func (s *OrderFacadeStub) OrdersByChat(ctx context.Context, chatID int64) ([]model.Order, error) {
	if s.OrdersByChatFn != nil {
		return s.OrdersByChatFn(ctx, chatID)
	}
	return nil, nil
}

func (s *OrderFacadeStub) AllOrders(ctx context.Context) ([]model.Order, error) {
	if s.AllOrdersFn != nil {
		return s.AllOrdersFn(ctx)
	}
	return nil, nil
}

func (s *OrderFacadeStub) UpdateOrder(ctx context.Context, orderID string, upd repository.OrderUpdate) (*model.Order, error) {
	if s.UpdateOrderFn != nil {
		return s.UpdateOrderFn(ctx, orderID, upd)
	}
	return nil, domainErrors.ErrOrderNotFound
}

func (s *OrderFacadeStub) AssignMaster(ctx context.Context, orderID, masterID string) (*model.Order, error) {
	if s.AssignMasterFn != nil {
		return s.AssignMasterFn(ctx, orderID, masterID)
	}
	return nil, domainErrors.ErrOrderNotFound
}

func (s *OrderFacadeStub) SetOrderPayment(ctx context.Context, orderID string, isPaid bool) (*model.Order, error) {
	if s.SetOrderPaymentFn != nil {
		return s.SetOrderPaymentFn(ctx, orderID, isPaid)
	}
	return nil, domainErrors.ErrOrderNotFound
}

// DispatchFacadeStub aggregates stub facades to satisfy handlers.DispatchFacade.
type DispatchFacadeStub struct {
	UserFacadeStub
	MasterFacadeStub
	OrderFacadeStub
}
