package test

import (
	"context"
	"time"

	domainErrors "github.com/ecosystuz/tezkor-backend/internal/domain/errors"
	"github.com/ecosystuz/tezkor-backend/internal/domain/model"
	"github.com/ecosystuz/tezkor-backend/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[int64]*model.User
	Err   error
	Stats *model.SubscriberStats
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{Users: make(map[int64]*model.User)}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, chatID int64, name, phone, city, language string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[int64]*model.User)
	}
	if _, exists := s.Users[chatID]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	now := time.Now()
	user := &model.User{
		ID:           RandomASCIIString(8, 8),
		ChatID:       chatID,
		Name:         name,
		Phone:        phone,
		City:         city,
		Language:     language,
		Registered:   true,
		IsSubscribed: true,
		SubscribedAt: &now,
	}
	s.Users[chatID] = user
	return user, nil
}

// GetByChatID fetches user by chat id or returns not found.
func (s *UserRepositoryStub) GetByChatID(ctx context.Context, chatID int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[chatID]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrUserNotFound
}

// UpdateSubscription toggles or sets the subscription flag.
func (s *UserRepositoryStub) UpdateSubscription(ctx context.Context, chatID int64, target *bool) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	user, ok := s.Users[chatID]
	if !ok {
		return nil, domainErrors.ErrUserNotFound
	}
	next := !user.IsSubscribed
	if target != nil {
		next = *target
	}
	user.IsSubscribed = next
	if next {
		now := time.Now()
		user.SubscribedAt = &now
	} else {
		user.SubscribedAt = nil
	}
	return user, nil
}

// UpdateLanguage stores the new language for an existing user.
func (s *UserRepositoryStub) UpdateLanguage(ctx context.Context, chatID int64, language string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	user, ok := s.Users[chatID]
	if !ok {
		return nil, domainErrors.ErrUserNotFound
	}
	user.Language = language
	return user, nil
}

// UpdateName stores the new name for an existing user.
func (s *UserRepositoryStub) UpdateName(ctx context.Context, chatID int64, name string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	user, ok := s.Users[chatID]
	if !ok {
		return nil, domainErrors.ErrUserNotFound
	}
	user.Name = name
	return user, nil
}

// SubscriberStats returns configured analytics or zero values.
func (s *UserRepositoryStub) SubscriberStats(ctx context.Context) (*model.SubscriberStats, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Stats != nil {
		return s.Stats, nil
	}
	return &model.SubscriberStats{}, nil
}

// MasterRepositoryStub allows tests to customize master behaviour.
type MasterRepositoryStub struct {
	CreateFn        func(context.Context, string, string, string, string) (*model.Master, error)
	GetByIDFn       func(context.Context, string) (*model.Master, error)
	ListFn          func(context.Context) ([]model.Master, error)
	ListAvailableFn func(context.Context, string) ([]model.Master, error)
	ResetFn         func(context.Context, string) (bool, error)

	ResetCalls []string
}

func (s *MasterRepositoryStub) Create(ctx context.Context, name, phone, serviceType, location string) (*model.Master, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, name, phone, serviceType, location)
	}
	return &model.Master{ID: RandomASCIIString(8, 8), Name: name, Phone: phone, ServiceType: serviceType, IsAvailable: true, Location: location}, nil
}

func (s *MasterRepositoryStub) GetByID(ctx context.Context, id string) (*model.Master, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return nil, domainErrors.ErrMasterNotFound
}

func (s *MasterRepositoryStub) List(ctx context.Context) ([]model.Master, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return nil, nil
}

func (s *MasterRepositoryStub) ListAvailable(ctx context.Context, serviceType string) ([]model.Master, error) {
	if s.ListAvailableFn != nil {
		return s.ListAvailableFn(ctx, serviceType)
	}
	return nil, nil
}

func (s *MasterRepositoryStub) ResetMonthlyEarnings(ctx context.Context, month string) (bool, error) {
	s.ResetCalls = append(s.ResetCalls, month)
	if s.ResetFn != nil {
		return s.ResetFn(ctx, month)
	}
	return false, nil
}

// OrderUpdateCall stores information about Update invocations.
type OrderUpdateCall struct {
	OrderID string
	Update  repository.OrderUpdate
}

// OrderRepositoryStub allows tests to customize order behaviour.
type OrderRepositoryStub struct {
	CreateFn     func(context.Context, repository.NewOrder) (*model.Order, error)
	GetByIDFn    func(context.Context, string) (*model.Order, error)
	ListByChatFn func(context.Context, int64) ([]model.Order, error)
	ListAllFn    func(context.Context) ([]model.Order, error)
	UpdateFn     func(context.Context, string, repository.OrderUpdate) (*model.Order, error)
	SetPaymentFn func(context.Context, string, bool) (*model.Order, error)

	Created     []repository.NewOrder
	UpdateCalls []OrderUpdateCall
}

func (s *OrderRepositoryStub) Create(ctx context.Context, order repository.NewOrder) (*model.Order, error) {
	s.Created = append(s.Created, order)
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	return &model.Order{
		ID:          RandomASCIIString(8, 8),
		ChatID:      order.ChatID,
		ServiceType: order.ServiceType,
		Location:    order.Location,
		Time:        order.Time,
		Status:      model.OrderStatusPending,
		Price:       order.Price,
		CreatedAt:   time.Now(),
	}, nil
}

func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return nil, domainErrors.ErrOrderNotFound
}

func (s *OrderRepositoryStub) ListByChat(ctx context.Context, chatID int64) ([]model.Order, error) {
	if s.ListByChatFn != nil {
		return s.ListByChatFn(ctx, chatID)
	}
	return nil, nil
}

func (s *OrderRepositoryStub) ListAll(ctx context.Context) ([]model.Order, error) {
	if s.ListAllFn != nil {
		return s.ListAllFn(ctx)
	}
	return nil, nil
}

func (s *OrderRepositoryStub) Update(ctx context.Context, orderID string, upd repository.OrderUpdate) (*model.Order, error) {
	s.UpdateCalls = append(s.UpdateCalls, OrderUpdateCall{OrderID: orderID, Update: upd})
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, orderID, upd)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusPending, MasterID: upd.MasterID, Price: upd.Price}, nil
}

func (s *OrderRepositoryStub) SetPayment(ctx context.Context, orderID string, isPaid bool) (*model.Order, error) {
	if s.SetPaymentFn != nil {
		return s.SetPaymentFn(ctx, orderID, isPaid)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusDone, IsPaid: isPaid}, nil
}
