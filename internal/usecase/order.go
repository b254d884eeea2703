package usecase

import (
	"context"

	"github.com/ecosystuz/tezkor-backend/internal/domain/model"
	"github.com/ecosystuz/tezkor-backend/internal/domain/repository"
)

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// Submit registers a new order in pending state.
func (u *OrderUseCase) Submit(ctx context.Context, order repository.NewOrder) (*model.Order, error) {
	if err := requireFields(
		requiredField{"chatId", order.ChatID == 0},
		requiredField{"serviceType", order.ServiceType == ""},
		requiredField{"location", order.Location == ""},
		requiredField{"time", order.Time == ""},
	); err != nil {
		return nil, err
	}
	return u.orders.Create(ctx, order)
}

// ListByChat returns a requester's orders, newest first, with assigned
// master contact details resolved.
func (u *OrderUseCase) ListByChat(ctx context.Context, chatID int64) ([]model.Order, error) {
	return u.orders.ListByChat(ctx, chatID)
}

// ListAll returns every order, newest first.
func (u *OrderUseCase) ListAll(ctx context.Context) ([]model.Order, error) {
	return u.orders.ListAll(ctx)
}

// Update applies a partial mutation of status, assigned master and price.
func (u *OrderUseCase) Update(ctx context.Context, orderID string, upd repository.OrderUpdate) (*model.Order, error) {
	return u.orders.Update(ctx, orderID, upd)
}

// Assign binds the order to the given master through the same engine as
// Update, so mutual exclusion on availability holds either way.
func (u *OrderUseCase) Assign(ctx context.Context, orderID, masterID string) (*model.Order, error) {
	if err := requireFields(requiredField{"masterId", masterID == ""}); err != nil {
		return nil, err
	}
	return u.orders.Update(ctx, orderID, repository.OrderUpdate{MasterID: &masterID})
}

// SetPayment toggles the payment flag, settling the master's earnings.
func (u *OrderUseCase) SetPayment(ctx context.Context, orderID string, isPaid bool) (*model.Order, error) {
	return u.orders.SetPayment(ctx, orderID, isPaid)
}
