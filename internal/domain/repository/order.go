package repository

import (
	"context"

	"github.com/ecosystuz/tezkor-backend/internal/domain/model"
)

// NewOrder carries the fields accepted at order submission.
type NewOrder struct {
	ChatID             int64
	ServiceType        string
	ProblemDescription string
	Location           string
	Time               string
	Name               string
	Number             string
	Address            string
	Price              *float64
}

// OrderUpdate describes a partial order mutation. Nil fields are left
// untouched.
type OrderUpdate struct {
	Status   *model.OrderStatus
	MasterID *string
	Price    *float64
}

// OrderRepository describes persistence operations with orders. Update and
// SetPayment mutate the order together with the referenced master as one
// atomic unit.
type OrderRepository interface {
	Create(ctx context.Context, order NewOrder) (*model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	ListByChat(ctx context.Context, chatID int64) ([]model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	Update(ctx context.Context, orderID string, upd OrderUpdate) (*model.Order, error)
	SetPayment(ctx context.Context, orderID string, isPaid bool) (*model.Order, error)
}
