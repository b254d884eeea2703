package dto

import "time"

// CreateOrderRequest describes the order submission payload.
type CreateOrderRequest struct {
	ChatID             int64    `json:"chatId"`
	ServiceType        string   `json:"serviceType"`
	ProblemDescription string   `json:"problemDescription"`
	Location           string   `json:"location"`
	Time               string   `json:"time"`
	Name               string   `json:"name"`
	Number             string   `json:"number"`
	Address            string   `json:"address"`
	Price              *float64 `json:"price"`
}

// UpdateOrderRequest carries a partial order mutation. Absent fields are
// left untouched.
type UpdateOrderRequest struct {
	Status   *string  `json:"status"`
	MasterID *string  `json:"masterId"`
	Price    *float64 `json:"price"`
}

// PayRequest carries the target payment state.
type PayRequest struct {
	IsPaid *bool `json:"isPaid"`
}

// MasterContactResponse is the resolved contact of an assigned master.
type MasterContactResponse struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// OrderResponse describes an order record.
type OrderResponse struct {
	ID                 string                 `json:"id"`
	ChatID             int64                  `json:"chatId"`
	ServiceType        string                 `json:"serviceType"`
	ProblemDescription string                 `json:"problemDescription,omitempty"`
	Location           string                 `json:"location"`
	Time               string                 `json:"time"`
	Status             string                 `json:"status"`
	Name               string                 `json:"name,omitempty"`
	Number             string                 `json:"number,omitempty"`
	Address            string                 `json:"address,omitempty"`
	MasterID           *string                `json:"masterId"`
	Master             *MasterContactResponse `json:"master,omitempty"`
	Price              *float64               `json:"price"`
	IsPaid             bool                   `json:"isPaid"`
	CreatedAt          time.Time              `json:"createdAt"`
}
