package model

import "time"

// OrderStatus describes the order lifecycle.
type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusDone    OrderStatus = "done"
)

// TimeUrgent is the sentinel stored instead of a scheduled time when the
// requester asks for immediate dispatch.
const TimeUrgent = "Срочно"

// MasterContact is the resolved name/phone of an assigned master, attached
// to order listings.
type MasterContact struct {
	Name  string
	Phone string
}

// Order describes a service request submitted by a user.
type Order struct {
	ID                 string
	ChatID             int64
	ServiceType        string
	ProblemDescription string
	Location           string
	Time               string
	Status             OrderStatus
	Name               string
	Number             string
	Address            string
	MasterID           *string
	Master             *MasterContact
	Price              *float64
	IsPaid             bool
	CreatedAt          time.Time
}
