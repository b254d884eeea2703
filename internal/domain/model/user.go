package model

import "time"

// User represents a person interacting with the dispatch bot.
type User struct {
	ID           string
	ChatID       int64
	Name         string
	Phone        string
	City         string
	Language     string
	Registered   bool
	IsSubscribed bool
	SubscribedAt *time.Time
}
