package dto

import "time"

// RegisterUserRequest describes the user registration payload.
type RegisterUserRequest struct {
	ChatID   int64  `json:"chatId"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	Language string `json:"language"`
}

// SubscriptionRequest optionally carries the explicit subscription target;
// when absent the current state is inverted.
type SubscriptionRequest struct {
	Subscribe *bool `json:"subscribe"`
}

// UpdateLanguageRequest carries the new interface language.
type UpdateLanguageRequest struct {
	Language string `json:"language"`
}

// UpdateNameRequest carries the new profile name.
type UpdateNameRequest struct {
	Name string `json:"name"`
}

// UserResponse describes a user record.
type UserResponse struct {
	ID           string     `json:"id"`
	ChatID       int64      `json:"chatId"`
	Name         string     `json:"name"`
	Phone        string     `json:"phone,omitempty"`
	City         string     `json:"city,omitempty"`
	Language     string     `json:"language"`
	Registered   bool       `json:"registered"`
	IsSubscribed bool       `json:"isSubscribed"`
	SubscribedAt *time.Time `json:"subscribedAt"`
}

// MonthlySubscribersResponse is one bucket of the per-month distribution.
type MonthlySubscribersResponse struct {
	Month int `json:"month"`
	Count int `json:"count"`
}

// SubscriberStatsResponse aggregates subscription analytics.
type SubscriberStatsResponse struct {
	Total               int                          `json:"total"`
	NewLastMonth        int                          `json:"newLastMonth"`
	MonthlyDistribution []MonthlySubscribersResponse `json:"monthlyDistribution"`
}
