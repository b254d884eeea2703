package repository

import (
	"context"

	"github.com/ecosystuz/tezkor-backend/internal/domain/model"
)

// UserRepository describes persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, chatID int64, name, phone, city, language string) (*model.User, error)
	GetByChatID(ctx context.Context, chatID int64) (*model.User, error)
	// UpdateSubscription sets the subscription flag to target, or inverts the
	// current value when target is nil.
	UpdateSubscription(ctx context.Context, chatID int64, target *bool) (*model.User, error)
	UpdateLanguage(ctx context.Context, chatID int64, language string) (*model.User, error)
	UpdateName(ctx context.Context, chatID int64, name string) (*model.User, error)
	SubscriberStats(ctx context.Context) (*model.SubscriberStats, error)
}
