package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/ecosystuz/tezkor-backend/internal/domain/errors"
	"github.com/ecosystuz/tezkor-backend/internal/domain/model"
	"github.com/ecosystuz/tezkor-backend/internal/domain/repository"
)

// UserUseCase handles user registration and profile updates.
type UserUseCase struct {
	users repository.UserRepository
}

// NewUserUseCase constructs UserUseCase.
func NewUserUseCase(users repository.UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

// Register creates a user and subscribes them to broadcasts.
func (u *UserUseCase) Register(ctx context.Context, chatID int64, name, phone, city, language string) (*model.User, error) {
	name = strings.TrimSpace(name)
	if err := requireFields(
		requiredField{"chatId", chatID == 0},
		requiredField{"name", name == ""},
		requiredField{"language", language == ""},
	); err != nil {
		return nil, err
	}

	usr, err := u.users.Create(ctx, chatID, name, phone, city, language)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return usr, nil
}

// Check looks the user up by chat id. A missing user is not an error: the
// bot probes registration state before showing the signup flow.
func (u *UserUseCase) Check(ctx context.Context, chatID int64) (*model.User, error) {
	usr, err := u.users.GetByChatID(ctx, chatID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return usr, nil
}

// SetSubscription flips or explicitly sets the broadcast subscription flag.
func (u *UserUseCase) SetSubscription(ctx context.Context, chatID int64, target *bool) (*model.User, error) {
	return u.users.UpdateSubscription(ctx, chatID, target)
}

// UpdateLanguage switches the bot interface language.
func (u *UserUseCase) UpdateLanguage(ctx context.Context, chatID int64, language string) (*model.User, error) {
	if !ValidateLanguage(language) {
		return nil, domainErrors.ErrInvalidLanguage
	}
	return u.users.UpdateLanguage(ctx, chatID, language)
}

// UpdateName renames the user profile.
func (u *UserUseCase) UpdateName(ctx context.Context, chatID int64, name string) (*model.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainErrors.ErrEmptyName
	}
	return u.users.UpdateName(ctx, chatID, name)
}

// SubscriberStats returns subscription analytics.
func (u *UserUseCase) SubscriberStats(ctx context.Context) (*model.SubscriberStats, error) {
	return u.users.SubscriberStats(ctx)
}
