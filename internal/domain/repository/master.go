package repository

import (
	"context"

	"github.com/ecosystuz/tezkor-backend/internal/domain/model"
)

// MasterRepository describes persistence operations for masters.
type MasterRepository interface {
	Create(ctx context.Context, name, phone, serviceType, location string) (*model.Master, error)
	GetByID(ctx context.Context, id string) (*model.Master, error)
	List(ctx context.Context) ([]model.Master, error)
	ListAvailable(ctx context.Context, serviceType string) ([]model.Master, error)
	// ResetMonthlyEarnings zeroes every master's current-month accumulator
	// once per calendar month. month is formatted as "2006-01"; the reset is
	// applied at most once per distinct month and the return value reports
	// whether this call performed it.
	ResetMonthlyEarnings(ctx context.Context, month string) (bool, error)
}
