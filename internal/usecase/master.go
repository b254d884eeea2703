package usecase

import (
	"context"
	"strings"

	"github.com/ecosystuz/tezkor-backend/internal/domain/model"
	"github.com/ecosystuz/tezkor-backend/internal/domain/repository"
)

// MasterUseCase encapsulates master registry logic.
type MasterUseCase struct {
	masters repository.MasterRepository
}

// NewMasterUseCase constructs MasterUseCase.
func NewMasterUseCase(masters repository.MasterRepository) *MasterUseCase {
	return &MasterUseCase{masters: masters}
}

// Register creates a new master record. Availability and earnings start at
// their defaults and are mutated only by the order workflow.
func (u *MasterUseCase) Register(ctx context.Context, name, phone, serviceType, location string) (*model.Master, error) {
	name = strings.TrimSpace(name)
	if err := requireFields(
		requiredField{"name", name == ""},
		requiredField{"phone", phone == ""},
		requiredField{"serviceType", serviceType == ""},
		requiredField{"location", location == ""},
	); err != nil {
		return nil, err
	}
	return u.masters.Create(ctx, name, phone, serviceType, location)
}

// List returns all registered masters.
func (u *MasterUseCase) List(ctx context.Context) ([]model.Master, error) {
	return u.masters.List(ctx)
}

// ListAvailable returns masters of the given service type that are free to
// take an order.
func (u *MasterUseCase) ListAvailable(ctx context.Context, serviceType string) ([]model.Master, error) {
	return u.masters.ListAvailable(ctx, serviceType)
}

// RolloverEarnings zeroes the current-month accumulators when the calendar
// month changes. Applied at most once per month.
func (u *MasterUseCase) RolloverEarnings(ctx context.Context, month string) (bool, error) {
	return u.masters.ResetMonthlyEarnings(ctx, month)
}
