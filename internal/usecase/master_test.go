package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/ecosystuz/tezkor-backend/internal/domain/errors"
	"github.com/ecosystuz/tezkor-backend/internal/domain/model"
	testhelpers "github.com/ecosystuz/tezkor-backend/internal/test"
)

func TestMasterUseCaseRegisterRejectsMissingFields(t *testing.T) {
	repo := &testhelpers.MasterRepositoryStub{CreateFn: func(context.Context, string, string, string, string) (*model.Master, error) {
		t.Fatal("create should not be called for invalid input")
		return nil, nil
	}}
	uc := NewMasterUseCase(repo)

	_, err := uc.Register(context.Background(), " ", "", "santexnik", "")
	verr, ok := domainErrors.AsValidation(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(verr.Fields) != 3 || verr.Fields[0] != "name" || verr.Fields[1] != "phone" || verr.Fields[2] != "location" {
		t.Fatalf("unexpected missing fields %v", verr.Fields)
	}
}

func TestMasterUseCaseRegisterSuccess(t *testing.T) {
	uc := NewMasterUseCase(&testhelpers.MasterRepositoryStub{CreateFn: func(ctx context.Context, name, phone, serviceType, location string) (*model.Master, error) {
		if name != "Timur" || phone != "+998911112233" || serviceType != "elektrik" || location != "Chilonzor" {
			t.Fatalf("unexpected arguments: %s %s %s %s", name, phone, serviceType, location)
		}
		return &model.Master{ID: "m-1", Name: name, Phone: phone, ServiceType: serviceType, IsAvailable: true, Location: location}, nil
	}})

	master, err := uc.Register(context.Background(), " Timur ", "+998911112233", "elektrik", "Chilonzor")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !master.IsAvailable {
		t.Fatal("new master should be available")
	}
	if master.Earnings.Total != 0 || master.Earnings.CurrentMonth != 0 {
		t.Fatalf("new master should start with zero earnings, got %+v", master.Earnings)
	}
}

func TestMasterUseCaseListAvailablePassesServiceType(t *testing.T) {
	uc := NewMasterUseCase(&testhelpers.MasterRepositoryStub{ListAvailableFn: func(ctx context.Context, serviceType string) ([]model.Master, error) {
		if serviceType != "santexnik" {
			t.Fatalf("unexpected service type %q", serviceType)
		}
		return []model.Master{{ID: "m-1", ServiceType: serviceType, IsAvailable: true}}, nil
	}})

	masters, err := uc.ListAvailable(context.Background(), "santexnik")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(masters) != 1 {
		t.Fatalf("unexpected masters %v", masters)
	}
}

func TestMasterUseCaseListPropagatesError(t *testing.T) {
	wantErr := errors.New("db down")
	uc := NewMasterUseCase(&testhelpers.MasterRepositoryStub{ListFn: func(context.Context) ([]model.Master, error) {
		return nil, wantErr
	}})

	if _, err := uc.List(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("expected repository error, got %v", err)
	}
}

func TestMasterUseCaseRolloverEarnings(t *testing.T) {
	repo := &testhelpers.MasterRepositoryStub{ResetFn: func(ctx context.Context, month string) (bool, error) {
		return month == "2026-09", nil
	}}
	uc := NewMasterUseCase(repo)

	applied, err := uc.RolloverEarnings(context.Background(), "2026-09")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !applied {
		t.Fatal("expected rollover to be applied")
	}
	if len(repo.ResetCalls) != 1 || repo.ResetCalls[0] != "2026-09" {
		t.Fatalf("unexpected reset calls %v", repo.ResetCalls)
	}
}
