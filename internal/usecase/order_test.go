package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/ecosystuz/tezkor-backend/internal/domain/errors"
	"github.com/ecosystuz/tezkor-backend/internal/domain/model"
	"github.com/ecosystuz/tezkor-backend/internal/domain/repository"
	testhelpers "github.com/ecosystuz/tezkor-backend/internal/test"
)

func TestOrderUseCaseSubmitRejectsMissingFields(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{}
	uc := NewOrderUseCase(repo)

	_, err := uc.Submit(context.Background(), repository.NewOrder{ServiceType: "santexnik"})
	verr, ok := domainErrors.AsValidation(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(verr.Fields) != 3 {
		t.Fatalf("unexpected missing fields %v", verr.Fields)
	}
	if len(repo.Created) != 0 {
		t.Fatal("repository should not be touched on validation failure")
	}
}

func TestOrderUseCaseSubmitSuccess(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{}
	uc := NewOrderUseCase(repo)

	order, err := uc.Submit(context.Background(), repository.NewOrder{
		ChatID:      100,
		ServiceType: "santexnik",
		Location:    "Yunusobod",
		Time:        model.TimeUrgent,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusPending {
		t.Fatalf("expected pending status, got %q", order.Status)
	}
	if order.Time != model.TimeUrgent {
		t.Fatalf("unexpected time %q", order.Time)
	}
	if len(repo.Created) != 1 || repo.Created[0].ChatID != 100 {
		t.Fatalf("unexpected create calls %+v", repo.Created)
	}
}

func TestOrderUseCaseAssignRequiresMasterID(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{}
	uc := NewOrderUseCase(repo)

	_, err := uc.Assign(context.Background(), "o-1", "")
	if _, ok := domainErrors.AsValidation(err); !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(repo.UpdateCalls) != 0 {
		t.Fatal("update should not be called without master id")
	}
}

func TestOrderUseCaseAssignGoesThroughUpdate(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{}
	uc := NewOrderUseCase(repo)

	if _, err := uc.Assign(context.Background(), "o-1", "m-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.UpdateCalls) != 1 {
		t.Fatalf("expected one update call, got %d", len(repo.UpdateCalls))
	}
	call := repo.UpdateCalls[0]
	if call.OrderID != "o-1" {
		t.Fatalf("unexpected order id %q", call.OrderID)
	}
	if call.Update.MasterID == nil || *call.Update.MasterID != "m-1" {
		t.Fatalf("unexpected update %+v", call.Update)
	}
	if call.Update.Status != nil || call.Update.Price != nil {
		t.Fatal("assign must not touch status or price")
	}
}

func TestOrderUseCaseUpdatePropagatesEngineErrors(t *testing.T) {
	for _, wantErr := range []error{domainErrors.ErrOrderNotFound, domainErrors.ErrMasterNotFound, domainErrors.ErrMasterBusy} {
		uc := NewOrderUseCase(&testhelpers.OrderRepositoryStub{UpdateFn: func(context.Context, string, repository.OrderUpdate) (*model.Order, error) {
			return nil, wantErr
		}})
		if _, err := uc.Update(context.Background(), "o-1", repository.OrderUpdate{}); !errors.Is(err, wantErr) {
			t.Fatalf("expected %v, got %v", wantErr, err)
		}
	}
}

func TestOrderUseCaseSetPaymentPropagatesSettlementErrors(t *testing.T) {
	for _, wantErr := range []error{domainErrors.ErrOrderNotCompleted, domainErrors.ErrOrderUnpriced, domainErrors.ErrPaymentUnchanged} {
		uc := NewOrderUseCase(&testhelpers.OrderRepositoryStub{SetPaymentFn: func(context.Context, string, bool) (*model.Order, error) {
			return nil, wantErr
		}})
		if _, err := uc.SetPayment(context.Background(), "o-1", true); !errors.Is(err, wantErr) {
			t.Fatalf("expected %v, got %v", wantErr, err)
		}
	}
}

func TestOrderUseCaseSetPaymentSuccess(t *testing.T) {
	uc := NewOrderUseCase(&testhelpers.OrderRepositoryStub{SetPaymentFn: func(ctx context.Context, orderID string, isPaid bool) (*model.Order, error) {
		if orderID != "o-1" || !isPaid {
			t.Fatalf("unexpected arguments: %s %v", orderID, isPaid)
		}
		return &model.Order{ID: orderID, Status: model.OrderStatusDone, IsPaid: true}, nil
	}})

	order, err := uc.SetPayment(context.Background(), "o-1", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !order.IsPaid {
		t.Fatal("expected order to be marked paid")
	}
}

func TestOrderUseCaseListByChat(t *testing.T) {
	uc := NewOrderUseCase(&testhelpers.OrderRepositoryStub{ListByChatFn: func(ctx context.Context, chatID int64) ([]model.Order, error) {
		if chatID != 42 {
			t.Fatalf("unexpected chat id %d", chatID)
		}
		return []model.Order{{ID: "o-2"}, {ID: "o-1"}}, nil
	}})

	orders, err := uc.ListByChat(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 2 || orders[0].ID != "o-2" {
		t.Fatalf("unexpected orders %v", orders)
	}
}
