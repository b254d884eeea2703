package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/ecosystuz/tezkor-backend/internal/domain/errors"
	"github.com/ecosystuz/tezkor-backend/internal/domain/model"
	testhelpers "github.com/ecosystuz/tezkor-backend/internal/test"
)

func TestUserUseCaseRegisterRejectsMissingFields(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewUserUseCase(repo)

	_, err := uc.Register(context.Background(), 0, "  ", "", "", "")
	verr, ok := domainErrors.AsValidation(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(verr.Fields) != 3 {
		t.Fatalf("unexpected missing fields %v", verr.Fields)
	}
	if len(repo.Users) != 0 {
		t.Fatal("repository should not be touched on validation failure")
	}
}

func TestUserUseCaseRegisterTrimsNameAndSubscribes(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewUserUseCase(repo)

	usr, err := uc.Register(context.Background(), 100, "  Aziz  ", "+998900000000", "Tashkent", "uz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if usr.Name != "Aziz" {
		t.Fatalf("expected trimmed name, got %q", usr.Name)
	}
	if !usr.IsSubscribed || usr.SubscribedAt == nil {
		t.Fatal("new user should start subscribed")
	}
}

func TestUserUseCaseRegisterDuplicateChat(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewUserUseCase(repo)

	if _, err := uc.Register(context.Background(), 100, "Aziz", "", "", "ru"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Register(context.Background(), 100, "Aziz", "", "", "ru"); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected already exists error, got %v", err)
	}
}

func TestUserUseCaseCheckMissingUserIsNotAnError(t *testing.T) {
	uc := NewUserUseCase(testhelpers.NewUserRepositoryStub())

	usr, err := uc.Check(context.Background(), 404)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if usr != nil {
		t.Fatalf("expected nil user, got %+v", usr)
	}
}

func TestUserUseCaseCheckPropagatesRepositoryError(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	repo.Err = errors.New("db down")
	uc := NewUserUseCase(repo)

	if _, err := uc.Check(context.Background(), 1); err == nil || errors.Is(err, domainErrors.ErrUserNotFound) {
		t.Fatalf("expected repository error, got %v", err)
	}
}

func TestUserUseCaseSetSubscriptionToggleAndExplicit(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewUserUseCase(repo)
	if _, err := uc.Register(context.Background(), 7, "Aziz", "", "", "ru"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	usr, err := uc.SetSubscription(context.Background(), 7, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if usr.IsSubscribed {
		t.Fatal("toggle should have unsubscribed the user")
	}
	if usr.SubscribedAt != nil {
		t.Fatal("unsubscribing should clear the subscription timestamp")
	}

	target := true
	usr, err = uc.SetSubscription(context.Background(), 7, &target)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !usr.IsSubscribed || usr.SubscribedAt == nil {
		t.Fatal("explicit subscribe should set flag and timestamp")
	}
}

func TestUserUseCaseUpdateLanguage(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewUserUseCase(repo)
	if _, err := uc.Register(context.Background(), 7, "Aziz", "", "", "ru"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := uc.UpdateLanguage(context.Background(), 7, "fr"); !errors.Is(err, domainErrors.ErrInvalidLanguage) {
		t.Fatalf("expected invalid language error, got %v", err)
	}

	usr, err := uc.UpdateLanguage(context.Background(), 7, "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if usr.Language != "en" {
		t.Fatalf("unexpected language %q", usr.Language)
	}
}

func TestUserUseCaseUpdateName(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewUserUseCase(repo)
	if _, err := uc.Register(context.Background(), 7, "Aziz", "", "", "ru"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := uc.UpdateName(context.Background(), 7, "   "); !errors.Is(err, domainErrors.ErrEmptyName) {
		t.Fatalf("expected empty name error, got %v", err)
	}

	usr, err := uc.UpdateName(context.Background(), 7, "  Bekzod ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if usr.Name != "Bekzod" {
		t.Fatalf("expected trimmed name, got %q", usr.Name)
	}
}

func TestUserUseCaseSubscriberStats(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	repo.Stats = &model.SubscriberStats{
		Total:        11,
		NewLastMonth: 3,
		Monthly:      []model.MonthlySubscribers{{Month: 8, Count: 3}},
	}
	uc := NewUserUseCase(repo)

	stats, err := uc.SubscriberStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Total != 11 || stats.NewLastMonth != 3 || len(stats.Monthly) != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}
