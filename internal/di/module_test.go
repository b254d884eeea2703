package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/ecosystuz/tezkor-backend/internal/adapter/keepalive"
	"github.com/ecosystuz/tezkor-backend/internal/app"
	"github.com/ecosystuz/tezkor-backend/internal/config"
	"github.com/ecosystuz/tezkor-backend/internal/domain/repository"
	"github.com/ecosystuz/tezkor-backend/internal/storage/postgres"
	"github.com/ecosystuz/tezkor-backend/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:            ":0",
		DatabaseURI:           "postgres://stub",
		SelfPingInterval:      time.Minute,
		HealthCheckInterval:   time.Minute,
		RolloverCheckInterval: time.Hour,
		ShutdownTimeout:       time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	userRepo := test.NewUserRepositoryStub()
	masterRepo := &test.MasterRepositoryStub{}
	orderRepo := &test.OrderRepositoryStub{}

	var facade *app.DispatchFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(userRepo)),
			fx.Replace(repository.MasterRepository(masterRepo)),
			fx.Replace(repository.OrderRepository(orderRepo)),
			fx.Replace(keepalive.Client(keepalive.Disabled())),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected dispatch facade instance")
	}
}
