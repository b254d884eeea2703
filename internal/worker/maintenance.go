package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/ecosystuz/tezkor-backend/internal/adapter/keepalive"
)

// Pinger performs the self-ping keeping the hosting platform awake.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthChecker verifies storage connectivity.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// EarningsLedger exposes the monthly accumulator rollover.
type EarningsLedger interface {
	RolloverEarnings(ctx context.Context, month string) (bool, error)
}

// Maintenance runs the background chores: periodic self-ping, storage
// health checks and the monthly earnings rollover.
type Maintenance struct {
	pinger Pinger
	health HealthChecker
	ledger EarningsLedger

	pingInterval     time.Duration
	healthInterval   time.Duration
	rolloverInterval time.Duration
	logger           *slog.Logger

	now    func() time.Time
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewMaintenance constructs the maintenance worker.
func NewMaintenance(pinger Pinger, health HealthChecker, ledger EarningsLedger,
	pingInterval, healthInterval, rolloverInterval time.Duration, logger *slog.Logger) *Maintenance {
	return &Maintenance{
		pinger:           pinger,
		health:           health,
		ledger:           ledger,
		pingInterval:     pingInterval,
		healthInterval:   healthInterval,
		rolloverInterval: rolloverInterval,
		logger:           logger,
		now:              time.Now,
	}
}

// Start launches background loops.
func (m *Maintenance) Start(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel

	m.startLoop(runCtx, m.pingInterval, m.selfPing)
	m.startLoop(runCtx, m.healthInterval, m.checkHealth)

	// Rollover also fires once at startup so a restart inside a fresh
	// month doesn't wait a full interval.
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		m.rollover(runCtx)
		if m.rolloverInterval <= 0 {
			return
		}
		ticker := time.NewTicker(m.rolloverInterval)
		defer ticker.Stop()
		for {
			select {
			case <-runCtx.Done():
				return
			case <-ticker.C:
				m.rollover(runCtx)
			}
		}
	}()
}

// Stop waits for all loops to finish.
func (m *Maintenance) Stop() {
	m.mu.Lock()
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.mu.Unlock()

	m.wg.Wait()
}

// startLoop runs fn on every tick until ctx is cancelled or fn asks to stop.
func (m *Maintenance) startLoop(ctx context.Context, interval time.Duration, fn func(context.Context) bool) {
	if interval <= 0 {
		return
	}
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !fn(ctx) {
					return
				}
			}
		}
	}()
}

func (m *Maintenance) selfPing(ctx context.Context) bool {
	err := m.pinger.Ping(ctx)
	switch {
	case err == nil:
		m.logger.Debug("self-ping ok")
	case errors.Is(err, keepalive.ErrDisabled):
		return false
	default:
		m.logger.Warn("self-ping failed", slog.String("error", err.Error()))
	}
	return true
}

func (m *Maintenance) checkHealth(ctx context.Context) bool {
	if err := m.health.HealthCheck(ctx); err != nil {
		m.logger.Error("storage ping failed", slog.String("error", err.Error()))
	} else {
		m.logger.Debug("storage ping ok")
	}
	return true
}

func (m *Maintenance) rollover(ctx context.Context) {
	month := m.now().Format("2006-01")
	applied, err := m.ledger.RolloverEarnings(ctx, month)
	if err != nil {
		m.logger.Error("earnings rollover failed", slog.String("error", err.Error()))
		return
	}
	if applied {
		m.logger.Info("monthly earnings reset", slog.String("month", month))
	}
}
