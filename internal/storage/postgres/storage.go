package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/ecosystuz/tezkor-backend/internal/domain/errors"
	"github.com/ecosystuz/tezkor-backend/internal/domain/model"
	"github.com/ecosystuz/tezkor-backend/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool used by the storage. Tests substitute
// a pgxmock pool through newPgxPool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type masterRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Masters() repository.MasterRepository {
	return &masterRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id TEXT PRIMARY KEY,
            chat_id BIGINT UNIQUE NOT NULL,
            name TEXT NOT NULL,
            phone TEXT NOT NULL DEFAULT '',
            city TEXT NOT NULL DEFAULT '',
            language TEXT NOT NULL,
            registered BOOLEAN NOT NULL DEFAULT TRUE,
            is_subscribed BOOLEAN NOT NULL DEFAULT FALSE,
            subscribed_at TIMESTAMPTZ
        )`,
		`CREATE TABLE IF NOT EXISTS masters (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            phone TEXT NOT NULL,
            service_type TEXT NOT NULL,
            is_available BOOLEAN NOT NULL DEFAULT TRUE,
            location TEXT NOT NULL,
            earnings_total DOUBLE PRECISION NOT NULL DEFAULT 0,
            earnings_month DOUBLE PRECISION NOT NULL DEFAULT 0
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id TEXT PRIMARY KEY,
            chat_id BIGINT NOT NULL,
            service_type TEXT NOT NULL,
            problem_description TEXT NOT NULL DEFAULT '',
            location TEXT NOT NULL,
            requested_time TEXT NOT NULL,
            status TEXT NOT NULL DEFAULT 'pending',
            contact_name TEXT NOT NULL DEFAULT '',
            contact_number TEXT NOT NULL DEFAULT '',
            address TEXT NOT NULL DEFAULT '',
            master_id TEXT REFERENCES masters(id),
            price DOUBLE PRECISION,
            is_paid BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS earnings_rollover (
            id SMALLINT PRIMARY KEY,
            month TEXT NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_chat ON orders(chat_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_master ON orders(master_id)`,
		`CREATE INDEX IF NOT EXISTS idx_masters_service ON masters(service_type, is_available)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, chatID int64, name, phone, city, language string) (*model.User, error) {
	const query = `INSERT INTO users (id, chat_id, name, phone, city, language, registered, is_subscribed, subscribed_at)
                   VALUES ($1, $2, $3, $4, $5, $6, TRUE, TRUE, NOW())
                   RETURNING subscribed_at`
	u := model.User{
		ID:           uuid.NewString(),
		ChatID:       chatID,
		Name:         name,
		Phone:        phone,
		City:         city,
		Language:     language,
		Registered:   true,
		IsSubscribed: true,
	}
	var subscribedAt time.Time
	err := r.storage.pool.QueryRow(ctx, query, u.ID, chatID, name, phone, city, language).Scan(&subscribedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.SubscribedAt = &subscribedAt
	return &u, nil
}

const userColumns = `id, chat_id, name, phone, city, language, registered, is_subscribed, subscribed_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.ChatID, &u.Name, &u.Phone, &u.City, &u.Language, &u.Registered, &u.IsSubscribed, &u.SubscribedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByChatID(ctx context.Context, chatID int64) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE chat_id=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, chatID))
}

func (r *userRepository) UpdateSubscription(ctx context.Context, chatID int64, target *bool) (*model.User, error) {
	var updated *model.User
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const lockQuery = `SELECT is_subscribed FROM users WHERE chat_id=$1 FOR UPDATE`
		var current bool
		if err := tx.QueryRow(ctx, lockQuery, chatID).Scan(&current); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrUserNotFound
			}
			return err
		}

		next := !current
		if target != nil {
			next = *target
		}

		updateQuery := `UPDATE users
                        SET is_subscribed=$2,
                            subscribed_at=CASE WHEN $2 THEN NOW() ELSE NULL END
                        WHERE chat_id=$1
                        RETURNING ` + userColumns
		u, err := scanUser(tx.QueryRow(ctx, updateQuery, chatID, next))
		if err != nil {
			return err
		}
		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *userRepository) UpdateLanguage(ctx context.Context, chatID int64, language string) (*model.User, error) {
	query := `UPDATE users SET language=$2 WHERE chat_id=$1 RETURNING ` + userColumns
	return scanUser(r.storage.pool.QueryRow(ctx, query, chatID, language))
}

func (r *userRepository) UpdateName(ctx context.Context, chatID int64, name string) (*model.User, error) {
	query := `UPDATE users SET name=$2 WHERE chat_id=$1 RETURNING ` + userColumns
	return scanUser(r.storage.pool.QueryRow(ctx, query, chatID, name))
}

func (r *userRepository) SubscriberStats(ctx context.Context) (*model.SubscriberStats, error) {
	var stats model.SubscriberStats

	const totalQuery = `SELECT COUNT(*) FROM users WHERE is_subscribed`
	if err := r.storage.pool.QueryRow(ctx, totalQuery).Scan(&stats.Total); err != nil {
		return nil, err
	}

	const recentQuery = `SELECT COUNT(*) FROM users
                         WHERE is_subscribed AND subscribed_at >= NOW() - INTERVAL '30 days'`
	if err := r.storage.pool.QueryRow(ctx, recentQuery).Scan(&stats.NewLastMonth); err != nil {
		return nil, err
	}

	const monthlyQuery = `SELECT EXTRACT(MONTH FROM subscribed_at)::INT AS month, COUNT(*)
                          FROM users
                          WHERE is_subscribed AND subscribed_at IS NOT NULL
                          GROUP BY month
                          ORDER BY month`
	rows, err := r.storage.pool.Query(ctx, monthlyQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var m model.MonthlySubscribers
		if err := rows.Scan(&m.Month, &m.Count); err != nil {
			return nil, err
		}
		stats.Monthly = append(stats.Monthly, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &stats, nil
}

// --- MasterRepository implementation ---

const masterColumns = `id, name, phone, service_type, is_available, location, earnings_total, earnings_month`

func scanMaster(row pgx.Row) (*model.Master, error) {
	var m model.Master
	err := row.Scan(&m.ID, &m.Name, &m.Phone, &m.ServiceType, &m.IsAvailable, &m.Location, &m.Earnings.Total, &m.Earnings.CurrentMonth)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrMasterNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *masterRepository) Create(ctx context.Context, name, phone, serviceType, location string) (*model.Master, error) {
	const query = `INSERT INTO masters (id, name, phone, service_type, location) VALUES ($1, $2, $3, $4, $5)`
	m := model.Master{
		ID:          uuid.NewString(),
		Name:        name,
		Phone:       phone,
		ServiceType: serviceType,
		IsAvailable: true,
		Location:    location,
	}
	if _, err := r.storage.pool.Exec(ctx, query, m.ID, name, phone, serviceType, location); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *masterRepository) GetByID(ctx context.Context, id string) (*model.Master, error) {
	query := `SELECT ` + masterColumns + ` FROM masters WHERE id=$1`
	return scanMaster(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *masterRepository) collect(rows pgx.Rows) ([]model.Master, error) {
	defer rows.Close()

	var result []model.Master
	for rows.Next() {
		var m model.Master
		if err := rows.Scan(&m.ID, &m.Name, &m.Phone, &m.ServiceType, &m.IsAvailable, &m.Location, &m.Earnings.Total, &m.Earnings.CurrentMonth); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *masterRepository) List(ctx context.Context) ([]model.Master, error) {
	query := `SELECT ` + masterColumns + ` FROM masters ORDER BY name`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *masterRepository) ListAvailable(ctx context.Context, serviceType string) ([]model.Master, error) {
	query := `SELECT ` + masterColumns + ` FROM masters WHERE service_type=$1 AND is_available ORDER BY name`
	rows, err := r.storage.pool.Query(ctx, query, serviceType)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *masterRepository) ResetMonthlyEarnings(ctx context.Context, month string) (bool, error) {
	applied := false
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const lockQuery = `SELECT month FROM earnings_rollover WHERE id=1 FOR UPDATE`
		var stored string
		err := tx.QueryRow(ctx, lockQuery).Scan(&stored)
		if errors.Is(err, pgx.ErrNoRows) {
			// First run just records the current month so a fresh deploy
			// does not wipe accumulators.
			_, err = tx.Exec(ctx, `INSERT INTO earnings_rollover (id, month) VALUES (1, $1)`, month)
			return err
		}
		if err != nil {
			return err
		}
		if stored == month {
			return nil
		}

		if _, err := tx.Exec(ctx, `UPDATE masters SET earnings_month=0`); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `UPDATE earnings_rollover SET month=$1 WHERE id=1`, month); err != nil {
			return err
		}
		applied = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return applied, nil
}

// --- OrderRepository implementation ---

const orderColumns = `o.id, o.chat_id, o.service_type, o.problem_description, o.location, o.requested_time,
                      o.status, o.contact_name, o.contact_number, o.address, o.master_id, m.name, m.phone,
                      o.price, o.is_paid, o.created_at`

const orderSelect = `SELECT ` + orderColumns + ` FROM orders o LEFT JOIN masters m ON m.id = o.master_id`

func scanOrderRow(row pgx.Row) (*model.Order, error) {
	var (
		o           model.Order
		masterName  *string
		masterPhone *string
	)
	err := row.Scan(&o.ID, &o.ChatID, &o.ServiceType, &o.ProblemDescription, &o.Location, &o.Time,
		&o.Status, &o.Name, &o.Number, &o.Address, &o.MasterID, &masterName, &masterPhone,
		&o.Price, &o.IsPaid, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrOrderNotFound
		}
		return nil, err
	}
	if o.MasterID != nil && masterName != nil && masterPhone != nil {
		o.Master = &model.MasterContact{Name: *masterName, Phone: *masterPhone}
	}
	return &o, nil
}

func (r *orderRepository) Create(ctx context.Context, order repository.NewOrder) (*model.Order, error) {
	const query = `INSERT INTO orders (id, chat_id, service_type, problem_description, location, requested_time,
                                       contact_name, contact_number, address, price)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
                   RETURNING status, is_paid, created_at`
	o := model.Order{
		ID:                 uuid.NewString(),
		ChatID:             order.ChatID,
		ServiceType:        order.ServiceType,
		ProblemDescription: order.ProblemDescription,
		Location:           order.Location,
		Time:               order.Time,
		Name:               order.Name,
		Number:             order.Number,
		Address:            order.Address,
		Price:              order.Price,
	}
	err := r.storage.pool.QueryRow(ctx, query,
		o.ID, o.ChatID, o.ServiceType, o.ProblemDescription, o.Location, o.Time,
		o.Name, o.Number, o.Address, o.Price,
	).Scan(&o.Status, &o.IsPaid, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	return scanOrderRow(r.storage.pool.QueryRow(ctx, orderSelect+` WHERE o.id=$1`, id))
}

func (r *orderRepository) collect(rows pgx.Rows) ([]model.Order, error) {
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		o, err := scanOrderRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) ListByChat(ctx context.Context, chatID int64) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, orderSelect+` WHERE o.chat_id=$1 ORDER BY o.created_at DESC`, chatID)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *orderRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, orderSelect+` ORDER BY o.created_at DESC`)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

// lockedOrder is the mutable slice of an order row held under FOR UPDATE.
type lockedOrder struct {
	status   model.OrderStatus
	masterID *string
	price    *float64
	isPaid   bool
}

func lockOrder(ctx context.Context, tx pgx.Tx, orderID string) (*lockedOrder, error) {
	const query = `SELECT status, master_id, price, is_paid FROM orders WHERE id=$1 FOR UPDATE`
	var o lockedOrder
	err := tx.QueryRow(ctx, query, orderID).Scan(&o.status, &o.masterID, &o.price, &o.isPaid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrOrderNotFound
		}
		return nil, err
	}
	return &o, nil
}

// Update applies status, master assignment and price changes as one atomic
// unit. Master rows touched along the way are locked so two concurrent
// assignments cannot both observe an available master.
func (r *orderRepository) Update(ctx context.Context, orderID string, upd repository.OrderUpdate) (*model.Order, error) {
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		order, err := lockOrder(ctx, tx, orderID)
		if err != nil {
			return err
		}

		if upd.Status != nil && *upd.Status != "" {
			if err := r.applyStatus(ctx, tx, order, *upd.Status); err != nil {
				return err
			}
		}

		if upd.MasterID != nil && *upd.MasterID != "" {
			if err := r.applyAssignment(ctx, tx, order, *upd.MasterID); err != nil {
				return err
			}
		}

		if upd.Price != nil {
			order.price = upd.Price
		}

		const updateQuery = `UPDATE orders SET status=$2, master_id=$3, price=$4 WHERE id=$1`
		_, err = tx.Exec(ctx, updateQuery, orderID, order.status, order.masterID, order.price)
		return err
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, orderID)
}

// applyStatus performs the status transition. Completing an order releases
// its master and credits earnings with the stored price. The accrual fires
// only on a genuine transition into done; a redundant done write must not
// double-count.
func (r *orderRepository) applyStatus(ctx context.Context, tx pgx.Tx, order *lockedOrder, status model.OrderStatus) error {
	if status == model.OrderStatusDone && order.status != model.OrderStatusDone && order.masterID != nil {
		var amount float64
		if order.price != nil {
			amount = *order.price
		}
		const releaseQuery = `UPDATE masters
                              SET is_available=TRUE,
                                  earnings_total=earnings_total+$2,
                                  earnings_month=earnings_month+$2
                              WHERE id=$1`
		// Missing master is tolerated: the reference is weak.
		if _, err := tx.Exec(ctx, releaseQuery, *order.masterID, amount); err != nil {
			return err
		}
	}
	order.status = status
	return nil
}

// applyAssignment binds the order to masterID, releasing the previously
// assigned master first. Re-assigning the current master is a no-op.
func (r *orderRepository) applyAssignment(ctx context.Context, tx pgx.Tx, order *lockedOrder, masterID string) error {
	if order.masterID != nil && *order.masterID == masterID {
		return nil
	}

	const lockMaster = `SELECT is_available FROM masters WHERE id=$1 FOR UPDATE`
	var available bool
	err := tx.QueryRow(ctx, lockMaster, masterID).Scan(&available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainErrors.ErrMasterNotFound
		}
		return err
	}

	if order.masterID != nil {
		if _, err := tx.Exec(ctx, `UPDATE masters SET is_available=TRUE WHERE id=$1`, *order.masterID); err != nil {
			return err
		}
	}

	if !available {
		return domainErrors.ErrMasterBusy
	}

	if _, err := tx.Exec(ctx, `UPDATE masters SET is_available=FALSE WHERE id=$1`, masterID); err != nil {
		return err
	}
	order.masterID = &masterID
	return nil
}

// SetPayment toggles the payment flag and adjusts the assigned master's
// earnings accumulators in the same transaction. Paying credits, unpaying
// debits; the accumulators have no floor at zero.
func (r *orderRepository) SetPayment(ctx context.Context, orderID string, isPaid bool) (*model.Order, error) {
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		order, err := lockOrder(ctx, tx, orderID)
		if err != nil {
			return err
		}

		if order.status != model.OrderStatusDone {
			return domainErrors.ErrOrderNotCompleted
		}
		if order.price == nil || *order.price == 0 {
			return domainErrors.ErrOrderUnpriced
		}
		if order.isPaid == isPaid {
			return domainErrors.ErrPaymentUnchanged
		}

		if order.masterID != nil {
			amount := *order.price
			if !isPaid {
				amount = -amount
			}
			const adjustQuery = `UPDATE masters
                                 SET earnings_total=earnings_total+$2,
                                     earnings_month=earnings_month+$2
                                 WHERE id=$1`
			if _, err := tx.Exec(ctx, adjustQuery, *order.masterID, amount); err != nil {
				return err
			}
		}

		_, err = tx.Exec(ctx, `UPDATE orders SET is_paid=$2 WHERE id=$1`, orderID, isPaid)
		return err
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, orderID)
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
