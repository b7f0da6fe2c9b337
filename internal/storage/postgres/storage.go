package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/greenloop/greenpoints/internal/domain/errors"
	"github.com/greenloop/greenpoints/internal/domain/model"
	"github.com/greenloop/greenpoints/internal/domain/repository"
)

// Pool is the subset of pgxpool.Pool the storage relies on. pgxmock pools
// satisfy it in tests.
type Pool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   Pool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type rewardRepository struct {
	storage *Storage
}

type pointsRepository struct {
	storage *Storage
}

type exchangeRepository struct {
	storage *Storage
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (Pool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
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

func (s *Storage) Rewards() repository.RewardRepository {
	return &rewardRepository{storage: s}
}

func (s *Storage) Points() repository.PointsRepository {
	return &pointsRepository{storage: s}
}

func (s *Storage) Exchanges() repository.ExchangeRepository {
	return &exchangeRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            login TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL DEFAULT 'user',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS rewards (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            points_cost BIGINT NOT NULL,
            stock BIGINT NOT NULL DEFAULT 0,
            category TEXT NOT NULL,
            status TEXT NOT NULL,
            valid_from TIMESTAMPTZ,
            valid_until TIMESTAMPTZ,
            image_url TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS user_points (
            user_id BIGINT PRIMARY KEY REFERENCES users(id),
            current BIGINT NOT NULL DEFAULT 0,
            total_earned BIGINT NOT NULL DEFAULT 0,
            total_spent BIGINT NOT NULL DEFAULT 0
        )`,
		`CREATE TABLE IF NOT EXISTS exchanges (
            id TEXT PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            reward_id TEXT NOT NULL REFERENCES rewards(id),
            quantity BIGINT NOT NULL,
            points_spent BIGINT NOT NULL,
            status TEXT NOT NULL,
            delivery_address TEXT NOT NULL DEFAULT '',
            notes TEXT NOT NULL DEFAULT '',
            idempotency_key TEXT UNIQUE NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_exchanges_user ON exchanges(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_rewards_category ON rewards(category)`,
		`CREATE INDEX IF NOT EXISTS idx_rewards_status ON rewards(status)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, login, passwordHash string) (*model.User, error) {
	const query = `INSERT INTO users (login, password_hash, role) VALUES ($1, $2, $3) RETURNING id, created_at`
	u := model.User{Role: model.UserRoleMember}
	err := r.storage.pool.QueryRow(ctx, query, login, passwordHash, model.UserRoleMember).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Login = login
	u.PasswordHash = passwordHash
	return &u, nil
}

func (r *userRepository) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	const query = `SELECT id, login, password_hash, role, created_at FROM users WHERE login=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, login).Scan(&u.ID, &u.Login, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, login, password_hash, role, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Login, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- RewardRepository implementation ---

const rewardColumns = `id, name, description, points_cost, stock, category, status, valid_from, valid_until, image_url, created_at, updated_at`

func scanReward(row pgx.Row) (*model.Reward, error) {
	var rw model.Reward
	err := row.Scan(&rw.ID, &rw.Name, &rw.Description, &rw.PointsCost, &rw.Stock, &rw.Category, &rw.Status,
		&rw.ValidFrom, &rw.ValidUntil, &rw.ImageURL, &rw.CreatedAt, &rw.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &rw, nil
}

func (r *rewardRepository) Create(ctx context.Context, reward *model.Reward) (*model.Reward, error) {
	created := *reward
	if created.ID == "" {
		created.ID = uuid.NewString()
	}
	if created.Status == "" {
		created.Status = model.RewardStatusActive
	}
	const query = `INSERT INTO rewards (id, name, description, points_cost, stock, category, status, valid_from, valid_until, image_url)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
                   RETURNING created_at, updated_at`
	err := r.storage.pool.QueryRow(ctx, query,
		created.ID, created.Name, created.Description, created.PointsCost, created.Stock,
		created.Category, created.Status, created.ValidFrom, created.ValidUntil, created.ImageURL,
	).Scan(&created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &created, nil
}

func (r *rewardRepository) GetByID(ctx context.Context, id string) (*model.Reward, error) {
	query := `SELECT ` + rewardColumns + ` FROM rewards WHERE id=$1`
	reward, err := scanReward(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return reward, nil
}

func (r *rewardRepository) List(ctx context.Context, filter model.RewardFilter) (*model.RewardPage, error) {
	filter = filter.Normalize()

	var (
		conditions []string
		args       []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Category != "" {
		conditions = append(conditions, "category="+arg(string(filter.Category)))
	}
	if filter.Search != "" {
		placeholder := arg("%" + filter.Search + "%")
		conditions = append(conditions, fmt.Sprintf("(name ILIKE %s OR description ILIKE %s)", placeholder, placeholder))
	}
	if filter.MinPoints > 0 {
		conditions = append(conditions, "points_cost >= "+arg(filter.MinPoints))
	}
	if filter.MaxPoints > 0 {
		conditions = append(conditions, "points_cost <= "+arg(filter.MaxPoints))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM rewards` + where
	if err := r.storage.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, err
	}

	direction := "ASC"
	if filter.Descending {
		direction = "DESC"
	}
	listQuery := fmt.Sprintf(`SELECT %s FROM rewards%s ORDER BY %s %s LIMIT %s OFFSET %s`,
		rewardColumns, where, string(filter.SortBy), direction, arg(filter.PageSize), arg(filter.Offset()))

	rows, err := r.storage.pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	page := &model.RewardPage{Total: total}
	for rows.Next() {
		reward, err := scanReward(rows)
		if err != nil {
			return nil, err
		}
		page.Rewards = append(page.Rewards, *reward)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return page, nil
}

func (r *rewardRepository) Update(ctx context.Context, reward *model.Reward) error {
	const query = `UPDATE rewards
                   SET name=$1, description=$2, points_cost=$3, stock=$4, category=$5, status=$6,
                       valid_from=$7, valid_until=$8, image_url=$9, updated_at=NOW()
                   WHERE id=$10`
	tag, err := r.storage.pool.Exec(ctx, query,
		reward.Name, reward.Description, reward.PointsCost, reward.Stock, reward.Category,
		reward.Status, reward.ValidFrom, reward.ValidUntil, reward.ImageURL, reward.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *rewardRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM rewards WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *rewardRepository) SelectBatchForMaintenance(ctx context.Context, limit int) ([]model.Reward, error) {
	query := `SELECT ` + rewardColumns + `
              FROM rewards
              WHERE (status='ACTIVE' AND valid_until IS NOT NULL AND valid_until < NOW())
                 OR (status='ACTIVE' AND stock = 0)
                 OR (status='OUT_OF_STOCK' AND stock > 0)
              ORDER BY updated_at
              LIMIT $1`
	rows, err := r.storage.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Reward
	for rows.Next() {
		reward, err := scanReward(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *reward)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *rewardRepository) UpdateStatus(ctx context.Context, id string, status model.RewardStatus) error {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE rewards SET status=$1, updated_at=NOW() WHERE id=$2`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- PointsRepository implementation ---

func (r *pointsRepository) GetSummary(ctx context.Context, userID int64) (*model.PointsSummary, error) {
	const query = `SELECT current, total_earned, total_spent FROM user_points WHERE user_id=$1`
	var summary model.PointsSummary
	err := r.storage.pool.QueryRow(ctx, query, userID).Scan(&summary.Current, &summary.TotalEarned, &summary.TotalSpent)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &model.PointsSummary{}, nil
		}
		return nil, err
	}
	return &summary, nil
}

func (s *Storage) creditTx(ctx context.Context, tx pgx.Tx, userID int64, amount int64) error {
	const query = `INSERT INTO user_points (user_id, current, total_earned, total_spent)
                   VALUES ($1, $2, $2, 0)
                   ON CONFLICT (user_id) DO UPDATE
                   SET current = user_points.current + EXCLUDED.current,
                       total_earned = user_points.total_earned + EXCLUDED.total_earned`
	if _, err := tx.Exec(ctx, query, userID, amount); err != nil {
		return err
	}
	return nil
}

func (r *pointsRepository) Credit(ctx context.Context, userID int64, amount int64) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		return r.storage.creditTx(ctx, tx, userID, amount)
	})
}

// --- ExchangeRepository implementation ---

const exchangeColumns = `id, user_id, reward_id, quantity, points_spent, status, delivery_address, notes, idempotency_key, created_at, updated_at`

func scanExchange(row pgx.Row) (*model.Exchange, error) {
	var e model.Exchange
	err := row.Scan(&e.ID, &e.UserID, &e.RewardID, &e.Quantity, &e.PointsSpent, &e.Status,
		&e.DeliveryAddress, &e.Notes, &e.IdempotencyKey, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *exchangeRepository) Exchange(ctx context.Context, userID int64, rewardID string, quantity int64, address, notes, idempotencyKey string) (*model.ExchangeResult, error) {
	var result *model.ExchangeResult
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		replayQuery := `SELECT ` + exchangeColumns + ` FROM exchanges WHERE idempotency_key=$1`
		existing, err := scanExchange(tx.QueryRow(ctx, replayQuery, idempotencyKey))
		if err == nil {
			var current int64
			if err := tx.QueryRow(ctx, `SELECT current FROM user_points WHERE user_id=$1`, userID).Scan(&current); err != nil && !errors.Is(err, pgx.ErrNoRows) {
				return err
			}
			result = &model.ExchangeResult{Exchange: existing, RemainingPoints: current, Replayed: true}
			return nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return err
		}

		const rewardQuery = `SELECT points_cost, stock, status, valid_from, valid_until FROM rewards WHERE id=$1 FOR UPDATE`
		reward := model.Reward{ID: rewardID}
		err = tx.QueryRow(ctx, rewardQuery, rewardID).Scan(&reward.PointsCost, &reward.Stock, &reward.Status, &reward.ValidFrom, &reward.ValidUntil)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		if !reward.Available(time.Now()) {
			return domainErrors.ErrRewardUnavailable
		}
		if reward.Stock < quantity {
			return domainErrors.ErrOutOfStock
		}

		spent := reward.PointsCost * quantity

		var current int64
		err = tx.QueryRow(ctx, `SELECT current FROM user_points WHERE user_id=$1 FOR UPDATE`, userID).Scan(&current)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				current = 0
			} else {
				return err
			}
		}
		if current < spent {
			return domainErrors.ErrInsufficientPoints
		}

		if _, err := tx.Exec(ctx, `UPDATE rewards SET stock = stock - $1, updated_at=NOW() WHERE id=$2`, quantity, rewardID); err != nil {
			return err
		}

		var remaining int64
		const debitQuery = `UPDATE user_points
                            SET current = current - $1, total_spent = total_spent + $1
                            WHERE user_id=$2
                            RETURNING current`
		if err := tx.QueryRow(ctx, debitQuery, spent, userID).Scan(&remaining); err != nil {
			return err
		}

		exchange := &model.Exchange{
			ID:              uuid.NewString(),
			UserID:          userID,
			RewardID:        rewardID,
			Quantity:        quantity,
			PointsSpent:     spent,
			Status:          model.ExchangeStatusPending,
			DeliveryAddress: address,
			Notes:           notes,
			IdempotencyKey:  idempotencyKey,
		}
		const insertQuery = `INSERT INTO exchanges (id, user_id, reward_id, quantity, points_spent, status, delivery_address, notes, idempotency_key)
                             VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
                             RETURNING created_at, updated_at`
		if err := tx.QueryRow(ctx, insertQuery,
			exchange.ID, exchange.UserID, exchange.RewardID, exchange.Quantity, exchange.PointsSpent,
			exchange.Status, exchange.DeliveryAddress, exchange.Notes, exchange.IdempotencyKey,
		).Scan(&exchange.CreatedAt, &exchange.UpdatedAt); err != nil {
			return err
		}

		result = &model.ExchangeResult{Exchange: exchange, RemainingPoints: remaining}
		return nil
	})
	if err != nil {
		// A concurrent request with the same key can slip past the replay
		// lookup; the losing insert hits the unique index and is served as
		// a replay after its transaction rolls back.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return r.replayByKey(ctx, userID, idempotencyKey)
		}
		return nil, err
	}
	return result, nil
}

func (r *exchangeRepository) replayByKey(ctx context.Context, userID int64, idempotencyKey string) (*model.ExchangeResult, error) {
	query := `SELECT ` + exchangeColumns + ` FROM exchanges WHERE idempotency_key=$1`
	exchange, err := scanExchange(r.storage.pool.QueryRow(ctx, query, idempotencyKey))
	if err != nil {
		return nil, err
	}

	var current int64
	err = r.storage.pool.QueryRow(ctx, `SELECT current FROM user_points WHERE user_id=$1`, userID).Scan(&current)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	return &model.ExchangeResult{Exchange: exchange, RemainingPoints: current, Replayed: true}, nil
}

func (r *exchangeRepository) GetByID(ctx context.Context, id string) (*model.Exchange, error) {
	query := `SELECT ` + exchangeColumns + ` FROM exchanges WHERE id=$1`
	exchange, err := scanExchange(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return exchange, nil
}

func (r *exchangeRepository) ListByUser(ctx context.Context, userID int64, page, size int) ([]model.Exchange, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 20
	}
	query := `SELECT ` + exchangeColumns + `
              FROM exchanges WHERE user_id=$1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.storage.pool.Query(ctx, query, userID, size, (page-1)*size)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Exchange
	for rows.Next() {
		exchange, err := scanExchange(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *exchange)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *exchangeRepository) UpdateStatus(ctx context.Context, id string, to model.ExchangeStatus) (*model.Exchange, error) {
	var updated *model.Exchange
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		lockQuery := `SELECT ` + exchangeColumns + ` FROM exchanges WHERE id=$1 FOR UPDATE`
		exchange, err := scanExchange(tx.QueryRow(ctx, lockQuery, id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		if !exchange.Status.CanTransition(to) {
			if to == model.ExchangeStatusCancelled {
				return domainErrors.ErrNotCancellable
			}
			return domainErrors.ErrInvalidTransition
		}

		if _, err := tx.Exec(ctx, `UPDATE exchanges SET status=$1, updated_at=NOW() WHERE id=$2`, to, id); err != nil {
			return err
		}

		if to.Refunds() {
			const refundQuery = `UPDATE user_points
                                 SET current = current + $1, total_spent = total_spent - $1
                                 WHERE user_id=$2`
			if _, err := tx.Exec(ctx, refundQuery, exchange.PointsSpent, exchange.UserID); err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, `UPDATE rewards SET stock = stock + $1, updated_at=NOW() WHERE id=$2`, exchange.Quantity, exchange.RewardID); err != nil {
				return err
			}
		}

		exchange.Status = to
		updated = exchange
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
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
