// Package postgres provides a PostgreSQL implementation of store.Provider
// backed by a pgx connection pool.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/adrianliechti/suggest/pkg/store"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ store.Provider = (*Store)(nil)

type Store struct {
	pool *pgxpool.Pool
}

// New connects to PostgreSQL and optionally applies schema migrations.
func New(ctx context.Context, cfg Config) (*Store, error) {
	cfg.defaults()

	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)

	if err != nil {
		return nil, fmt.Errorf("parsing DSN: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)

	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &Store{
		pool: pool,
	}

	if cfg.MigrateOnStart {
		if err := s.migrate(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("running migrations: %w", err)
		}
	}

	return s, nil
}

func (s *Store) Close() {
	s.pool.Close()
}

func (s *Store) CreateStatusCheck(ctx context.Context, clientName string) (*store.StatusCheck, error) {
	if strings.TrimSpace(clientName) == "" {
		return nil, store.ErrInvalidInput
	}

	check := store.StatusCheck{
		ID: uuid.NewString(),

		ClientName: clientName,
		Timestamp:  time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := s.pool.Exec(ctx,
		"INSERT INTO status_checks (id, client_name, timestamp) VALUES ($1, $2, $3)",
		check.ID, check.ClientName, check.Timestamp,
	)

	if err != nil {
		if isDuplicateKey(err) {
			return nil, store.ErrConflict
		}

		return nil, fmt.Errorf("inserting status check: %w", err)
	}

	return &check, nil
}

func (s *Store) ListStatusChecks(ctx context.Context, options *store.ListOptions) ([]store.StatusCheck, error) {
	rows, err := s.pool.Query(ctx,
		"SELECT id, client_name, timestamp FROM status_checks ORDER BY timestamp, id LIMIT $1",
		store.Limit(options),
	)

	if err != nil {
		return nil, fmt.Errorf("querying status checks: %w", err)
	}

	checks, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (store.StatusCheck, error) {
		var c store.StatusCheck

		if err := row.Scan(&c.ID, &c.ClientName, &c.Timestamp); err != nil {
			return c, err
		}

		c.Timestamp = c.Timestamp.UTC()

		return c, nil
	})

	if err != nil {
		return nil, fmt.Errorf("scanning status checks: %w", err)
	}

	return checks, nil
}

// isDuplicateKey reports a unique violation (SQLSTATE 23505).
func isDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
