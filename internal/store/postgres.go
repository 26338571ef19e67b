package store

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/model"
)

// Pool is the subset of pgxpool.Pool the store needs; pgxmock
// implements it for tests.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool Pool
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool}, nil
}

// NewPostgresWithPool wraps an existing pool, used in tests.
func NewPostgresWithPool(pool Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS runs (
	id               TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	exhibition_title TEXT NOT NULL,
	exhibition_type  DOUBLE PRECISION,
	result           JSONB NOT NULL,
	insight_count    INTEGER NOT NULL DEFAULT 0,
	draft_count      INTEGER NOT NULL DEFAULT 0,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_runs_title ON runs(exhibition_title);
CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) SaveRun(ctx context.Context, title string, exhibitionType *float64, result *model.Result) (*model.Run, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: marshal result")
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO runs (id, exhibition_title, exhibition_type, result, insight_count, draft_count, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, title, exhibitionType, resultJSON,
		len(result.Insights), len(result.Drafts), now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: insert run")
	}

	return &model.Run{
		ID:              id,
		ExhibitionTitle: title,
		ExhibitionType:  exhibitionType,
		Result:          result,
		InsightCount:    len(result.Insights),
		DraftCount:      len(result.Drafts),
		CreatedAt:       now,
	}, nil
}

func (s *PostgresStore) GetRun(ctx context.Context, runID string) (*model.Run, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, exhibition_title, exhibition_type, result, insight_count, draft_count, created_at
		 FROM runs WHERE id = $1`,
		runID,
	)
	return scanPgRun(row)
}

func (s *PostgresStore) ListRuns(ctx context.Context, filter RunFilter) ([]model.Run, error) {
	query := `SELECT id, exhibition_title, exhibition_type, result, insight_count, draft_count, created_at
	          FROM runs WHERE 1=1`
	var args []any

	if filter.Title != "" {
		args = append(args, filter.Title)
		query += ` AND exhibition_title = $1`
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	args = append(args, limit)
	query += ` LIMIT $` + strconv.Itoa(len(args))

	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += ` OFFSET $` + strconv.Itoa(len(args))
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list runs")
	}
	defer rows.Close()

	var runs []model.Run
	for rows.Next() {
		r, err := scanPgRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *r)
	}
	return runs, eris.Wrap(rows.Err(), "postgres: list runs iterate")
}

func scanPgRun(row pgx.Row) (*model.Run, error) {
	var r model.Run
	var exhibitionType *float64
	var resultJSON []byte

	err := row.Scan(&r.ID, &r.ExhibitionTitle, &exhibitionType, &resultJSON,
		&r.InsightCount, &r.DraftCount, &r.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, eris.Wrap(err, "run not found")
	}
	if err != nil {
		return nil, eris.Wrap(err, "scan run")
	}

	r.ExhibitionType = exhibitionType
	if len(resultJSON) > 0 {
		var res model.Result
		if err := json.Unmarshal(resultJSON, &res); err != nil {
			return nil, eris.Wrap(err, "unmarshal result")
		}
		r.Result = &res
	}
	return &r, nil
}
