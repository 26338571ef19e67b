package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS runs (
	id               TEXT PRIMARY KEY,
	exhibition_title TEXT NOT NULL,
	exhibition_type  REAL,
	result           TEXT NOT NULL,
	insight_count    INTEGER NOT NULL DEFAULT 0,
	draft_count      INTEGER NOT NULL DEFAULT 0,
	created_at       DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_runs_title ON runs(exhibition_title);
CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SaveRun(ctx context.Context, title string, exhibitionType *float64, result *model.Result) (*model.Run, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: marshal result")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (id, exhibition_title, exhibition_type, result, insight_count, draft_count, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, title, exhibitionType, string(resultJSON),
		len(result.Insights), len(result.Drafts), now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert run")
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

func (s *SQLiteStore) GetRun(ctx context.Context, runID string) (*model.Run, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, exhibition_title, exhibition_type, result, insight_count, draft_count, created_at
		 FROM runs WHERE id = ?`,
		runID,
	)
	return scanRun(row)
}

func (s *SQLiteStore) ListRuns(ctx context.Context, filter RunFilter) ([]model.Run, error) {
	query := `SELECT id, exhibition_title, exhibition_type, result, insight_count, draft_count, created_at
	          FROM runs WHERE 1=1`
	var args []any

	if filter.Title != "" {
		query += ` AND exhibition_title = ?`
		args = append(args, filter.Title)
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list runs")
	}
	defer rows.Close()

	var runs []model.Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *r)
	}
	return runs, eris.Wrap(rows.Err(), "sqlite: list runs iterate")
}

type scannable interface {
	Scan(dest ...any) error
}

func scanRun(row scannable) (*model.Run, error) {
	var r model.Run
	var exhibitionType sql.NullFloat64
	var resultJSON string

	err := row.Scan(&r.ID, &r.ExhibitionTitle, &exhibitionType, &resultJSON,
		&r.InsightCount, &r.DraftCount, &r.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, eris.Wrap(err, "run not found")
	}
	if err != nil {
		return nil, eris.Wrap(err, "scan run")
	}

	if exhibitionType.Valid {
		r.ExhibitionType = &exhibitionType.Float64
	}
	if resultJSON != "" {
		var res model.Result
		if err := json.Unmarshal([]byte(resultJSON), &res); err != nil {
			return nil, eris.Wrap(err, "unmarshal result")
		}
		r.Result = &res
	}
	return &r, nil
}
