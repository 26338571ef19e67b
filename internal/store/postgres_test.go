package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newMockPostgresStore creates a PostgresStore backed by pgxmock for unit testing.
func newMockPostgresStore(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	return NewPostgresWithPool(mock), mock
}

func TestPostgresStore_SaveRun(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`INSERT INTO runs`).
		WithArgs(pgxmock.AnyArg(), "이번 전시", pgxmock.AnyArg(), pgxmock.AnyArg(), 2, 1, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	typ := 1.0
	run, err := s.SaveRun(context.Background(), "이번 전시", &typ, testResult())
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, 2, run.InsightCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetRun(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	resultJSON, err := json.Marshal(testResult())
	require.NoError(t, err)

	rows := pgxmock.NewRows([]string{
		"id", "exhibition_title", "exhibition_type", "result",
		"insight_count", "draft_count", "created_at",
	}).AddRow("run-1", "이번 전시", nil, resultJSON, 2, 1, time.Now().UTC())

	mock.ExpectQuery(`FROM runs WHERE id = \$1`).
		WithArgs("run-1").
		WillReturnRows(rows)

	run, err := s.GetRun(context.Background(), "run-1")
	require.NoError(t, err)
	assert.Equal(t, "이번 전시", run.ExhibitionTitle)
	require.NotNil(t, run.Result)
	assert.Len(t, run.Result.Insights, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetRun_NotFound(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`FROM runs WHERE id = \$1`).
		WithArgs("nonexistent-run").
		WillReturnError(pgx.ErrNoRows)

	_, err := s.GetRun(context.Background(), "nonexistent-run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ListRuns(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	resultJSON, err := json.Marshal(testResult())
	require.NoError(t, err)

	rows := pgxmock.NewRows([]string{
		"id", "exhibition_title", "exhibition_type", "result",
		"insight_count", "draft_count", "created_at",
	}).
		AddRow("run-1", "전시 A", nil, resultJSON, 2, 1, time.Now().UTC()).
		AddRow("run-2", "전시 B", nil, resultJSON, 2, 1, time.Now().UTC())

	mock.ExpectQuery(`FROM runs WHERE 1=1 ORDER BY created_at DESC LIMIT \$1`).
		WithArgs(100).
		WillReturnRows(rows)

	runs, err := s.ListRuns(context.Background(), RunFilter{})
	require.NoError(t, err)
	assert.Len(t, runs, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Migrate(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS runs`).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, s.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
