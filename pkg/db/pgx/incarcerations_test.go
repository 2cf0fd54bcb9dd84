package pgdb

import (
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// sqlRecorder captures the statement text passed through DBTX.
type sqlRecorder struct {
	last string
}

func (r *sqlRecorder) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	r.last = sql
	return pgconn.CommandTag{}, nil
}

func (r *sqlRecorder) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	r.last = sql
	return nil, pgx.ErrNoRows
}

func (r *sqlRecorder) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	r.last = sql
	return noRow{}
}

type noRow struct{}

func (noRow) Scan(dest ...any) error { return pgx.ErrNoRows }

func TestGetCellForUpdateLocksRow(t *testing.T) {
	rec := &sqlRecorder{}
	q := New(rec)

	_, _ = q.GetCellForUpdate(context.Background(), 1)

	if !strings.Contains(rec.last, "FOR UPDATE") {
		t.Fatalf("cell lookup must lock the row, got: %s", rec.last)
	}
}

func TestReleaseGuardsOpenRecords(t *testing.T) {
	rec := &sqlRecorder{}
	q := New(rec)

	_, _ = q.ReleaseIncarceration(context.Background(), ReleaseIncarcerationParams{ID: 1})
	if !strings.Contains(rec.last, "released_at IS NULL") {
		t.Fatalf("release must only touch open records, got: %s", rec.last)
	}

	_, _ = q.TransferIncarcerationCell(context.Background(), TransferIncarcerationCellParams{ID: 1, CellID: 2})
	if !strings.Contains(rec.last, "released_at IS NULL") {
		t.Fatalf("transfer must only touch open records, got: %s", rec.last)
	}
}
