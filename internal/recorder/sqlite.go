package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"BourseDash/internal/model"
)

// SQLiteRecorder persists aggregation snapshots to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external readers can query while a run is recorded.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS market_snapshots (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			run_at    INTEGER NOT NULL,
			idx       TEXT,
			symbol    TEXT,
			name      TEXT,
			bar_date  TEXT,
			close     REAL,
			atr14     REAL,
			ma20      REAL,
			ma50      REAL,
			pct_1d    REAL,
			pct_7d    REAL,
			pct_30d   REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_run ON market_snapshots(run_at)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_symbol ON market_snapshots(symbol)`,

		`CREATE TABLE IF NOT EXISTS run_summaries (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			run_at     INTEGER NOT NULL,
			avg_pct_1d REAL,
			ups        INTEGER,
			downs      INTEGER,
			row_count  INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_summaries_run ON run_summaries(run_at)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// nullFloat maps NaN/Inf to NULL; sqlite has no NaN representation.
func nullFloat(v float64) any {
	if !model.Finite(v) {
		return nil
	}
	return v
}

// RecordSnapshot writes one row per market row plus the run summary.
func (r *SQLiteRecorder) RecordSnapshot(at time.Time, rows []model.MarketRow, summary model.MarketSummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ts := at.Unix()
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO market_snapshots
		(run_at, idx, symbol, name, bar_date, close, atr14, ma20, ma50, pct_1d, pct_7d, pct_30d)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		if _, err := stmt.Exec(
			ts, row.Index, row.Symbol, row.Name, row.Date.Format("2006-01-02"),
			nullFloat(row.Close), nullFloat(row.ATR14), nullFloat(row.MA20), nullFloat(row.MA50),
			nullFloat(row.Pct1D), nullFloat(row.Pct7D), nullFloat(row.Pct30D),
		); err != nil {
			return fmt.Errorf("insert snapshot: %w", err)
		}
	}

	if _, err := tx.Exec(`INSERT INTO run_summaries (run_at, avg_pct_1d, ups, downs, row_count)
		VALUES (?,?,?,?,?)`,
		ts, nullFloat(summary.AvgPct1D), summary.Ups, summary.Downs, summary.Rows,
	); err != nil {
		return fmt.Errorf("insert summary: %w", err)
	}

	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
