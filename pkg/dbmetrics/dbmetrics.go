package dbmetrics

import (
	"context"
	"database/sql"
	"time"
)

// DBExecutor общий интерфейс для *sql.DB, *sql.Tx и *DB
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Recorder приемник метрик БД
type Recorder interface {
	ObserveDBQuery(operation string, duration time.Duration, err error)
}

// PoolRecorder приемник метрик пула соединений
type PoolRecorder interface {
	Recorder
	SetPoolStats(stats sql.DBStats)
}

// DefaultPoolInterval период сбора статистики пула
const DefaultPoolInterval = 15 * time.Second

// DB обертка над *sql.DB, замеряющая длительность запросов
type DB struct {
	db       *sql.DB
	recorder Recorder
}

// Wrap оборачивает *sql.DB
func Wrap(db *sql.DB, recorder Recorder) *DB {
	return &DB{db: db, recorder: recorder}
}

// WrapWithDefault оборачивает *sql.DB и запускает сбор статистики пула до закрытия stopCh
func WrapWithDefault(db *sql.DB, recorder PoolRecorder, stopCh <-chan struct{}) *DB {
	go collectPoolStats(db, recorder, DefaultPoolInterval, stopCh)
	return Wrap(db, recorder)
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.recorder.ObserveDBQuery("exec", time.Since(start), err)
	return res, err
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.recorder.ObserveDBQuery("query", time.Since(start), err)
	return rows, err
}

// QueryRowContext ошибка строки станет известна только при Scan, поэтому фиксируется только время
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.recorder.ObserveDBQuery("query_row", time.Since(start), nil)
	return row
}

// PingContext проверка соединения
func (d *DB) PingContext(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

// Unwrap исходный *sql.DB
func (d *DB) Unwrap() *sql.DB {
	return d.db
}

func collectPoolStats(db *sql.DB, recorder PoolRecorder, interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	recorder.SetPoolStats(db.Stats())
	for {
		select {
		case <-ticker.C:
			recorder.SetPoolStats(db.Stats())
		case <-stopCh:
			return
		}
	}
}
