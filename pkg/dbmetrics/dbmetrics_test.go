package dbmetrics

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu    sync.Mutex
	ops   []string
	fails int
	stats int
}

func (r *recorder) ObserveDBQuery(operation string, _ time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, operation)
	if err != nil {
		r.fails++
	}
}

func (r *recorder) SetPoolStats(sql.DBStats) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats++
}

func TestDB_RecordsQueries(t *testing.T) {
	raw, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer raw.Close()
	raw.SetMaxOpenConns(1)

	rec := &recorder{}
	stop := make(chan struct{})
	db := WrapWithDefault(raw, rec, stop)
	defer close(stop)

	ctx := context.Background()
	_, err = db.ExecContext(ctx, "CREATE TABLE t (v TEXT)")
	require.NoError(t, err)

	var n int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT count(*) FROM t").Scan(&n))

	_, err = db.QueryContext(ctx, "SELECT * FROM missing")
	assert.Error(t, err)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Equal(t, []string{"exec", "query_row", "query"}, rec.ops)
	assert.Equal(t, 1, rec.fails)
}
