package booking

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/astroya-scheduling/pkg/types"
)

const tableName = "booked_slots"

// Repository SQL-репозиторий забронированных слотов (postgres, sqlite3)
type Repository struct {
	db      DBExecutor
	builder squirrel.StatementBuilderType
	now     func() time.Time
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor, builder squirrel.StatementBuilderType) *Repository {
	return &Repository{db: db, builder: builder, now: time.Now}
}

// GetByDate возвращает занятые слоты на дату в порядке возрастания
func (r *Repository) GetByDate(ctx context.Context, date types.DateString) ([]types.TimeString, error) {
	query, args, err := r.builder.
		Select("slot_time").
		From(tableName).
		Where(squirrel.Eq{"booking_date": date.String()}).
		OrderBy("slot_time").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]types.TimeString, 0)
	for rows.Next() {
		var slot string
		if err := rows.Scan(&slot); err != nil {
			return nil, fmt.Errorf("%w: GetByDate - scan slot: %v", ErrScanRow, err)
		}
		slots = append(slots, types.TimeString(slot))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByDate - rows iteration: %v", ErrScanRow, err)
	}

	slices.Sort(slots)
	return slots, nil
}

// Reserve атомарно добавляет слот в занятые.
// Возвращает false, если слот уже был занят (конфликт по первичному ключу).
func (r *Repository) Reserve(ctx context.Context, date types.DateString, slot types.TimeString) (bool, error) {
	query, args, err := r.builder.
		Insert(tableName).
		Columns("booking_date", "slot_time", "created_at").
		Values(date.String(), slot.String(), r.now().UTC()).
		Suffix("ON CONFLICT (booking_date, slot_time) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: Reserve - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: Reserve - execute insert: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: Reserve - rows affected: %v", ErrExecQuery, err)
	}

	return affected == 1, nil
}
