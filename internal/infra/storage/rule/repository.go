package rule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/astroya-scheduling/internal/domain"
	"github.com/m04kA/astroya-scheduling/pkg/types"
)

const tableName = "availability_rules"

// Repository SQL-репозиторий правил доступности (postgres, sqlite3)
type Repository struct {
	db      DBExecutor
	builder squirrel.StatementBuilderType
}

// NewRepository создает новый экземпляр репозитория правил.
// builder определяет формат плейсхолдеров под конкретный драйвер (см. psqlbuilder.For).
func NewRepository(db DBExecutor, builder squirrel.StatementBuilderType) *Repository {
	return &Repository{db: db, builder: builder}
}

// GetAll возвращает все правила, ключ - дата
func (r *Repository) GetAll(ctx context.Context) (map[types.DateString]*domain.AvailabilityRule, error) {
	query, args, err := r.builder.
		Select("rule_date", "rule", "updated_by", "updated_at").
		From(tableName).
		OrderBy("rule_date").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make(map[types.DateString]*domain.AvailabilityRule)
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, err
		}
		rules[rule.Date] = rule
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows iteration: %v", ErrScanRow, err)
	}

	return rules, nil
}

// GetByDate возвращает правило на дату или ErrRuleNotFound
func (r *Repository) GetByDate(ctx context.Context, date types.DateString) (*domain.AvailabilityRule, error) {
	query, args, err := r.builder.
		Select("rule_date", "rule", "updated_by", "updated_at").
		From(tableName).
		Where(squirrel.Eq{"rule_date": date.String()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rule, err := scanRule(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, err
	}

	return rule, nil
}

// Upsert полностью заменяет правило на дату
func (r *Repository) Upsert(ctx context.Context, rule *domain.AvailabilityRule) error {
	value, err := domain.EncodeRuleValue(rule.Kind, rule.AllowedTimes)
	if err != nil {
		return fmt.Errorf("%w: Upsert - encode rule: %v", ErrBuildQuery, err)
	}

	query, args, err := r.builder.
		Insert(tableName).
		Columns("rule_date", "rule", "updated_by", "updated_at").
		Values(rule.Date.String(), value, nullString(rule.UpdatedBy), rule.UpdatedAt.UTC()).
		Suffix("ON CONFLICT (rule_date) DO UPDATE SET rule = excluded.rule, updated_by = excluded.updated_by, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// Delete удаляет правило. Возвращает true, если правило существовало
func (r *Repository) Delete(ctx context.Context, date types.DateString) (bool, error) {
	query, args, err := r.builder.
		Delete(tableName).
		Where(squirrel.Eq{"rule_date": date.String()}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}

	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRule(row rowScanner) (*domain.AvailabilityRule, error) {
	var (
		date      string
		value     string
		updatedBy sql.NullString
		updatedAt sql.NullTime
	)

	if err := row.Scan(&date, &value, &updatedBy, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: scan rule: %v", ErrScanRow, err)
	}

	kind, times, err := domain.DecodeRuleValue(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeRule, err)
	}

	rule := &domain.AvailabilityRule{
		Date:         types.DateString(date),
		Kind:         kind,
		AllowedTimes: times,
		UpdatedAt:    updatedAt.Time,
	}
	if updatedBy.Valid {
		by := updatedBy.String
		rule.UpdatedBy = &by
	}

	return rule, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
