package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/astroya-scheduling/pkg/psqlbuilder"
)

//go:embed *.sql
var files embed.FS

const migrationsTable = "schema_migrations"

// Up применяет еще не примененные встроенные миграции по порядку имен файлов.
// SQL миграций совместим с postgres и sqlite3.
func Up(db *sql.DB, driver string) error {
	if db == nil {
		return errors.New("migrations: db is required")
	}

	builder := psqlbuilder.For(driver)

	if err := ensureMigrationsTable(db); err != nil {
		return err
	}

	names, err := fs.Glob(files, "*.sql")
	if err != nil {
		return fmt.Errorf("list embedded migrations: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		applied, err := isApplied(db, builder, name)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		sqlBytes, err := files.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin tx for %s: %w", name, err)
		}

		if _, err := tx.Exec(string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			if !isIgnorableMigrationError(err) {
				return fmt.Errorf("apply migration %s: %w", name, err)
			}
			if err := markApplied(db, builder, name); err != nil {
				return fmt.Errorf("record migration %s after ignored error: %w", name, err)
			}
			continue
		}

		query, args, err := builder.Insert(migrationsTable).
			Columns("filename", "applied_at").
			Values(name, time.Now().UTC()).
			ToSql()
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("build record query for %s: %w", name, err)
		}
		if _, err := tx.Exec(query, args...); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration %s: %w", name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %s: %w", name, err)
		}
	}

	return nil
}

// Applied список примененных миграций
func Applied(db *sql.DB, driver string) ([]string, error) {
	query, args, err := psqlbuilder.For(driver).
		Select("filename").
		From(migrationsTable).
		OrderBy("filename").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list applied migrations: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func ensureMigrationsTable(db *sql.DB) error {
	const query = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	filename   TEXT PRIMARY KEY,
	applied_at TIMESTAMP NOT NULL
)
`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("ensure migration table %s: %w", migrationsTable, err)
	}
	return nil
}

func isApplied(db *sql.DB, builder squirrel.StatementBuilderType, name string) (bool, error) {
	query, args, err := builder.
		Select("COUNT(*)").
		From(migrationsTable).
		Where(squirrel.Eq{"filename": name}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build check query for %s: %w", name, err)
	}

	var count int
	if err := db.QueryRow(query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("check migration %s: %w", name, err)
	}
	return count > 0, nil
}

func markApplied(db *sql.DB, builder squirrel.StatementBuilderType, name string) error {
	query, args, err := builder.Insert(migrationsTable).
		Columns("filename", "applied_at").
		Values(name, time.Now().UTC()).
		Suffix("ON CONFLICT (filename) DO NOTHING").
		ToSql()
	if err != nil {
		return err
	}
	_, err = db.Exec(query, args...)
	return err
}

func isIgnorableMigrationError(err error) bool {
	var pgErr *pq.Error
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case "42P07", // duplicate_table
		"42710", // duplicate_object
		"42701": // duplicate_column
		return true
	default:
		return false
	}
}
