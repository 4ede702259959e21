package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/astroya-scheduling/internal/config"
	bookingRepo "github.com/m04kA/astroya-scheduling/internal/infra/storage/booking"
	ruleRepo "github.com/m04kA/astroya-scheduling/internal/infra/storage/rule"
	"github.com/m04kA/astroya-scheduling/internal/service/rules"
	"github.com/m04kA/astroya-scheduling/migrations"
	"github.com/m04kA/astroya-scheduling/pkg/dbmetrics"
	"github.com/m04kA/astroya-scheduling/pkg/logger"
	"github.com/m04kA/astroya-scheduling/pkg/metrics"
	"github.com/m04kA/astroya-scheduling/pkg/psqlbuilder"
	"github.com/m04kA/astroya-scheduling/pkg/types"
)

// bookingStore хранилище занятых слотов, общее для всех драйверов
type bookingStore interface {
	GetByDate(ctx context.Context, date types.DateString) ([]types.TimeString, error)
	Reserve(ctx context.Context, date types.DateString, slot types.TimeString) (bool, error)
}

// stores хранилища выбранного драйвера
type stores struct {
	rules     rules.RuleRepository
	bookings  bookingStore
	resetters []rules.Resetter // только memory
	closers   []func() error
}

func (s *stores) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		_ = s.closers[i]()
	}
}

// openStores создает хранилища по storage.driver. m может быть nil
func openStores(ctx context.Context, cfg *config.Config, m *metrics.Metrics, stopCh <-chan struct{}, log *logger.Logger) (*stores, error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		rulesMem := ruleRepo.NewMemoryRepository()
		bookingsMem := bookingRepo.NewMemoryRepository()
		log.Info("Storage: in-memory, data is lost on restart")
		return &stores{
			rules:     rulesMem,
			bookings:  bookingsMem,
			resetters: []rules.Resetter{rulesMem, bookingsMem},
		}, nil

	case config.StoragePostgres:
		db, err := openSQL(ctx, psqlbuilder.DriverPostgres, cfg.Database.DSN(), cfg.Database)
		if err != nil {
			return nil, err
		}
		log.Info("Storage: postgres (host=%s, port=%d, db=%s)", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
		return sqlStores(db, psqlbuilder.DriverPostgres, m, stopCh), nil

	case config.StorageSQLite:
		// sqlite допускает одного писателя
		pool := cfg.Database
		pool.MaxOpenConns = 1
		pool.MaxIdleConns = 1
		db, err := openSQL(ctx, psqlbuilder.DriverSQLite, cfg.SQLite.DSN(), pool)
		if err != nil {
			return nil, err
		}
		log.Info("Storage: sqlite (path=%s)", cfg.SQLite.Path)
		return sqlStores(db, psqlbuilder.DriverSQLite, m, stopCh), nil

	case config.StorageRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("ping redis %s: %w", cfg.Redis.Addr, err)
		}
		if m != nil {
			client.AddHook(dbmetrics.NewRedisHook(m))
		}
		log.Info("Storage: redis (addr=%s, db=%d, prefix=%q)", cfg.Redis.Addr, cfg.Redis.DB, cfg.Redis.KeyPrefix)
		return &stores{
			rules:    ruleRepo.NewRedisRepository(client, cfg.Redis.KeyPrefix),
			bookings: bookingRepo.NewRedisRepository(client, cfg.Redis.KeyPrefix),
			closers:  []func() error{client.Close},
		}, nil
	}

	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

// openSQL открывает пул, проверяет соединение и применяет миграции
func openSQL(ctx context.Context, driver, dsn string, pool config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	db.SetMaxOpenConns(pool.MaxOpenConns)
	db.SetMaxIdleConns(pool.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(pool.ConnMaxLifetime) * time.Second)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	if err := migrations.Up(db, driver); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate %s: %w", driver, err)
	}
	return db, nil
}

func sqlStores(db *sql.DB, driver string, m *metrics.Metrics, stopCh <-chan struct{}) *stores {
	builder := psqlbuilder.For(driver)

	var exec dbmetrics.DBExecutor = db
	if m != nil {
		exec = dbmetrics.WrapWithDefault(db, m, stopCh)
	}

	return &stores{
		rules:    ruleRepo.NewRepository(exec, builder),
		bookings: bookingRepo.NewRepository(exec, builder),
		closers:  []func() error{db.Close},
	}
}
