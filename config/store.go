package config

import (
	"context"
	"fmt"
	"time"

	"h3llo-cms/store"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitStore opens the configured backend and checks it is reachable.
func InitStore(ctx context.Context, cfg StoreConfig) (store.Store, error) {
	var (
		kv  store.Store
		err error
	)

	switch cfg.Driver {
	case StoreDriverPostgres:
		kv, err = initPostgres(cfg.DatabaseDSN)
	default:
		kv, err = store.NewRedisStore(store.RedisOptions{
			URL:      cfg.RedisURL,
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	}
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := kv.Ping(pingCtx); err != nil {
		kv.Close()
		return nil, fmt.Errorf("ping %s store: %w", cfg.Driver, err)
	}
	return kv, nil
}

func initPostgres(dsn string) (store.Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return store.NewSQLStore(db)
}
