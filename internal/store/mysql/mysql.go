package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"brew_console/internal/db"
)

type Store struct {
	queries *db.Queries
	log     *zap.Logger
}

func New(queries *db.Queries, logger *zap.Logger) *Store {
	return &Store{queries: queries, log: logger}
}

// Open connects to dsn and checks the connection before returning a store.
func Open(ctx context.Context, dsn string, logger *zap.Logger) (*Store, *sql.DB, error) {
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("mysql open: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("mysql ping: %w", err)
	}
	return New(db.New(sqlDB), logger), sqlDB, nil
}
