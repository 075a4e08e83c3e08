package database

import (
	"context"
	"database/sql"
	"time"

	"mercadopago_provider/internal/infrastructure/logger"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

const postgresPingTimeout = 5 * time.Second

// ConnectPostgres opens the host store database and checks it is reachable.
func ConnectPostgres(ctx context.Context, databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		logger.L().Error("[postgres] failed to open connection", zap.Error(err))
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, postgresPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		logger.L().Error("[postgres] failed to ping", zap.Error(err))
		return nil, err
	}

	logger.L().Info("[postgres] connection established")
	return db, nil
}
