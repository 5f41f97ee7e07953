package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// maxTxAttempts bounds how often a transaction that lost a sequence number
// to a concurrent writer is replayed.
const maxTxAttempts = 5

const (
	mysqlDuplicateEntry = 1062
	mysqlDeadlock       = 1213
)

func withTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			zap.L().Warn("failed to rollback transaction", zap.Error(rbErr))
		}
		return err
	}

	return tx.Commit()
}

// withRetryTx runs fn like withTx and replays it when the transaction
// collided with a concurrent one on a unique key or a lock. fn must compute
// its sequence numbers inside the transaction.
func withRetryTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = withTx(ctx, db, fn)
		if err == nil || !isRetryable(err) || ctx.Err() != nil {
			return err
		}
		zap.L().Debug("replaying transaction", zap.Int("attempt", attempt), zap.Error(err))
	}
	return err
}

func isRetryable(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDeadlock {
		return true
	}
	return isDuplicateKey(err)
}

// isDuplicateKey reports whether err is a primary key or unique constraint
// violation of either supported driver.
func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDuplicateEntry
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		// The bare constraint code shows up when extended result codes are off.
		case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT:
			return true
		}
	}
	return false
}
