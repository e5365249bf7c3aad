// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/study-tracker/backend/internal/application/adapter"
)

type txKey struct{}

// gormTransactionManager implements adapter.TransactionManager on top of
// gorm transactions. The open transaction travels in the context, so any
// repository call made inside the callback joins it transparently.
type gormTransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager creates a new transaction manager instance.
func NewTransactionManager(db *gorm.DB) adapter.TransactionManager {
	return &gormTransactionManager{
		db: db,
	}
}

// WithTransaction runs fn inside a single database transaction.
func (m *gormTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// dbFromContext returns the transaction bound to the context, if any,
// falling back to the base handle.
func dbFromContext(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}
