// Package simpletxmanager управление транзакциями для чистого *sql.DB
// (вариант без метрик, см. pkg/txmanager для обёрнутой БД)
package simpletxmanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/Ferry-ScheduleService/pkg/dbmetrics"
)

// TransactionManager выполняет функции внутри транзакции над *sql.DB
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager создает transaction manager над *sql.DB
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable выполняет fn внутри транзакции с уровнем изоляции SERIALIZABLE
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("simpletxmanager: failed to begin transaction: %w", err)
	}

	if err := fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("simpletxmanager: rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("simpletxmanager: failed to commit transaction: %w", err)
	}

	return nil
}
