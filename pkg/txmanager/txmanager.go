// Package txmanager управление транзакциями для БД, обёрнутой метриками
package txmanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/Ferry-ScheduleService/pkg/dbmetrics"
)

// TransactionManager выполняет функции внутри транзакции,
// передавая её репозиториям через context
type TransactionManager struct {
	db *dbmetrics.DB
}

// NewTransactionManager создает transaction manager над *dbmetrics.DB
func NewTransactionManager(db *dbmetrics.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable выполняет fn внутри транзакции с уровнем изоляции SERIALIZABLE
// Уровень SERIALIZABLE закрывает гонку check-then-insert: две конкурирующие
// транзакции, прочитавшие одно и то же состояние, не смогут обе закоммититься
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("txmanager: failed to begin transaction: %w", err)
	}

	if err := fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("txmanager: rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("txmanager: failed to commit transaction: %w", err)
	}

	return nil
}
