package dbmetrics

import "context"

type txContextKey struct{}

// WithTx кладет активную транзакцию в context
// Используется transaction manager-ами, чтобы репозитории выполняли
// запросы внутри транзакции, не зная о ней явно
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// GetExecutor возвращает транзакцию из context, если она там есть,
// иначе - переданный по умолчанию executor
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txContextKey{}).(TxExecutor); ok {
		return tx
	}
	return fallback
}
