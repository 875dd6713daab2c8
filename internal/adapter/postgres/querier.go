package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is satisfied by both *pgxpool.Pool and pgx.Tx, so repositories run
// the same statements inside and outside TxManager.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

type txCtxKey struct{}

func withTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txCtxKey{}, tx)
}

// QuerierFromCtx returns the transaction opened by TxManager, or the pool
// when ctx carries none.
func QuerierFromCtx(ctx context.Context, pool *pgxpool.Pool) Querier {
	if tx, ok := ctx.Value(txCtxKey{}).(pgx.Tx); ok {
		return tx
	}
	return pool
}

// ExecBatch sends every queued statement in one round trip and stops at the
// first failure, which mapErr converts using the statement's index.
func ExecBatch(ctx context.Context, q Querier, batch *pgx.Batch, mapErr func(i int, err error) error) error {
	if batch.Len() == 0 {
		return nil
	}

	br := q.SendBatch(ctx, batch)
	defer br.Close()

	for i := range batch.Len() {
		if _, err := br.Exec(); err != nil {
			return mapErr(i, err)
		}
	}
	return nil
}
