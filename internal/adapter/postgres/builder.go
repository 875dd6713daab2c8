package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// psql is the statement builder for PostgreSQL placeholders ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Builder returns a squirrel statement builder using $n placeholders.
func Builder() sq.StatementBuilderType {
	return psql
}

// Exec renders a squirrel statement and executes it with q.
// Returns the number of affected rows.
func Exec(ctx context.Context, q Querier, stmt sq.Sqlizer) (int64, error) {
	sql, args, err := stmt.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build sql: %w", err)
	}
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
