// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"aaquestions/internal/database"
	"aaquestions/internal/observability"
	"aaquestions/models"

	"gorm.io/gorm"
)

// tableQuery runs instrumented read queries attributed to one table.
type tableQuery struct {
	store   *database.Store
	table   string
	log     *observability.RepoLogger
	metrics *observability.DatabaseMetrics
	tracer  *observability.TraceLayer
}

func newTableQuery(store *database.Store, table string) *tableQuery {
	return &tableQuery{
		store:   store,
		table:   table,
		log:     observability.NewRepoLogger(table),
		metrics: observability.NewDatabaseMetrics(table),
		tracer:  observability.GetTraceLayer(),
	}
}

// run wraps fn in a span, latency tracking and logging. fn reports how many
// rows it produced.
func (q *tableQuery) run(ctx context.Context, operation string, fn func(db *gorm.DB) (int, error)) error {
	ctx, span := q.tracer.TraceRepositoryMethod(ctx, operation, q.table, q.store.Dialect())
	defer span.End()
	defer q.metrics.TrackQuery(operation)()

	db, err := q.store.Conn()
	if err == nil {
		var n int
		if n, err = fn(db.WithContext(ctx)); err == nil {
			q.metrics.RecordRows(n)
			q.log.LogRead(ctx, operation, n, nil)
			return nil
		}
	}

	q.metrics.RecordError(operation)
	observability.RecordSpanError(span, err)
	q.log.LogError(ctx, err, operation)
	return err
}

// selectAll runs a hand-written query and decodes every row.
func selectAll[T any, PT rowTarget[T]](ctx context.Context, q *tableQuery, operation, query string, args ...any) ([]*T, error) {
	var out []*T
	err := q.run(ctx, operation, func(db *gorm.DB) (int, error) {
		rows, err := db.Raw(query, args...).Rows()
		if err != nil {
			return 0, models.NewQueryError(q.table, operation, err)
		}
		defer rows.Close()

		out, err = decodeRows[T, PT](rows, 0)
		if err != nil {
			return 0, q.wrap(operation, err)
		}
		return len(out), nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// selectOne returns the first decoded row, or nil when nothing matched.
func selectOne[T any, PT rowTarget[T]](ctx context.Context, q *tableQuery, operation, query string, args ...any) (*T, error) {
	var out []*T
	err := q.run(ctx, operation, func(db *gorm.DB) (int, error) {
		rows, err := db.Raw(query, args...).Rows()
		if err != nil {
			return 0, models.NewQueryError(q.table, operation, err)
		}
		defer rows.Close()

		out, err = decodeRows[T, PT](rows, 1)
		if err != nil {
			return 0, q.wrap(operation, err)
		}
		return len(out), nil
	})
	if err != nil || len(out) == 0 {
		return nil, err
	}
	return out[0], nil
}

// selectScalar scans a single-row aggregate into dest.
func (q *tableQuery) selectScalar(ctx context.Context, operation, query string, dest any, args ...any) error {
	return q.run(ctx, operation, func(db *gorm.DB) (int, error) {
		if err := db.Raw(query, args...).Row().Scan(dest); err != nil {
			return 0, models.NewQueryError(q.table, operation, err)
		}
		return 1, nil
	})
}

// wrap keeps decode errors as they are and reports anything else as a query failure.
func (q *tableQuery) wrap(operation string, err error) error {
	var decodeErr *models.DecodeError
	if errors.As(err, &decodeErr) {
		return err
	}
	return models.NewQueryError(q.table, operation, err)
}
