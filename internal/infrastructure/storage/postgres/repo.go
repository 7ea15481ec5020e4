package postgres

import (
	"context"
	"errors"
	"fmt"
	"slices"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"storeadmin/internal/core/apperror"
	"storeadmin/internal/core/entity"
	"storeadmin/internal/core/id"
	"storeadmin/internal/domain"
)

var tracer = otel.Tracer("storeadmin/postgres")

const uniqueViolation = "23505"

// immutableCols are never part of an UPDATE's SET list.
// version is advanced by the statement itself.
var immutableCols = []string{"id", "store_id", "version", "created_at"}

var _ domain.Repository[entity.Entity] = (*Repo[entity.Entity])(nil)

// Repo stores one record type in one table. Columns come from the record's
// "db" tags.
type Repo[T entity.Entity] struct {
	db         Querier
	table      string
	entityName string
	cols       []string
	newFn      func() T
}

// NewRepo creates a repository over table. newFn must return an empty record to scan into.
func NewRepo[T entity.Entity](db Querier, table, entityName string, newFn func() T) *Repo[T] {
	return &Repo[T]{
		db:         db,
		table:      table,
		entityName: entityName,
		cols:       ExtractDBColumns[T](),
		newFn:      newFn,
	}
}

// Builder returns a squirrel builder with PostgreSQL placeholders.
func (r *Repo[T]) Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// Columns returns the table columns in field order.
func (r *Repo[T]) Columns() []string {
	return r.cols
}

func (r *Repo[T]) startSpan(ctx context.Context, op string) (context.Context, trace.Span) {
	return tracer.Start(ctx, r.table+"."+op, trace.WithAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("db.sql.table", r.table),
	))
}

func (r *Repo[T]) insertQuery(e T) sq.InsertBuilder {
	data := StructToMap(e)
	values := make([]any, len(r.cols))
	for i, col := range r.cols {
		values[i] = data[col]
	}
	return r.Builder().
		Insert(r.table).
		Columns(r.cols...).
		Values(values...)
}

func (r *Repo[T]) updateQuery(e T) sq.UpdateBuilder {
	data := StructToMap(e)
	q := r.Builder().Update(r.table)
	for _, col := range r.cols {
		if slices.Contains(immutableCols, col) {
			continue
		}
		q = q.Set(col, data[col])
	}
	return q.
		Set("version", sq.Expr("version + 1")).
		Where(sq.Eq{"id": e.GetID()}).
		Where(sq.Eq{"version": e.GetVersion()})
}

func (r *Repo[T]) selectQuery() sq.SelectBuilder {
	return r.Builder().
		Select(r.cols...).
		From(r.table)
}

func (r *Repo[T]) Create(ctx context.Context, e T) error {
	ctx, span := r.startSpan(ctx, "create")
	defer span.End()

	sql, args, err := r.insertQuery(e).ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperror.NewDuplicate(r.entityName, pgErr.ConstraintName, e.GetID().String()).WithCause(err)
		}
		span.RecordError(err)
		return fmt.Errorf("insert %s: %w", r.table, err)
	}
	return nil
}

func (r *Repo[T]) GetByID(ctx context.Context, recordID id.ID) (T, error) {
	ctx, span := r.startSpan(ctx, "get")
	defer span.End()

	q := r.selectQuery().
		Where(sq.Eq{"id": recordID}).
		Limit(1)
	return r.getOne(ctx, q, recordID.String())
}

// getOne scans the first row of q. A missing row is reported as NotFound for key.
func (r *Repo[T]) getOne(ctx context.Context, q sq.SelectBuilder, key string) (T, error) {
	e := r.newFn()
	sql, args, err := q.ToSql()
	if err != nil {
		return e, fmt.Errorf("build query: %w", err)
	}
	if err := pgxscan.Get(ctx, r.db, e, sql, args...); err != nil {
		var zero T
		if pgxscan.NotFound(err) {
			return zero, apperror.NewNotFound(r.entityName, key)
		}
		return zero, fmt.Errorf("get %s: %w", r.table, err)
	}
	return e, nil
}

// Update writes e when the stored version matches and advances e's version.
func (r *Repo[T]) Update(ctx context.Context, e T) error {
	ctx, span := r.startSpan(ctx, "update")
	defer span.End()

	sql, args, err := r.updateQuery(e).ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}
	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("update %s: %w", r.table, err)
	}
	if tag.RowsAffected() == 0 {
		if _, getErr := r.GetByID(ctx, e.GetID()); apperror.IsNotFound(getErr) {
			return getErr
		}
		return apperror.NewConcurrentModification(r.entityName, e.GetID().String())
	}
	e.SetVersion(e.GetVersion() + 1)
	return nil
}

func (r *Repo[T]) ListByStore(ctx context.Context, storeID id.ID) ([]T, error) {
	ctx, span := r.startSpan(ctx, "list")
	defer span.End()

	return r.list(ctx, sq.Eq{"store_id": storeID})
}

// list returns the rows matching where in creation order.
func (r *Repo[T]) list(ctx context.Context, where sq.Sqlizer) ([]T, error) {
	sql, args, err := r.selectQuery().
		Where(where).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	out := make([]T, 0)
	if err := pgxscan.Select(ctx, r.db, &out, sql, args...); err != nil {
		return nil, fmt.Errorf("list %s: %w", r.table, err)
	}
	return out, nil
}
