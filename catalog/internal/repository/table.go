package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/Astemirdum/catalog-service/catalog/internal/errs"
	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// detach describes a dependent reference fixed up before the parent row
// goes away: the column is nulled, or the link row dropped for join tables.
type detach struct {
	table  string
	column string
	drop   bool
}

func (d detach) query(id any) (string, []any, error) {
	if d.drop {
		return qb.Delete(d.table).Where(sq.Eq{d.column: id}).ToSql()
	}
	return qb.Update(d.table).Set(d.column, nil).Where(sq.Eq{d.column: id}).ToSql()
}

type table[T any, K comparable] struct {
	db  *pgxpool.Pool
	log *zap.Logger

	name    string
	view    string
	columns []string
	orderBy []string
	// predicate field -> column; a column holding "?" is used as an expression
	fields map[string]string
	values func(T) map[string]any
	detach []detach
	// set when ids are generated by the application instead of a sequence
	generateID func() K
}

func (t *table[T, K]) Create(ctx context.Context, v T) (T, error) {
	id, err := t.insert(ctx, t.db, v)
	if err != nil {
		var zero T
		return zero, err
	}
	return t.get(ctx, t.db, id)
}

func (t *table[T, K]) Get(ctx context.Context, id K) (T, error) {
	return t.get(ctx, t.db, id)
}

func (t *table[T, K]) Update(ctx context.Context, id K, v T) (T, error) {
	if err := t.update(ctx, t.db, id, v); err != nil {
		var zero T
		return zero, err
	}
	return t.get(ctx, t.db, id)
}

func (t *table[T, K]) Delete(ctx context.Context, id K) error {
	return inTx(ctx, t.db, func(tx pgx.Tx) error {
		return t.delete(ctx, tx, id)
	})
}

func (t *table[T, K]) List(ctx context.Context, q model.Query) (model.List[T], error) {
	where, err := t.where(q.Where)
	if err != nil {
		return model.List[T]{}, err
	}
	total, err := t.countWhere(ctx, where)
	if err != nil {
		return model.List[T]{}, err
	}

	query, args, err := t.selectQuery(where, q.Page, q.Size).ToSql()
	if err != nil {
		return model.List[T]{}, err
	}
	t.log.Debug("List", zap.String("table", t.name), zap.String("query", query), zap.Any("args", args))

	rows, err := t.db.Query(ctx, query, args...)
	if err != nil {
		return model.List[T]{}, classify(err)
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return model.List[T]{}, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	return model.List[T]{
		Paging: model.Paging{
			Page:          q.Page,
			PageSize:      q.Size,
			TotalElements: total,
		},
		Items: items,
	}, nil
}

func (t *table[T, K]) selectQuery(where sq.Sqlizer, page, size int) sq.SelectBuilder {
	q := qb.Select(t.columns...).From(t.view)
	if where != nil {
		q = q.Where(where)
	}
	q = q.OrderBy(t.orderBy...)
	if page > 0 && size > 0 {
		q = q.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}
	return q
}

func (t *table[T, K]) get(ctx context.Context, db querier, id K) (T, error) {
	var zero T
	query, args, err := qb.Select(t.columns...).
		From(t.view).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return zero, err
	}

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return zero, classify(err)
	}
	defer rows.Close()

	v, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, errs.ErrNotFound
		}
		return zero, err
	}
	return v, nil
}

func (t *table[T, K]) insert(ctx context.Context, db querier, v T) (K, error) {
	var id K
	query, args, err := t.insertQuery(v).ToSql()
	if err != nil {
		return id, err
	}
	if err := db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		t.log.Error("insert", zap.String("table", t.name), zap.String("q", query), zap.Error(err))
		return id, classify(err)
	}
	return id, nil
}

func (t *table[T, K]) insertQuery(v T) sq.InsertBuilder {
	values := t.values(v)
	if t.generateID != nil {
		values["id"] = t.generateID()
	}
	return qb.Insert(t.name).
		SetMap(values).
		Suffix("returning id")
}

func (t *table[T, K]) update(ctx context.Context, db querier, id K, v T) error {
	query, args, err := qb.Update(t.name).
		SetMap(t.values(v)).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		t.log.Error("update", zap.String("table", t.name), zap.String("q", query), zap.Error(err))
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// delete nulls or drops every dependent reference, then removes the row.
func (t *table[T, K]) delete(ctx context.Context, db querier, id K) error {
	for _, d := range t.detach {
		query, args, err := d.query(id)
		if err != nil {
			return err
		}
		if _, err = db.Exec(ctx, query, args...); err != nil {
			return errors.Wrapf(classify(err), "detach %s.%s", d.table, d.column)
		}
	}

	query, args, err := qb.Delete(t.name).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (t *table[T, K]) count(ctx context.Context, where []model.Predicate) (int, error) {
	w, err := t.where(where)
	if err != nil {
		return 0, err
	}
	return t.countWhere(ctx, w)
}

func (t *table[T, K]) countWhere(ctx context.Context, where sq.Sqlizer) (int, error) {
	q := qb.Select("count(*)").From(t.view)
	if where != nil {
		q = q.Where(where)
	}
	query, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}
	var n int
	if err := t.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, classify(err)
	}
	return n, nil
}

func (t *table[T, K]) where(preds []model.Predicate) (sq.Sqlizer, error) {
	if len(preds) == 0 {
		return nil, nil
	}
	and := make(sq.And, 0, len(preds))
	for _, p := range preds {
		s, err := predicate(t.fields, p)
		if err != nil {
			return nil, errors.Wrap(err, t.name)
		}
		and = append(and, s)
	}
	return and, nil
}

func predicate(fields map[string]string, p model.Predicate) (sq.Sqlizer, error) {
	col, ok := fields[p.Field]
	if !ok {
		return nil, errors.Errorf("unknown filter field %q", p.Field)
	}
	switch p.Op {
	case model.OpEq:
		if strings.Contains(col, "?") {
			return sq.Expr(col, p.Value), nil
		}
		if p.Value == nil {
			return sq.Eq{col: nil}, nil
		}
		return sq.Eq{col: p.Value}, nil
	case model.OpIContains:
		s, ok := p.Value.(string)
		if !ok {
			return nil, errors.Errorf("icontains on %q needs a string, got %T", p.Field, p.Value)
		}
		return sq.ILike{col: "%" + likeEscape(s) + "%"}, nil
	default:
		return nil, errors.Errorf("unsupported operator %q", p.Op)
	}
}

var likeReplacer = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likeEscape(s string) string {
	return likeReplacer.Replace(s)
}

func inTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
