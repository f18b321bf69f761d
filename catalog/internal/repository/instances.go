package repository

import (
	"context"

	"github.com/Astemirdum/catalog-service/catalog/internal/errs"
	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// instances reads through bookinstance_view to pick up the book title.
type instances struct {
	*table[model.BookInstance, uuid.UUID]
}

func newInstances(db *pgxpool.Pool, log *zap.Logger) *instances {
	return &instances{table: &table[model.BookInstance, uuid.UUID]{
		db:      db,
		log:     log,
		name:    instanceTableName,
		view:    instanceViewTableName,
		columns: []string{"id", "book_id", "imprint", "due_back", "borrower", "status", "book_title"},
		orderBy: []string{"due_back asc nulls last", "id"},
		fields: map[string]string{
			"book_id":  "book_id",
			"borrower": "borrower",
			"status":   "status",
			"imprint":  "imprint",
		},
		values: func(i model.BookInstance) map[string]any {
			return map[string]any{
				"book_id":  i.BookID,
				"imprint":  i.Imprint,
				"due_back": i.DueBack,
				"borrower": i.Borrower,
				"status":   string(i.Status),
			}
		},
		generateID: uuid.New,
	}}
}

func (i *instances) SetDueBack(ctx context.Context, id uuid.UUID, due model.Date) error {
	query, args, err := qb.Update(instanceTableName).
		Set("due_back", due).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	tag, err := i.db.Exec(ctx, query, args...)
	if err != nil {
		i.log.Error("SetDueBack", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
