package repository

import (
	"context"
	"fmt"

	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// books keeps the book_genre links in step with the book row.
type books struct {
	*table[model.Book, int]
}

func newBooks(db *pgxpool.Pool, log *zap.Logger) *books {
	return &books{table: &table[model.Book, int]{
		db:      db,
		log:     log,
		name:    bookTableName,
		view:    bookViewTableName,
		columns: []string{"id", "title", "author_id", "summary", "isbn", "language_id"},
		// author ordering follows the author list: last name, then first name
		orderBy: []string{"title", "author_last_name", "author_first_name", "id"},
		fields: map[string]string{
			"title":       "title",
			"author_id":   "author_id",
			"language_id": "language_id",
			"genre":       fmt.Sprintf("id in (select book_id from %s where genre_id = ?)", bookGenreTableName),
		},
		values: func(b model.Book) map[string]any {
			return map[string]any{
				"title":       b.Title,
				"author_id":   b.AuthorID,
				"summary":     b.Summary,
				"isbn":        b.ISBN,
				"language_id": b.LanguageID,
			}
		},
		detach: []detach{
			{table: instanceTableName, column: "book_id"},
			{table: bookGenreTableName, column: "book_id", drop: true},
		},
	}}
}

func (b *books) Create(ctx context.Context, v model.Book) (model.Book, error) {
	var id int
	err := inTx(ctx, b.db, func(tx pgx.Tx) error {
		var err error
		if id, err = b.insert(ctx, tx, v); err != nil {
			return err
		}
		return b.setGenres(ctx, tx, id, v.GenreIDs)
	})
	if err != nil {
		return model.Book{}, err
	}
	return b.Get(ctx, id)
}

func (b *books) Get(ctx context.Context, id int) (model.Book, error) {
	book, err := b.get(ctx, b.db, id)
	if err != nil {
		return model.Book{}, err
	}
	items := []model.Book{book}
	if err = b.loadGenres(ctx, items); err != nil {
		return model.Book{}, err
	}
	return items[0], nil
}

func (b *books) Update(ctx context.Context, id int, v model.Book) (model.Book, error) {
	err := inTx(ctx, b.db, func(tx pgx.Tx) error {
		if err := b.update(ctx, tx, id, v); err != nil {
			return err
		}
		return b.setGenres(ctx, tx, id, v.GenreIDs)
	})
	if err != nil {
		return model.Book{}, err
	}
	return b.Get(ctx, id)
}

func (b *books) List(ctx context.Context, q model.Query) (model.List[model.Book], error) {
	list, err := b.table.List(ctx, q)
	if err != nil {
		return model.List[model.Book]{}, err
	}
	if err = b.loadGenres(ctx, list.Items); err != nil {
		return model.List[model.Book]{}, err
	}
	return list, nil
}

func (b *books) setGenres(ctx context.Context, tx pgx.Tx, bookID int, genreIDs []int) error {
	query, args, err := qb.Delete(bookGenreTableName).Where(sq.Eq{"book_id": bookID}).ToSql()
	if err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, query, args...); err != nil {
		return classify(err)
	}
	if len(genreIDs) == 0 {
		return nil
	}

	ins := qb.Insert(bookGenreTableName).Columns("book_id", "genre_id")
	seen := make(map[int]struct{}, len(genreIDs))
	for _, g := range genreIDs {
		if _, dup := seen[g]; dup {
			continue
		}
		seen[g] = struct{}{}
		ins = ins.Values(bookID, g)
	}
	query, args, err = ins.ToSql()
	if err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, query, args...); err != nil {
		return classify(err)
	}
	return nil
}

// loadGenres fills GenreIDs and DisplayGenre for items in one round trip.
func (b *books) loadGenres(ctx context.Context, items []model.Book) error {
	if len(items) == 0 {
		return nil
	}
	ids := make([]int, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	query, args, err := qb.Select("bg.book_id", "g.id", "g.name").
		From(fmt.Sprintf("%s bg", bookGenreTableName)).
		Join(fmt.Sprintf("%s g on g.id = bg.genre_id", genreTableName)).
		Where(sq.Eq{"bg.book_id": ids}).
		OrderBy("g.name", "g.id").
		ToSql()
	if err != nil {
		return err
	}
	rows, err := b.db.Query(ctx, query, args...)
	if err != nil {
		return classify(err)
	}

	byBook := make(map[int][]model.Genre, len(items))
	var (
		bookID int
		g      model.Genre
	)
	_, err = pgx.ForEachRow(rows, []any{&bookID, &g.ID, &g.Name}, func() error {
		byBook[bookID] = append(byBook[bookID], g)
		return nil
	})
	if err != nil {
		return fmt.Errorf("pgx.ForEachRow: %w", err)
	}

	for i := range items {
		genres := byBook[items[i].ID]
		items[i].GenreIDs = make([]int, 0, len(genres))
		for _, g := range genres {
			items[i].GenreIDs = append(items[i].GenreIDs, g.ID)
		}
		items[i].DisplayGenre = model.GenreNames(genres)
	}
	return nil
}
