package repository

import (
	"context"

	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mocks/mock.go

// Store is the persistence contract shared by every catalog entity.
type Store[T any, K comparable] interface {
	Create(ctx context.Context, v T) (T, error)
	Get(ctx context.Context, id K) (T, error)
	Update(ctx context.Context, id K, v T) (T, error)
	Delete(ctx context.Context, id K) error
	List(ctx context.Context, q model.Query) (model.List[T], error)
}

type InstanceStore interface {
	Store[model.BookInstance, uuid.UUID]
	SetDueBack(ctx context.Context, id uuid.UUID, due model.Date) error
}

type Repository interface {
	Genres() Store[model.Genre, int]
	Languages() Store[model.Language, int]
	Authors() Store[model.Author, int]
	Books() Store[model.Book, int]
	Instances() InstanceStore
	Count(ctx context.Context, entity model.Entity, where ...model.Predicate) (int, error)
}

type counter interface {
	count(ctx context.Context, where []model.Predicate) (int, error)
}

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger

	genres    *table[model.Genre, int]
	languages *table[model.Language, int]
	authors   *table[model.Author, int]
	books     *books
	instances *instances

	counters map[model.Entity]counter
}

const (
	genreTableName        = `genre`
	languageTableName     = `language`
	authorTableName       = `author`
	bookTableName         = `book`
	bookGenreTableName    = `book_genre`
	bookViewTableName     = `book_view`
	instanceTableName     = `bookinstance`
	instanceViewTableName = `bookinstance_view`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	if db == nil {
		return nil, errors.New("nil db pool")
	}
	return newRepository(db, log.Named("repo")), nil
}

func newRepository(db *pgxpool.Pool, log *zap.Logger) *repository {
	r := &repository{db: db, log: log}

	r.genres = &table[model.Genre, int]{
		db:      db,
		log:     log,
		name:    genreTableName,
		view:    genreTableName,
		columns: []string{"id", "name"},
		orderBy: []string{"name", "id"},
		fields:  map[string]string{"name": "name"},
		values: func(g model.Genre) map[string]any {
			return map[string]any{"name": g.Name}
		},
		detach: []detach{{table: bookGenreTableName, column: "genre_id", drop: true}},
	}
	r.languages = &table[model.Language, int]{
		db:      db,
		log:     log,
		name:    languageTableName,
		view:    languageTableName,
		columns: []string{"id", "name"},
		orderBy: []string{"name", "id"},
		fields:  map[string]string{"name": "name"},
		values: func(l model.Language) map[string]any {
			return map[string]any{"name": l.Name}
		},
		detach: []detach{{table: bookTableName, column: "language_id"}},
	}
	r.authors = &table[model.Author, int]{
		db:      db,
		log:     log,
		name:    authorTableName,
		view:    authorTableName,
		columns: []string{"id", "first_name", "last_name", "date_of_birth", "date_of_death"},
		orderBy: []string{"last_name", "first_name", "id"},
		fields:  map[string]string{"first_name": "first_name", "last_name": "last_name"},
		values: func(a model.Author) map[string]any {
			return map[string]any{
				"first_name":    a.FirstName,
				"last_name":     a.LastName,
				"date_of_birth": a.DateOfBirth,
				"date_of_death": a.DateOfDeath,
			}
		},
		detach: []detach{{table: bookTableName, column: "author_id"}},
	}
	r.books = newBooks(db, log)
	r.instances = newInstances(db, log)

	r.counters = map[model.Entity]counter{
		model.EntityGenre:        r.genres,
		model.EntityLanguage:     r.languages,
		model.EntityAuthor:       r.authors,
		model.EntityBook:         r.books.table,
		model.EntityBookInstance: r.instances.table,
	}
	return r
}

func (r *repository) Genres() Store[model.Genre, int]       { return r.genres }
func (r *repository) Languages() Store[model.Language, int] { return r.languages }
func (r *repository) Authors() Store[model.Author, int]     { return r.authors }
func (r *repository) Books() Store[model.Book, int]         { return r.books }
func (r *repository) Instances() InstanceStore              { return r.instances }

func (r *repository) Count(ctx context.Context, entity model.Entity, where ...model.Predicate) (int, error) {
	c, ok := r.counters[entity]
	if !ok {
		return 0, errors.Errorf("unknown entity %q", entity)
	}
	return c.count(ctx, where)
}
