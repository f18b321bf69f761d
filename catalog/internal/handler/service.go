package handler

import (
	"context"

	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	"github.com/Astemirdum/catalog-service/catalog/internal/service"
	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=mocks/mock.go

var (
	_ CatalogService                      = (*service.Service)(nil)
	_ CRUD[model.Genre, int]              = (*service.Entity[model.Genre, int])(nil)
	_ CRUD[model.Language, int]           = (*service.Entity[model.Language, int])(nil)
	_ CRUD[model.Author, int]             = (*service.Entity[model.Author, int])(nil)
	_ CRUD[model.Book, int]               = (*service.Entity[model.Book, int])(nil)
	_ CRUD[model.BookInstance, uuid.UUID] = (*service.Entity[model.BookInstance, uuid.UUID])(nil)
)

type CRUD[T any, K comparable] interface {
	Create(ctx context.Context, v T) (T, error)
	Get(ctx context.Context, id K) (T, error)
	List(ctx context.Context, page int) (model.List[T], error)
	Update(ctx context.Context, id K, v T) (T, error)
	Patch(ctx context.Context, id K, apply func(*T) error) (T, error)
	Delete(ctx context.Context, id K) error
}

type CatalogService interface {
	Summary(ctx context.Context, sessionID string) (model.Summary, error)
	MyLoans(ctx context.Context, page int) (model.List[model.BookInstance], error)
	AllLoans(ctx context.Context, page int) (model.List[model.BookInstance], error)
	RenewForm(ctx context.Context, id uuid.UUID) (model.RenewForm, error)
	RenewLoan(ctx context.Context, id uuid.UUID, due model.Date) (model.BookInstance, error)
	AuthorBooks(ctx context.Context, authorID, page int) (model.List[model.Book], error)
	GenreBooks(ctx context.Context, genreID, page int) (model.List[model.Book], error)
	LanguageBooks(ctx context.Context, languageID, page int) (model.List[model.Book], error)
	BookInstances(ctx context.Context, bookID, page int) (model.List[model.BookInstance], error)
}

// Services bundles what the router dispatches to.
type Services struct {
	Catalog   CatalogService
	Genres    CRUD[model.Genre, int]
	Languages CRUD[model.Language, int]
	Authors   CRUD[model.Author, int]
	Books     CRUD[model.Book, int]
	Instances CRUD[model.BookInstance, uuid.UUID]
}

func NewServices(svc *service.Service) Services {
	return Services{
		Catalog:   svc,
		Genres:    svc.Genres(),
		Languages: svc.Languages(),
		Authors:   svc.Authors(),
		Books:     svc.Books(),
		Instances: svc.Instances(),
	}
}
