package service

import (
	"context"

	"github.com/Astemirdum/catalog-service/catalog/internal/model"
)

func (s *Service) AuthorBooks(ctx context.Context, authorID, page int) (model.List[model.Book], error) {
	if _, err := s.authors.Get(ctx, authorID); err != nil {
		return model.List[model.Book]{}, err
	}
	return s.books.list(ctx, page, model.Eq("author_id", authorID))
}

func (s *Service) GenreBooks(ctx context.Context, genreID, page int) (model.List[model.Book], error) {
	if _, err := s.genres.Get(ctx, genreID); err != nil {
		return model.List[model.Book]{}, err
	}
	return s.books.list(ctx, page, model.Eq("genre", genreID))
}

func (s *Service) LanguageBooks(ctx context.Context, languageID, page int) (model.List[model.Book], error) {
	if _, err := s.languages.Get(ctx, languageID); err != nil {
		return model.List[model.Book]{}, err
	}
	return s.books.list(ctx, page, model.Eq("language_id", languageID))
}

// BookInstances lists the copies of one book.
func (s *Service) BookInstances(ctx context.Context, bookID, page int) (model.List[model.BookInstance], error) {
	if _, err := s.books.Get(ctx, bookID); err != nil {
		return model.List[model.BookInstance]{}, err
	}
	return s.instances.list(ctx, page, model.Eq("book_id", bookID))
}
