package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Astemirdum/catalog-service/catalog/internal/errs"
	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	"github.com/Astemirdum/catalog-service/catalog/internal/repository"
	"github.com/Astemirdum/catalog-service/pkg/validate"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=mocks/mock.go

// Visits counts home page views per caller session.
type Visits interface {
	Visit(ctx context.Context, sessionID string) (int, error)
}

// Publisher ships committed catalog changes to subscribers.
type Publisher interface {
	Publish(ctx context.Context, key string, v any) error
}

type Service struct {
	log      *zap.Logger
	repo     repository.Repository
	visits   Visits
	events   Publisher
	validate *validate.CustomValidator
	now      func() time.Time

	genres    *Entity[model.Genre, int]
	languages *Entity[model.Language, int]
	authors   *Entity[model.Author, int]
	books     *Entity[model.Book, int]
	instances *Entity[model.BookInstance, uuid.UUID]
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithPublisher(p Publisher) Option {
	return func(s *Service) { s.events = p }
}

func NewService(repo repository.Repository, visits Visits, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:      log.Named("service"),
		repo:     repo,
		visits:   visits,
		validate: validate.NewCustomValidator(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.genres = newEntity(s, model.EntityGenre, repo.Genres(), func(g model.Genre) int { return g.ID })
	s.languages = newEntity(s, model.EntityLanguage, repo.Languages(), func(l model.Language) int { return l.ID })
	s.authors = newEntity(s, model.EntityAuthor, repo.Authors(), func(a model.Author) int { return a.ID })
	s.books = newEntity(s, model.EntityBook, repo.Books(), func(b model.Book) int { return b.ID })
	s.instances = newEntity[model.BookInstance, uuid.UUID](s, model.EntityBookInstance, repo.Instances(),
		func(i model.BookInstance) uuid.UUID { return i.ID })
	s.instances.prepare = func(i *model.BookInstance) {
		if i.Status == "" {
			i.Status = model.LoanStatusMaintenance
		}
	}
	s.instances.decorate = s.decorateInstance
	return s
}

func (s *Service) Genres() *Entity[model.Genre, int]                 { return s.genres }
func (s *Service) Languages() *Entity[model.Language, int]           { return s.languages }
func (s *Service) Authors() *Entity[model.Author, int]               { return s.authors }
func (s *Service) Books() *Entity[model.Book, int]                   { return s.books }
func (s *Service) Instances() *Entity[model.BookInstance, uuid.UUID] { return s.instances }

func (s *Service) today() model.Date {
	return model.DateOf(s.now())
}

func (s *Service) decorateInstance(i *model.BookInstance) {
	i.IsOverdue = i.Overdue(s.today())
	i.Display = i.String()
}

func (s *Service) check(v any) error {
	if err := s.validate.Validate(v); err != nil {
		if fields := validate.Fields(err); fields != nil {
			return &errs.ValidationError{Fields: fields}
		}
		return err
	}
	return nil
}

// publish never fails the caller: the change is already committed.
func (s *Service) publish(ctx context.Context, entity model.Entity, action model.Action, id any, user string) {
	if s.events == nil {
		return
	}
	ev := model.Event{
		Entity:    entity,
		Action:    action,
		ID:        fmt.Sprint(id),
		User:      user,
		Timestamp: s.now().UTC(),
	}
	if err := s.events.Publish(ctx, ev.Key(), ev); err != nil {
		s.log.Warn("publish event", zap.String("key", ev.Key()), zap.Error(err))
	}
}

func checkPage(page int) error {
	if page < 1 {
		return errs.NewValidation("page", "invalid page")
	}
	return nil
}
