package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Astemirdum/catalog-service/catalog/internal/errs"
	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	"github.com/Astemirdum/catalog-service/catalog/internal/policy"
	"github.com/Astemirdum/catalog-service/catalog/internal/repository"
	"github.com/Astemirdum/catalog-service/catalog/internal/service"
	"github.com/Astemirdum/catalog-service/pkg/auth"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	repo_mocks "github.com/Astemirdum/catalog-service/catalog/internal/repository/mocks"
	service_mocks "github.com/Astemirdum/catalog-service/catalog/internal/service/mocks"
)

var now = time.Date(2024, time.March, 10, 15, 4, 5, 0, time.UTC)

func today() model.Date { return model.DateOf(now) }

type stores struct {
	repo      *repo_mocks.MockRepository
	genres    *repo_mocks.MockStore[model.Genre, int]
	languages *repo_mocks.MockStore[model.Language, int]
	authors   *repo_mocks.MockStore[model.Author, int]
	books     *repo_mocks.MockStore[model.Book, int]
	instances *repo_mocks.MockInstanceStore
	visits    *service_mocks.MockVisits
	events    *service_mocks.MockPublisher
}

func newStores(c *gomock.Controller) stores {
	s := stores{
		repo:      repo_mocks.NewMockRepository(c),
		genres:    repo_mocks.NewMockStore[model.Genre, int](c),
		languages: repo_mocks.NewMockStore[model.Language, int](c),
		authors:   repo_mocks.NewMockStore[model.Author, int](c),
		books:     repo_mocks.NewMockStore[model.Book, int](c),
		instances: repo_mocks.NewMockInstanceStore(c),
		visits:    service_mocks.NewMockVisits(c),
		events:    service_mocks.NewMockPublisher(c),
	}
	s.repo.EXPECT().Genres().Return(s.genres).AnyTimes()
	s.repo.EXPECT().Languages().Return(s.languages).AnyTimes()
	s.repo.EXPECT().Authors().Return(s.authors).AnyTimes()
	s.repo.EXPECT().Books().Return(s.books).AnyTimes()
	s.repo.EXPECT().Instances().Return(s.instances).AnyTimes()
	return s
}

func newService(t *testing.T) (*service.Service, stores) {
	t.Helper()
	c := gomock.NewController(t)
	s := newStores(c)
	return serviceFor(s.repo, s), s
}

func serviceFor(repo repository.Repository, s stores) *service.Service {
	return service.NewService(repo, s.visits, zap.NewNop(),
		service.WithClock(func() time.Time { return now }),
		service.WithPublisher(s.events),
	)
}

func caller(perms ...policy.Capability) context.Context {
	u := auth.User{Username: "librarian"}
	for _, p := range perms {
		u.Permissions = append(u.Permissions, string(p))
	}
	return auth.SetAuthContext(context.Background(), u)
}

func ptr[T any](v T) *T { return &v }

func TestEntity_PolicyBeforeStore(t *testing.T) {
	t.Parallel()
	id := uuid.New()
	tests := []struct {
		name    string
		ctx     context.Context
		call    func(s *service.Service, ctx context.Context) error
		wantErr error
	}{
		{
			name: "create genre without capability",
			ctx:  caller(policy.For(model.EntityGenre, policy.ActionUpdate)),
			call: func(s *service.Service, ctx context.Context) error {
				_, err := s.Genres().Create(ctx, model.Genre{Name: "Fantasy"})
				return err
			},
			wantErr: errs.ErrForbidden,
		},
		{
			name: "update author without capability",
			ctx:  caller(policy.For(model.EntityAuthor, policy.ActionCreate)),
			call: func(s *service.Service, ctx context.Context) error {
				_, err := s.Authors().Update(ctx, 1, model.Author{FirstName: "a", LastName: "b"})
				return err
			},
			wantErr: errs.ErrForbidden,
		},
		{
			name: "patch book without capability",
			ctx:  caller(),
			call: func(s *service.Service, ctx context.Context) error {
				_, err := s.Books().Patch(ctx, 1, func(*model.Book) error { return nil })
				return err
			},
			wantErr: errs.ErrForbidden,
		},
		{
			name: "delete language with capability of another entity",
			ctx:  caller(policy.For(model.EntityGenre, policy.ActionDelete)),
			call: func(s *service.Service, ctx context.Context) error {
				return s.Languages().Delete(ctx, 1)
			},
			wantErr: errs.ErrForbidden,
		},
		{
			name: "delete instance anonymous",
			ctx:  context.Background(),
			call: func(s *service.Service, ctx context.Context) error {
				return s.Instances().Delete(ctx, id)
			},
			wantErr: errs.ErrUnauthenticated,
		},
		{
			name: "get anonymous",
			ctx:  context.Background(),
			call: func(s *service.Service, ctx context.Context) error {
				_, err := s.Books().Get(ctx, 1)
				return err
			},
			wantErr: errs.ErrUnauthenticated,
		},
		{
			name: "list anonymous",
			ctx:  context.Background(),
			call: func(s *service.Service, ctx context.Context) error {
				_, err := s.Genres().List(ctx, 1)
				return err
			},
			wantErr: errs.ErrUnauthenticated,
		},
		{
			name: "all loans without can_mark_returned",
			ctx:  caller(policy.For(model.EntityBookInstance, policy.ActionUpdate)),
			call: func(s *service.Service, ctx context.Context) error {
				_, err := s.AllLoans(ctx, 1)
				return err
			},
			wantErr: errs.ErrForbidden,
		},
		{
			name: "renew without can_mark_returned",
			ctx:  caller(),
			call: func(s *service.Service, ctx context.Context) error {
				_, err := s.RenewLoan(ctx, id, today().AddDays(7))
				return err
			},
			wantErr: errs.ErrForbidden,
		},
		{
			name: "renew form without can_mark_returned",
			ctx:  caller(),
			call: func(s *service.Service, ctx context.Context) error {
				_, err := s.RenewForm(ctx, id)
				return err
			},
			wantErr: errs.ErrForbidden,
		},
		{
			name: "my loans anonymous",
			ctx:  context.Background(),
			call: func(s *service.Service, ctx context.Context) error {
				_, err := s.MyLoans(ctx, 1)
				return err
			},
			wantErr: errs.ErrUnauthenticated,
		},
		{
			name: "summary anonymous",
			ctx:  context.Background(),
			call: func(s *service.Service, ctx context.Context) error {
				_, err := s.Summary(ctx, "sid")
				return err
			},
			wantErr: errs.ErrUnauthenticated,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			// no store expectations: any store call fails the test
			svc, _ := newService(t)
			err := tt.call(svc, tt.ctx)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEntity_Create(t *testing.T) {
	t.Parallel()
	svc, s := newService(t)
	ctx := caller(policy.For(model.EntityGenre, policy.ActionCreate))

	s.genres.EXPECT().Create(ctx, model.Genre{Name: "Fantasy"}).Return(model.Genre{ID: 7, Name: "Fantasy"}, nil)
	s.events.EXPECT().Publish(ctx, "genre:7", model.Event{
		Entity:    model.EntityGenre,
		Action:    model.ActionCreate,
		ID:        "7",
		User:      "librarian",
		Timestamp: now,
	}).Return(nil)

	g, err := svc.Genres().Create(ctx, model.Genre{Name: "Fantasy"})
	require.NoError(t, err)
	require.Equal(t, model.Genre{ID: 7, Name: "Fantasy"}, g)
}

func TestEntity_CreateInvalid(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)
	ctx := caller(policy.For(model.EntityAuthor, policy.ActionCreate))

	_, err := svc.Authors().Create(ctx, model.Author{FirstName: "Ursula"})
	require.ErrorIs(t, err, errs.ErrValidation)

	var verr *errs.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, map[string]string{"lastName": "this field is required"}, verr.Fields)
}

func TestEntity_PublishFailureKeepsResult(t *testing.T) {
	t.Parallel()
	svc, s := newService(t)
	ctx := caller(policy.For(model.EntityLanguage, policy.ActionDelete))

	s.languages.EXPECT().Delete(ctx, 3).Return(nil)
	s.events.EXPECT().Publish(ctx, "language:3", gomock.Any()).Return(errors.New("broker down"))

	require.NoError(t, svc.Languages().Delete(ctx, 3))
}

func TestEntity_DeleteMissing(t *testing.T) {
	t.Parallel()
	svc, s := newService(t)
	ctx := caller(policy.For(model.EntityBook, policy.ActionDelete))

	s.books.EXPECT().Delete(ctx, 404).Return(errs.ErrNotFound)

	require.ErrorIs(t, svc.Books().Delete(ctx, 404), errs.ErrNotFound)
}

func TestEntity_InstanceDefaultStatus(t *testing.T) {
	t.Parallel()
	svc, s := newService(t)
	ctx := caller(policy.For(model.EntityBookInstance, policy.ActionCreate))
	id := uuid.New()

	s.instances.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, v model.BookInstance) (model.BookInstance, error) {
			require.Equal(t, model.LoanStatusMaintenance, v.Status)
			v.ID = id
			v.BookTitle = ptr("Dune")
			return v, nil
		})
	s.events.EXPECT().Publish(ctx, "bookinstance:"+id.String(), gomock.Any()).Return(nil)

	out, err := svc.Instances().Create(ctx, model.BookInstance{BookID: ptr(1), Imprint: "Ace, 1990"})
	require.NoError(t, err)
	require.Equal(t, model.LoanStatusMaintenance, out.Status)
	require.Equal(t, id.String()+" (Dune)", out.Display)
	require.False(t, out.IsOverdue)
}

func TestEntity_InstanceOverdue(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		dueBack *model.Date
		want    bool
	}{
		{name: "yesterday", dueBack: ptr(today().AddDays(-1)), want: true},
		{name: "today", dueBack: ptr(today()), want: false},
		{name: "no due date", dueBack: nil, want: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, s := newService(t)
			ctx := caller()
			id := uuid.New()
			s.instances.EXPECT().Get(ctx, id).Return(model.BookInstance{
				ID:      id,
				DueBack: tt.dueBack,
				Status:  model.LoanStatusOnLoan,
			}, nil)

			out, err := svc.Instances().Get(ctx, id)
			require.NoError(t, err)
			require.Equal(t, tt.want, out.IsOverdue)
		})
	}
}

func TestEntity_Patch(t *testing.T) {
	t.Parallel()
	svc, s := newService(t)
	ctx := caller(policy.For(model.EntityBook, policy.ActionUpdate))
	cur := model.Book{ID: 2, Title: "Old", AuthorID: ptr(1), GenreIDs: []int{1}}

	s.books.EXPECT().Get(ctx, 2).Return(cur, nil)
	want := cur
	want.Title = "New"
	s.books.EXPECT().Update(ctx, 2, want).Return(want, nil)
	s.events.EXPECT().Publish(ctx, "book:2", gomock.Any()).Return(nil)

	out, err := svc.Books().Patch(ctx, 2, func(b *model.Book) error {
		b.Title = "New"
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, want, out)
}

func TestEntity_PatchBadBody(t *testing.T) {
	t.Parallel()
	svc, s := newService(t)
	ctx := caller(policy.For(model.EntityGenre, policy.ActionUpdate))

	s.genres.EXPECT().Get(ctx, 1).Return(model.Genre{ID: 1, Name: "Poetry"}, nil)

	_, err := svc.Genres().Patch(ctx, 1, func(*model.Genre) error { return errors.New("unexpected EOF") })
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestEntity_ListPage(t *testing.T) {
	t.Parallel()
	svc, s := newService(t)
	ctx := caller()

	_, err := svc.Genres().List(ctx, 0)
	require.ErrorIs(t, err, errs.ErrValidation)

	list := model.List[model.Genre]{
		Paging: model.Paging{Page: 2, PageSize: model.PageSize, TotalElements: 11},
		Items:  []model.Genre{{ID: 11, Name: "Western"}},
	}
	s.genres.EXPECT().List(ctx, model.Query{Page: 2, Size: model.PageSize}).Return(list, nil)

	out, err := svc.Genres().List(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, list, out)
}

func TestService_RenewLoan(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		due     model.Date
		found   bool
		wantErr error
		wantMsg string
	}{
		{name: "in past", due: today().AddDays(-1), found: true, wantErr: errs.ErrValidation, wantMsg: "invalid date - renewal in past"},
		{name: "more than 4 weeks", due: today().AddDays(29), found: true, wantErr: errs.ErrValidation, wantMsg: "invalid date - renewal more than 4 weeks ahead"},
		{name: "missing copy", due: today().AddDays(7), found: false, wantErr: errs.ErrNotFound},
		{name: "today", due: today(), found: true},
		{name: "4 weeks", due: today().AddDays(28), found: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, s := newService(t)
			ctx := caller(policy.CanMarkReturned)
			id := uuid.New()
			inst := model.BookInstance{
				ID:       id,
				Imprint:  "Gollancz",
				Status:   model.LoanStatusOnLoan,
				Borrower: ptr("reader"),
				DueBack:  ptr(today().AddDays(-3)),
			}

			if !tt.found {
				s.instances.EXPECT().Get(ctx, id).Return(model.BookInstance{}, errs.ErrNotFound)
			} else {
				s.instances.EXPECT().Get(ctx, id).Return(inst, nil)
			}
			if tt.wantErr == nil {
				s.instances.EXPECT().SetDueBack(ctx, id, tt.due).Return(nil)
				s.events.EXPECT().Publish(ctx, "bookinstance:"+id.String(), gomock.Any()).Return(nil)
			}

			out, err := svc.RenewLoan(ctx, id, tt.due)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				if tt.wantMsg != "" {
					var verr *errs.ValidationError
					require.True(t, errors.As(err, &verr))
					require.Equal(t, tt.wantMsg, verr.Fields["renewalDate"])
				}
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.due, *out.DueBack)
			require.Equal(t, model.LoanStatusOnLoan, out.Status)
			require.False(t, out.IsOverdue)
		})
	}
}

func TestService_RenewForm(t *testing.T) {
	t.Parallel()
	svc, s := newService(t)
	ctx := caller(policy.CanMarkReturned)
	id := uuid.New()

	s.instances.EXPECT().Get(ctx, id).Return(model.BookInstance{ID: id, Imprint: "x"}, nil)

	form, err := svc.RenewForm(ctx, id)
	require.NoError(t, err)
	require.Equal(t, today().AddDays(21), form.RenewalDate)
	require.Equal(t, id, form.Instance.ID)
}

func TestService_MyLoans(t *testing.T) {
	t.Parallel()
	svc, s := newService(t)
	ctx := auth.SetAuthContext(context.Background(), auth.User{Username: "reader"})

	s.instances.EXPECT().List(ctx, model.Query{
		Page: 2,
		Size: model.PageSize,
		Where: []model.Predicate{
			model.Eq("borrower", "reader"),
			model.Eq("status", model.LoanStatusOnLoan),
		},
	}).Return(model.List[model.BookInstance]{
		Paging: model.Paging{Page: 2, PageSize: model.PageSize, TotalElements: 11},
		Items:  []model.BookInstance{{Status: model.LoanStatusOnLoan, DueBack: ptr(today().AddDays(-1))}},
	}, nil)

	out, err := svc.MyLoans(ctx, 2)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	require.True(t, out.Items[0].IsOverdue)
}

func TestService_AllLoans(t *testing.T) {
	t.Parallel()
	svc, s := newService(t)
	ctx := caller(policy.CanMarkReturned)

	s.instances.EXPECT().List(ctx, model.Query{Page: 1, Size: model.PageSize}).
		Return(model.List[model.BookInstance]{}, errors.New("db down"))

	_, err := svc.AllLoans(ctx, 1)
	require.EqualError(t, err, "db down")
}

func TestService_Related(t *testing.T) {
	t.Parallel()
	svc, s := newService(t)
	ctx := caller()

	s.authors.EXPECT().Get(ctx, 1).Return(model.Author{}, errs.ErrNotFound)
	_, err := svc.AuthorBooks(ctx, 1, 1)
	require.ErrorIs(t, err, errs.ErrNotFound)

	s.genres.EXPECT().Get(ctx, 2).Return(model.Genre{ID: 2, Name: "Fantasy"}, nil)
	s.books.EXPECT().List(ctx, model.Query{Page: 1, Size: model.PageSize, Where: []model.Predicate{model.Eq("genre", 2)}}).
		Return(model.List[model.Book]{Items: []model.Book{{ID: 5, Title: "Earthsea"}}}, nil)
	books, err := svc.GenreBooks(ctx, 2, 1)
	require.NoError(t, err)
	require.Len(t, books.Items, 1)

	s.books.EXPECT().Get(ctx, 5).Return(model.Book{ID: 5}, nil)
	s.instances.EXPECT().List(ctx, model.Query{Page: 1, Size: model.PageSize, Where: []model.Predicate{model.Eq("book_id", 5)}}).
		Return(model.List[model.BookInstance]{}, nil)
	_, err = svc.BookInstances(ctx, 5, 1)
	require.NoError(t, err)
}

// countingRepo answers Count from a table keyed by entity and predicates.
type countingRepo struct {
	repository.Repository
	counts map[string]int
}

func countKey(e model.Entity, where ...model.Predicate) string {
	return fmt.Sprint(e, where)
}

var (
	booksKey     = countKey(model.EntityBook)
	copiesKey    = countKey(model.EntityBookInstance)
	availableKey = countKey(model.EntityBookInstance, model.Eq("status", model.LoanStatusAvailable))
	authorsKey   = countKey(model.EntityAuthor)
	fantasyKey   = countKey(model.EntityGenre, model.IContains("name", "fantasy"))
	thronesKey   = countKey(model.EntityBook, model.IContains("title", "thrones"))
)

func (r countingRepo) Count(_ context.Context, e model.Entity, where ...model.Predicate) (int, error) {
	n, ok := r.counts[countKey(e, where...)]
	if !ok {
		return 0, errors.Errorf("unexpected count %s", countKey(e, where...))
	}
	return n, nil
}

func TestService_Summary(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	s := newStores(c)
	repo := countingRepo{Repository: s.repo, counts: map[string]int{
		booksKey:     3,
		copiesKey:    5,
		availableKey: 2,
		authorsKey:   4,
		fantasyKey:   1,
		thronesKey:   0,
	}}
	svc := serviceFor(repo, s)
	ctx := caller()

	s.visits.EXPECT().Visit(ctx, "sid").Return(0, nil)

	sum, err := svc.Summary(ctx, "sid")
	require.NoError(t, err)
	require.Equal(t, model.Summary{
		NumBooks:              3,
		NumInstances:          5,
		NumInstancesAvailable: 2,
		NumAuthors:            4,
		NumFantasyGenres:      1,
		NumThronesBooks:       0,
		NumVisits:             0,
	}, sum)
}

func TestService_SummaryVisitsError(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	s := newStores(c)
	repo := countingRepo{Repository: s.repo, counts: map[string]int{
		booksKey:     0,
		copiesKey:    0,
		availableKey: 0,
		authorsKey:   0,
		fantasyKey:   0,
		thronesKey:   0,
	}}
	svc := serviceFor(repo, s)
	ctx := caller()

	s.visits.EXPECT().Visit(ctx, "sid").Return(0, errors.New("redis down"))

	_, err := svc.Summary(ctx, "sid")
	require.ErrorContains(t, err, "redis down")
}
