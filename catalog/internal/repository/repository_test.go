package repository

import (
	"testing"

	"github.com/Astemirdum/catalog-service/catalog/internal/errs"
	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInstances_SelectQuery(t *testing.T) {
	inst := newInstances(nil, zap.NewNop())

	where, err := inst.where([]model.Predicate{
		model.Eq("borrower", "reader"),
		model.Eq("status", model.LoanStatusOnLoan),
	})
	require.NoError(t, err)

	query, args, err := inst.selectQuery(where, 2, model.PageSize).ToSql()
	require.NoError(t, err)
	require.Equal(t,
		"SELECT id, book_id, imprint, due_back, borrower, status, book_title FROM bookinstance_view "+
			"WHERE (borrower = $1 AND status = $2) ORDER BY due_back asc nulls last, id LIMIT 10 OFFSET 10",
		query)
	require.Equal(t, []any{"reader", model.LoanStatusOnLoan}, args)
}

func TestInstances_SelectQueryAll(t *testing.T) {
	inst := newInstances(nil, zap.NewNop())

	where, err := inst.where(nil)
	require.NoError(t, err)
	require.Nil(t, where)

	query, args, err := inst.selectQuery(where, 1, model.PageSize).ToSql()
	require.NoError(t, err)
	require.Equal(t,
		"SELECT id, book_id, imprint, due_back, borrower, status, book_title FROM bookinstance_view "+
			"ORDER BY due_back asc nulls last, id LIMIT 10 OFFSET 0",
		query)
	require.Empty(t, args)
}

func TestPredicate(t *testing.T) {
	b := newBooks(nil, zap.NewNop())

	tests := []struct {
		name     string
		pred     model.Predicate
		wantSQL  string
		wantArgs []any
		wantErr  bool
	}{
		{
			name:     "icontains",
			pred:     model.IContains("title", "thrones"),
			wantSQL:  "title ILIKE ?",
			wantArgs: []any{"%thrones%"},
		},
		{
			name:     "icontains escapes wildcards",
			pred:     model.IContains("title", "100%_done"),
			wantSQL:  "title ILIKE ?",
			wantArgs: []any{`%100\%\_done%`},
		},
		{
			name:     "eq",
			pred:     model.Eq("author_id", 3),
			wantSQL:  "author_id = ?",
			wantArgs: []any{3},
		},
		{
			name:     "expression",
			pred:     model.Eq("genre", 5),
			wantSQL:  "id in (select book_id from book_genre where genre_id = ?)",
			wantArgs: []any{5},
		},
		{
			name:    "unknown field",
			pred:    model.Eq("summary; drop table book", 1),
			wantErr: true,
		},
		{
			name:    "icontains needs string",
			pred:    model.Predicate{Field: "title", Op: model.OpIContains, Value: 1},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := predicate(b.fields, tt.pred)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			query, args, err := s.ToSql()
			require.NoError(t, err)
			require.Equal(t, tt.wantSQL, query)
			require.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestClassify(t *testing.T) {
	require.Nil(t, classify(nil))
	require.True(t, errors.Is(classify(pgx.ErrNoRows), errs.ErrNotFound))

	other := errors.New("conn reset")
	require.Equal(t, other, classify(other))

	fk := classify(&pgconn.PgError{
		Code:   pgerrcode.ForeignKeyViolation,
		Detail: `Key (author_id)=(99) is not present in table "author".`,
	})
	require.True(t, errors.Is(fk, errs.ErrValidation))
	var verr *errs.ValidationError
	require.True(t, errors.As(fk, &verr))
	require.Contains(t, verr.Fields, "authorId")

	genre := classify(errors.Wrap(&pgconn.PgError{
		Code:   pgerrcode.ForeignKeyViolation,
		Detail: `Key (genre_id)=(7) is not present in table "genre".`,
	}, "insert"))
	require.True(t, errors.As(genre, &verr))
	require.Contains(t, verr.Fields, "genreIds")

	check := classify(&pgconn.PgError{
		Code:           pgerrcode.CheckViolation,
		TableName:      "bookinstance",
		ConstraintName: "bookinstance_status_check",
	})
	require.True(t, errors.As(check, &verr))
	require.Contains(t, verr.Fields, "status")
}

func TestField(t *testing.T) {
	require.Equal(t, "dateOfBirth", field("date_of_birth"))
	require.Equal(t, "title", field("title"))
	require.Equal(t, "value", field(""))
	require.Equal(t, "", keyColumn("no key here"))
}

func TestDetach_Query(t *testing.T) {
	r := newRepository(nil, zap.NewNop())

	type want struct {
		query string
		args  []any
	}
	tests := []struct {
		name   string
		detach []detach
		want   []want
	}{
		{
			name:   "genre drops its book links",
			detach: r.genres.detach,
			want: []want{
				{query: "DELETE FROM book_genre WHERE genre_id = $1", args: []any{7}},
			},
		},
		{
			name:   "language is cleared from books",
			detach: r.languages.detach,
			want: []want{
				{query: "UPDATE book SET language_id = $1 WHERE language_id = $2", args: []any{nil, 7}},
			},
		},
		{
			name:   "author is cleared from books",
			detach: r.authors.detach,
			want: []want{
				{query: "UPDATE book SET author_id = $1 WHERE author_id = $2", args: []any{nil, 7}},
			},
		},
		{
			name:   "book is cleared from copies and drops its genre links",
			detach: r.books.detach,
			want: []want{
				{query: "UPDATE bookinstance SET book_id = $1 WHERE book_id = $2", args: []any{nil, 7}},
				{query: "DELETE FROM book_genre WHERE book_id = $1", args: []any{7}},
			},
		},
		{
			name:   "copy has no dependents",
			detach: r.instances.detach,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Len(t, tt.detach, len(tt.want))
			for i, d := range tt.detach {
				query, args, err := d.query(7)
				require.NoError(t, err)
				require.Equal(t, tt.want[i].query, query)
				require.Equal(t, tt.want[i].args, args)
			}
		})
	}
}

func TestBooks_SelectQuery(t *testing.T) {
	b := newBooks(nil, zap.NewNop())

	query, args, err := b.selectQuery(nil, 1, model.PageSize).ToSql()
	require.NoError(t, err)
	require.Equal(t,
		"SELECT id, title, author_id, summary, isbn, language_id FROM book_view "+
			"ORDER BY title, author_last_name, author_first_name, id LIMIT 10 OFFSET 0",
		query)
	require.Empty(t, args)
}

func TestInstances_InsertQueryNewID(t *testing.T) {
	inst := newInstances(nil, zap.NewNop())
	v := model.BookInstance{Imprint: "Penguin", Status: model.LoanStatusAvailable}

	ids := make([]uuid.UUID, 0, 2)
	for i := 0; i < 2; i++ {
		_, args, err := inst.insertQuery(v).ToSql()
		require.NoError(t, err)
		// columns are sorted: book_id, borrower, due_back, id, imprint, status
		require.Len(t, args, 6)
		id, ok := args[3].(uuid.UUID)
		require.True(t, ok)
		require.NotEqual(t, uuid.Nil, id)
		ids = append(ids, id)
	}
	require.NotEqual(t, ids[0], ids[1])
}
