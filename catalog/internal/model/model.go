package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Entity string

const (
	EntityGenre        Entity = "genre"
	EntityLanguage     Entity = "language"
	EntityAuthor       Entity = "author"
	EntityBook         Entity = "book"
	EntityBookInstance Entity = "bookinstance"
)

const PageSize = 10

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

type List[T any] struct {
	Paging `json:",inline"`
	Items  []T `json:"items"`
}

type Genre struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name" validate:"required,max=200"`
}

func (g Genre) String() string { return g.Name }

type Language struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name" validate:"required,max=200"`
}

func (l Language) String() string { return l.Name }

type Author struct {
	ID          int    `json:"id" db:"id"`
	FirstName   string `json:"firstName" db:"first_name" validate:"required,max=100"`
	LastName    string `json:"lastName" db:"last_name" validate:"required,max=100"`
	DateOfBirth *Date  `json:"dateOfBirth" db:"date_of_birth"`
	DateOfDeath *Date  `json:"dateOfDeath" db:"date_of_death"`
}

func (a Author) String() string {
	return fmt.Sprintf("%s %s", a.FirstName, a.LastName)
}

type Book struct {
	ID         int    `json:"id" db:"id"`
	Title      string `json:"title" db:"title" validate:"required,max=200"`
	AuthorID   *int   `json:"authorId" db:"author_id"`
	Summary    string `json:"summary" db:"summary" validate:"max=3000"`
	ISBN       string `json:"isbn" db:"isbn" validate:"max=13"`
	LanguageID *int   `json:"languageId" db:"language_id"`
	GenreIDs   []int  `json:"genreIds" db:"-"`
	// DisplayGenre lists the first three genre names.
	DisplayGenre string `json:"displayGenre" db:"-"`
}

func (b Book) String() string { return b.Title }

// GenreNames joins the first three names the way the catalog lists them.
func GenreNames(genres []Genre) string {
	names := make([]string, 0, 3)
	for i := 0; i < len(genres) && i < 3; i++ {
		names = append(names, genres[i].Name)
	}
	return strings.Join(names, ", ")
}

type LoanStatus string

const (
	LoanStatusMaintenance LoanStatus = "m"
	LoanStatusOnLoan      LoanStatus = "o"
	LoanStatusAvailable   LoanStatus = "a"
	LoanStatusReserved    LoanStatus = "r"
)

func (s LoanStatus) Label() string {
	switch s {
	case LoanStatusMaintenance:
		return "Maintenance"
	case LoanStatusOnLoan:
		return "On loan"
	case LoanStatusAvailable:
		return "Available"
	case LoanStatusReserved:
		return "Reserved"
	default:
		return string(s)
	}
}

type BookInstance struct {
	ID       uuid.UUID  `json:"id" db:"id"`
	BookID   *int       `json:"bookId" db:"book_id"`
	Imprint  string     `json:"imprint" db:"imprint" validate:"required,max=200"`
	DueBack  *Date      `json:"dueBack" db:"due_back"`
	Borrower *string    `json:"borrower" db:"borrower" validate:"omitempty,max=150"`
	Status   LoanStatus `json:"status" db:"status" validate:"omitempty,oneof=m o a r"`

	// read-only, filled from the linked book
	BookTitle *string `json:"bookTitle" db:"book_title"`
	// derived on every read
	IsOverdue bool   `json:"isOverdue" db:"-"`
	Display   string `json:"display" db:"-"`
}

// Overdue reports whether the copy was due before today.
func (i BookInstance) Overdue(today Date) bool {
	return i.DueBack != nil && i.DueBack.Before(today)
}

func (i BookInstance) String() string {
	title := ""
	if i.BookTitle != nil {
		title = *i.BookTitle
	}
	return fmt.Sprintf("%s (%s)", i.ID, title)
}

// Op is a predicate operator understood by the store.
type Op string

const (
	OpEq        Op = "eq"
	OpIContains Op = "icontains"
)

// Predicate filters a listing or count by a named field.
type Predicate struct {
	Field string
	Op    Op
	Value any
}

func Eq(field string, v any) Predicate { return Predicate{Field: field, Op: OpEq, Value: v} }

func IContains(field, s string) Predicate {
	return Predicate{Field: field, Op: OpIContains, Value: s}
}

type Query struct {
	Page  int
	Size  int
	Where []Predicate
}

type Summary struct {
	NumBooks              int `json:"numBooks"`
	NumInstances          int `json:"numInstances"`
	NumInstancesAvailable int `json:"numInstancesAvailable"`
	NumAuthors            int `json:"numAuthors"`
	NumFantasyGenres      int `json:"numFantasyGenres"`
	NumThronesBooks       int `json:"numThronesBooks"`
	NumVisits             int `json:"numVisits"`
}

type RenewRequest struct {
	RenewalDate Date `json:"renewalDate"`
}

type RenewForm struct {
	Instance    BookInstance `json:"instance"`
	RenewalDate Date         `json:"renewalDate"`
}

type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionRenew  Action = "renew"
)

// Event is published after a committed catalog mutation.
type Event struct {
	Entity    Entity    `json:"entity"`
	Action    Action    `json:"action"`
	ID        string    `json:"id"`
	User      string    `json:"user"`
	Timestamp time.Time `json:"timestamp"`
}

func (e Event) Key() string {
	return fmt.Sprintf("%s:%s", e.Entity, e.ID)
}
