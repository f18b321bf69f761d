package repository

import (
	"strings"

	"github.com/Astemirdum/catalog-service/catalog/internal/errs"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

// classify turns constraint violations into validation errors so callers
// can resubmit; anything else passes through untouched.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgerrcode.ForeignKeyViolation:
		return errs.NewValidation(field(keyColumn(pgErr.Detail)), "select a valid choice, that record does not exist")
	case pgerrcode.NotNullViolation:
		return errs.NewValidation(field(pgErr.ColumnName), "this field is required")
	case pgerrcode.CheckViolation:
		return errs.NewValidation(field(checkColumn(pgErr.TableName, pgErr.ConstraintName)), "invalid value")
	case pgerrcode.StringDataRightTruncationDataException:
		return errs.NewValidation("value", "value is too long")
	case pgerrcode.InvalidTextRepresentation, pgerrcode.InvalidDatetimeFormat:
		return errs.NewValidation("value", pgErr.Message)
	}
	return err
}

// keyColumn extracts "author_id" from `Key (author_id)=(9) is not present ...`.
func keyColumn(detail string) string {
	start := strings.Index(detail, "Key (")
	if start < 0 {
		return ""
	}
	rest := detail[start+len("Key ("):]
	end := strings.Index(rest, ")")
	if end < 0 {
		return ""
	}
	return rest[:end]
}

// checkColumn extracts "title" from the default "book_title_check" name.
func checkColumn(table, constraint string) string {
	c := strings.TrimSuffix(constraint, "_check")
	return strings.TrimPrefix(c, table+"_")
}

// field maps a column name to its json field.
func field(column string) string {
	switch column {
	case "":
		return "value"
	case "genre_id":
		return "genreIds"
	}
	parts := strings.Split(column, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] == "" {
			continue
		}
		parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
	}
	return strings.Join(parts, "")
}
