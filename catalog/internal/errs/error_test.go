package errs_test

import (
	"testing"

	"github.com/Astemirdum/catalog-service/catalog/internal/errs"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	err := error(&errs.ValidationError{Fields: map[string]string{
		"title":   "this field is required",
		"imprint": "this field is required",
	}})
	require.EqualError(t, err, "validation failed: imprint: this field is required; title: this field is required")

	wrapped := errors.Wrap(err, "create")
	require.True(t, errors.Is(wrapped, errs.ErrValidation))
	require.False(t, errors.Is(wrapped, errs.ErrNotFound))

	var verr *errs.ValidationError
	require.True(t, errors.As(wrapped, &verr))
	require.Len(t, verr.Fields, 2)
}

func TestUnauthenticatedIsForbidden(t *testing.T) {
	require.True(t, errors.Is(errs.ErrUnauthenticated, errs.ErrForbidden))
	require.False(t, errors.Is(errs.ErrForbidden, errs.ErrUnauthenticated))
	require.EqualError(t, errs.ErrUnauthenticated, "forbidden: authentication required")
}
