// Package policy names the catalog capabilities and gates operations on them.
package policy

import (
	"context"
	"fmt"

	"github.com/Astemirdum/catalog-service/catalog/internal/errs"
	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	"github.com/Astemirdum/catalog-service/pkg/auth"
)

type Capability string

// CanMarkReturned guards loan renewal and the all-loans listing.
const CanMarkReturned Capability = "can_mark_returned"

type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

var entities = []model.Entity{
	model.EntityGenre,
	model.EntityLanguage,
	model.EntityAuthor,
	model.EntityBook,
	model.EntityBookInstance,
}

// For returns the capability required to apply action to entity.
func For(entity model.Entity, action Action) Capability {
	return Capability(fmt.Sprintf("can_%s_%s", action, entity))
}

// All lists every capability external role configuration may grant.
func All() []Capability {
	out := make([]Capability, 0, len(entities)*3+1)
	for _, e := range entities {
		for _, a := range []Action{ActionCreate, ActionUpdate, ActionDelete} {
			out = append(out, For(e, a))
		}
	}
	return append(out, CanMarkReturned)
}

// Authenticated returns the caller or ErrUnauthenticated.
func Authenticated(ctx context.Context) (auth.User, error) {
	u, ok := auth.FromContext(ctx)
	if !ok || u.Username == "" {
		return auth.User{}, errs.ErrUnauthenticated
	}
	return u, nil
}

// Require returns the caller when they hold c.
func Require(ctx context.Context, c Capability) (auth.User, error) {
	u, err := Authenticated(ctx)
	if err != nil {
		return auth.User{}, err
	}
	if !u.Has(string(c)) {
		return auth.User{}, fmt.Errorf("%w: missing %s", errs.ErrForbidden, c)
	}
	return u, nil
}
