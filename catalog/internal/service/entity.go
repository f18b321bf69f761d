package service

import (
	"context"

	"github.com/Astemirdum/catalog-service/catalog/internal/errs"
	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	"github.com/Astemirdum/catalog-service/catalog/internal/policy"
	"github.com/Astemirdum/catalog-service/catalog/internal/repository"
	"github.com/pkg/errors"
)

// Entity is the gated CRUD dispatcher for one entity kind. Every call
// checks the caller before the store is touched: reads need an
// authenticated caller, mutations the can_<action>_<entity> capability.
type Entity[T any, K comparable] struct {
	s     *Service
	kind  model.Entity
	store repository.Store[T, K]
	id    func(T) K

	// prepare fills defaults before validation
	prepare func(*T)
	// decorate sets derived fields on every record handed out
	decorate func(*T)
}

func newEntity[T any, K comparable](s *Service, kind model.Entity, store repository.Store[T, K], id func(T) K) *Entity[T, K] {
	return &Entity[T, K]{
		s:        s,
		kind:     kind,
		store:    store,
		id:       id,
		prepare:  func(*T) {},
		decorate: func(*T) {},
	}
}

func (e *Entity[T, K]) Create(ctx context.Context, v T) (T, error) {
	var zero T
	u, err := policy.Require(ctx, policy.For(e.kind, policy.ActionCreate))
	if err != nil {
		return zero, err
	}
	e.prepare(&v)
	if err = e.s.check(v); err != nil {
		return zero, err
	}
	out, err := e.store.Create(ctx, v)
	if err != nil {
		return zero, err
	}
	e.decorate(&out)
	e.s.publish(ctx, e.kind, model.ActionCreate, e.id(out), u.Username)
	return out, nil
}

func (e *Entity[T, K]) Get(ctx context.Context, id K) (T, error) {
	var zero T
	if _, err := policy.Authenticated(ctx); err != nil {
		return zero, err
	}
	out, err := e.store.Get(ctx, id)
	if err != nil {
		return zero, err
	}
	e.decorate(&out)
	return out, nil
}

func (e *Entity[T, K]) List(ctx context.Context, page int) (model.List[T], error) {
	if _, err := policy.Authenticated(ctx); err != nil {
		return model.List[T]{}, err
	}
	return e.list(ctx, page)
}

func (e *Entity[T, K]) list(ctx context.Context, page int, where ...model.Predicate) (model.List[T], error) {
	if err := checkPage(page); err != nil {
		return model.List[T]{}, err
	}
	list, err := e.store.List(ctx, model.Query{Page: page, Size: model.PageSize, Where: where})
	if err != nil {
		return model.List[T]{}, err
	}
	for i := range list.Items {
		e.decorate(&list.Items[i])
	}
	return list, nil
}

// Update replaces every writable field of the record.
func (e *Entity[T, K]) Update(ctx context.Context, id K, v T) (T, error) {
	var zero T
	u, err := policy.Require(ctx, policy.For(e.kind, policy.ActionUpdate))
	if err != nil {
		return zero, err
	}
	return e.update(ctx, u.Username, id, v)
}

// Patch loads the record, lets apply overwrite the submitted fields and
// stores the result.
func (e *Entity[T, K]) Patch(ctx context.Context, id K, apply func(*T) error) (T, error) {
	var zero T
	u, err := policy.Require(ctx, policy.For(e.kind, policy.ActionUpdate))
	if err != nil {
		return zero, err
	}
	cur, err := e.store.Get(ctx, id)
	if err != nil {
		return zero, err
	}
	if err = apply(&cur); err != nil {
		if errors.Is(err, errs.ErrValidation) {
			return zero, err
		}
		return zero, errs.NewValidation("body", err.Error())
	}
	return e.update(ctx, u.Username, id, cur)
}

func (e *Entity[T, K]) update(ctx context.Context, user string, id K, v T) (T, error) {
	var zero T
	e.prepare(&v)
	if err := e.s.check(v); err != nil {
		return zero, err
	}
	out, err := e.store.Update(ctx, id, v)
	if err != nil {
		return zero, err
	}
	e.decorate(&out)
	e.s.publish(ctx, e.kind, model.ActionUpdate, id, user)
	return out, nil
}

func (e *Entity[T, K]) Delete(ctx context.Context, id K) error {
	u, err := policy.Require(ctx, policy.For(e.kind, policy.ActionDelete))
	if err != nil {
		return err
	}
	if err = e.store.Delete(ctx, id); err != nil {
		return err
	}
	e.s.publish(ctx, e.kind, model.ActionDelete, id, u.Username)
	return nil
}
