package service

import (
	"context"

	"github.com/Astemirdum/catalog-service/catalog/internal/errs"
	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	"github.com/Astemirdum/catalog-service/catalog/internal/policy"
	"github.com/google/uuid"
)

const (
	// renewal dates offered to a librarian who has not chosen one yet
	proposedRenewalDays = 21
	maxRenewalDays      = 28
)

// MyLoans lists the caller's copies currently on loan, soonest due first.
func (s *Service) MyLoans(ctx context.Context, page int) (model.List[model.BookInstance], error) {
	u, err := policy.Authenticated(ctx)
	if err != nil {
		return model.List[model.BookInstance]{}, err
	}
	return s.instances.list(ctx, page,
		model.Eq("borrower", u.Username),
		model.Eq("status", model.LoanStatusOnLoan),
	)
}

// AllLoans lists every copy, soonest due first, undated copies last.
func (s *Service) AllLoans(ctx context.Context, page int) (model.List[model.BookInstance], error) {
	if _, err := policy.Require(ctx, policy.CanMarkReturned); err != nil {
		return model.List[model.BookInstance]{}, err
	}
	return s.instances.list(ctx, page)
}

func (s *Service) RenewForm(ctx context.Context, id uuid.UUID) (model.RenewForm, error) {
	if _, err := policy.Require(ctx, policy.CanMarkReturned); err != nil {
		return model.RenewForm{}, err
	}
	inst, err := s.repo.Instances().Get(ctx, id)
	if err != nil {
		return model.RenewForm{}, err
	}
	s.decorateInstance(&inst)
	return model.RenewForm{
		Instance:    inst,
		RenewalDate: s.today().AddDays(proposedRenewalDays),
	}, nil
}

// RenewLoan moves the due date of a copy. Status is left as is.
func (s *Service) RenewLoan(ctx context.Context, id uuid.UUID, due model.Date) (model.BookInstance, error) {
	u, err := policy.Require(ctx, policy.CanMarkReturned)
	if err != nil {
		return model.BookInstance{}, err
	}
	store := s.repo.Instances()
	inst, err := store.Get(ctx, id)
	if err != nil {
		return model.BookInstance{}, err
	}
	if err = s.checkRenewal(due); err != nil {
		return model.BookInstance{}, err
	}
	if err = store.SetDueBack(ctx, id, due); err != nil {
		return model.BookInstance{}, err
	}

	inst.DueBack = &due
	s.decorateInstance(&inst)
	s.publish(ctx, model.EntityBookInstance, model.ActionRenew, id, u.Username)
	return inst, nil
}

func (s *Service) checkRenewal(due model.Date) error {
	today := s.today()
	if due.Before(today) {
		return errs.NewValidation("renewalDate", "invalid date - renewal in past")
	}
	if due.After(today.AddDays(maxRenewalDays)) {
		return errs.NewValidation("renewalDate", "invalid date - renewal more than 4 weeks ahead")
	}
	return nil
}
