package service

import (
	"context"

	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	"github.com/Astemirdum/catalog-service/catalog/internal/policy"
	"github.com/pkg/errors"
)

// Summary gathers the home page counters and bumps the session visit
// count, reporting the value from before this visit.
func (s *Service) Summary(ctx context.Context, sessionID string) (model.Summary, error) {
	if _, err := policy.Authenticated(ctx); err != nil {
		return model.Summary{}, err
	}

	var sum model.Summary
	counts := []struct {
		dst    *int
		entity model.Entity
		where  []model.Predicate
	}{
		{dst: &sum.NumBooks, entity: model.EntityBook},
		{dst: &sum.NumInstances, entity: model.EntityBookInstance},
		{dst: &sum.NumInstancesAvailable, entity: model.EntityBookInstance,
			where: []model.Predicate{model.Eq("status", model.LoanStatusAvailable)}},
		{dst: &sum.NumAuthors, entity: model.EntityAuthor},
		{dst: &sum.NumFantasyGenres, entity: model.EntityGenre,
			where: []model.Predicate{model.IContains("name", "fantasy")}},
		{dst: &sum.NumThronesBooks, entity: model.EntityBook,
			where: []model.Predicate{model.IContains("title", "thrones")}},
	}
	for _, c := range counts {
		n, err := s.repo.Count(ctx, c.entity, c.where...)
		if err != nil {
			return model.Summary{}, errors.Wrapf(err, "count %s", c.entity)
		}
		*c.dst = n
	}

	visits, err := s.visits.Visit(ctx, sessionID)
	if err != nil {
		return model.Summary{}, errors.Wrap(err, "session visits")
	}
	sum.NumVisits = visits
	return sum, nil
}
