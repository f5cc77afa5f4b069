package service

import (
	"context"

	"github.com/Astemirdum/biblioteca/library/internal/model"
	"github.com/Astemirdum/biblioteca/library/internal/repository"
	"golang.org/x/sync/errgroup"
)

// Dashboard reads the totals and the three book groupings concurrently.
func (s *Service) Dashboard(ctx context.Context) (model.Dashboard, error) {
	var d model.Dashboard
	gg, ctx := errgroup.WithContext(ctx)

	counts := []struct {
		table repository.Table
		dst   *int
	}{
		{repository.TableBooks, &d.TotalBooks},
		{repository.TableUsers, &d.TotalUsers},
		{repository.TableReservations, &d.TotalReservations},
	}
	for _, c := range counts {
		c := c
		gg.Go(func() error {
			n, err := s.repo.Count(ctx, c.table)
			if err != nil {
				return err
			}
			*c.dst = n
			return nil
		})
	}

	groups := []struct {
		by  repository.GroupBy
		dst *[]model.GroupCount
	}{
		{repository.GroupByAuthor, &d.BooksByAuthor},
		{repository.GroupByYear, &d.BooksByYear},
		{repository.GroupByPublisher, &d.BooksByPublisher},
	}
	for _, g := range groups {
		g := g
		gg.Go(func() error {
			items, err := s.repo.BooksGroupedBy(ctx, g.by)
			if err != nil {
				return err
			}
			*g.dst = items
			return nil
		})
	}

	if err := gg.Wait(); err != nil {
		return model.Dashboard{}, err
	}
	return d, nil
}
