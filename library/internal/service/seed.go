package service

import (
	"context"
	"io"

	"github.com/Astemirdum/biblioteca/library/internal/repository"
	"github.com/Astemirdum/biblioteca/library/internal/seed"
	"go.uber.org/zap"
)

// Seed imports the catalog CSV in a single transaction.
func (s *Service) Seed(ctx context.Context, r io.Reader) (int, error) {
	books, skipped, err := seed.Parse(r, ParseYear)
	if err != nil {
		return 0, err
	}
	if len(skipped) > 0 {
		s.log.Warn("seed rows skipped: invalid year", zap.Ints("lines", skipped))
	}

	var inserted int
	err = s.repo.WithTx(ctx, func(tx repository.Repository) error {
		n, err := seed.Load(ctx, tx, books)
		inserted = n
		return err
	})
	if err != nil {
		return 0, err
	}
	s.log.Info("seed done", zap.Int("rows", len(books)), zap.Int("inserted", inserted))
	return inserted, nil
}
