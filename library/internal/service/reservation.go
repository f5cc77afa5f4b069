package service

import (
	"context"

	"github.com/Astemirdum/biblioteca/library/internal/errs"
	"github.com/Astemirdum/biblioteca/library/internal/model"
	"github.com/pkg/errors"
)

// Reserve creates the (user, book) reservation. A second attempt for the same
// pair, including one racing the first, yields errs.ErrAlreadyReserved.
func (s *Service) Reserve(ctx context.Context, userID, bookID int) (model.Reservation, error) {
	if _, err := s.repo.GetBook(ctx, bookID); err != nil {
		return model.Reservation{}, err
	}

	_, err := s.repo.GetReservation(ctx, userID, bookID)
	switch {
	case err == nil:
		return model.Reservation{}, errs.ErrAlreadyReserved
	case !errors.Is(err, errs.ErrNotFound):
		return model.Reservation{}, err
	}

	res, err := s.repo.CreateReservation(ctx, userID, bookID, s.now().UTC())
	if errors.Is(err, errs.ErrAlreadyExists) {
		return model.Reservation{}, errs.ErrAlreadyReserved
	}
	return res, err
}

func (s *Service) ListReservations(ctx context.Context, userID int) ([]model.UserReservation, error) {
	return s.repo.ListUserReservations(ctx, userID)
}
