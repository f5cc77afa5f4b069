package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Astemirdum/biblioteca/library/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func (r *repository) GetReservation(ctx context.Context, userID, bookID int) (model.Reservation, error) {
	query, args, err := qb.Select("id", "user_id", "book_id", "reserved_at").
		From(reservationTableName).
		Where(sq.Eq{"user_id": userID, "book_id": bookID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}

	var res model.Reservation
	if err := r.q.GetContext(ctx, &res, query, args...); err != nil {
		return model.Reservation{}, mapErr(err)
	}
	return res, nil
}

func (r *repository) CreateReservation(ctx context.Context, userID, bookID int, at time.Time) (model.Reservation, error) {
	query, args, err := qb.Insert(reservationTableName).
		Columns("user_id", "book_id", "reserved_at").
		Values(userID, bookID, at).
		Suffix("returning id, user_id, book_id, reserved_at").
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}

	var res model.Reservation
	if err := r.q.GetContext(ctx, &res, query, args...); err != nil {
		r.log.Warn("CreateReservation", zap.Int("userID", userID), zap.Int("bookID", bookID), zap.Error(err))
		return model.Reservation{}, mapErr(err)
	}
	return res, nil
}

func (r *repository) ListUserReservations(ctx context.Context, userID int) ([]model.UserReservation, error) {
	query, args, err := qb.Select("r.id", "r.user_id", "r.book_id", "r.reserved_at", "l.titulo", "l.autor").
		From(reservationTableName + " r").
		Join(fmt.Sprintf("%s l on l.id = r.book_id", bookTableName)).
		Where(sq.Eq{"r.user_id": userID}).
		OrderBy("r.reserved_at desc", "r.id desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("ListUserReservations", zap.String("query", query), zap.Any("args", args))

	items := make([]model.UserReservation, 0)
	if err := r.q.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, errors.Wrap(err, "ListUserReservations")
	}
	return items, nil
}
