package repository

import (
	"context"

	"github.com/Astemirdum/biblioteca/library/internal/model"
	"github.com/pkg/errors"
)

type Table uint8

const (
	TableBooks Table = iota + 1
	TableUsers
	TableReservations
)

func (t Table) name() (string, bool) {
	switch t {
	case TableBooks:
		return bookTableName, true
	case TableUsers:
		return userTableName, true
	case TableReservations:
		return reservationTableName, true
	}
	return "", false
}

type GroupBy uint8

const (
	GroupByAuthor GroupBy = iota + 1
	GroupByYear
	GroupByPublisher
)

func (g GroupBy) column() (string, bool) {
	switch g {
	case GroupByAuthor:
		return "autor", true
	case GroupByYear:
		return "ano", true
	case GroupByPublisher:
		return "editora", true
	}
	return "", false
}

func (r *repository) Count(ctx context.Context, table Table) (int, error) {
	name, ok := table.name()
	if !ok {
		return 0, errors.Errorf("unknown table %d", table)
	}
	query, args, err := qb.Select("count(*)").From(name).ToSql()
	if err != nil {
		return 0, err
	}

	var n int
	if err := r.q.GetContext(ctx, &n, query, args...); err != nil {
		return 0, errors.Wrapf(err, "count %s", name)
	}
	return n, nil
}

func (r *repository) BooksGroupedBy(ctx context.Context, by GroupBy) ([]model.GroupCount, error) {
	col, ok := by.column()
	if !ok {
		return nil, errors.Errorf("unknown group %d", by)
	}
	query, args, err := qb.Select(col+"::text as group_key", "count(*) as count").
		From(bookTableName).
		GroupBy(col).
		OrderBy("count desc", "group_key").
		ToSql()
	if err != nil {
		return nil, err
	}

	groups := make([]model.GroupCount, 0)
	if err := r.q.SelectContext(ctx, &groups, query, args...); err != nil {
		return nil, errors.Wrapf(err, "group by %s", col)
	}
	return groups, nil
}
