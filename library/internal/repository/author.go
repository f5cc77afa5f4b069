package repository

import (
	"context"

	"github.com/Astemirdum/biblioteca/library/internal/model"
	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

func (r *repository) GetAuthorByName(ctx context.Context, name string) (model.Author, error) {
	query, args, err := qb.Select("id", "nome", "biografia").
		From(authorTableName).
		Where(sq.Eq{"nome": name}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Author{}, err
	}

	var author model.Author
	if err := r.q.GetContext(ctx, &author, query, args...); err != nil {
		return model.Author{}, mapErr(err)
	}
	return author, nil
}

func (r *repository) CreateAuthor(ctx context.Context, author model.Author) (model.Author, error) {
	query, args, err := qb.Insert(authorTableName).
		Columns("nome", "biografia").
		Values(author.Name, author.Biography).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return model.Author{}, err
	}

	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&author.ID); err != nil {
		r.log.Warn("CreateAuthor", zap.String("nome", author.Name), zap.Error(err))
		return model.Author{}, mapErr(err)
	}
	return author, nil
}
