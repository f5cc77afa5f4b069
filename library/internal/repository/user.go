package repository

import (
	"context"

	"github.com/Astemirdum/biblioteca/library/internal/model"
	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

var userColumns = []string{"id", "username", "password", "first_name", "last_name", "role", "is_admin"}

func (r *repository) GetUser(ctx context.Context, id int) (model.User, error) {
	return r.getUser(ctx, sq.Eq{"id": id})
}

func (r *repository) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	return r.getUser(ctx, sq.Eq{"username": username})
}

func (r *repository) getUser(ctx context.Context, where sq.Eq) (model.User, error) {
	query, args, err := qb.Select(userColumns...).
		From(userTableName).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	var user model.User
	if err := r.q.GetContext(ctx, &user, query, args...); err != nil {
		return model.User{}, mapErr(err)
	}
	return user, nil
}

func (r *repository) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	query, args, err := qb.Insert(userTableName).
		Columns("username", "password", "first_name", "last_name", "role", "is_admin").
		Values(user.Username, user.PasswordHash, user.FirstName, user.LastName, user.Role, user.IsAdmin).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&user.ID); err != nil {
		r.log.Warn("CreateUser", zap.String("username", user.Username), zap.Error(err))
		return model.User{}, mapErr(err)
	}
	return user, nil
}
