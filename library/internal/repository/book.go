package repository

import (
	"context"

	"github.com/Astemirdum/biblioteca/library/internal/errs"
	"github.com/Astemirdum/biblioteca/library/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var bookColumns = []string{"id", "titulo", "autor", "categoria", "ano", "editora", "ativo"}

func (r *repository) ListBooks(ctx context.Context) ([]model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(bookTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	books := make([]model.Book, 0)
	if err := r.q.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, errors.Wrap(err, "ListBooks")
	}
	return books, nil
}

func (r *repository) GetBook(ctx context.Context, id int) (model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(bookTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.q.GetContext(ctx, &book, query, args...); err != nil {
		return model.Book{}, mapErr(err)
	}
	return book, nil
}

func (r *repository) BookTitleExists(ctx context.Context, title string) (bool, error) {
	const q = `select exists(select 1 from livro where titulo = $1)`
	var exists bool
	if err := r.q.GetContext(ctx, &exists, q, title); err != nil {
		return false, errors.Wrap(err, "BookTitleExists")
	}
	return exists, nil
}

func (r *repository) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	query, args, err := qb.Insert(bookTableName).
		Columns("titulo", "autor", "categoria", "ano", "editora", "ativo").
		Values(book.Title, book.Author, book.Category, book.Year, book.Publisher, book.Active).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&book.ID); err != nil {
		r.log.Error("CreateBook", zap.String("q", query), zap.Error(err))
		return model.Book{}, mapErr(err)
	}
	return book, nil
}

func (r *repository) UpdateBook(ctx context.Context, book model.Book) error {
	query, args, err := qb.Update(bookTableName).
		SetMap(map[string]interface{}{
			"titulo":    book.Title,
			"autor":     book.Author,
			"categoria": book.Category,
			"ano":       book.Year,
			"editora":   book.Publisher,
		}).
		Where(sq.Eq{"id": book.ID}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return mapErr(err)
	}
	return expectOne(res)
}

// DeleteBook removes the book; its reservations go with it (on delete cascade).
func (r *repository) DeleteBook(ctx context.Context, id int) error {
	query, args, err := qb.Delete(bookTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return mapErr(err)
	}
	return expectOne(res)
}

type rowsAffected interface {
	RowsAffected() (int64, error)
}

func expectOne(res rowsAffected) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}
