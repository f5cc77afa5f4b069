package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Astemirdum/biblioteca/library/internal/errs"
	"github.com/Astemirdum/biblioteca/library/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBook(ctx context.Context, id int) (model.Book, error)
	BookTitleExists(ctx context.Context, title string) (bool, error)
	CreateBook(ctx context.Context, book model.Book) (model.Book, error)
	UpdateBook(ctx context.Context, book model.Book) error
	DeleteBook(ctx context.Context, id int) error

	GetUser(ctx context.Context, id int) (model.User, error)
	GetUserByUsername(ctx context.Context, username string) (model.User, error)
	CreateUser(ctx context.Context, user model.User) (model.User, error)

	GetAuthorByName(ctx context.Context, name string) (model.Author, error)
	CreateAuthor(ctx context.Context, author model.Author) (model.Author, error)

	GetReservation(ctx context.Context, userID, bookID int) (model.Reservation, error)
	CreateReservation(ctx context.Context, userID, bookID int, at time.Time) (model.Reservation, error)
	ListUserReservations(ctx context.Context, userID int) ([]model.UserReservation, error)

	Count(ctx context.Context, table Table) (int, error)
	BooksGroupedBy(ctx context.Context, by GroupBy) ([]model.GroupCount, error)

	// WithTx runs fn against a repository bound to one transaction. The
	// transaction commits when fn returns nil and rolls back otherwise.
	WithTx(ctx context.Context, fn func(tx Repository) error) error
}

// queryer is implemented by both *sqlx.DB and *sqlx.Tx.
type queryer interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type repository struct {
	db   *sqlx.DB
	q    queryer
	inTx bool
	log  *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		q:   db,
		log: log.Named("repo"),
	}, nil
}

const (
	bookTableName        = `livro`
	userTableName        = `"user"`
	authorTableName      = `autor`
	reservationTableName = `reservation`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) WithTx(ctx context.Context, fn func(tx Repository) error) (err error) {
	if r.inTx {
		return fn(r)
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				r.log.Error("rollback", zap.Error(rbErr))
			}
			return
		}
		if err = tx.Commit(); err != nil {
			err = errors.Wrap(err, "commit")
		}
	}()

	return fn(&repository{db: r.db, q: tx, inTx: true, log: r.log})
}

// mapErr translates driver errors into the errs sentinels.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return errs.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return errors.Wrap(errs.ErrAlreadyExists, pgErr.ConstraintName)
		case pgerrcode.ForeignKeyViolation:
			return errors.Wrap(errs.ErrNotFound, pgErr.ConstraintName)
		}
	}
	return err
}
