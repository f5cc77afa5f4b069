package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/Astemirdum/biblioteca/library/internal/errs"
	"github.com/Astemirdum/biblioteca/library/internal/model"
	"github.com/Astemirdum/biblioteca/library/migrations"
	"github.com/Astemirdum/biblioteca/pkg/postgres"
	"github.com/kelseyhightower/envconfig"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newPostgresRepo connects to the database named by the DB_* variables.
// The tests are skipped unless TEST_POSTGRES is set; tables are emptied first.
func newPostgresRepo(t *testing.T) *repository {
	t.Helper()
	if os.Getenv("TEST_POSTGRES") == "" {
		t.Skip("TEST_POSTGRES not set")
	}
	var cfg postgres.DB
	require.NoError(t, envconfig.Process("", &cfg))

	ctx := context.Background()
	db, err := postgres.NewPostgresDB(ctx, &cfg, migrations.MigrationFiles)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.ExecContext(ctx, `truncate reservation, livro, "user", autor restart identity cascade`)
	require.NoError(t, err)

	repo, err := NewRepository(db, zap.NewNop())
	require.NoError(t, err)
	return repo
}

func TestPostgres_DeleteBookRemovesReservations(t *testing.T) {
	repo := newPostgresRepo(t)
	ctx := context.Background()

	user, err := repo.CreateUser(ctx, model.User{Username: "leitor", PasswordHash: "x"})
	require.NoError(t, err)
	kept, err := repo.CreateBook(ctx, model.Book{Title: "Kept", Author: "A", Category: "C", Year: 2001, Publisher: model.DefaultPublisher})
	require.NoError(t, err)
	gone, err := repo.CreateBook(ctx, model.Book{Title: "Gone", Author: "B", Category: "C", Year: 2002, Publisher: model.DefaultPublisher})
	require.NoError(t, err)

	now := time.Now().UTC()
	_, err = repo.CreateReservation(ctx, user.ID, kept.ID, now)
	require.NoError(t, err)
	_, err = repo.CreateReservation(ctx, user.ID, gone.ID, now)
	require.NoError(t, err)
	_, err = repo.CreateReservation(ctx, user.ID, gone.ID, now)
	require.ErrorIs(t, err, errs.ErrAlreadyExists)

	require.NoError(t, repo.DeleteBook(ctx, gone.ID))

	n, err := repo.Count(ctx, TableReservations)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	items, err := repo.ListUserReservations(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, kept.ID, items[0].BookID)

	_, err = repo.GetReservation(ctx, user.ID, gone.ID)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestPostgres_BooksGroupedBy(t *testing.T) {
	repo := newPostgresRepo(t)
	ctx := context.Background()

	for _, b := range []model.Book{
		{Title: "B1", Author: "authorA", Category: "C", Year: 2001, Publisher: model.DefaultPublisher},
		{Title: "B2", Author: "authorA", Category: "C", Year: 2001, Publisher: model.DefaultPublisher},
		{Title: "B3", Author: "authorB", Category: "C", Year: 2002, Publisher: "Rocco"},
	} {
		_, err := repo.CreateBook(ctx, b)
		require.NoError(t, err)
	}

	tests := []struct {
		by   GroupBy
		want []model.GroupCount
	}{
		{by: GroupByAuthor, want: []model.GroupCount{{Key: "authorA", Count: 2}, {Key: "authorB", Count: 1}}},
		{by: GroupByYear, want: []model.GroupCount{{Key: "2001", Count: 2}, {Key: "2002", Count: 1}}},
		{by: GroupByPublisher, want: []model.GroupCount{{Key: model.DefaultPublisher, Count: 2}, {Key: "Rocco", Count: 1}}},
	}
	for _, tt := range tests {
		got, err := repo.BooksGroupedBy(ctx, tt.by)
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
	}

	n, err := repo.Count(ctx, TableBooks)
	require.NoError(t, err)
	require.Equal(t, 3, n)
}
