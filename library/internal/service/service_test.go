package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Astemirdum/biblioteca/library/internal/errs"
	"github.com/Astemirdum/biblioteca/library/internal/model"
	"github.com/Astemirdum/biblioteca/library/internal/repository"
	"github.com/Astemirdum/biblioteca/library/internal/service"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	repo_mocks "github.com/Astemirdum/biblioteca/library/internal/repository/mocks"
)

func newService(t *testing.T, opts ...service.Option) (*service.Service, *repo_mocks.MockRepository) {
	t.Helper()
	c := gomock.NewController(t)
	repo := repo_mocks.NewMockRepository(c)
	opts = append([]service.Option{service.WithHashCost(bcrypt.MinCost)}, opts...)
	return service.NewService(repo, zap.NewNop(), opts...), repo
}

// inTx runs WithTx callbacks directly against the mock.
func inTx(repo *repo_mocks.MockRepository) {
	repo.EXPECT().WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(repository.Repository) error) error {
			return fn(repo)
		})
}

func TestService_CreateBook(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *repo_mocks.MockRepository)

	tests := []struct {
		name         string
		req          model.BookRequest
		mockBehavior mockBehavior
		want         model.Book
		wantErr      error
	}{
		{
			name: "ok. default publisher",
			req:  model.BookRequest{Title: " Memórias Póstumas ", Author: "Machado", Category: "Romance", Year: "1881"},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().CreateBook(gomock.Any(), model.Book{
					Title: "Memórias Póstumas", Author: "Machado", Category: "Romance", Year: 1881, Publisher: model.DefaultPublisher,
				}).Return(model.Book{ID: 1, Title: "Memórias Póstumas", Author: "Machado", Category: "Romance", Year: 1881, Publisher: model.DefaultPublisher}, nil)
			},
			want: model.Book{ID: 1, Title: "Memórias Póstumas", Author: "Machado", Category: "Romance", Year: 1881, Publisher: model.DefaultPublisher},
		},
		{
			name: "ok. publisher kept",
			req:  model.BookRequest{Title: "T", Author: "A", Category: "C", Year: "2020", Publisher: "Rocco"},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().CreateBook(gomock.Any(), model.Book{Title: "T", Author: "A", Category: "C", Year: 2020, Publisher: "Rocco"}).
					Return(model.Book{ID: 2, Title: "T", Author: "A", Category: "C", Year: 2020, Publisher: "Rocco"}, nil)
			},
			want: model.Book{ID: 2, Title: "T", Author: "A", Category: "C", Year: 2020, Publisher: "Rocco"},
		},
		{
			name:         "err. blank required fields",
			req:          model.BookRequest{Title: "   ", Author: "  ", Category: " ", Year: "2001"},
			mockBehavior: func(r *repo_mocks.MockRepository) {},
			wantErr:      errs.ErrInvalidForm,
		},
		{
			name:         "err. year out of column range",
			req:          model.BookRequest{Title: "T", Author: "A", Category: "C", Year: "99999999999"},
			mockBehavior: func(r *repo_mocks.MockRepository) {},
			wantErr:      errs.ErrInvalidYear,
		},
		{
			name:         "err. year not a number",
			req:          model.BookRequest{Title: "T", Author: "A", Category: "C", Year: "abc"},
			mockBehavior: func(r *repo_mocks.MockRepository) {},
			wantErr:      errs.ErrInvalidYear,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo := newService(t)
			tt.mockBehavior(repo)

			got, err := svc.CreateBook(context.Background(), tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestService_UpdateBook(t *testing.T) {
	t.Parallel()
	svc, repo := newService(t)
	repo.EXPECT().UpdateBook(gomock.Any(), model.Book{ID: 4, Title: "T", Author: "A", Category: "C", Year: 1999, Publisher: model.DefaultPublisher}).
		Return(errs.ErrNotFound)

	err := svc.UpdateBook(context.Background(), 4, model.BookRequest{Title: "T", Author: "A", Category: "C", Year: "1999"})
	require.ErrorIs(t, err, errs.ErrNotFound)

	err = svc.UpdateBook(context.Background(), 4, model.BookRequest{Title: "T", Author: "A", Category: "C", Year: "19x9"})
	require.ErrorIs(t, err, errs.ErrInvalidYear)
}

func TestParseYear(t *testing.T) {
	t.Parallel()
	y, err := service.ParseYear(" 1954 ")
	require.NoError(t, err)
	require.Equal(t, 1954, y)

	y, err = service.ParseYear("0")
	require.NoError(t, err)
	require.Zero(t, y)

	for _, raw := range []string{"", "abc", "19.5", "-1", "10000", "99999999999"} {
		_, err := service.ParseYear(raw)
		require.ErrorIs(t, err, errs.ErrInvalidYear, raw)
	}
}

func TestService_CreateAuthor(t *testing.T) {
	t.Parallel()
	bio := "Escritor"
	type mockBehavior func(r *repo_mocks.MockRepository)

	tests := []struct {
		name         string
		req          model.AuthorRequest
		mockBehavior mockBehavior
		wantErr      error
	}{
		{
			name: "ok",
			req:  model.AuthorRequest{Name: "Clarice", Biography: "Escritor"},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetAuthorByName(gomock.Any(), "Clarice").Return(model.Author{}, errs.ErrNotFound)
				inTx(r)
				r.EXPECT().CreateAuthor(gomock.Any(), model.Author{Name: "Clarice", Biography: &bio}).
					Return(model.Author{ID: 1, Name: "Clarice", Biography: &bio}, nil)
			},
		},
		{
			name:         "err. blank name",
			req:          model.AuthorRequest{Name: "   ", Biography: "Escritor"},
			mockBehavior: func(r *repo_mocks.MockRepository) {},
			wantErr:      errs.ErrInvalidForm,
		},
		{
			name: "err. name taken",
			req:  model.AuthorRequest{Name: "Clarice"},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetAuthorByName(gomock.Any(), "Clarice").Return(model.Author{ID: 1, Name: "Clarice"}, nil)
			},
			wantErr: errs.ErrAlreadyExists,
		},
		{
			name: "err. concurrent insert",
			req:  model.AuthorRequest{Name: "Clarice"},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetAuthorByName(gomock.Any(), "Clarice").Return(model.Author{}, errs.ErrNotFound)
				inTx(r)
				r.EXPECT().CreateAuthor(gomock.Any(), model.Author{Name: "Clarice"}).
					Return(model.Author{}, errors.Wrap(errs.ErrAlreadyExists, "autor_nome_key"))
			},
			wantErr: errs.ErrAlreadyExists,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo := newService(t)
			tt.mockBehavior(repo)

			got, err := svc.CreateAuthor(context.Background(), tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, 1, got.ID)
			require.Equal(t, bio, *got.Biography)
		})
	}
}

func TestService_Login(t *testing.T) {
	t.Parallel()
	hash, err := bcrypt.GenerateFromPassword([]byte("segredo"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := model.User{ID: 3, Username: "ana", PasswordHash: string(hash)}

	tests := []struct {
		name     string
		password string
		found    bool
		wantErr  error
	}{
		{name: "ok", password: "segredo", found: true},
		{name: "wrong password", password: "errado", found: true, wantErr: errs.ErrInvalidCredentials},
		{name: "unknown user", password: "segredo", wantErr: errs.ErrInvalidCredentials},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo := newService(t)
			if tt.found {
				repo.EXPECT().GetUserByUsername(gomock.Any(), "ana").Return(stored, nil)
			} else {
				repo.EXPECT().GetUserByUsername(gomock.Any(), "ana").Return(model.User{}, errs.ErrNotFound)
			}

			user, err := svc.Login(context.Background(), "ana", tt.password)
			if tt.wantErr != nil {
				require.Equal(t, tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, 3, user.ID)
		})
	}
}

func TestService_RegisterUser(t *testing.T) {
	t.Parallel()
	svc, repo := newService(t)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u model.User) (model.User, error) {
			require.Equal(t, "ana", u.Username)
			require.True(t, u.IsAdmin)
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("segredo")))
			u.ID = 8
			return u, nil
		})

	user, err := svc.RegisterUser(context.Background(), model.UserCreateRequest{Username: "ana", Password: "segredo", IsAdmin: "on"})
	require.NoError(t, err)
	require.Equal(t, 8, user.ID)
}

func TestService_RegisterUserBlankUsername(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)

	_, err := svc.RegisterUser(context.Background(), model.UserCreateRequest{Username: "  ", Password: "segredo"})
	require.ErrorIs(t, err, errs.ErrInvalidForm)
}

func TestService_EnsureAdmin(t *testing.T) {
	t.Parallel()
	t.Run("exists", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().GetUserByUsername(gomock.Any(), "admin").Return(model.User{ID: 1}, nil)

		created, err := svc.EnsureAdmin(context.Background(), "admin", "secret")
		require.NoError(t, err)
		require.False(t, created)
	})
	t.Run("created", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().GetUserByUsername(gomock.Any(), "admin").Return(model.User{}, errs.ErrNotFound)
		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u model.User) (model.User, error) {
				require.True(t, u.IsAdmin)
				require.Equal(t, "admin", u.Role)
				return u, nil
			})

		created, err := svc.EnsureAdmin(context.Background(), "admin", "secret")
		require.NoError(t, err)
		require.True(t, created)
	})
}

func TestService_Reserve(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
	type mockBehavior func(r *repo_mocks.MockRepository)

	tests := []struct {
		name         string
		mockBehavior mockBehavior
		wantErr      error
	}{
		{
			name: "ok",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetBook(gomock.Any(), 2).Return(model.Book{ID: 2}, nil)
				r.EXPECT().GetReservation(gomock.Any(), 1, 2).Return(model.Reservation{}, errs.ErrNotFound)
				r.EXPECT().CreateReservation(gomock.Any(), 1, 2, now).
					Return(model.Reservation{ID: 5, UserID: 1, BookID: 2, ReservedAt: now}, nil)
			},
		},
		{
			name: "err. book missing",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetBook(gomock.Any(), 2).Return(model.Book{}, errs.ErrNotFound)
			},
			wantErr: errs.ErrNotFound,
		},
		{
			name: "err. already reserved",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetBook(gomock.Any(), 2).Return(model.Book{ID: 2}, nil)
				r.EXPECT().GetReservation(gomock.Any(), 1, 2).Return(model.Reservation{ID: 5}, nil)
			},
			wantErr: errs.ErrAlreadyReserved,
		},
		{
			name: "err. lost race",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetBook(gomock.Any(), 2).Return(model.Book{ID: 2}, nil)
				r.EXPECT().GetReservation(gomock.Any(), 1, 2).Return(model.Reservation{}, errs.ErrNotFound)
				r.EXPECT().CreateReservation(gomock.Any(), 1, 2, now).
					Return(model.Reservation{}, errors.Wrap(errs.ErrAlreadyExists, "reservation_user_book_key"))
			},
			wantErr: errs.ErrAlreadyReserved,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo := newService(t, service.WithClock(func() time.Time { return now }))
			tt.mockBehavior(repo)

			res, err := svc.Reserve(context.Background(), 1, 2)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, 5, res.ID)
			require.Equal(t, now, res.ReservedAt)
		})
	}
}

func TestService_Dashboard(t *testing.T) {
	t.Parallel()
	byAuthor := []model.GroupCount{{Key: "A", Count: 2}, {Key: "B", Count: 1}}
	byYear := []model.GroupCount{{Key: "2001", Count: 2}, {Key: "2002", Count: 1}}
	byPublisher := []model.GroupCount{{Key: model.DefaultPublisher, Count: 3}}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().Count(gomock.Any(), repository.TableBooks).Return(3, nil)
		repo.EXPECT().Count(gomock.Any(), repository.TableUsers).Return(2, nil)
		repo.EXPECT().Count(gomock.Any(), repository.TableReservations).Return(1, nil)
		repo.EXPECT().BooksGroupedBy(gomock.Any(), repository.GroupByAuthor).Return(byAuthor, nil)
		repo.EXPECT().BooksGroupedBy(gomock.Any(), repository.GroupByYear).Return(byYear, nil)
		repo.EXPECT().BooksGroupedBy(gomock.Any(), repository.GroupByPublisher).Return(byPublisher, nil)

		d, err := svc.Dashboard(context.Background())
		require.NoError(t, err)
		require.Equal(t, model.Dashboard{
			TotalBooks:        3,
			TotalUsers:        2,
			TotalReservations: 1,
			BooksByAuthor:     byAuthor,
			BooksByYear:       byYear,
			BooksByPublisher:  byPublisher,
		}, d)
	})
	t.Run("err", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		boom := errors.New("db down")
		repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, boom).AnyTimes()
		repo.EXPECT().BooksGroupedBy(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

		_, err := svc.Dashboard(context.Background())
		require.ErrorIs(t, err, boom)
	})
}

func TestService_Seed(t *testing.T) {
	t.Parallel()
	svc, repo := newService(t)
	inTx(repo)
	repo.EXPECT().BookTitleExists(gomock.Any(), "Livro A").Return(false, nil)
	repo.EXPECT().CreateBook(gomock.Any(), gomock.Any()).Return(model.Book{ID: 1}, nil)
	repo.EXPECT().BookTitleExists(gomock.Any(), "Livro B").Return(true, nil)

	csv := "Titulo do Livro,Autor,Categoria,Ano de Publicação,Ativo\n" +
		"Livro A,Autor A,Ficção,2001,TRUE\n" +
		"Livro C,Autor C,Ficção,desconhecido,TRUE\n" +
		"Livro B,Autor B,Poesia,2002,FALSE\n"

	n, err := svc.Seed(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	require.Equal(t, 1, n)
}
