package handler

import (
	"context"

	"github.com/Astemirdum/biblioteca/library/internal/model"
	"github.com/Astemirdum/biblioteca/library/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LibraryService interface {
	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBook(ctx context.Context, id int) (model.Book, error)
	CreateBook(ctx context.Context, req model.BookRequest) (model.Book, error)
	UpdateBook(ctx context.Context, id int, req model.BookRequest) error
	DeleteBook(ctx context.Context, id int) error

	CreateAuthor(ctx context.Context, req model.AuthorRequest) (model.Author, error)

	Login(ctx context.Context, username, password string) (model.User, error)
	GetUser(ctx context.Context, id int) (model.User, error)
	RegisterUser(ctx context.Context, req model.UserCreateRequest) (model.User, error)

	Reserve(ctx context.Context, userID, bookID int) (model.Reservation, error)
	ListReservations(ctx context.Context, userID int) ([]model.UserReservation, error)

	Dashboard(ctx context.Context) (model.Dashboard, error)
}

var _ LibraryService = (*service.Service)(nil)
