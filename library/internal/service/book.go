package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/Astemirdum/biblioteca/library/internal/errs"
	"github.com/Astemirdum/biblioteca/library/internal/model"
)

func (s *Service) ListBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.ListBooks(ctx)
}

func (s *Service) GetBook(ctx context.Context, id int) (model.Book, error) {
	return s.repo.GetBook(ctx, id)
}

// CreateBook stores a new, inactive book. A blank publisher becomes model.DefaultPublisher.
func (s *Service) CreateBook(ctx context.Context, req model.BookRequest) (model.Book, error) {
	book, err := bookFromRequest(req)
	if err != nil {
		return model.Book{}, err
	}
	return s.repo.CreateBook(ctx, book)
}

// UpdateBook overwrites the five editable fields; the active flag is left as is.
func (s *Service) UpdateBook(ctx context.Context, id int, req model.BookRequest) error {
	book, err := bookFromRequest(req)
	if err != nil {
		return err
	}
	book.ID = id
	return s.repo.UpdateBook(ctx, book)
}

func (s *Service) DeleteBook(ctx context.Context, id int) error {
	return s.repo.DeleteBook(ctx, id)
}

func bookFromRequest(req model.BookRequest) (model.Book, error) {
	req.Normalize()
	if req.Title == "" || req.Author == "" || req.Category == "" {
		return model.Book{}, errs.ErrInvalidForm
	}
	year, err := ParseYear(req.Year)
	if err != nil {
		return model.Book{}, err
	}
	publisher := req.Publisher
	if publisher == "" {
		publisher = model.DefaultPublisher
	}
	return model.Book{
		Title:     req.Title,
		Author:    req.Author,
		Category:  req.Category,
		Year:      year,
		Publisher: publisher,
	}, nil
}

const maxYear = 9999

// ParseYear accepts a year in [0, maxYear]; anything else is errs.ErrInvalidYear.
func ParseYear(raw string) (int, error) {
	year, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
	if err != nil || year < 0 || year > maxYear {
		return 0, errs.ErrInvalidYear
	}
	return int(year), nil
}
