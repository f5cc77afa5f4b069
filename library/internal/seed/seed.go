// Package seed loads the initial catalog from a CSV export.
package seed

import (
	"context"
	"encoding/csv"
	"io"
	"strings"

	"github.com/Astemirdum/biblioteca/library/internal/model"
	"github.com/pkg/errors"
)

const (
	ColumnTitle    = "Titulo do Livro"
	ColumnAuthor   = "Autor"
	ColumnCategory = "Categoria"
	ColumnYear     = "Ano de Publicação"
	ColumnActive   = "Ativo"
)

var requiredColumns = []string{ColumnTitle, ColumnAuthor, ColumnCategory, ColumnYear, ColumnActive}

// Store is the part of the repository the import writes through.
type Store interface {
	BookTitleExists(ctx context.Context, title string) (bool, error)
	CreateBook(ctx context.Context, book model.Book) (model.Book, error)
}

// Parse reads the CSV. Rows whose year is not a number are returned by line
// number in skipped instead of failing the whole file.
func Parse(r io.Reader, parseYear func(string) (int, error)) (books []model.Book, skipped []int, err error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, nil, errors.Wrap(err, "read header")
	}
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, nil, errors.Errorf("missing column %q", col)
		}
	}

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, errors.Wrap(err, "read row")
		}
		line, _ := cr.FieldPos(0)

		year, err := parseYear(rec[idx[ColumnYear]])
		if err != nil {
			skipped = append(skipped, line)
			continue
		}
		books = append(books, model.Book{
			Title:     strings.TrimSpace(rec[idx[ColumnTitle]]),
			Author:    strings.TrimSpace(rec[idx[ColumnAuthor]]),
			Category:  strings.TrimSpace(rec[idx[ColumnCategory]]),
			Year:      year,
			Publisher: model.DefaultPublisher,
			Active:    strings.TrimSpace(rec[idx[ColumnActive]]) == "TRUE",
		})
	}
	return books, skipped, nil
}

// Load inserts every book whose exact title is not stored yet and returns how
// many were inserted. Running it again with the same books inserts nothing.
func Load(ctx context.Context, store Store, books []model.Book) (int, error) {
	inserted := 0
	for _, b := range books {
		exists, err := store.BookTitleExists(ctx, b.Title)
		if err != nil {
			return inserted, err
		}
		if exists {
			continue
		}
		if _, err := store.CreateBook(ctx, b); err != nil {
			return inserted, errors.Wrapf(err, "insert %q", b.Title)
		}
		inserted++
	}
	return inserted, nil
}
