package seed

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/Astemirdum/biblioteca/library/internal/model"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

const header = "Titulo do Livro,Autor,Categoria,Ano de Publicação,Ativo\n"

func atoi(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

type memStore struct {
	books []model.Book
}

func (m *memStore) BookTitleExists(_ context.Context, title string) (bool, error) {
	for _, b := range m.books {
		if b.Title == title {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) CreateBook(_ context.Context, book model.Book) (model.Book, error) {
	book.ID = len(m.books) + 1
	m.books = append(m.books, book)
	return book, nil
}

func TestParse(t *testing.T) {
	t.Parallel()
	in := "\ufeff" + header +
		"O Cortiço,Aluísio Azevedo,Romance,1890,TRUE\n" +
		"Sem Ano,Anônimo,Conto,??,TRUE\n" +
		"\"Vidas Secas, edição\",Graciliano Ramos,Romance, 1938 ,false\n"

	books, skipped, err := Parse(strings.NewReader(in), atoi)
	require.NoError(t, err)
	require.Equal(t, []int{3}, skipped)
	require.Equal(t, []model.Book{
		{Title: "O Cortiço", Author: "Aluísio Azevedo", Category: "Romance", Year: 1890, Publisher: model.DefaultPublisher, Active: true},
		{Title: "Vidas Secas, edição", Author: "Graciliano Ramos", Category: "Romance", Year: 1938, Publisher: model.DefaultPublisher},
	}, books)
}

func TestParse_ColumnOrder(t *testing.T) {
	t.Parallel()
	in := "Ativo,Ano de Publicação,Categoria,Autor,Titulo do Livro\nTRUE,2005,Poesia,Autora,Versos\n"

	books, _, err := Parse(strings.NewReader(in), atoi)
	require.NoError(t, err)
	require.Len(t, books, 1)
	require.Equal(t, "Versos", books[0].Title)
	require.Equal(t, 2005, books[0].Year)
	require.True(t, books[0].Active)
}

func TestParse_MissingColumn(t *testing.T) {
	t.Parallel()
	_, _, err := Parse(strings.NewReader("Titulo do Livro,Autor\nA,B\n"), atoi)
	require.Error(t, err)

	_, _, err = Parse(strings.NewReader(""), atoi)
	require.Error(t, err)
}

func TestLoad_Idempotent(t *testing.T) {
	t.Parallel()
	in := header +
		"A,X,C,2001,TRUE\n" +
		"B,Y,C,2002,FALSE\n" +
		"A,Z,C,2003,TRUE\n"
	books, _, err := Parse(strings.NewReader(in), atoi)
	require.NoError(t, err)

	store := &memStore{}
	n, err := Load(context.Background(), store, books)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, "X", store.books[0].Author)

	n, err = Load(context.Background(), store, books)
	require.NoError(t, err)
	require.Zero(t, n)
	require.Len(t, store.books, 2)
}

type failingStore struct{ memStore }

func (f *failingStore) CreateBook(context.Context, model.Book) (model.Book, error) {
	return model.Book{}, errors.New("disk full")
}

func TestLoad_Error(t *testing.T) {
	t.Parallel()
	_, err := Load(context.Background(), &failingStore{}, []model.Book{{Title: "A"}})
	require.ErrorContains(t, err, "disk full")
}

func TestLoad_TitleMatchIgnoresSurroundingSpaceOnly(t *testing.T) {
	t.Parallel()
	in := header +
		"Dom Casmurro,X,C,1899,TRUE\n" +
		"  Dom Casmurro  ,X,C,1899,TRUE\n" +
		"dom casmurro,X,C,1899,TRUE\n"
	books, _, err := Parse(strings.NewReader(in), atoi)
	require.NoError(t, err)

	store := &memStore{}
	n, err := Load(context.Background(), store, books)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, "Dom Casmurro", store.books[0].Title)
	require.Equal(t, "dom casmurro", store.books[1].Title)
}
