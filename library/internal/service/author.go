package service

import (
	"context"

	"github.com/Astemirdum/biblioteca/library/internal/errs"
	"github.com/Astemirdum/biblioteca/library/internal/model"
	"github.com/Astemirdum/biblioteca/library/internal/repository"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// CreateAuthor rejects a name that is already taken with errs.ErrAlreadyExists,
// both on the pre-check and when the unique constraint catches a concurrent insert.
func (s *Service) CreateAuthor(ctx context.Context, req model.AuthorRequest) (model.Author, error) {
	req.Normalize()
	name := req.Name
	if name == "" {
		return model.Author{}, errs.ErrInvalidForm
	}
	_, err := s.repo.GetAuthorByName(ctx, name)
	switch {
	case err == nil:
		return model.Author{}, errs.ErrAlreadyExists
	case !errors.Is(err, errs.ErrNotFound):
		return model.Author{}, err
	}

	author := model.Author{Name: name}
	if bio := req.Biography; bio != "" {
		author.Biography = &bio
	}

	err = s.repo.WithTx(ctx, func(tx repository.Repository) error {
		created, err := tx.CreateAuthor(ctx, author)
		if err != nil {
			return err
		}
		author = created
		return nil
	})
	if err != nil {
		if !errors.Is(err, errs.ErrAlreadyExists) {
			s.log.Error("CreateAuthor", zap.String("nome", name), zap.Error(err))
		}
		return model.Author{}, err
	}
	return author, nil
}
