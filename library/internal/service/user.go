package service

import (
	"context"

	"github.com/Astemirdum/biblioteca/library/internal/errs"
	"github.com/Astemirdum/biblioteca/library/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func (s *Service) GetUser(ctx context.Context, id int) (model.User, error) {
	return s.repo.GetUser(ctx, id)
}

func (s *Service) RegisterUser(ctx context.Context, req model.UserCreateRequest) (model.User, error) {
	req.Normalize()
	if req.Username == "" || req.Password == "" {
		return model.User{}, errs.ErrInvalidForm
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return model.User{}, errors.Wrap(err, "hash password")
	}
	return s.repo.CreateUser(ctx, model.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         req.Role,
		IsAdmin:      req.Admin(),
	})
}

// Login returns errs.ErrInvalidCredentials for an unknown username and for a
// wrong password alike. A hash comparison runs in both cases.
func (s *Service) Login(ctx context.Context, username, password string) (model.User, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, errs.ErrNotFound) {
			return model.User{}, err
		}
		_ = bcrypt.CompareHashAndPassword(s.dummy(), []byte(password))
		return model.User{}, errs.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return model.User{}, errs.ErrInvalidCredentials
	}
	return user, nil
}

// EnsureAdmin creates an administrator named username unless that user exists.
func (s *Service) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	_, err := s.repo.GetUserByUsername(ctx, username)
	switch {
	case err == nil:
		return false, nil
	case !errors.Is(err, errs.ErrNotFound):
		return false, err
	}
	_, err = s.RegisterUser(ctx, model.UserCreateRequest{
		Username: username,
		Password: password,
		Role:     "admin",
		IsAdmin:  "true",
	})
	if errors.Is(err, errs.ErrAlreadyExists) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	s.log.Info("admin account created", zap.String("username", username))
	return true, nil
}

func (s *Service) dummy() []byte {
	s.dummyOnce.Do(func() {
		h, err := bcrypt.GenerateFromPassword([]byte("biblioteca:no-such-user"), s.hashCost)
		if err != nil {
			s.log.Error("dummy hash", zap.Error(err))
		}
		s.dummyHash = h
	})
	return s.dummyHash
}
