package service

import (
	"sync"
	"time"

	"github.com/Astemirdum/biblioteca/library/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	log  *zap.Logger
	repo repository.Repository

	now      func() time.Time
	hashCost int

	dummyOnce sync.Once
	dummyHash []byte
}

type Option func(*Service)

func WithHashCost(cost int) Option {
	return func(s *Service) {
		s.hashCost = cost
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(repo repository.Repository, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:      log.Named("service"),
		repo:     repo,
		now:      time.Now,
		hashCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
