package usecase

import (
	"github.com/rfagner/filmes-api/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Filme  FilmeService
	Cinema CinemaService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Filme:  NewFilmeService(repo.Filme, log),
		Cinema: NewCinemaService(repo.Cinema, log),
	}
}
