package repository

import (
	"github.com/rfagner/filmes-api/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Filme  FilmeRepository
	Cinema CinemaRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Filme:  NewFilmeRepository(db, log),
		Cinema: NewCinemaRepository(db, log),
	}
}
