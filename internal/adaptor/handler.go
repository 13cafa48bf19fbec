package adaptor

import (
	"github.com/rfagner/filmes-api/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Filme  *FilmeHandler
	Cinema *CinemaHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Filme:  NewFilmeHandler(service.Filme, log),
		Cinema: NewCinemaHandler(service.Cinema, log),
	}
}
