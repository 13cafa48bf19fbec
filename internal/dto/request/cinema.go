package request

import "github.com/rfagner/filmes-api/internal/data/entity"

type CinemaRequest struct {
	Nome string `json:"nome" validate:"required,max=100"`
}

type CinemaUpdateRequest struct {
	Nome string `json:"nome" validate:"required,max=100"`
}

func (r *CinemaRequest) ToEntity() *entity.Cinema {
	return &entity.Cinema{
		Nome: r.Nome,
	}
}

func CinemaToUpdateRequest(cinema *entity.Cinema) CinemaUpdateRequest {
	return CinemaUpdateRequest{
		Nome: cinema.Nome,
	}
}

func (r *CinemaUpdateRequest) ApplyTo(cinema *entity.Cinema) {
	cinema.Nome = r.Nome
}
