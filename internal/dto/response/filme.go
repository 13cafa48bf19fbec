package response

import "github.com/rfagner/filmes-api/internal/data/entity"

type FilmeResponse struct {
	ID       int64  `json:"id"`
	Titulo   string `json:"titulo"`
	Genero   string `json:"genero"`
	Duracao  int    `json:"duracao"`
	CinemaID *int64 `json:"cinemaId,omitempty"`
}

// Helper converter
func FilmeToResponse(filme *entity.Filme) FilmeResponse {
	return FilmeResponse{
		ID:       filme.ID,
		Titulo:   filme.Titulo,
		Genero:   filme.Genero,
		Duracao:  filme.Duracao,
		CinemaID: filme.CinemaID,
	}
}
