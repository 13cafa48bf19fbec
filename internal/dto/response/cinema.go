package response

import "github.com/rfagner/filmes-api/internal/data/entity"

type CinemaResponse struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

// Helper converter
func CinemaToResponse(cinema *entity.Cinema) CinemaResponse {
	return CinemaResponse{
		ID:   cinema.ID,
		Nome: cinema.Nome,
	}
}
