package request

import "github.com/rfagner/filmes-api/internal/data/entity"

type FilmeRequest struct {
	Titulo   string `json:"titulo" validate:"required,max=50"`
	Genero   string `json:"genero" validate:"required,max=50"`
	Duracao  int    `json:"duracao" validate:"required,min=1,max=600"`
	CinemaID *int64 `json:"cinemaId"`
}

// FilmeUpdateRequest carries the full replacement state for PUT and is
// also the projection a PATCH document is applied to. No omitempty: the
// patch layer needs every field present in the JSON projection.
type FilmeUpdateRequest struct {
	Titulo   string `json:"titulo" validate:"required,max=50"`
	Genero   string `json:"genero" validate:"required,max=50"`
	Duracao  int    `json:"duracao" validate:"required,min=1,max=600"`
	CinemaID *int64 `json:"cinemaId"`
}

// ToEntity maps a creation request to a new row. The id stays unset; the
// datastore assigns it on insert.
func (r *FilmeRequest) ToEntity() *entity.Filme {
	return &entity.Filme{
		Titulo:   r.Titulo,
		Genero:   r.Genero,
		Duracao:  r.Duracao,
		CinemaID: r.CinemaID,
	}
}

// FilmeToUpdateRequest projects an existing row into the update shape,
// the starting point for patch application.
func FilmeToUpdateRequest(filme *entity.Filme) FilmeUpdateRequest {
	return FilmeUpdateRequest{
		Titulo:   filme.Titulo,
		Genero:   filme.Genero,
		Duracao:  filme.Duracao,
		CinemaID: filme.CinemaID,
	}
}

// ApplyTo overwrites every mutable field of the row. The id is never
// touched.
func (r *FilmeUpdateRequest) ApplyTo(filme *entity.Filme) {
	filme.Titulo = r.Titulo
	filme.Genero = r.Genero
	filme.Duracao = r.Duracao
	filme.CinemaID = r.CinemaID
}
