package wire

import (
	"github.com/rfagner/filmes-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireFilme(r chi.Router, filmeHandler *adaptor.FilmeHandler) {
	r.Route("/filme", func(r chi.Router) {
		r.Get("/", filmeHandler.GetFilmes)
		r.Post("/", filmeHandler.CreateFilme)
		r.Get("/{id}", filmeHandler.GetFilmeByID)
		r.Put("/{id}", filmeHandler.UpdateFilme)
		r.Patch("/{id}", filmeHandler.PatchFilme)
		r.Delete("/{id}", filmeHandler.DeleteFilme)
	})
}
