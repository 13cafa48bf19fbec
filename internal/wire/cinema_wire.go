package wire

import (
	"github.com/rfagner/filmes-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCinema(r chi.Router, cinemaHandler *adaptor.CinemaHandler) {
	r.Route("/cinema", func(r chi.Router) {
		r.Get("/", cinemaHandler.GetCinemas)
		r.Post("/", cinemaHandler.CreateCinema)
		r.Get("/{id}", cinemaHandler.GetCinemaByID)
		r.Put("/{id}", cinemaHandler.UpdateCinema)
		r.Patch("/{id}", cinemaHandler.PatchCinema)
		r.Delete("/{id}", cinemaHandler.DeleteCinema)
	})
}
