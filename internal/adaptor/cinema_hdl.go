package adaptor

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rfagner/filmes-api/internal/dto/request"
	"github.com/rfagner/filmes-api/internal/usecase"
	"github.com/rfagner/filmes-api/pkg/jsonpatch"
	"github.com/rfagner/filmes-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CinemaHandler struct {
	service usecase.CinemaService
	log     *zap.Logger
}

func NewCinemaHandler(service usecase.CinemaService, log *zap.Logger) *CinemaHandler {
	return &CinemaHandler{
		service: service,
		log:     log.With(zap.String("handler", "cinema")),
	}
}

// GetCinemas handles GET /cinema?skip=&take=
func (h *CinemaHandler) GetCinemas(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	params := &request.ListParams{
		Skip: utils.ParseInt(query.Get("skip"), 0),
		Take: utils.ParseInt(query.Get("take"), request.DefaultTake),
	}

	cinemas, total, err := h.service.List(r.Context(), params)
	if err != nil {
		respondError(w, h.log, err, "list cinemas")
		return
	}

	utils.ResponseList(w, total, cinemas)
}

// GetCinemaByID handles GET /cinema/{id}
func (h *CinemaHandler) GetCinemaByID(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseNotFound(w)
		return
	}

	cinema, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, h.log, err, "get cinema by ID")
		return
	}

	utils.ResponseSuccess(w, cinema)
}

// CreateCinema handles POST /cinema
func (h *CinemaHandler) CreateCinema(w http.ResponseWriter, r *http.Request) {
	var req request.CinemaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	cinema, err := h.service.Create(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "create cinema")
		return
	}

	location := fmt.Sprintf("/cinema/%d", cinema.ID)
	utils.ResponseCreated(w, location, cinema)
}

// UpdateCinema handles PUT /cinema/{id}
func (h *CinemaHandler) UpdateCinema(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseNotFound(w)
		return
	}

	var req request.CinemaUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.Update(r.Context(), id, &req); err != nil {
		respondError(w, h.log, err, "update cinema")
		return
	}

	utils.ResponseNoContent(w)
}

// PatchCinema handles PATCH /cinema/{id} with an RFC 6902 document.
func (h *CinemaHandler) PatchCinema(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseNotFound(w)
		return
	}

	var patch jsonpatch.Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.ResponseBadRequest(w, "Invalid patch document", nil)
		return
	}

	if err := h.service.Patch(r.Context(), id, patch); err != nil {
		respondError(w, h.log, err, "patch cinema")
		return
	}

	utils.ResponseNoContent(w)
}

// DeleteCinema handles DELETE /cinema/{id}
func (h *CinemaHandler) DeleteCinema(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseNotFound(w)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondError(w, h.log, err, "delete cinema")
		return
	}

	utils.ResponseNoContent(w)
}
