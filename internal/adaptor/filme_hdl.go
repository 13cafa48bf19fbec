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

type FilmeHandler struct {
	service usecase.FilmeService
	log     *zap.Logger
}

func NewFilmeHandler(service usecase.FilmeService, log *zap.Logger) *FilmeHandler {
	return &FilmeHandler{
		service: service,
		log:     log.With(zap.String("handler", "filme")),
	}
}

// GetFilmes handles GET /filme?skip=&take=
func (h *FilmeHandler) GetFilmes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	params := &request.ListParams{
		Skip: utils.ParseInt(query.Get("skip"), 0),
		Take: utils.ParseInt(query.Get("take"), request.DefaultTake),
	}

	filmes, total, err := h.service.List(r.Context(), params)
	if err != nil {
		respondError(w, h.log, err, "list filmes")
		return
	}

	utils.ResponseList(w, total, filmes)
}

// GetFilmeByID handles GET /filme/{id}
func (h *FilmeHandler) GetFilmeByID(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseNotFound(w)
		return
	}

	filme, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, h.log, err, "get filme by ID")
		return
	}

	utils.ResponseSuccess(w, filme)
}

// CreateFilme handles POST /filme
func (h *FilmeHandler) CreateFilme(w http.ResponseWriter, r *http.Request) {
	var req request.FilmeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	filme, err := h.service.Create(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "create filme")
		return
	}

	location := fmt.Sprintf("/filme/%d", filme.ID)
	utils.ResponseCreated(w, location, filme)
}

// UpdateFilme handles PUT /filme/{id}
func (h *FilmeHandler) UpdateFilme(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseNotFound(w)
		return
	}

	var req request.FilmeUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.Update(r.Context(), id, &req); err != nil {
		respondError(w, h.log, err, "update filme")
		return
	}

	utils.ResponseNoContent(w)
}

// PatchFilme handles PATCH /filme/{id} with an RFC 6902 document.
func (h *FilmeHandler) PatchFilme(w http.ResponseWriter, r *http.Request) {
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
		respondError(w, h.log, err, "patch filme")
		return
	}

	utils.ResponseNoContent(w)
}

// DeleteFilme handles DELETE /filme/{id}
func (h *FilmeHandler) DeleteFilme(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseNotFound(w)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondError(w, h.log, err, "delete filme")
		return
	}

	utils.ResponseNoContent(w)
}
