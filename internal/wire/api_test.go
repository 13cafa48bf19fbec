package wire

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/rfagner/filmes-api/internal/data/entity"
	"github.com/rfagner/filmes-api/internal/data/repository"

	"go.uber.org/zap"
)

// In-memory repositories so the full router, handlers and services can be
// exercised without a database.

type memFilmeRepo struct {
	filmes map[int64]entity.Filme
	nextID int64
}

func (r *memFilmeRepo) Insert(_ context.Context, filme *entity.Filme) error {
	r.nextID++
	filme.ID = r.nextID
	r.filmes[filme.ID] = *filme
	return nil
}

func (r *memFilmeRepo) FindByID(_ context.Context, id int64) (*entity.Filme, error) {
	filme, ok := r.filmes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &filme, nil
}

func (r *memFilmeRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Filme, error) {
	ids := make([]int64, 0, len(r.filmes))
	for id := range r.filmes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	filmes := make([]*entity.Filme, 0)
	for i := offset; i < len(ids) && len(filmes) < limit; i++ {
		filme := r.filmes[ids[i]]
		filmes = append(filmes, &filme)
	}
	return filmes, nil
}

func (r *memFilmeRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(r.filmes)), nil
}

func (r *memFilmeRepo) Update(_ context.Context, filme *entity.Filme) error {
	if _, ok := r.filmes[filme.ID]; !ok {
		return repository.ErrNotFound
	}
	r.filmes[filme.ID] = *filme
	return nil
}

func (r *memFilmeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.filmes[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.filmes, id)
	return nil
}

type memCinemaRepo struct {
	cinemas map[int64]entity.Cinema
	nextID  int64
}

func (r *memCinemaRepo) Insert(_ context.Context, cinema *entity.Cinema) error {
	r.nextID++
	cinema.ID = r.nextID
	r.cinemas[cinema.ID] = *cinema
	return nil
}

func (r *memCinemaRepo) FindByID(_ context.Context, id int64) (*entity.Cinema, error) {
	cinema, ok := r.cinemas[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &cinema, nil
}

func (r *memCinemaRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Cinema, error) {
	ids := make([]int64, 0, len(r.cinemas))
	for id := range r.cinemas {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	cinemas := make([]*entity.Cinema, 0)
	for i := offset; i < len(ids) && len(cinemas) < limit; i++ {
		cinema := r.cinemas[ids[i]]
		cinemas = append(cinemas, &cinema)
	}
	return cinemas, nil
}

func (r *memCinemaRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(r.cinemas)), nil
}

func (r *memCinemaRepo) Update(_ context.Context, cinema *entity.Cinema) error {
	if _, ok := r.cinemas[cinema.ID]; !ok {
		return repository.ErrNotFound
	}
	r.cinemas[cinema.ID] = *cinema
	return nil
}

func (r *memCinemaRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.cinemas[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.cinemas, id)
	return nil
}

func newTestApp() *App {
	repo := &repository.Repository{
		Filme:  &memFilmeRepo{filmes: make(map[int64]entity.Filme)},
		Cinema: &memCinemaRepo{cinemas: make(map[int64]entity.Cinema)},
	}
	return Wiring(repo, zap.NewNop())
}

func doRequest(t *testing.T, app *App, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func TestFilmeLifecycleOverHTTP(t *testing.T) {
	app := newTestApp()

	// Create
	rec := doRequest(t, app, http.MethodPost, "/filme", `{"titulo":"Duna","genero":"Ficção","duracao":155}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST status = %d, body %s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "/filme/1" {
		t.Errorf("Location = %q, want /filme/1", loc)
	}
	var created map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	if created["id"] != float64(1) || created["titulo"] != "Duna" {
		t.Errorf("created body = %v", created)
	}

	// Fetch back through the Location reference
	rec = doRequest(t, app, http.MethodGet, "/filme/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET status = %d", rec.Code)
	}
	var fetched map[string]any
	json.Unmarshal(rec.Body.Bytes(), &fetched)
	if fetched["titulo"] != "Duna" || fetched["genero"] != "Ficção" || fetched["duracao"] != float64(155) {
		t.Errorf("fetched = %v", fetched)
	}

	// Patch blanking a required field is rejected and changes nothing
	rec = doRequest(t, app, http.MethodPatch, "/filme/1", `[{"op":"replace","path":"/titulo","value":""}]`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("PATCH status = %d, want 400", rec.Code)
	}
	var errBody struct {
		Status  bool              `json:"status"`
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &errBody); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if errBody.Status || len(errBody.Errors) == 0 {
		t.Errorf("error body = %+v, want violations", errBody)
	}
	if _, ok := errBody.Errors["titulo"]; !ok {
		t.Errorf("errors = %v, want titulo", errBody.Errors)
	}

	rec = doRequest(t, app, http.MethodGet, "/filme/1", "")
	json.Unmarshal(rec.Body.Bytes(), &fetched)
	if fetched["titulo"] != "Duna" {
		t.Errorf("titulo after failed patch = %v, want Duna", fetched["titulo"])
	}

	// A valid patch lands
	rec = doRequest(t, app, http.MethodPatch, "/filme/1", `[{"op":"replace","path":"/genero","value":"Aventura"}]`)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("PATCH status = %d, body %s", rec.Code, rec.Body.String())
	}

	// Full update
	rec = doRequest(t, app, http.MethodPut, "/filme/1", `{"titulo":"Duna 2","genero":"Ficção","duracao":166}`)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("PUT status = %d, body %s", rec.Code, rec.Body.String())
	}

	// Delete, then delete again
	rec = doRequest(t, app, http.MethodDelete, "/filme/1", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("DELETE status = %d", rec.Code)
	}
	rec = doRequest(t, app, http.MethodDelete, "/filme/1", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("second DELETE status = %d, want 404", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("404 carried a body: %s", rec.Body.String())
	}
}

func TestFilmeCreateValidationOverHTTP(t *testing.T) {
	app := newTestApp()

	rec := doRequest(t, app, http.MethodPost, "/filme", `{"genero":"Ficção"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var errBody struct {
		Errors map[string]string `json:"errors"`
	}
	json.Unmarshal(rec.Body.Bytes(), &errBody)
	for _, field := range []string{"titulo", "duracao"} {
		if _, ok := errBody.Errors[field]; !ok {
			t.Errorf("errors = %v, want %s", errBody.Errors, field)
		}
	}

	rec = doRequest(t, app, http.MethodPost, "/filme", `not json`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("malformed body status = %d, want 400", rec.Code)
	}
}

func TestFilmeListPaginationOverHTTP(t *testing.T) {
	app := newTestApp()

	for _, titulo := range []string{"A", "B", "C"} {
		body := `{"titulo":"` + titulo + `","genero":"g","duracao":90}`
		if rec := doRequest(t, app, http.MethodPost, "/filme", body); rec.Code != http.StatusCreated {
			t.Fatalf("seed %s: %d", titulo, rec.Code)
		}
	}

	rec := doRequest(t, app, http.MethodGet, "/filme?skip=1&take=1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if total := rec.Header().Get("X-Total-Count"); total != "3" {
		t.Errorf("X-Total-Count = %q, want 3", total)
	}
	var page []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode page: %v", err)
	}
	if len(page) != 1 || page[0]["titulo"] != "B" {
		t.Errorf("page = %v, want [B]", page)
	}

	// Out-of-range skip is an empty array, not an error.
	rec = doRequest(t, app, http.MethodGet, "/filme?skip=100", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("body = %s, want []", body)
	}

	// Malformed paging falls back to defaults.
	rec = doRequest(t, app, http.MethodGet, "/filme?skip=x&take=-1", "")
	json.Unmarshal(rec.Body.Bytes(), &page)
	if len(page) != 3 {
		t.Errorf("fallback page has %d rows, want 3", len(page))
	}
}

func TestFilmeNotFoundOverHTTP(t *testing.T) {
	app := newTestApp()

	paths := []struct {
		method string
		target string
		body   string
	}{
		{http.MethodGet, "/filme/7", ""},
		{http.MethodPut, "/filme/7", `{"titulo":"x","genero":"y","duracao":1}`},
		{http.MethodPatch, "/filme/7", `[{"op":"remove","path":"/titulo"}]`},
		{http.MethodDelete, "/filme/7", ""},
		{http.MethodGet, "/filme/abc", ""},
	}

	for _, tc := range paths {
		rec := doRequest(t, app, tc.method, tc.target, tc.body)
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s %s status = %d, want 404", tc.method, tc.target, rec.Code)
		}
	}
}

func TestCinemaLifecycleOverHTTP(t *testing.T) {
	app := newTestApp()

	rec := doRequest(t, app, http.MethodPost, "/cinema", `{"nome":"Cine Central"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST status = %d, body %s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "/cinema/1" {
		t.Errorf("Location = %q", loc)
	}

	rec = doRequest(t, app, http.MethodPost, "/cinema", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty nome status = %d, want 400", rec.Code)
	}

	rec = doRequest(t, app, http.MethodPatch, "/cinema/1", `[{"op":"replace","path":"/nome","value":"Cine Sul"}]`)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("PATCH status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, app, http.MethodGet, "/cinema/1", "")
	var fetched map[string]any
	json.Unmarshal(rec.Body.Bytes(), &fetched)
	if fetched["nome"] != "Cine Sul" {
		t.Errorf("nome = %v", fetched["nome"])
	}

	rec = doRequest(t, app, http.MethodDelete, "/cinema/1", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("DELETE status = %d", rec.Code)
	}
	rec = doRequest(t, app, http.MethodGet, "/cinema/1", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("GET after delete status = %d, want 404", rec.Code)
	}
}

func TestHealthAndRequestID(t *testing.T) {
	app := newTestApp()

	rec := doRequest(t, app, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK || rec.Body.String() != "OK" {
		t.Errorf("health = %d %q", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	echo := httptest.NewRecorder()
	app.Router.ServeHTTP(echo, req)
	if got := echo.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Errorf("X-Request-ID = %q, want echoed abc-123", got)
	}
}
