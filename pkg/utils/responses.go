package utils

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// Response is the envelope used for error bodies. Successful responses
// carry the resource representation directly.
type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Errors  any    `json:"errors,omitempty"`
}

// ResponseJSON writes v as a JSON body with the given status code.
func ResponseJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, v any) {
	ResponseJSON(w, http.StatusOK, v)
}

// ResponseList returns 200 OK with the total collection size exposed in
// the X-Total-Count header.
func ResponseList(w http.ResponseWriter, total int64, v any) {
	w.Header().Set("X-Total-Count", strconv.FormatInt(total, 10))
	ResponseJSON(w, http.StatusOK, v)
}

// ResponseCreated returns 201 Created with a Location header pointing at
// the new resource.
func ResponseCreated(w http.ResponseWriter, location string, v any) {
	w.Header().Set("Location", location)
	ResponseJSON(w, http.StatusCreated, v)
}

// returns 204 No Content
func ResponseNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// ------------- Error responses -------------

// returns 400 Bad Request with the violated rules
func ResponseBadRequest(w http.ResponseWriter, message string, errors any) {
	ResponseJSON(w, http.StatusBadRequest, Response{Status: false, Message: message, Errors: errors})
}

// returns 404 Not Found without a body
func ResponseNotFound(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusInternalServerError, Response{Status: false, Message: message})
}
