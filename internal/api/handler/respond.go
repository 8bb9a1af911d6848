package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ricirt/webservice/internal/domain"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// NotFound answers requests for paths the router does not know.
func NotFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusNotFound, domain.ErrNotFound.Error())
}

// MethodNotAllowed returns a handler for known paths hit with the wrong
// method. allow lists the methods the router does accept.
func MethodNotAllowed(allow ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, m := range allow {
			w.Header().Add("Allow", m)
		}
		respondError(w, http.StatusMethodNotAllowed, domain.ErrMethodNotAllowed.Error())
	}
}
