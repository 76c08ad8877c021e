package chatlog

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts curation endpoints under /api/chatlog.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Route("/api/chatlog", func(r chi.Router) {
		r.Get("/unanswered", handleUnanswered(store))
	})
}

func handleUnanswered(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				limit = n
			}
		}

		queries, err := store.ListUnanswered(r.Context(), limit)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if queries == nil {
			queries = []UnansweredQuery{}
		}
		writeJSON(w, http.StatusOK, queries)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
