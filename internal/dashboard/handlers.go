package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mediveda/healthbot/internal/chatlog"
	"github.com/mediveda/healthbot/internal/knowledge"
)

// statsResponse is the JSON response for the stats endpoint.
type statsResponse struct {
	Products         int `json:"products"`
	KnowledgeEntries int `json:"knowledge_entries"`
	Unanswered       int `json:"unanswered"`
	NeedsReview      int `json:"needs_review"`
}

// recentResponse is the JSON response for the recent activity endpoint.
type recentResponse struct {
	Unanswered []chatlog.UnansweredQuery `json:"unanswered"`
	Knowledge  []knowledge.Entry         `json:"knowledge"`
}

func (d *Dashboard) handleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := d.catalog.Count(ctx)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	entries, err := d.knowledge.List(ctx)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	unanswered, err := d.logs.ListUnanswered(ctx, 1000)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	needsReview, _ := d.logs.CountNeedingReview(ctx)

	writeJSON(w, http.StatusOK, statsResponse{
		Products:         products,
		KnowledgeEntries: len(entries),
		Unanswered:       len(unanswered),
		NeedsReview:      needsReview,
	})
}

func (d *Dashboard) handleRecent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	unanswered, err := d.logs.ListUnanswered(ctx, 10)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	entries, err := d.knowledge.List(ctx)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if len(entries) > 10 {
		entries = entries[:10]
	}

	if unanswered == nil {
		unanswered = []chatlog.UnansweredQuery{}
	}
	if entries == nil {
		entries = []knowledge.Entry{}
	}

	writeJSON(w, http.StatusOK, recentResponse{
		Unanswered: unanswered,
		Knowledge:  entries,
	})
}

// handlePreview renders a knowledge entry's markdown answer as HTML for
// the review queue.
func (d *Dashboard) handlePreview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	entries, err := d.knowledge.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	for _, entry := range entries {
		if entry.ID != id {
			continue
		}
		html, err := renderMarkdown(entry.Answer)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"id": entry.ID, "html": html})
		return
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "knowledge entry not found"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
