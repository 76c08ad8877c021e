package assistant

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mediveda/healthbot/internal/chatlog"
)

type queryRequest struct {
	Query     string `json:"query"`
	SessionID string `json:"sessionId"`
}

type queryResult struct {
	*Response
	SessionID string `json:"sessionId"`
}

type feedbackRequest struct {
	QueryLogID string `json:"queryLogId"`
	Feedback   string `json:"feedback"`
}

type clickRequest struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	SessionID   string `json:"sessionId"`
}

// RegisterRoutes mounts the chatbot HTTP API. The logs store is used for
// the synchronous feedback and suggestion reads; all writes on the query
// path go through the assistant's background dispatcher.
func RegisterRoutes(r chi.Router, a *Assistant, logs *chatlog.Store) {
	r.Post("/api/chatbot/query", func(w http.ResponseWriter, req *http.Request) {
		var body queryRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		sessionID := body.SessionID
		if sessionID == "" {
			sessionID = "default"
		}

		resp := a.ProcessQuery(req.Context(), body.Query, sessionID)

		a.logs.LogQuery(chatlog.QueryLog{
			UserQuery:      body.Query,
			MatchedPattern: resp.Suggestion,
			Intent:         resp.Intent,
			Response:       resp.Answer,
			Confidence:     resp.Confidence,
			WasSuccessful:  resp.Intent != IntentFallback,
			SessionID:      sessionID,
		})

		writeJSON(w, http.StatusOK, queryResult{Response: resp, SessionID: sessionID})
	})

	r.Post("/api/chatbot/feedback", func(w http.ResponseWriter, req *http.Request) {
		var body feedbackRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err == nil && body.QueryLogID != "" {
			// Feedback is best effort; a bad id never surfaces to the widget.
			_ = logs.SetFeedback(req.Context(), body.QueryLogID, body.Feedback)
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/api/chatbot/suggestions", func(w http.ResponseWriter, req *http.Request) {
		suggestions, err := logs.Suggestions(req.Context(), req.URL.Query().Get("q"))
		if err != nil || suggestions == nil {
			suggestions = []string{}
		}
		writeJSON(w, http.StatusOK, map[string][]string{"suggestions": suggestions})
	})

	r.Post("/api/chatbot/click", func(w http.ResponseWriter, req *http.Request) {
		var body clickRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err == nil && body.ProductID != "" {
			a.logs.LogClick(chatlog.Click{
				ProductID:   body.ProductID,
				ProductName: body.ProductName,
				SessionID:   body.SessionID,
			})
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
