// Package dashboard serves the curation UI: store health stats, the
// unanswered-query review queue and a live chat console for trying the
// assistant.
package dashboard

import (
	"github.com/go-chi/chi/v5"

	"github.com/mediveda/healthbot/internal/assistant"
	"github.com/mediveda/healthbot/internal/catalog"
	"github.com/mediveda/healthbot/internal/chatlog"
	"github.com/mediveda/healthbot/internal/knowledge"
)

// Dashboard provides the admin dashboard and chat console.
type Dashboard struct {
	assistant *assistant.Assistant
	catalog   *catalog.Store
	knowledge *knowledge.Store
	logs      *chatlog.Store
}

// New creates a new Dashboard.
func New(a *assistant.Assistant, cat *catalog.Store, kb *knowledge.Store, logs *chatlog.Store) *Dashboard {
	return &Dashboard{
		assistant: a,
		catalog:   cat,
		knowledge: kb,
		logs:      logs,
	}
}

// RegisterRoutes mounts all dashboard routes onto the given router.
func (d *Dashboard) RegisterRoutes(r chi.Router) {
	r.Get("/", d.ServeIndex)
	r.Get("/api/dashboard/stats", d.handleStats)
	r.Get("/api/dashboard/recent", d.handleRecent)
	r.Get("/api/dashboard/knowledge/{id}/preview", d.handlePreview)
	r.Get("/ws/chat", d.handleWebSocket)
}
