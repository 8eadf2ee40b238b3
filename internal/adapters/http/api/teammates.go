// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strings"

	"github.com/ohack/teamforge/internal/domain/roster"
)

// RosterHandler handles teammate search and catalog requests.
type RosterHandler struct {
	deps RosterDependencies
}

// NewRosterHandler creates a new roster handler.
func NewRosterHandler(deps RosterDependencies) *RosterHandler {
	return &RosterHandler{deps: deps}
}

// HandleGetTeammates handles GET /teammates requests.
// Query parameters: user_id (requester, excluded from results), search,
// interests and skills as comma-separated lists.
func (h *RosterHandler) HandleGetTeammates(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_teammates"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	q := r.URL.Query()
	c := roster.Criteria{
		Search:        q.Get("search"),
		Interests:     splitList(q.Get("interests")),
		Skills:        splitList(q.Get("skills")),
		ExcludeUserID: q.Get("user_id"),
	}
	profiles, err := h.deps.Teammates(r.Context(), c)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, profiles)
}

// HandleGetCatalog handles GET /catalog requests. It returns the distinct
// interests and skills present across the roster, in first-seen order.
func (h *RosterHandler) HandleGetCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Catalog(r.Context()))
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
