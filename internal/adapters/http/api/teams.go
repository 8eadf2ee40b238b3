// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strconv"
)

// TeamsHandler handles team formation requests.
type TeamsHandler struct {
	deps TeamDependencies
}

// NewTeamsHandler creates a new teams handler.
func NewTeamsHandler(deps TeamDependencies) *TeamsHandler {
	return &TeamsHandler{deps: deps}
}

// HandleFormTeams handles POST /teams/form?size=N requests. Size is
// optional; when absent the configured default applies. An explicit size
// must be a number of at least one.
func (h *TeamsHandler) HandleFormTeams(w http.ResponseWriter, r *http.Request) {
	const op = "api.form_teams"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	size := 0
	if raw := r.URL.Query().Get("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		if n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		size = n
	}
	teams, err := h.deps.FormTeams(r.Context(), size)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, teams)
}
