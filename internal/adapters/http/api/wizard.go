// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/ohack/teamforge/internal/domain/wizard"
)

// WizardHandler handles team-creation wizard session requests.
type WizardHandler struct {
	deps WizardDependencies
}

// NewWizardHandler creates a new wizard handler.
func NewWizardHandler(deps WizardDependencies) *WizardHandler {
	return &WizardHandler{deps: deps}
}

// HandleSessions handles POST /wizard/sessions requests.
func (h *WizardHandler) HandleSessions(w http.ResponseWriter, r *http.Request) {
	const op = "api.start_wizard"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	view, err := h.deps.StartWizard(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

// HandleSessionByID routes /wizard/sessions/{id} and its step actions:
//
//	GET    /wizard/sessions/{id}         current state
//	PATCH  /wizard/sessions/{id}         apply a field patch
//	DELETE /wizard/sessions/{id}         abandon
//	POST   /wizard/sessions/{id}/next    advance a step
//	POST   /wizard/sessions/{id}/back    go back a step
//	POST   /wizard/sessions/{id}/submit  final validation
func (h *WizardHandler) HandleSessionByID(w http.ResponseWriter, r *http.Request) {
	const op = "api.wizard_session"
	rest := strings.TrimPrefix(r.URL.Path, "/wizard/sessions/")
	id, action, _ := strings.Cut(rest, "/")
	if id == "" || strings.Contains(action, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	if action != "" {
		h.handleAction(w, r, id, action)
		return
	}

	switch r.Method {
	case http.MethodGet:
		view, err := h.deps.WizardView(r.Context(), id)
		if err != nil {
			h.writeWizardError(w, op, err)
			return
		}
		writeJSON(w, http.StatusOK, view)
	case http.MethodPatch:
		var p wizard.Patch
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		view, err := h.deps.UpdateWizard(r.Context(), id, p)
		if err != nil {
			h.writeWizardError(w, op, err)
			return
		}
		writeJSON(w, http.StatusOK, view)
	case http.MethodDelete:
		if err := h.deps.AbandonWizard(r.Context(), id); err != nil {
			h.writeWizardError(w, op, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		http.NotFound(w, r)
	}
}

func (h *WizardHandler) handleAction(w http.ResponseWriter, r *http.Request, id, action string) {
	const op = "api.wizard_action"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var (
		view wizard.View
		err  error
	)
	switch action {
	case "next":
		view, err = h.deps.WizardNext(r.Context(), id)
	case "back":
		view, err = h.deps.WizardBack(r.Context(), id)
	case "submit":
		view, err = h.deps.WizardSubmit(r.Context(), id)
	default:
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.writeWizardError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// writeWizardError maps domain errors onto HTTP statuses. Validation
// failures surface their UI message verbatim; step transition errors are
// client mistakes, not server faults.
func (h *WizardHandler) writeWizardError(w http.ResponseWriter, op string, err error) {
	var verr *wizard.ValidationError
	switch {
	case errors.Is(err, wizard.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, "not_found", NewKind(op, ErrNotFound))
	case errors.As(err, &verr):
		writeError(w, http.StatusUnprocessableEntity, "validation_failed", verr)
	case errors.Is(err, wizard.ErrStepBlocked),
		errors.Is(err, wizard.ErrAtFirstStep),
		errors.Is(err, wizard.ErrAtLastStep):
		writeError(w, http.StatusConflict, "step_conflict", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
	}
}
