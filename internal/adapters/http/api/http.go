// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ohack/teamforge/internal/domain/model"
	"github.com/ohack/teamforge/internal/domain/roster"
	"github.com/ohack/teamforge/internal/domain/types"
	"github.com/ohack/teamforge/internal/domain/wizard"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	ProfileDependencies
	MatchDependencies
	TeamDependencies
	RosterDependencies
	WizardDependencies
}

// ProfileDependencies covers profile persistence.
type ProfileDependencies interface {
	UpsertProfile(ctx context.Context, p model.Profile) error
	GetProfile(ctx context.Context, userID string) (model.Profile, error)
	ListProfiles(ctx context.Context) []model.Profile
	DeleteProfile(ctx context.Context, userID string) error
}

// MatchDependencies covers pairwise compatibility scoring.
type MatchDependencies interface {
	Match(ctx context.Context, selfID, otherID string) (types.MatchResult, error)
}

// TeamDependencies covers greedy team formation.
type TeamDependencies interface {
	FormTeams(ctx context.Context, size int) ([]types.TeamView, error)
}

// RosterDependencies covers teammate filtering and catalog extraction.
type RosterDependencies interface {
	Teammates(ctx context.Context, c roster.Criteria) ([]model.Profile, error)
	Catalog(ctx context.Context) roster.Catalog
}

// WizardDependencies covers team-creation wizard sessions.
type WizardDependencies interface {
	StartWizard(ctx context.Context) (wizard.View, error)
	WizardView(ctx context.Context, id string) (wizard.View, error)
	UpdateWizard(ctx context.Context, id string, p wizard.Patch) (wizard.View, error)
	WizardNext(ctx context.Context, id string) (wizard.View, error)
	WizardBack(ctx context.Context, id string) (wizard.View, error)
	WizardSubmit(ctx context.Context, id string) (wizard.View, error)
	AbandonWizard(ctx context.Context, id string) error
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	profilesHandler *ProfilesHandler
	matchHandler    *MatchHandler
	teamsHandler    *TeamsHandler
	rosterHandler   *RosterHandler
	wizardHandler   *WizardHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		profilesHandler: NewProfilesHandler(deps),
		matchHandler:    NewMatchHandler(deps),
		teamsHandler:    NewTeamsHandler(deps),
		rosterHandler:   NewRosterHandler(deps),
		wizardHandler:   NewWizardHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/profiles", MetricsMiddleware(s.profilesHandler.HandleProfiles, "profiles"))
	mux.HandleFunc("/profiles/", MetricsMiddleware(s.profilesHandler.HandleProfileByID, "profile"))
	mux.HandleFunc("/match", MetricsMiddleware(s.matchHandler.HandleGetMatch, "match"))
	mux.HandleFunc("/teams/form", MetricsMiddleware(s.teamsHandler.HandleFormTeams, "teams_form"))
	mux.HandleFunc("/teammates", MetricsMiddleware(s.rosterHandler.HandleGetTeammates, "teammates"))
	mux.HandleFunc("/catalog", MetricsMiddleware(s.rosterHandler.HandleGetCatalog, "catalog"))
	mux.HandleFunc("/wizard/sessions", MetricsMiddleware(s.wizardHandler.HandleSessions, "wizard_sessions"))
	mux.HandleFunc("/wizard/sessions/", MetricsMiddleware(s.wizardHandler.HandleSessionByID, "wizard_session"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
