// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ohack/teamforge/internal/adapters/checks"
	"github.com/ohack/teamforge/internal/adapters/debounce"
	repository "github.com/ohack/teamforge/internal/adapters/repository"
	"github.com/ohack/teamforge/internal/domain/matching"
	"github.com/ohack/teamforge/internal/domain/model"
	"github.com/ohack/teamforge/internal/domain/roster"
	"github.com/ohack/teamforge/internal/domain/types"
	"github.com/ohack/teamforge/internal/domain/wizard"
	"github.com/ohack/teamforge/pkg/logger"
	"github.com/ohack/teamforge/pkg/metrics"
)

// checkerAdapter adapts a checks.Checker to the wizard.Checker interface.
type checkerAdapter struct {
	inner checks.Checker
}

func (a *checkerAdapter) Check(ctx context.Context, value string) wizard.CheckResult {
	res := a.inner.Check(ctx, value)
	return wizard.CheckResult{Valid: res.Valid, Message: res.Message}
}

// wizardEntry pairs a session with its own debouncer so each session's
// pending checks are independent.
type wizardEntry struct {
	session   *wizard.Session
	debouncer *debounce.Debouncer
}

// Service implements the API dependencies for the team formation system.
type Service struct {
	mu sync.RWMutex

	// Core components
	roster        repository.Store
	githubChecker checks.Checker
	slackChecker  checks.Checker
	sessions      map[string]*wizardEntry

	// Configuration
	teamSize      int
	shardCount    int
	debounceDelay time.Duration
	checkTimeout  time.Duration
	githubAPIURL  string
	slackAPIURL   string
	sessionTTL    time.Duration

	// State
	started bool
	stopCh  chan struct{}

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithTeamSize sets the default team size for formation.
func WithTeamSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.teamSize = size
		}
	}
}

// WithShardCount sets the number of shards in the roster store.
func WithShardCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.shardCount = count
		}
	}
}

// WithDebounceDelay sets the trailing-edge delay for remote handle checks.
func WithDebounceDelay(d time.Duration) Option {
	return func(s *Service) {
		if d >= 0 {
			s.debounceDelay = d
		}
	}
}

// WithCheckTimeout bounds a single outbound handle check.
func WithCheckTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.checkTimeout = d
		}
	}
}

// WithGithubAPIURL points the GitHub checker at a different base URL.
func WithGithubAPIURL(url string) Option {
	return func(s *Service) {
		if url != "" {
			s.githubAPIURL = url
		}
	}
}

// WithSlackAPIURL points the Slack checker at a different base URL.
func WithSlackAPIURL(url string) Option {
	return func(s *Service) {
		if url != "" {
			s.slackAPIURL = url
		}
	}
}

// WithSessionTTL sets how long an idle wizard session survives.
func WithSessionTTL(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.sessionTTL = d
		}
	}
}

// WithGithubChecker injects a prebuilt GitHub checker. Used in tests.
func WithGithubChecker(c checks.Checker) Option {
	return func(s *Service) {
		if c != nil {
			s.githubChecker = c
		}
	}
}

// WithSlackChecker injects a prebuilt Slack checker. Used in tests.
func WithSlackChecker(c checks.Checker) Option {
	return func(s *Service) {
		if c != nil {
			s.slackChecker = c
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		teamSize:      matching.DefaultTeamSize,
		shardCount:    8,
		debounceDelay: debounce.DefaultDelay,
		checkTimeout:  checks.DefaultTimeout,
		githubAPIURL:  "https://api.github.com/users",
		slackAPIURL:   "https://slack.ohack.dev/api/channels",
		sessionTTL:    30 * time.Minute,
		sessions:      make(map[string]*wizardEntry),
		stopCh:        make(chan struct{}),
		logger:        nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	// Initialize logger if not already set
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting team formation service...")

	s.roster = repository.NewMemStore(ctx,
		repository.WithShardCount(s.shardCount),
	)
	if s.githubChecker == nil {
		s.githubChecker = checks.NewGithubChecker(s.githubAPIURL,
			checks.WithTimeout(s.checkTimeout),
			checks.WithLogger(s.logger),
		)
	}
	if s.slackChecker == nil {
		s.slackChecker = checks.NewSlackChecker(s.slackAPIURL,
			checks.WithTimeout(s.checkTimeout),
			checks.WithLogger(s.logger),
		)
	}

	go s.reapIdleSessions()

	s.started = true
	s.logger.Info(ctx, "team formation service started",
		logger.Int("teamSize", s.teamSize),
		logger.Int("shardCount", s.shardCount),
		logger.Any("debounceDelay", s.debounceDelay),
		logger.Any("sessionTTL", s.sessionTTL),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping team formation service...")

	// Drop pending debounced checks for every live session
	for id, entry := range s.sessions {
		entry.debouncer.Close()
		delete(s.sessions, id)
	}
	metrics.UpdateActiveWizardSessions(0)

	// Signal the reaper to stop
	select {
	case <-s.stopCh:
		// Channel already closed
	default:
		close(s.stopCh)
	}

	s.started = false
	s.logger.Info(context.Background(), "team formation service stopped")
}

// reapIdleSessions abandons wizard sessions whose last activity is older
// than the session TTL.
func (s *Service) reapIdleSessions() {
	interval := s.sessionTTL / 4
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-s.sessionTTL)
			s.mu.Lock()
			for id, entry := range s.sessions {
				if entry.session.LastActive().Before(cutoff) {
					entry.debouncer.Close()
					delete(s.sessions, id)
					metrics.RecordWizardSessionAbandoned()
					s.logger.Info(context.Background(), "reaped idle wizard session",
						logger.String("sessionID", id),
					)
				}
			}
			metrics.UpdateActiveWizardSessions(len(s.sessions))
			s.mu.Unlock()
		}
	}
}

// UpsertProfile stores or replaces a participant profile.
func (s *Service) UpsertProfile(ctx context.Context, p model.Profile) error {
	created, err := s.roster.Upsert(ctx, p)
	if err != nil {
		return err
	}
	if created {
		s.logger.Debug(ctx, "profile created", logger.String("userID", p.UserID))
	}
	metrics.UpdateRosterSize(s.roster.Count(ctx))
	return nil
}

// GetProfile returns a single profile by user id.
func (s *Service) GetProfile(ctx context.Context, userID string) (model.Profile, error) {
	return s.roster.Get(ctx, userID)
}

// ListProfiles returns every stored profile in insertion order.
func (s *Service) ListProfiles(ctx context.Context) []model.Profile {
	profiles, err := s.roster.List(ctx)
	if err != nil {
		s.logger.Warn(ctx, "listing profiles failed", logger.Error(err))
		return nil
	}
	return profiles
}

// DeleteProfile removes a profile from the roster.
func (s *Service) DeleteProfile(ctx context.Context, userID string) error {
	if err := s.roster.Delete(ctx, userID); err != nil {
		return err
	}
	metrics.UpdateRosterSize(s.roster.Count(ctx))
	return nil
}

// Match computes the directional compatibility score between two profiles.
func (s *Service) Match(ctx context.Context, selfID, otherID string) (types.MatchResult, error) {
	self, err := s.roster.Get(ctx, selfID)
	if err != nil {
		return types.MatchResult{}, err
	}
	other, err := s.roster.Get(ctx, otherID)
	if err != nil {
		return types.MatchResult{}, err
	}

	score := matching.Score(self, other)
	metrics.RecordMatchComputation()

	return types.MatchResult{
		SelfID:  selfID,
		OtherID: otherID,
		Score:   score,
	}, nil
}

// FormTeams partitions the matchable roster into teams. A size below one
// falls back to the configured default.
func (s *Service) FormTeams(ctx context.Context, size int) ([]types.TeamView, error) {
	profiles, err := s.roster.List(ctx)
	if err != nil {
		return nil, err
	}
	// Only participants who opted into matching take part.
	candidates := roster.Filter(profiles, roster.Criteria{})

	if size < 1 {
		size = s.teamSize
	}

	start := time.Now()
	teams := matching.FormTeams(candidates, matching.WithTeamSize(size))
	metrics.RecordMatrixBuildDuration(float64(time.Since(start).Milliseconds()))
	metrics.RecordTeamsFormed(len(teams))

	s.logger.Info(ctx, "teams formed",
		logger.Int("candidates", len(candidates)),
		logger.Int("teams", len(teams)),
		logger.Int("teamSize", size),
	)

	views := make([]types.TeamView, len(teams))
	for i, t := range teams {
		members := make([]string, 0, t.Size())
		for _, m := range t.Members {
			members = append(members, m.UserID)
		}
		views[i] = types.TeamView{Number: i + 1, Members: members, Size: t.Size()}
	}
	return views, nil
}

// Teammates filters the roster by the given criteria.
func (s *Service) Teammates(ctx context.Context, c roster.Criteria) ([]model.Profile, error) {
	profiles, err := s.roster.List(ctx)
	if err != nil {
		return nil, err
	}
	metrics.RecordTeammateQuery()
	return roster.Filter(profiles, c), nil
}

// Catalog extracts the distinct interests and skills across the roster.
func (s *Service) Catalog(ctx context.Context) roster.Catalog {
	profiles, err := s.roster.List(ctx)
	if err != nil {
		s.logger.Warn(ctx, "catalog extraction failed", logger.Error(err))
		return roster.Catalog{}
	}
	return roster.Extract(profiles)
}

// StartWizard creates a new team-creation wizard session.
func (s *Service) StartWizard(ctx context.Context) (wizard.View, error) {
	id := uuid.NewString()

	deb := debounce.New(
		debounce.WithDelay(s.debounceDelay),
		debounce.WithLogger(s.logger),
	)
	session := wizard.NewSession(id,
		wizard.WithScheduler(deb),
		wizard.WithGithubChecker(&checkerAdapter{inner: s.githubChecker}),
		wizard.WithSlackChecker(&checkerAdapter{inner: s.slackChecker}),
		wizard.WithLogger(s.logger),
	)

	s.mu.Lock()
	s.sessions[id] = &wizardEntry{session: session, debouncer: deb}
	active := len(s.sessions)
	s.mu.Unlock()

	metrics.RecordWizardSessionStarted()
	metrics.UpdateActiveWizardSessions(active)
	s.logger.Info(ctx, "wizard session started", logger.String("sessionID", id))

	return session.View(), nil
}

func (s *Service) session(id string) (*wizardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.sessions[id]
	if !ok {
		return nil, wizard.ErrSessionNotFound
	}
	return entry, nil
}

// WizardView snapshots a wizard session.
func (s *Service) WizardView(_ context.Context, id string) (wizard.View, error) {
	entry, err := s.session(id)
	if err != nil {
		return wizard.View{}, err
	}
	return entry.session.View(), nil
}

// UpdateWizard applies a partial field update to a wizard session.
func (s *Service) UpdateWizard(ctx context.Context, id string, p wizard.Patch) (wizard.View, error) {
	entry, err := s.session(id)
	if err != nil {
		return wizard.View{}, err
	}
	entry.session.Apply(ctx, p)
	return entry.session.View(), nil
}

// WizardNext advances a wizard session one step.
func (s *Service) WizardNext(ctx context.Context, id string) (wizard.View, error) {
	entry, err := s.session(id)
	if err != nil {
		return wizard.View{}, err
	}
	if err := entry.session.Next(ctx); err != nil {
		return wizard.View{}, err
	}
	return entry.session.View(), nil
}

// WizardBack returns a wizard session to the previous step.
func (s *Service) WizardBack(ctx context.Context, id string) (wizard.View, error) {
	entry, err := s.session(id)
	if err != nil {
		return wizard.View{}, err
	}
	if err := entry.session.Back(ctx); err != nil {
		return wizard.View{}, err
	}
	return entry.session.View(), nil
}

// WizardSubmit runs final validation for a wizard session.
func (s *Service) WizardSubmit(ctx context.Context, id string) (wizard.View, error) {
	entry, err := s.session(id)
	if err != nil {
		return wizard.View{}, err
	}
	if err := entry.session.Submit(ctx); err != nil {
		return wizard.View{}, err
	}

	metrics.RecordWizardSessionSubmitted()
	s.logger.Info(ctx, "wizard session submitted", logger.String("sessionID", id))
	return entry.session.View(), nil
}

// AbandonWizard discards a wizard session and its pending checks.
func (s *Service) AbandonWizard(ctx context.Context, id string) error {
	s.mu.Lock()
	entry, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return wizard.ErrSessionNotFound
	}
	delete(s.sessions, id)
	active := len(s.sessions)
	s.mu.Unlock()

	entry.debouncer.Close()
	metrics.RecordWizardSessionAbandoned()
	metrics.UpdateActiveWizardSessions(active)
	s.logger.Info(ctx, "wizard session abandoned", logger.String("sessionID", id))
	return nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":    s.started,
		"teamSize":   s.teamSize,
		"shardCount": s.shardCount,
	}

	if s.started {
		rosterSize := s.roster.Count(ctx)
		stats["rosterSize"] = rosterSize
		stats["activeWizardSessions"] = len(s.sessions)

		// Update metrics
		metrics.UpdateRosterSize(rosterSize)
		metrics.UpdateActiveWizardSessions(len(s.sessions))
	}

	return stats
}
