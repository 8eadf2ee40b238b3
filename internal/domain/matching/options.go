package matching

// DefaultTeamSize is the target team size when no option overrides it.
const DefaultTeamSize = 4

type formationConfig struct {
	teamSize int
}

// Option applies a configuration option to team formation.
type Option func(*formationConfig)

// WithTeamSize sets the target team size. Values below 1 are ignored and
// the default stands; formation never accepts a size that cannot make
// progress.
func WithTeamSize(size int) Option {
	return func(c *formationConfig) {
		if size >= 1 {
			c.teamSize = size
		}
	}
}

func newFormationConfig(opts ...Option) formationConfig {
	cfg := formationConfig{teamSize: DefaultTeamSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
