package helix

import (
	"github.com/rs/zerolog"

	"github.com/helix-sim/helix/entity"
	"github.com/helix-sim/helix/events"
	"github.com/helix-sim/helix/gate"
	"github.com/helix-sim/helix/statsd"
	"github.com/helix-sim/helix/template"
)

// Option augments how the EntityService is built.
type Option func(*EntityService)

// WithTemplateProvider supplies the provider CreateFromTemplate resolves
// template names against. Without one, CreateFromTemplate fails with
// ErrNoTemplateProvider.
func WithTemplateProvider(provider template.Provider) Option {
	return func(s *EntityService) {
		s.templates = provider
	}
}

// WithDispatcher replaces the default event hub with a custom dispatcher.
func WithDispatcher(dispatcher events.Dispatcher) Option {
	return func(s *EntityService) {
		s.dispatcher = dispatcher
	}
}

// WithAccessGate sets the gate consulted before entity creation. The default
// gate always grants entry.
func WithAccessGate(g gate.Gate) Option {
	return func(s *EntityService) {
		s.SetAccessGate(g)
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *EntityService) {
		s.logger = logger
	}
}

// WithEntities warm-starts the service with a pre-existing entity list. The
// entities are committed immediately and the id counter is seeded strictly
// above the highest id among them, so later allocations can never collide.
func WithEntities(entities ...*entity.Entity) Option {
	return func(s *EntityService) {
		for _, e := range entities {
			s.committed[e.ID()] = e
			if e.ID() >= s.nextID {
				s.nextID = e.ID() + 1
			}
		}
	}
}

// WithConfig applies an environment-derived Config: it installs the
// configured logger and, when a statsd address is set, initializes the
// metrics client.
func WithConfig(cfg Config) Option {
	return func(s *EntityService) {
		s.logger = cfg.Logger()
		if cfg.StatsdAddress != "" {
			if err := statsd.Init(cfg.StatsdAddress, cfg.StatsdTags); err != nil {
				s.logger.Warn().Err(err).Msg("failed to initialize statsd client")
			}
		}
	}
}
