package site

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/folio/pkg/layout"
	"github.com/aretw0/folio/pkg/registry"
)

// ErrNoDefaultLayout is returned when a site has no default layout configured.
var ErrNoDefaultLayout = errors.New("site has no default layout")

// ErrLayoutNotFound is returned when a layout name does not match any registered layout.
var ErrLayoutNotFound = registry.ErrNotFound

// Layout is a layout declared in the site configuration.
type Layout struct {
	name        string
	description string
}

// Name returns the layout name.
func (l Layout) Name() string { return l.name }

// Description returns the configured description.
func (l Layout) Description() string { return l.description }

// Site is the publishing context of one generation run.
type Site struct {
	cfg           Config
	layouts       *registry.Layouts
	defaultLayout layout.Layout
	logger        *slog.Logger
}

// Option configures a Site.
type Option func(*Site)

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Site) {
		s.logger = logger
	}
}

// WithRegistry supplies a registry holding layouts defined in code.
// Configured layouts with the same name keep the registered value.
func WithRegistry(r *registry.Layouts) Option {
	return func(s *Site) {
		s.layouts = r
	}
}

// New builds a Site, registering configured layouts and resolving the default.
func New(cfg Config, opts ...Option) (*Site, error) {
	s := &Site{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.layouts == nil {
		s.layouts = registry.New()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid site config: %w", err)
	}

	for _, lc := range cfg.Layouts {
		err := s.layouts.Register(Layout{name: lc.Name, description: lc.Description})
		if errors.Is(err, registry.ErrDuplicate) {
			s.logger.Debug("layout defined in code, keeping registered value", "layout", lc.Name)
			continue
		}
		if err != nil {
			return nil, err
		}
	}

	if cfg.Layout == "" {
		return nil, ErrNoDefaultLayout
	}
	def, err := s.layouts.Lookup(cfg.Layout)
	if err != nil {
		return nil, fmt.Errorf("default layout: %w", err)
	}
	s.defaultLayout = def

	s.logger.Debug("site initialized",
		"site", cfg.Name,
		"default_layout", def.Name(),
		"layouts", len(s.layouts.Names()),
	)
	return s, nil
}

// DefaultLayout implements layout.PublishingContext.
func (s *Site) DefaultLayout() layout.Layout {
	return s.defaultLayout
}

// Lookup resolves a layout name. The empty name resolves to layout.Missing,
// leaving the choice to the default.
func (s *Site) Lookup(name string) (layout.Layout, error) {
	if name == "" {
		return layout.Missing, nil
	}
	return s.layouts.Lookup(name)
}

// Layouts returns the site's layout registry.
func (s *Site) Layouts() *registry.Layouts {
	return s.layouts
}

// Config returns the configuration the site was built from.
func (s *Site) Config() Config {
	return s.cfg
}
