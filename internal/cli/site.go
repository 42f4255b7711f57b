package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/folio/internal/logging"
	loamAdapter "github.com/aretw0/folio/pkg/adapters/loam"
	"github.com/aretw0/folio/pkg/layout"
	"github.com/aretw0/folio/pkg/site"
	"github.com/aretw0/loam"
)

// NewLogger builds the CLI logger from a level name.
func NewLogger(level string) (*slog.Logger, error) {
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return logging.New(lvl), nil
}

// LoadSite reads the site configuration at path and builds the Site.
// A missing file falls back to site.DefaultConfig.
func LoadSite(path string, logger *slog.Logger) (*site.Site, error) {
	cfg := site.DefaultConfig()

	f, err := os.Open(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Warn("site config not found, using defaults", "path", path)
	case err != nil:
		return nil, fmt.Errorf("failed to open site config: %w", err)
	default:
		defer f.Close()
		cfg, err = site.Load(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	return site.New(cfg, site.WithLogger(logger))
}

// LoadPages reads every page under dir through a read-only Loam repository.
func LoadPages(ctx context.Context, dir string, s *site.Site) ([]*layout.Page, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	// The content tree is never written to.
	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}

	src := loamAdapter.New(loam.NewTypedRepository[loamAdapter.PageMetadata](repo))
	return src.Pages(ctx, s)
}
