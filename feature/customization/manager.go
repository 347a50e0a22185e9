package customization

import (
	"context"
	"fmt"
	"sync"

	"chr-catalog/core/dbc"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Manager owns the published catalog. Builds are deduplicated through
// singleflight so concurrent reloads share one pass, and the catalog pointer
// is swapped under the lock so readers always see a complete snapshot.
type Manager struct {
	src     dbc.Source
	build   string
	enabled bool
	logger  *zap.Logger
	obs     Observer

	mu      sync.RWMutex
	catalog *Catalog

	sf singleflight.Group
}

func NewManager(src dbc.Source, cfg dbc.Config, logger *zap.Logger) *Manager {
	return &Manager{
		src:     src,
		build:   cfg.Build,
		enabled: cfg.Customization,
		logger:  logger,
		obs:     LogObserver{Logger: logger},
	}
}

// Enabled reports whether the customization dataset is switched on.
func (m *Manager) Enabled() bool {
	return m.enabled
}

// SourceName reports the name of the configured dataset source.
func (m *Manager) SourceName() string {
	return m.src.Name()
}

// Load builds and publishes the catalog at startup. When the feature is
// disabled or the source carries no customization tables the manager stays
// empty and requests report unavailable; only a failing build is an error.
func (m *Manager) Load(ctx context.Context) error {
	if !m.enabled {
		m.logger.Info("Customization catalog disabled by configuration")
		return nil
	}

	ok, err := m.src.HasTable(ctx, dbc.TableChrCustomizationOption)
	if err != nil {
		return fmt.Errorf("failed to probe customization tables: %w", err)
	}
	if !ok {
		m.logger.Info("Customization tables not present in source, catalog unavailable",
			zap.String("source", m.src.Name()))
		return nil
	}

	return m.Reload(ctx)
}

// Reload rebuilds the catalog from the source and publishes it. Concurrent
// calls share a single build; the previous catalog stays published until the
// new one is complete.
func (m *Manager) Reload(ctx context.Context) error {
	_, err, _ := m.sf.Do("catalog", func() (interface{}, error) {
		catalog, err := Build(ctx, m.src, m.build, m.obs)
		if err != nil {
			return nil, err
		}

		m.mu.Lock()
		m.catalog = catalog
		m.mu.Unlock()

		stats := catalog.Stats()
		m.logger.Info("Customization catalog published",
			zap.String("source", catalog.Source()),
			zap.Int("models", stats.Models),
			zap.Int("options", stats.Options),
			zap.Int("choices", stats.Choices),
			zap.Int("texture_files", stats.TextureFiles))
		return catalog, nil
	})
	return err
}

// Catalog returns the published catalog, or nil when none is available.
func (m *Manager) Catalog() *Catalog {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.catalog
}

// Available reports whether a catalog has been published.
func (m *Manager) Available() bool {
	return m.Catalog() != nil
}
