package cmd

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/papapumpkin/strata/internal/catalog"
	"github.com/papapumpkin/strata/internal/config"
	"github.com/papapumpkin/strata/internal/groups"
	"github.com/papapumpkin/strata/internal/item"
	"github.com/papapumpkin/strata/internal/snapshot"
	"github.com/papapumpkin/strata/internal/telemetry"
	"github.com/papapumpkin/strata/internal/vocab"
)

// engine is a bootstrapped registry plus the collaborators commands share.
type engine struct {
	cfg       config.Config
	provider  *catalog.Provider
	dc        snapshot.DisplayContext
	logger    io.Writer
	telemetry *telemetry.Emitter

	reg atomic.Pointer[groups.Registry]
}

// openEngine loads configuration, the catalog and the vocabulary and
// bootstraps a registry. Callers must Close it.
func openEngine() (*engine, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}

	e := &engine{cfg: cfg, provider: catalog.NewProvider(cat, nil)}
	if cfg.Verbose {
		e.logger = os.Stderr
	}
	if cfg.TelemetryPath != "" {
		if e.telemetry, err = telemetry.NewEmitter(cfg.TelemetryPath); err != nil {
			return nil, err
		}
	}
	e.dc = snapshot.DisplayContext{
		Features:    item.NewFeatureSet(cfg.Features...),
		Permissions: cfg.Permissions,
		Lookup:      e.provider,
	}

	if err := e.reloadVocabulary(cfg.VocabularyPath); err != nil {
		e.Close()
		return nil, err
	}
	return e, nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}

func loadVocabulary(path string) (*vocab.Vocabulary, error) {
	if path == "" {
		return vocab.Default(), nil
	}
	return vocab.Load(path)
}

// reloadVocabulary bootstraps a fresh registry from the vocabulary at path
// and publishes it. On error the previous registry stays in place.
func (e *engine) reloadVocabulary(path string) error {
	v, err := loadVocabulary(path)
	if err != nil {
		return err
	}
	reg, err := groups.Bootstrap(groups.EngineState{
		Namespace:  e.cfg.Namespace,
		Vocabulary: v,
		Provider:   e.provider,
		Lookup:     e.provider,
		Order:      e.cfg.CategoryOrder,
		Logger:     e.logger,
		Telemetry:  e.telemetry,
	})
	if err != nil {
		return err
	}
	e.provider.SetOmit(reg.Classifier().Omit)
	e.reg.Store(reg)
	return nil
}

// Registry returns the current registry.
func (e *engine) Registry() *groups.Registry { return e.reg.Load() }

// Snapshot returns the current snapshot for the configured display context.
func (e *engine) Snapshot() *snapshot.Snapshot {
	return e.Registry().Cache().Snapshot(e.dc)
}

// Invalidate drops the current registry's snapshot.
func (e *engine) Invalidate() { e.Registry().Invalidate() }

func (e *engine) Close() error {
	return e.telemetry.Close()
}
