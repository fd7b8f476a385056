package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aleister1102/storeconf/internal/config"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// ManagerOptions holds options for creating a Manager
type ManagerOptions struct {
	Logger            zerolog.Logger
	ValidationEnabled bool
	ReloadDelay       time.Duration
}

// DefaultManagerOptions returns default options for Manager
func DefaultManagerOptions() ManagerOptions {
	return ManagerOptions{
		Logger:            zerolog.Nop(),
		ValidationEnabled: true,
		ReloadDelay:       2 * time.Second, // avoid reloading on every partial write
	}
}

// Manager owns the current Registry and replaces it when the configuration
// file changes. Readers always see a complete registry: a new one is built
// off to the side and published with a single atomic store.
type Manager struct {
	configPath        string
	logger            zerolog.Logger
	validationEnabled bool
	reloadDelay       time.Duration

	current atomic.Pointer[Registry]

	reloadMu sync.Mutex

	// mu guards the watch lifecycle below.
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	closed   bool
	stopChan chan struct{}
	done     chan struct{}
}

// NewManager loads configPath and builds the initial registry.
func NewManager(configPath string, opts ManagerOptions) (*Manager, error) {
	if opts.ReloadDelay <= 0 {
		opts.ReloadDelay = DefaultManagerOptions().ReloadDelay
	}

	m := &Manager{
		configPath:        config.GetConfigPath(configPath),
		logger:            opts.Logger.With().Str("component", "StorageManager").Logger(),
		validationEnabled: opts.ValidationEnabled,
		reloadDelay:       opts.ReloadDelay,
		stopChan:          make(chan struct{}),
	}

	registry, err := m.load()
	if err != nil {
		return nil, fmt.Errorf("failed to load initial storage configuration: %w", err)
	}
	m.current.Store(registry)

	return m, nil
}

// Current returns the registry in effect. It never blocks.
func (m *Manager) Current() *Registry {
	return m.current.Load()
}

// ConfigPath returns the configuration file the manager reads.
func (m *Manager) ConfigPath() string {
	return m.configPath
}

// Reload rebuilds the registry from the configuration file. On failure the
// previous registry stays in effect and the error is returned.
func (m *Manager) Reload() error {
	m.reloadMu.Lock()
	defer m.reloadMu.Unlock()

	next, err := m.load()
	if err != nil {
		return err
	}

	previous := m.current.Swap(next)

	event := m.logger.Info().Int("databases", next.Len())
	before, errBefore := previous.Describe()
	after, errAfter := next.Describe()
	if err := errors.Join(errBefore, errAfter); err != nil {
		m.logger.Warn().Err(err).Msg("Could not diff storage registries")
	} else {
		added, removed := countChangedLines(before, after)
		event = event.Int("lines_added", added).Int("lines_removed", removed)
	}
	event.Msg("Storage registry reloaded")
	return nil
}

// Watch reloads the registry whenever the configuration file is written.
// It returns once the watcher is running; the loop stops on ctx cancellation or Close.
func (m *Manager) Watch(ctx context.Context) error {
	if m.configPath == "" {
		return fmt.Errorf("no configuration file to watch")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return fmt.Errorf("manager is closed")
	}
	if m.watcher != nil {
		return fmt.Errorf("watch already started")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	// Watch the directory: editors often replace the file rather than write it.
	configDir := filepath.Dir(m.configPath)
	if err := watcher.Add(configDir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch config directory '%s': %w", configDir, err)
	}

	m.watcher = watcher
	m.done = make(chan struct{})
	m.logger.Info().Str("directory", configDir).Msg("File watcher setup for hot-reload")

	go m.watchLoop(ctx, watcher, m.done)
	return nil
}

// Close stops the watch loop, if any, and waits for it to exit. Watch fails
// once the manager is closed; further Close calls are no-ops.
func (m *Manager) Close() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	close(m.stopChan)
	watcher, done := m.watcher, m.done
	m.mu.Unlock()

	if watcher == nil {
		return nil
	}
	<-done
	return watcher.Close()
}

func (m *Manager) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, done chan struct{}) {
	defer close(done)

	target := filepath.Clean(m.configPath)
	reloadTimer := time.NewTimer(m.reloadDelay)
	reloadTimer.Stop()
	defer reloadTimer.Stop()

	for {
		select {
		case <-ctx.Done():
			m.logger.Info().Msg("Hot-reload loop stopped due to context cancellation")
			return

		case <-m.stopChan:
			m.logger.Info().Msg("Hot-reload loop stopped")
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				m.logger.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("Config file change detected")
				reloadTimer.Reset(m.reloadDelay)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			m.logger.Error().Err(err).Msg("File watcher error")

		case <-reloadTimer.C:
			if err := m.Reload(); err != nil {
				m.logger.Error().Err(err).Msg("Failed to reload storage configuration, keeping previous registry")
			}
		}
	}
}

func (m *Manager) load() (*Registry, error) {
	cfg, err := config.LoadGlobalConfig(m.configPath, m.logger)
	if err != nil {
		return nil, err
	}
	if m.validationEnabled {
		if err := config.ValidateConfig(cfg); err != nil {
			return nil, err
		}
	}
	return NewRegistry(cfg.StorageConfig, m.logger)
}

// countChangedLines returns how many lines were added and removed between two renderings.
func countChangedLines(before, after string) (added, removed int) {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	for _, d := range diffs {
		n := countLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			added += n
		case diffmatchpatch.DiffDelete:
			removed += n
		}
	}
	return added, removed
}

func countLines(s string) int {
	if s == "" {
		return 0
	}
	n := 0
	for _, c := range s {
		if c == '\n' {
			n++
		}
	}
	if s[len(s)-1] != '\n' {
		n++
	}
	return n
}
