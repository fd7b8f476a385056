package storage

import (
	"github.com/aleister1102/storeconf/internal/common"
	"github.com/aleister1102/storeconf/internal/config"
	"github.com/rs/zerolog"
)

// Registry is the immutable name → Property mapping produced by Build.
// A built Registry is safe for concurrent reads. A nil *Registry behaves as
// an empty one: every lookup falls back to its default.
type Registry struct {
	dbDirectory    string
	indexDirectory string
	properties     map[string]Property
	order          []string
	files          *common.FileManager
}

// NewRegistry builds a Registry from the storage section of the global configuration.
func NewRegistry(cfg config.StorageConfig, logger zerolog.Logger) (*Registry, error) {
	entries := make([]Entry, 0, len(cfg.Properties))
	for _, raw := range cfg.Properties {
		entries = append(entries, Entry(raw))
	}
	return NewBuilder(logger).Build(cfg.DBDirectory, cfg.IndexDirectory, entries)
}

// Build resolves every entry in order and returns the finished registry.
// Any failure, including a repeated name, aborts the whole build and no
// registry is returned.
func (b *Builder) Build(dbDirectory, indexDirectory string, entries []Entry) (*Registry, error) {
	properties := make(map[string]Property, len(entries))
	positions := make(map[string]int, len(entries))
	order := make([]string, 0, len(entries))

	for i, entry := range entries {
		property, err := b.BuildProperty(entry)
		if err != nil {
			return nil, common.WrapErrorf(err, "%s[%d]", PropertiesKey, i)
		}

		if first, seen := positions[property.Name]; seen {
			return nil, &DuplicateNameError{Name: property.Name, First: first, Second: i}
		}
		positions[property.Name] = i
		properties[property.Name] = property
		order = append(order, property.Name)
	}

	b.logger.Info().
		Int("databases", len(order)).
		Str("db_directory", dbDirectory).
		Str("index_directory", indexDirectory).
		Msg("Storage registry built")

	return &Registry{
		dbDirectory:    dbDirectory,
		indexDirectory: indexDirectory,
		properties:     properties,
		order:          order,
		files:          b.files,
	}, nil
}

// DBDirectory returns the configured database directory.
func (r *Registry) DBDirectory() string {
	if r == nil {
		return ""
	}
	return r.dbDirectory
}

// IndexDirectory returns the configured index directory.
func (r *Registry) IndexDirectory() string {
	if r == nil {
		return ""
	}
	return r.indexDirectory
}

// PathFor returns the storage path of name. The boolean is false both for
// unknown names and for databases declared without a path.
func (r *Registry) PathFor(name string) (string, bool) {
	property, ok := r.Property(name)
	if !ok || !property.HasPath {
		return "", false
	}
	return property.Path, true
}

// OptionsFor returns the engine options of name, or fresh defaults when name is unknown.
func (r *Registry) OptionsFor(name string) EngineOptions {
	if property, ok := r.Property(name); ok {
		return property.Options
	}
	return DefaultEngineOptions()
}

// Property returns a copy of the resolved profile of name.
func (r *Registry) Property(name string) (Property, bool) {
	if r == nil {
		return Property{}, false
	}
	property, ok := r.properties[name]
	return property, ok
}

// Names lists the configured databases in declaration order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Len returns the number of configured databases.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.order)
}

// PurgeAllPaths recursively deletes the directory of every database that has a path.
//
// It is destructive and not transactional: an interrupted call leaves some
// trees deleted. Only use it to tear down test fixtures, never against live data.
func (r *Registry) PurgeAllPaths() error {
	if r == nil {
		return nil
	}

	var collector common.ErrorCollector
	for _, name := range r.order {
		property := r.properties[name]
		if !property.HasPath {
			continue
		}
		collector.Add(r.files.RemoveAll(property.Path))
	}
	return collector.Error()
}
