package storage

import (
	"errors"
	"io/fs"

	"github.com/aleister1102/storeconf/internal/common"
	"github.com/rs/zerolog"
)

// DefaultPathPermissions is the mode used when creating a missing storage path.
const DefaultPathPermissions fs.FileMode = 0755

// Property is the resolved profile of one named database.
type Property struct {
	Name    string
	Path    string
	HasPath bool
	Options EngineOptions
}

// Builder turns raw database entries into properties and registries.
type Builder struct {
	logger    zerolog.Logger
	files     *common.FileManager
	pathPerms fs.FileMode
}

// NewBuilder creates a Builder that logs through logger.
func NewBuilder(logger zerolog.Logger) *Builder {
	componentLogger := logger.With().Str("component", "StorageBuilder").Logger()
	return &Builder{
		logger:    componentLogger,
		files:     common.NewFileManager(componentLogger),
		pathPerms: DefaultPathPermissions,
	}
}

// BuildProperty resolves one entry. Checks run in a fixed order so the first
// violation reported is deterministic: name, path, then the engine fields.
func (b *Builder) BuildProperty(entry Entry) (Property, error) {
	var property Property

	name := entry.Text(NameKey)
	if name == "" {
		return Property{}, &MissingFieldError{Key: NameKey}
	}
	property.Name = name

	if entry.Has(PathKey) {
		path := entry.Text(PathKey)
		if err := b.preparePath(path); err != nil {
			return Property{}, err
		}
		property.Path = path
		property.HasPath = true
	}

	options, err := resolveOptions(entry)
	if err != nil {
		return Property{}, err
	}
	property.Options = options

	b.logger.Debug().
		Str("name", property.Name).
		Str("path", property.Path).
		Str("compression", options.Compression().String()).
		Int("block_size", options.BlockSize()).
		Int("write_buffer_size", options.WriteBufferSize()).
		Int64("cache_size", options.CacheSize()).
		Int("max_open_files", options.MaxOpenFiles()).
		Msg("Resolved storage property")

	return property, nil
}

// preparePath creates path when missing and verifies the process can write to it.
func (b *Builder) preparePath(path string) error {
	if path == "" {
		return &PathUnavailableError{Path: path}
	}
	if err := b.files.EnsureDirectory(path, b.pathPerms); err != nil {
		return &PathUnavailableError{Path: path, Err: err}
	}
	if err := b.files.CheckWritable(path); err != nil {
		return &PermissionError{Path: path, Err: errors.Unwrap(err)}
	}
	return nil
}

// resolveOptions starts from the defaults and applies each override present in entry.
func resolveOptions(entry Entry) (EngineOptions, error) {
	options := DefaultEngineOptions()

	if entry.Has(CreateIfMissingKey) {
		options = options.WithCreateIfMissing(entry.Bool(CreateIfMissingKey))
	}
	if entry.Has(ParanoidChecksKey) {
		options = options.WithParanoidChecks(entry.Bool(ParanoidChecksKey))
	}
	if entry.Has(VerifyChecksumsKey) {
		options = options.WithVerifyChecksums(entry.Bool(VerifyChecksumsKey))
	}

	if entry.Has(CompressionTypeKey) {
		ct, err := entry.CompressionID(CompressionTypeKey)
		if err != nil {
			return EngineOptions{}, err
		}
		options = options.WithCompression(ct)
	}

	intFields := []struct {
		key   string
		apply func(EngineOptions, int) EngineOptions
	}{
		{BlockSizeKey, EngineOptions.WithBlockSize},
		{WriteBufferSizeKey, EngineOptions.WithWriteBufferSize},
	}
	for _, f := range intFields {
		if !entry.Has(f.key) {
			continue
		}
		n, err := entry.Int(f.key)
		if err != nil {
			return EngineOptions{}, err
		}
		options = f.apply(options, n)
	}

	if entry.Has(CacheSizeKey) {
		n, err := entry.Long(CacheSizeKey)
		if err != nil {
			return EngineOptions{}, err
		}
		options = options.WithCacheSize(n)
	}

	if entry.Has(MaxOpenFilesKey) {
		n, err := entry.Int(MaxOpenFilesKey)
		if err != nil {
			return EngineOptions{}, err
		}
		options = options.WithMaxOpenFiles(n)
	}

	return options, nil
}
