package storage

// Default engine settings applied to every database that does not override them.
const (
	DefaultCreateIfMissing = true
	DefaultParanoidChecks  = true
	DefaultVerifyChecksums = true
	DefaultCompression     = CompressionNone
	DefaultBlockSize       = 10 * 1024 * 1024
	DefaultWriteBufferSize = 10 * 1024 * 1024
	DefaultCacheSize       = int64(0)
	DefaultMaxOpenFiles    = 32
)

// EngineOptions holds the tuning parameters handed to the key-value engine
// when a named database is opened. Values are immutable: the With* methods
// return modified copies and leave the receiver untouched.
type EngineOptions struct {
	createIfMissing bool
	paranoidChecks  bool
	verifyChecksums bool
	compression     CompressionType
	blockSize       int
	writeBufferSize int
	cacheSize       int64
	maxOpenFiles    int
}

// DefaultEngineOptions returns the baseline options. Every call yields an independent value.
func DefaultEngineOptions() EngineOptions {
	return EngineOptions{
		createIfMissing: DefaultCreateIfMissing,
		paranoidChecks:  DefaultParanoidChecks,
		verifyChecksums: DefaultVerifyChecksums,
		compression:     DefaultCompression,
		blockSize:       DefaultBlockSize,
		writeBufferSize: DefaultWriteBufferSize,
		cacheSize:       DefaultCacheSize,
		maxOpenFiles:    DefaultMaxOpenFiles,
	}
}

func (o EngineOptions) CreateIfMissing() bool        { return o.createIfMissing }
func (o EngineOptions) ParanoidChecks() bool         { return o.paranoidChecks }
func (o EngineOptions) VerifyChecksums() bool        { return o.verifyChecksums }
func (o EngineOptions) Compression() CompressionType { return o.compression }
func (o EngineOptions) BlockSize() int               { return o.blockSize }
func (o EngineOptions) WriteBufferSize() int         { return o.writeBufferSize }
func (o EngineOptions) CacheSize() int64             { return o.cacheSize }
func (o EngineOptions) MaxOpenFiles() int            { return o.maxOpenFiles }

// WithCreateIfMissing sets whether a missing database is created on open.
func (o EngineOptions) WithCreateIfMissing(v bool) EngineOptions {
	o.createIfMissing = v
	return o
}

// WithParanoidChecks sets aggressive consistency checking.
func (o EngineOptions) WithParanoidChecks(v bool) EngineOptions {
	o.paranoidChecks = v
	return o
}

// WithVerifyChecksums sets checksum verification on reads.
func (o EngineOptions) WithVerifyChecksums(v bool) EngineOptions {
	o.verifyChecksums = v
	return o
}

// WithCompression sets the block compression.
func (o EngineOptions) WithCompression(c CompressionType) EngineOptions {
	o.compression = c
	return o
}

// WithBlockSize sets the block size in bytes.
func (o EngineOptions) WithBlockSize(n int) EngineOptions {
	o.blockSize = n
	return o
}

// WithWriteBufferSize sets the memtable size in bytes.
func (o EngineOptions) WithWriteBufferSize(n int) EngineOptions {
	o.writeBufferSize = n
	return o
}

// WithCacheSize sets the block cache capacity in bytes.
func (o EngineOptions) WithCacheSize(n int64) EngineOptions {
	o.cacheSize = n
	return o
}

// WithMaxOpenFiles sets the open file limit.
func (o EngineOptions) WithMaxOpenFiles(n int) EngineOptions {
	o.maxOpenFiles = n
	return o
}
