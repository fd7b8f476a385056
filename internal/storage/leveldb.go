package storage

import (
	"github.com/syndtr/goleveldb/leveldb/opt"
)

// LevelDBOptions translates the options into goleveldb open options.
func (o EngineOptions) LevelDBOptions() *opt.Options {
	options := &opt.Options{
		ErrorIfMissing:         !o.createIfMissing,
		BlockSize:              o.blockSize,
		WriteBuffer:            o.writeBufferSize,
		OpenFilesCacheCapacity: o.maxOpenFiles,
		Compression:            o.leveldbCompression(),
		Strict:                 opt.DefaultStrict,
	}

	if o.paranoidChecks {
		options.Strict = opt.StrictAll
	}

	// goleveldb treats a zero capacity as "use the default"; zero here means no cache.
	if o.cacheSize <= 0 {
		options.BlockCacher = opt.NoCacher
	} else {
		options.BlockCacheCapacity = int(o.cacheSize)
	}

	return options
}

// LevelDBReadOptions translates the checksum setting into goleveldb read options.
func (o EngineOptions) LevelDBReadOptions() *opt.ReadOptions {
	if o.verifyChecksums {
		return &opt.ReadOptions{Strict: opt.StrictBlockChecksum}
	}
	return &opt.ReadOptions{}
}

func (o EngineOptions) leveldbCompression() opt.Compression {
	switch o.compression {
	case CompressionSnappy:
		return opt.SnappyCompression
	default:
		return opt.NoCompression
	}
}
