package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

func TestLevelDBOptions_Defaults(t *testing.T) {
	o := DefaultEngineOptions().LevelDBOptions()

	assert.False(t, o.ErrorIfMissing)
	assert.Equal(t, opt.StrictAll, o.Strict)
	assert.Equal(t, opt.NoCompression, o.Compression)
	assert.Equal(t, DefaultBlockSize, o.BlockSize)
	assert.Equal(t, DefaultWriteBufferSize, o.WriteBuffer)
	assert.Equal(t, DefaultMaxOpenFiles, o.OpenFilesCacheCapacity)
	assert.Equal(t, opt.NoCacher, o.BlockCacher)

	assert.Equal(t, opt.StrictBlockChecksum, DefaultEngineOptions().LevelDBReadOptions().Strict)
}

func TestLevelDBOptions_Tuned(t *testing.T) {
	tuned := DefaultEngineOptions().
		WithCreateIfMissing(false).
		WithParanoidChecks(false).
		WithVerifyChecksums(false).
		WithCompression(CompressionSnappy).
		WithCacheSize(64 << 20)

	o := tuned.LevelDBOptions()
	assert.True(t, o.ErrorIfMissing)
	assert.Equal(t, opt.DefaultStrict, o.Strict)
	assert.Equal(t, opt.SnappyCompression, o.Compression)
	assert.Equal(t, 64<<20, o.BlockCacheCapacity)
	assert.Nil(t, o.BlockCacher)

	assert.Equal(t, opt.Strict(0), tuned.LevelDBReadOptions().Strict)
}
