package storage

import "fmt"

// CompressionType identifies the block compression used by the engine.
type CompressionType int

const (
	CompressionNone CompressionType = iota
	CompressionSnappy
)

// persistentIDs maps the stable ids used in configuration files to compression types.
// Ids are part of the on-disk format of existing deployments and must never be renumbered.
var persistentIDs = map[int]CompressionType{
	0x00: CompressionNone,
	0x01: CompressionSnappy,
}

// CompressionTypeByPersistentID resolves a configuration id to its compression type.
func CompressionTypeByPersistentID(id int) (CompressionType, bool) {
	ct, ok := persistentIDs[id]
	return ct, ok
}

// PersistentID returns the configuration id of the compression type.
func (c CompressionType) PersistentID() int {
	for id, ct := range persistentIDs {
		if ct == c {
			return id
		}
	}
	return -1
}

// String returns string representation of CompressionType
func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "NONE"
	case CompressionSnappy:
		return "SNAPPY"
	default:
		return fmt.Sprintf("CompressionType(%d)", int(c))
	}
}
