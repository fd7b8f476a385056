package storage

import (
	"fmt"
	"strconv"
	"strings"
)

// Keys recognised in a database entry.
const (
	NameKey            = "name"
	PathKey            = "path"
	CreateIfMissingKey = "createIfMissing"
	ParanoidChecksKey  = "paranoidChecks"
	VerifyChecksumsKey = "verifyChecksums"
	CompressionTypeKey = "compressionType"
	BlockSizeKey       = "blockSize"
	WriteBufferSizeKey = "writeBufferSize"
	CacheSizeKey       = "cacheSize"
	MaxOpenFilesKey    = "maxOpenFiles"
)

// Entry is one raw database declaration as decoded from the configuration file.
type Entry map[string]any

// Has reports whether key is present, even with an empty value.
func (e Entry) Has(key string) bool {
	_, ok := e[key]
	return ok
}

// Text returns the textual form of the value under key.
func (e Entry) Text(key string) string {
	v, ok := e[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Bool is true only for a case-insensitive "true"; any other text is false.
func (e Entry) Bool(key string) bool {
	return strings.EqualFold(e.Text(key), "true")
}

// Int parses the value as a base-10, 32-bit signed integer.
func (e Entry) Int(key string) (int, error) {
	raw := e.Text(key)
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, &FieldTypeError{Key: key, Expected: "Integer", Value: raw}
	}
	return int(n), nil
}

// Long parses the value as a base-10, 64-bit signed integer.
func (e Entry) Long(key string) (int64, error) {
	raw := e.Text(key)
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &FieldTypeError{Key: key, Expected: "Long", Value: raw}
	}
	return n, nil
}

// CompressionID parses the value as an integer persistent id and resolves it.
func (e Entry) CompressionID(key string) (CompressionType, error) {
	id, err := e.Int(key)
	if err != nil {
		return DefaultCompression, err
	}
	ct, ok := CompressionTypeByPersistentID(id)
	if !ok {
		return DefaultCompression, &UnknownEnumValueError{Key: key, Value: id}
	}
	return ct, nil
}
