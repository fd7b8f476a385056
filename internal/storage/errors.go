package storage

import (
	"fmt"

	"github.com/aleister1102/storeconf/internal/common"
)

// PropertiesKey is the configuration key holding the list of database entries.
const PropertiesKey = "storage.properties"

// MissingFieldError reports a required key absent from a database entry.
type MissingFieldError struct {
	Key string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("[%s] database %s must be set", PropertiesKey, e.Key)
}

func (e *MissingFieldError) Is(target error) bool { return target == common.ErrInvalidConfiguration }

// PathUnavailableError reports a storage path that could not be created.
type PathUnavailableError struct {
	Path string
	Err  error
}

func (e *PathUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] can not create storage path: %s: %v", PropertiesKey, e.Path, e.Err)
	}
	return fmt.Sprintf("[%s] can not create storage path: %s", PropertiesKey, e.Path)
}

func (e *PathUnavailableError) Unwrap() error        { return e.Err }
func (e *PathUnavailableError) Is(target error) bool { return target == common.ErrInvalidConfiguration }

// PermissionError reports a storage path the process is not allowed to write to.
type PermissionError struct {
	Path string
	Err  error
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("[%s] permission denied to write to: %s", PropertiesKey, e.Path)
}

func (e *PermissionError) Unwrap() error { return e.Err }

func (e *PermissionError) Is(target error) bool {
	return target == common.ErrInvalidConfiguration || target == common.ErrPermissionDenied
}

// FieldTypeError reports a value that does not convert to the type its key requires.
type FieldTypeError struct {
	Key      string
	Expected string
	Value    string
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("[%s] %s must be %s type, got %q", PropertiesKey, e.Key, e.Expected, e.Value)
}

func (e *FieldTypeError) Is(target error) bool { return target == common.ErrInvalidConfiguration }

// UnknownEnumValueError reports an integer with no mapped enum constant.
type UnknownEnumValueError struct {
	Key   string
	Value int
}

func (e *UnknownEnumValueError) Error() string {
	return fmt.Sprintf("[%s] %s has unknown persistent id %d", PropertiesKey, e.Key, e.Value)
}

func (e *UnknownEnumValueError) Is(target error) bool { return target == common.ErrInvalidConfiguration }

// DuplicateNameError reports two entries declaring the same database name.
// First and Second are the zero-based entry positions.
type DuplicateNameError struct {
	Name   string
	First  int
	Second int
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("[%s] duplicate database name %q at entries %d and %d", PropertiesKey, e.Name, e.First, e.Second)
}

func (e *DuplicateNameError) Is(target error) bool { return target == common.ErrInvalidConfiguration }
