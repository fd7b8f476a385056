package common

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapError(t *testing.T) {
	tests := []struct {
		name            string
		originalError   error
		message         string
		expectedMessage string
	}{
		{
			name:            "wrap simple error",
			originalError:   errors.New("original error"),
			message:         "wrapper message",
			expectedMessage: "wrapper message: original error",
		},
		{
			name:            "empty wrapper message",
			originalError:   errors.New("original error"),
			message:         "",
			expectedMessage: ": original error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrappedError := WrapError(tt.originalError, tt.message)
			require.Error(t, wrappedError)
			assert.Equal(t, tt.expectedMessage, wrappedError.Error())
			assert.True(t, errors.Is(wrappedError, tt.originalError))
		})
	}

	assert.Nil(t, WrapError(nil, "ignored"))
	assert.Nil(t, WrapErrorf(nil, "ignored %d", 1))
}

func TestWrapErrorf(t *testing.T) {
	err := WrapErrorf(fs.ErrNotExist, "entry[%d]", 3)
	assert.Equal(t, "entry[3]: file does not exist", err.Error())
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("config_file", "/x.yaml", "config file does not exist")

	assert.Equal(t, "validation failed for field 'config_file': config file does not exist (value: /x.yaml)", err.Error())
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestCombineErrors(t *testing.T) {
	first := errors.New("first")
	second := errors.New("second")

	assert.Nil(t, CombineErrors(nil))
	assert.Nil(t, CombineErrors([]error{nil, nil}))
	assert.Same(t, first, CombineErrors([]error{nil, first}))

	combined := CombineErrors([]error{first, second})
	assert.Equal(t, "multiple errors occurred: [first; second]", combined.Error())
	assert.ErrorIs(t, combined, first)
	assert.ErrorIs(t, combined, second)
}

func TestErrorCollector(t *testing.T) {
	var collector ErrorCollector
	assert.NoError(t, collector.Error())

	collector.Add(nil)
	collector.Add(fs.ErrPermission)
	assert.ErrorIs(t, collector.Error(), fs.ErrPermission)
}
