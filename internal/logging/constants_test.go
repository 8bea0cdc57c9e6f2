package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstants_AreDistinct(t *testing.T) {
	fields := []string{
		FieldFile, FieldInputFile, FieldOutputFile, FieldCategory, FieldSheet,
		FieldEmployee, FieldDate, FieldRow, FieldCount, FieldReason, FieldMode, FieldError,
	}

	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		assert.NotEmpty(t, f)
		assert.False(t, seen[f], "duplicate field name %q", f)
		seen[f] = true
	}
}
