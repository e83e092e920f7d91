package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validateTestdata(t *testing.T, name string) error {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return ValidatePackage(data)
}

func TestValidatePackage(t *testing.T) {
	tests := []struct {
		file    string
		pointer string
	}{
		{"valid-package.json", ""},
		{"invalid-bad-name.json", "/name"},
		{"invalid-missing-version.json", ""},
		{"invalid-empty-script.json", "/scripts/dev"},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			err := validateTestdata(t, tt.file)
			if tt.file == "valid-package.json" {
				assert.NoError(t, err)
				return
			}

			var invalid *InvalidPackageError
			require.True(t, errors.As(err, &invalid), "got %v", err)
			require.NotEmpty(t, invalid.Issues)
			if tt.pointer == "" {
				return
			}
			var pointers []string
			for _, issue := range invalid.Issues {
				assert.NotEmpty(t, issue.Message)
				pointers = append(pointers, issue.Pointer)
			}
			assert.Contains(t, pointers, tt.pointer)
		})
	}
}

func TestValidatePackageNotJSON(t *testing.T) {
	err := ValidatePackage([]byte("name: app"))
	require.Error(t, err)

	var invalid *InvalidPackageError
	assert.False(t, errors.As(err, &invalid))
}

func TestPackageSchemaCompiles(t *testing.T) {
	s, err := loadSchema()
	require.NoError(t, err)
	assert.NotNil(t, s)
}
