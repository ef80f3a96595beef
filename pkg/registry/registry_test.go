// pkg/registry/registry_test.go
package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRegistry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "registry.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRegistry(t *testing.T) {
	path := writeRegistry(t, `{
		"version": "1.0.0",
		"lastUpdated": "2026-08-20",
		"templates": [
			{"id": "T6", "name": "T6-Tearoff-TPO(MA)-insul-steel", "workType": "tearoff",
			 "membraneTypes": ["TPO"], "attachmentMethods": ["mechanically_attached"],
			 "deckTypes": ["steel"], "sections": ["project_overview"],
			 "complexity": "standard", "estimatedDuration": "7-10 days per 10,000 sf"}
		]
	}`)

	reg, err := LoadRegistry(path)
	require.NoError(t, err)
	require.Len(t, reg.Templates, 1)

	tpl, ok := reg.Get("T6")
	require.True(t, ok)
	assert.Equal(t, "tearoff", tpl.WorkType)

	_, ok = reg.Get("T99")
	assert.False(t, ok)
}

func TestLoadRegistry_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing id",
			content: `{"templates": [{"name": "x", "workType": "tearoff"}]}`,
			wantErr: "missing id",
		},
		{
			name: "duplicate id",
			content: `{"templates": [
				{"id": "T6", "workType": "tearoff"},
				{"id": "T6", "workType": "recover"}
			]}`,
			wantErr: "duplicate id",
		},
		{
			name:    "unknown work type",
			content: `{"templates": [{"id": "T6", "workType": "demolish"}]}`,
			wantErr: "unknown work type",
		},
		{
			name:    "malformed json",
			content: `{"templates": [`,
			wantErr: "unexpected end",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadRegistry(writeRegistry(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadRegistry_MissingFile(t *testing.T) {
	_, err := LoadRegistry(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
