package serializer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{path: "options.json", want: FormatJSON},
		{path: "matrix.yaml", want: FormatYAML},
		{path: "matrix.YML", want: FormatYAML},
		{path: "report.txt", want: FormatTable},
		{path: "noextension", want: FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFromPath(tt.path))
		})
	}
}

func TestNewReaderRejectsTable(t *testing.T) {
	_, err := NewReader(FormatTable, strings.NewReader(""))
	assert.Error(t, err)
}

func TestNewReaderRejectsUnknown(t *testing.T) {
	_, err := NewReader(Format("xml"), strings.NewReader(""))
	assert.Error(t, err)
}

func TestReaderDeserializeJSON(t *testing.T) {
	r, err := NewReader(FormatJSON, strings.NewReader(`{"shared":"on","tests":"off"}`))
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, r.Deserialize(&got))
	assert.Equal(t, "on", got["shared"])
	assert.Equal(t, "off", got["tests"])
}

func TestReaderDeserializeYAML(t *testing.T) {
	// Bare on/off are YAML booleans; option values must be quoted.
	r, err := NewReader(FormatYAML, strings.NewReader("shared: \"on\"\ndocs: default\n"))
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, r.Deserialize(&got))
	assert.Equal(t, "on", got["shared"])
	assert.Equal(t, "default", got["docs"])
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "options.yaml")
	require.NoError(t, os.WriteFile(path, []byte("shared: \"on\"\nexamples: \"off\"\n"), 0o600))

	got, err := FromFile[map[string]string](path)
	require.NoError(t, err)
	assert.Equal(t, "on", (*got)["shared"])
	assert.Equal(t, "off", (*got)["examples"])
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile[map[string]string]("/nonexistent/options.yaml")
	assert.Error(t, err)
}
