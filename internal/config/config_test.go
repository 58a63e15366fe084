package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("TIMELINE_DAY_WIDTH", "not-a-number")
	t.Setenv("DRAG_ACTIVATION_DISTANCE", "12")

	cfg := Load()

	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, 32.0, cfg.DayWidth)
	assert.Equal(t, 12.0, cfg.ActivationDistance)
	assert.Contains(t, cfg.DSN(), "host=db.internal")
	assert.Contains(t, cfg.MigrateURL(), "@db.internal:")
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoad_CORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://ui.example ,, http://localhost:5173")

	cfg := Load()

	assert.Equal(t, []string{"https://ui.example", "http://localhost:5173"}, cfg.CORSOrigins)
}

func TestParseColumns(t *testing.T) {
	cols, err := ParseColumns([]byte(`
columns:
  - id: planning
    name: Planning
    color: "#64748b"
  - id: study
`))

	require.NoError(t, err)
	require.Len(t, cols, 2)
	assert.Equal(t, "Planning", cols[0].Name)
	assert.Equal(t, "study", cols[1].Name)
	assert.Equal(t, 1, cols[1].Position)
}

func TestParseColumns_Invalid(t *testing.T) {
	tests := map[string]string{
		"empty":     "columns: []",
		"no id":     "columns:\n  - name: Planning",
		"duplicate": "columns:\n  - id: a\n  - id: a",
		"not yaml":  "columns: [",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseColumns([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadColumns(t *testing.T) {
	cols, err := LoadColumns("")
	require.NoError(t, err)
	assert.Equal(t, "planning", cols[0].ID)

	path := filepath.Join(t.TempDir(), "columns.yaml")
	require.NoError(t, os.WriteFile(path, []byte("columns:\n  - id: intake\n"), 0o644))
	cols, err = LoadColumns(path)
	require.NoError(t, err)
	assert.Equal(t, "intake", cols[0].ID)

	_, err = LoadColumns(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
