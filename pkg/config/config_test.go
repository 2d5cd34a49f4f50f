package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roadgraph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ":5000", cfg.Server.ListenAddr)
	assert.Equal(t, "http://localhost:5000/swagger/doc.json", cfg.Server.SwaggerURL)
	assert.Equal(t, "solo_jogja.osm.pbf", cfg.Map.File)
	assert.Equal(t, 1.0, cfg.Routing.MaxSnapDistance)
	assert.Equal(t, "greatcircle", cfg.Routing.Heuristic)
	assert.Equal(t, []string{"https://*", "http://*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 300, cfg.CORS.MaxAge)
}

func TestLoadFromPath(t *testing.T) {
	path := writeConfig(t, `
server:
  listen_addr: ":6060"
map:
  file: ucsd.map
routing:
  heuristic: straightline
`)

	cfg, gotPath, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, path, gotPath)
	assert.Equal(t, ":6060", cfg.Server.ListenAddr)
	assert.Equal(t, "http://localhost:6060/swagger/doc.json", cfg.Server.SwaggerURL)
	assert.Equal(t, "ucsd.map", cfg.Map.File)
	assert.Equal(t, "straightline", cfg.Routing.Heuristic)
	assert.Equal(t, 1.0, cfg.Routing.MaxSnapDistance)
}

func TestLoadFromPathErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
		errText string
	}{
		{name: "broken yaml", content: "server: [", errText: "parse config"},
		{name: "negative snap distance", content: "routing:\n  max_snap_distance: -1\n", errText: "max_snap_distance"},
		{name: "unknown heuristic", content: "routing:\n  heuristic: manhattan\n", errText: "unknown heuristic"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := LoadFromPath(writeConfig(t, tc.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errText)
		})
	}

	_, _, err := LoadFromPath(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")
}

func TestLoadFromEnv(t *testing.T) {
	path := writeConfig(t, "map:\n  file: env.map\n")
	t.Setenv("ROADGRAPH_CONFIG", path)

	cfg, gotPath, err := Load()
	require.NoError(t, err)
	assert.Equal(t, path, gotPath)
	assert.Equal(t, "env.map", cfg.Map.File)
}
