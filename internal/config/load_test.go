package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalYAML = `project:
  name: my-platform
  domain: example.com
  email: ops@example.com
environments:
  - name: staging
    domain: staging.example.com
    cluster:
      region: fra1
      node_size: s-2vcpu-4gb
      node_count: 2
applications:
  - keycloak
`

func TestLoadBytes_Valid(t *testing.T) {
	cfg, err := LoadBytes([]byte(minimalYAML))
	require.NoError(t, err)

	assert.Equal(t, "my-platform", cfg.Project.Name)
	require.Len(t, cfg.Environments, 1)
	assert.Equal(t, EnvStaging, cfg.Environments[0].Name)
	assert.Equal(t, RegionFRA1, cfg.Environments[0].Cluster.Region)
	assert.Equal(t, []AppName{AppKeycloak}, cfg.Applications)

	// Defaults are applied on load.
	assert.False(t, cfg.Features.EmailEnabled())
	assert.True(t, cfg.Features.MonitoringEnabled())
}

func TestLoadBytes_InvalidConfig(t *testing.T) {
	yaml := `project:
  name: My Platform
environments:
  - name: staging
    domain: staging.example.com
    cluster:
      region: fra1
      node_size: s-2vcpu-4gb
      node_count: 2
`
	_, err := LoadBytes([]byte(yaml))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project.name")
}

func TestLoadBytes_BadYAML(t *testing.T) {
	_, err := LoadBytes([]byte("project: ["))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reef.yaml")

	cfg := validConfig()
	require.NoError(t, SaveFile(&cfg, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, *loaded)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultConfigFilename), []byte(minimalYAML), 0600))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(cwd) })
	require.NoError(t, os.Chdir(sub))

	path, err := FindConfigFile()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfigFilename, filepath.Base(path))
}
