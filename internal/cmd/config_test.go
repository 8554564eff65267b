package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/opmodel/create-vite/internal/config"
	"github.com/opmodel/create-vite/internal/testutil"
)

func TestConfigInit_CreatesFile(t *testing.T) {
	path := testutil.IsolateConfig(t)
	cwd := t.TempDir()

	c, out := newTestRootCmd(cwd, nil, confirmAll(true), &fakeRunner{})
	c.SetArgs([]string{"config", "init"})

	require.NoError(t, c.Execute())
	assert.Contains(t, out.String(), "Configuration written to")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# create-vite configuration")

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, config.DefaultTemplate, cfg.Template)
	assert.Equal(t, config.DefaultProjectName, cfg.ProjectName)
}

func TestConfigInit_ExistingConfig(t *testing.T) {
	cwd := testEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("template: vue\n"), 0o600))

	c, _ := newTestRootCmd(cwd, nil, confirmAll(true), &fakeRunner{})
	c.SetArgs([]string{"config", "init", "--config", path})

	err := c.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestConfigInit_ForceOverwritesBrokenFile(t *testing.T) {
	cwd := testEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("template: [broken\n"), 0o600))

	c, _ := newTestRootCmd(cwd, nil, confirmAll(true), &fakeRunner{})
	c.SetArgs([]string{"config", "init", "--force", "--config", path})

	require.NoError(t, c.Execute())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "broken")
}

func TestConfigShow(t *testing.T) {
	cwd := testEnv(t)
	t.Setenv("CREATE_VITE_TEMPLATE", "vue")

	c, out := newTestRootCmd(cwd, nil, confirmAll(true), &fakeRunner{})
	c.SetArgs([]string{"config", "show"})

	require.NoError(t, c.Execute())
	assert.Contains(t, out.String(), "vue")
	assert.Contains(t, out.String(), "config")
	assert.Contains(t, out.String(), "vite-demo")
	assert.Contains(t, out.String(), "default")
}
