package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/tasktable/internal/app"
	"github.com/runoshun/tasktable/internal/domain"
)

// newConfigTestContainer creates a container with the real config loader,
// isolated from the user's environment. It returns the global config path.
func newConfigTestContainer(t *testing.T) (*app.Container, string) {
	t.Helper()
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv(domain.EnvConfigPath, "")
	t.Setenv(domain.EnvAPIURL, "")
	t.Setenv(domain.EnvLogLevel, "")

	return app.NewConfigOnly(t.TempDir()), domain.GlobalConfigPath(configHome)
}

func TestConfigCommand_NoSubcommand_ShowsHelp(t *testing.T) {
	container, _ := newConfigTestContainer(t)

	cmd := newConfigCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	output := buf.String()
	assert.Contains(t, output, "Available Commands:")
	assert.Contains(t, output, "show")
	assert.Contains(t, output, "init")
}

func TestConfigShowCommand_Defaults(t *testing.T) {
	container, globalPath := newConfigTestContainer(t)

	cmd := newConfigCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"show"})

	require.NoError(t, cmd.Execute())
	output := buf.String()
	assert.Contains(t, output, "[Loaded from]")
	assert.Contains(t, output, globalPath+" (not found)")
	assert.Contains(t, output, "[Effective Config]")
	assert.Contains(t, output, domain.DefaultBaseURL)
	assert.Contains(t, output, "page_size = 3")
}

func TestConfigShowCommand_GlobalFile(t *testing.T) {
	container, globalPath := newConfigTestContainer(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(globalPath), 0o755))
	require.NoError(t, os.WriteFile(globalPath, []byte("[view]\npage_size = 10\n"), 0o644))

	cmd := newConfigCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"show"})

	require.NoError(t, cmd.Execute())
	output := buf.String()
	assert.Contains(t, output, "- "+globalPath+"\n")
	assert.Contains(t, output, "page_size = 10")
}

func TestConfigShowCommand_PathOnly(t *testing.T) {
	container, globalPath := newConfigTestContainer(t)

	cmd := newConfigCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"show", "--path"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), globalPath)
	assert.NotContains(t, buf.String(), "[Effective Config]")
}

func TestConfigShowCommand_BrokenConfig(t *testing.T) {
	container, _ := newConfigTestContainer(t)
	t.Setenv(domain.EnvAPIURL, "ftp://example.com")

	cmd := newConfigCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"show"})

	require.NoError(t, cmd.Execute())
	output := buf.String()
	assert.Contains(t, output, "[Error]")
	assert.Contains(t, output, "invalid API base URL")
	assert.NotContains(t, output, "[Effective Config]")
}

func TestConfigInitCommand(t *testing.T) {
	container, globalPath := newConfigTestContainer(t)

	cmd := newConfigCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"init"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Created config file: "+globalPath)

	content, err := os.ReadFile(globalPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[api]")
	assert.Contains(t, string(content), "timeout")
	assert.Contains(t, string(content), "10s")
}

func TestConfigInitCommand_AlreadyExists(t *testing.T) {
	container, globalPath := newConfigTestContainer(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(globalPath), 0o755))
	require.NoError(t, os.WriteFile(globalPath, []byte("# mine\n"), 0o644))

	cmd := newConfigCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"init"})

	assert.ErrorIs(t, cmd.Execute(), domain.ErrConfigExists)

	content, err := os.ReadFile(globalPath)
	require.NoError(t, err)
	assert.Equal(t, "# mine\n", string(content))
}
