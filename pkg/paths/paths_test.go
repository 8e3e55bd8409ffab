package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EnvironmentOverrides(t *testing.T) {
	root := t.TempDir()
	t.Setenv(EnvScriptsDir, filepath.Join(root, "scripts"))
	t.Setenv(EnvDataDir, filepath.Join(root, "data"))
	t.Setenv(EnvApplicationsDir, filepath.Join(root, "apps"))

	p, err := New(Options{ScriptsDir: "/ignored", ApplicationsDir: "/ignored"})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "scripts"), p.ScriptsDir())
	assert.False(t, p.UsedFallback())
	assert.Equal(t, filepath.Join(root, "data"), p.DataDir())
	assert.Equal(t, filepath.Join(root, "data", "bin"), p.BinDir())
	assert.Equal(t, filepath.Join(root, "data", "zshrc"), p.SandboxRoot())
	assert.Equal(t, filepath.Join(root, "apps"), p.ApplicationsDir())
	assert.Equal(t, filepath.Join(root, "data", "bin", "backup"), p.StubPath("backup"))
	assert.Equal(t, filepath.Join(root, "data", "zshrc", "work"), p.SandboxDir("work"))
}

func TestNew_OptionsUsedWithoutEnvironment(t *testing.T) {
	root := t.TempDir()
	t.Setenv(EnvScriptsDir, "")
	t.Setenv(EnvApplicationsDir, "")
	t.Setenv(EnvDataDir, filepath.Join(root, "data"))

	p, err := New(Options{
		ScriptsDir:      filepath.Join(root, "mine"),
		ApplicationsDir: filepath.Join(root, "launchers"),
	})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "mine"), p.ScriptsDir())
	assert.Equal(t, filepath.Join(root, "launchers"), p.ApplicationsDir())
}

func TestNew_RelativeScriptsDirBecomesAbsolute(t *testing.T) {
	t.Setenv(EnvScriptsDir, "scripts")

	p, err := New(Options{})
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(p.ScriptsDir()))
	assert.Equal(t, "scripts", filepath.Base(p.ScriptsDir()))
}

func TestNew_RelativeDataDirsBecomeAbsolute(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(EnvScriptsDir, "scripts")
	t.Setenv(EnvDataDir, "data")
	t.Setenv(EnvApplicationsDir, "apps")

	cwd, err := os.Getwd()
	require.NoError(t, err)

	p, err := New(Options{})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(cwd, "data"), p.DataDir())
	assert.Equal(t, filepath.Join(cwd, "data", BinDirName), p.BinDir())
	assert.Equal(t, filepath.Join(cwd, "apps"), p.ApplicationsDir())
}

func TestNew_RelativeApplicationsDirOption(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(EnvScriptsDir, "scripts")
	t.Setenv(EnvApplicationsDir, "")

	cwd, err := os.Getwd()
	require.NoError(t, err)

	p, err := New(Options{ApplicationsDir: "menu"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, "menu"), p.ApplicationsDir())
}

func TestNew_FallsBackToWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvScriptsDir, "")
	chdir(t, dir)

	p, err := New(Options{})
	require.NoError(t, err)

	// Temp dirs are not inside a git checkout, so the cwd is used.
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(p.ScriptsDir())
	require.NoError(t, err)
	assert.Equal(t, resolved, got)
	assert.True(t, p.UsedFallback())
}

func TestConfigFilePath(t *testing.T) {
	t.Setenv(EnvConfigDir, "/custom/config")
	assert.Equal(t, filepath.Join("/custom/config", "config.toml"), ConfigFilePath())
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"~", home},
		{"~/scripts", filepath.Join(home, "scripts")},
		{"~other/scripts", "~other/scripts"},
		{"/abs/path", "/abs/path"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandHome(tt.input))
		})
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (stand-in for testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
