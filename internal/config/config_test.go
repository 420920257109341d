package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv makes sure BUNDLETEST_* variables from the host do not leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{EnvArtifact, EnvModuleBase, EnvEntryPoint, EnvTimezone, EnvImportPolicy, EnvStorageBackend, EnvHistoryDSN} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func TestConfig_GetArtifactPath(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name:     "default path",
			config:   &Config{ProjectPath: ".", ArtifactPath: DefaultArtifactPath},
			expected: "target/test.js",
		},
		{
			name:     "relative to project",
			config:   &Config{ProjectPath: "/project", ArtifactPath: "build/test.js"},
			expected: "/project/build/test.js",
		},
		{
			name:     "absolute artifact path",
			config:   &Config{ProjectPath: "/project", ArtifactPath: "/absolute/test.js"},
			expected: "/absolute/test.js",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.GetArtifactPath()
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestConfig_ResolveModule(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		module   string
		expected string
	}{
		{
			name:     "plain concatenation",
			config:   &Config{ProjectPath: ".", ModuleBase: "D/"},
			module:   "foo/bar",
			expected: "D/foo/bar",
		},
		{
			name:     "default base keeps prefix verbatim",
			config:   &Config{ProjectPath: ".", ModuleBase: DefaultModuleBase},
			module:   "deps.js",
			expected: "./target/none/goog/deps.js",
		},
		{
			name:     "no separator is inserted",
			config:   &Config{ProjectPath: ".", ModuleBase: "lib_"},
			module:   "a.js",
			expected: "lib_a.js",
		},
		{
			name:     "absolute base ignores project",
			config:   &Config{ProjectPath: "/project", ModuleBase: "/mods/"},
			module:   "foo/bar",
			expected: "/mods/foo/bar",
		},
		{
			name:     "relative base under project",
			config:   &Config{ProjectPath: "/project", ModuleBase: "mods/"},
			module:   "foo/bar",
			expected: "/project/mods/foo/bar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.ResolveModule(tt.module))
		})
	}
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.ProjectPath != DefaultProjectPath {
		t.Errorf("expected ProjectPath %s, got %s", DefaultProjectPath, cfg.ProjectPath)
	}

	if cfg.Timezone != DefaultTimezone {
		t.Errorf("expected Timezone %s, got %s", DefaultTimezone, cfg.Timezone)
	}

	if len(cfg.Namespaces) != len(DefaultNamespaces) {
		t.Errorf("expected %d namespaces, got %d", len(DefaultNamespaces), len(cfg.Namespaces))
	}

	cfg.Namespaces[0] = "changed"
	if DefaultNamespaces[0] == "changed" {
		t.Error("New must copy the default namespaces")
	}
}

func TestConfig_LoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bundletest.yaml")
	content := `artifact: build/all_tests.js
module_base: build/deps/
entry_point: app.test.run_all
namespaces: [goog, app]
import_policy: strict
storage:
  backend: mysql
  dsn: "user:pw@tcp(localhost:3306)/ci"
  history_limit: 10
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg := New()
	require.NoError(t, cfg.LoadFile(path))

	assert.Equal(t, "build/all_tests.js", cfg.ArtifactPath)
	assert.Equal(t, "build/deps/", cfg.ModuleBase)
	assert.Equal(t, "app.test.run_all", cfg.EntryPoint)
	assert.Equal(t, []string{"goog", "app"}, cfg.Namespaces)
	assert.True(t, cfg.Strict())
	assert.Equal(t, StorageMySQL, cfg.Storage.Backend)
	assert.Equal(t, 10, cfg.Storage.HistoryLimit)
	// untouched keys keep their defaults
	assert.Equal(t, DefaultTimezone, cfg.Timezone)
	assert.Equal(t, DefaultImportHook, cfg.ImportHook)
}

func TestConfig_LoadFileErrors(t *testing.T) {
	cfg := New()
	err := cfg.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("artifact: [unclosed"), 0644))
	assert.Error(t, cfg.LoadFile(bad))
}

func TestConfig_LoadEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BUNDLETEST_ENTRY_POINT=fromdotenv.test_all\n"), 0644))
	t.Setenv(EnvTimezone, "Europe/Berlin")

	cfg := New()
	cfg.ProjectPath = dir
	cfg.LoadEnv()

	assert.Equal(t, "fromdotenv.test_all", cfg.EntryPoint)
	assert.Equal(t, "Europe/Berlin", cfg.Timezone)
	assert.Equal(t, DefaultArtifactPath, cfg.ArtifactPath)
}

func TestLoad_Precedence(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("artifact: from-file.js\nentry_point: file.test_all\n"), 0644))
	t.Setenv(EnvEntryPoint, "env.test_all")

	cfg, err := Load(Flags{ConfigFile: path, ArtifactPath: "from-flag.js", StrictImports: true})
	require.NoError(t, err)

	assert.Equal(t, "from-flag.js", cfg.ArtifactPath)
	assert.Equal(t, "env.test_all", cfg.EntryPoint)
	assert.Equal(t, ImportPolicyStrict, cfg.ImportPolicy)
}

func TestLoad_MissingExplicitConfigFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(Flags{ConfigFile: filepath.Join(t.TempDir(), "nope.yaml")})
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "empty entry point", mutate: func(c *Config) { c.EntryPoint = " " }, wantErr: true},
		{name: "empty artifact", mutate: func(c *Config) { c.ArtifactPath = "" }, wantErr: true},
		{name: "unknown policy", mutate: func(c *Config) { c.ImportPolicy = "sometimes" }, wantErr: true},
		{name: "mysql without dsn", mutate: func(c *Config) { c.Storage.Backend = StorageMySQL }, wantErr: true},
		{name: "mysql with dsn", mutate: func(c *Config) {
			c.Storage.Backend = StorageMySQL
			c.Storage.DSN = "root@tcp(127.0.0.1:3306)/ci"
		}},
		{name: "unknown backend", mutate: func(c *Config) { c.Storage.Backend = "s3" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_ValidateResetsHistoryLimit(t *testing.T) {
	cfg := New()
	cfg.Storage.HistoryLimit = 0
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultHistoryLimit, cfg.Storage.HistoryLimit)
}
