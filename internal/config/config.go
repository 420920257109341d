package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string `yaml:"project_path"`

	// Artifact settings
	ArtifactPath string   `yaml:"artifact"`
	ModuleBase   string   `yaml:"module_base"`
	EntryPoint   string   `yaml:"entry_point"`
	Namespaces   []string `yaml:"namespaces"`
	ImportHook   string   `yaml:"import_hook"`
	ImportPolicy string   `yaml:"import_policy"`

	// Environment settings
	Timezone string `yaml:"timezone"`

	// Output settings
	OutputJSONFile string `yaml:"output_file"`
	OutputJSONDir  string `yaml:"output_dir"`

	Storage StorageConfig `yaml:"storage"`

	// Command flags
	Flags Flags `yaml:"-"`
}

// StorageConfig selects where run records are kept
type StorageConfig struct {
	Backend      string `yaml:"backend"`
	DSN          string `yaml:"dsn"`
	HistoryLimit int    `yaml:"history_limit"`
}

// Flags holds command-line flags
type Flags struct {
	ConfigFile    string
	ArtifactPath  string
	ModuleBase    string
	EntryPoint    string
	Timezone      string
	StrictImports bool
	NoSave        bool
	Quiet         bool
	NameFilter    string
	Plain         bool
	Limit         int
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath:    DefaultProjectPath,
		ArtifactPath:   DefaultArtifactPath,
		ModuleBase:     DefaultModuleBase,
		EntryPoint:     DefaultEntryPoint,
		ImportHook:     DefaultImportHook,
		ImportPolicy:   DefaultImportPolicy,
		Timezone:       DefaultTimezone,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		Storage: StorageConfig{
			Backend:      DefaultStorageBackend,
			HistoryLimit: DefaultHistoryLimit,
		},
	}
	// Copy default namespaces
	cfg.Namespaces = make([]string, len(DefaultNamespaces))
	copy(cfg.Namespaces, DefaultNamespaces)
	return cfg
}

// Load creates a config from defaults, the config file, .env, the environment and flags, in that order
func Load(flags Flags) (*Config, error) {
	cfg := New()

	path := flags.ConfigFile
	explicit := path != ""
	if !explicit {
		path = filepath.Join(cfg.ProjectPath, DefaultConfigFile)
	}
	if err := cfg.LoadFile(path); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	cfg.LoadEnv()
	cfg.Apply(flags)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile overlays the YAML file at path onto the config
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// LoadEnv reads the project .env file and applies BUNDLETEST_* variables
func (c *Config) LoadEnv() {
	envPath := filepath.Join(c.ProjectPath, DefaultEnvFile)
	if err := godotenv.Load(envPath); err != nil {
		// .env file might not exist, that's okay - use environment variables
		_ = err
	}

	overrides := []struct {
		name   string
		target *string
	}{
		{EnvArtifact, &c.ArtifactPath},
		{EnvModuleBase, &c.ModuleBase},
		{EnvEntryPoint, &c.EntryPoint},
		{EnvTimezone, &c.Timezone},
		{EnvImportPolicy, &c.ImportPolicy},
		{EnvStorageBackend, &c.Storage.Backend},
		{EnvHistoryDSN, &c.Storage.DSN},
	}
	for _, o := range overrides {
		if v := os.Getenv(o.name); v != "" {
			*o.target = v
		}
	}
}

// Apply copies flags into the config, overriding non-empty values
func (c *Config) Apply(flags Flags) {
	c.Flags = flags

	if flags.ArtifactPath != "" {
		c.ArtifactPath = flags.ArtifactPath
	}
	if flags.ModuleBase != "" {
		c.ModuleBase = flags.ModuleBase
	}
	if flags.EntryPoint != "" {
		c.EntryPoint = flags.EntryPoint
	}
	if flags.Timezone != "" {
		c.Timezone = flags.Timezone
	}
	if flags.StrictImports {
		c.ImportPolicy = ImportPolicyStrict
	}
	if flags.Limit > 0 {
		c.Storage.HistoryLimit = flags.Limit
	}
}

// Validate checks settings that cannot be defaulted
func (c *Config) Validate() error {
	if strings.TrimSpace(c.EntryPoint) == "" {
		return errors.New("entry point must not be empty")
	}
	if strings.TrimSpace(c.ArtifactPath) == "" {
		return errors.New("artifact path must not be empty")
	}
	switch c.ImportPolicy {
	case ImportPolicyLenient, ImportPolicyStrict:
	default:
		return fmt.Errorf("unknown import policy %q (want %s or %s)", c.ImportPolicy, ImportPolicyLenient, ImportPolicyStrict)
	}
	switch c.Storage.Backend {
	case StorageJSON:
	case StorageMySQL:
		if c.Storage.DSN == "" {
			return fmt.Errorf("storage backend %s requires a DSN (%s)", StorageMySQL, EnvHistoryDSN)
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if c.Storage.HistoryLimit <= 0 {
		c.Storage.HistoryLimit = DefaultHistoryLimit
	}
	return nil
}

// GetArtifactPath returns the artifact path, relative to the project unless absolute
func (c *Config) GetArtifactPath() string {
	if filepath.IsAbs(c.ArtifactPath) {
		return c.ArtifactPath
	}
	return filepath.Join(c.ProjectPath, c.ArtifactPath)
}

// ResolveModule maps an auxiliary module name to a file path.
// The name is appended to ModuleBase as-is; no extension is added.
func (c *Config) ResolveModule(name string) string {
	p := c.ModuleBase + name
	if filepath.IsAbs(p) || c.ProjectPath == "" || c.ProjectPath == DefaultProjectPath {
		return p
	}
	return filepath.Join(c.ProjectPath, p)
}

// GetModuleBaseDir returns the module base as a directory path for scanning
func (c *Config) GetModuleBaseDir() string {
	if filepath.IsAbs(c.ModuleBase) {
		return c.ModuleBase
	}
	return filepath.Join(c.ProjectPath, c.ModuleBase)
}

// GetOutputPath returns the full path to the output JSON file.
// Resolves to an absolute path so run, last and history read/write the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// Strict reports whether auxiliary load failures must fail the artifact
func (c *Config) Strict() bool {
	return c.ImportPolicy == ImportPolicyStrict
}
