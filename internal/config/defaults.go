package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultArtifactPath is the pre-built test bundle, relative to the project
	DefaultArtifactPath = "./target/test.js"
	// DefaultModuleBase is prepended verbatim to auxiliary module names
	DefaultModuleBase = "./target/none/goog/"
	// DefaultEntryPoint is the dotted path of the aggregate test function
	DefaultEntryPoint = "tongue.test.test_all"
	// DefaultTimezone is applied before the artifact is loaded
	DefaultTimezone = "UTC"
	// DefaultImportHook is the global name the bundle calls to load auxiliary modules
	DefaultImportHook = "CLOSURE_IMPORT_SCRIPT"
	// DefaultImportPolicy keeps the hook reporting success on failed loads
	DefaultImportPolicy = ImportPolicyLenient
	// DefaultConfigFile is read from the project path when present
	DefaultConfigFile = "bundletest.yaml"
	// DefaultEnvFile is read from the project path when present
	DefaultEnvFile = ".env"
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "test-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = "storage"
	// DefaultStorageBackend is the default run storage
	DefaultStorageBackend = StorageJSON
	// DefaultHistoryLimit caps the number of stored runs
	DefaultHistoryLimit = 50
)

// Import policies for the auxiliary module hook
const (
	ImportPolicyLenient = "lenient"
	ImportPolicyStrict  = "strict"
)

// Storage backends
const (
	StorageJSON  = "json"
	StorageMySQL = "mysql"
)

// DefaultNamespaces are defined as empty objects before the artifact runs
var DefaultNamespaces = []string{
	"goog",
}

// Environment variables read by LoadEnv
const (
	EnvArtifact       = "BUNDLETEST_ARTIFACT"
	EnvModuleBase     = "BUNDLETEST_MODULE_BASE"
	EnvEntryPoint     = "BUNDLETEST_ENTRY_POINT"
	EnvTimezone       = "BUNDLETEST_TZ"
	EnvImportPolicy   = "BUNDLETEST_IMPORT_POLICY"
	EnvStorageBackend = "BUNDLETEST_STORAGE_BACKEND"
	EnvHistoryDSN     = "BUNDLETEST_HISTORY_DSN"
)
