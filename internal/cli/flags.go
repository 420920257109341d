package cli

import "bundletest/internal/config"

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

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ConfigFile:    f.ConfigFile,
		ArtifactPath:  f.ArtifactPath,
		ModuleBase:    f.ModuleBase,
		EntryPoint:    f.EntryPoint,
		Timezone:      f.Timezone,
		StrictImports: f.StrictImports,
		NoSave:        f.NoSave,
		Quiet:         f.Quiet,
		NameFilter:    f.NameFilter,
		Plain:         f.Plain,
		Limit:         f.Limit,
	}
}
