// Package loader executes a pre-built JavaScript test bundle inside an embedded
// runtime and exposes the resulting namespace through a Registry.
//
// The bundle is run once, synchronously, in the registry's global scope. While it
// runs it may call the import hook (CLOSURE_IMPORT_SCRIPT by default) with a
// symbolic module name; the loader resolves the name by prefixing the configured
// module base and runs that file into the same registry.
//
// Any failure to read, compile or execute the primary artifact is returned as a
// *LoadError. Failures of auxiliary modules depend on the import policy:
//
//   - lenient: the hook logs and records the failure and still returns true
//   - strict: the hook throws, failing the artifact that requested the module
package loader
