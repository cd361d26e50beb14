// Package recipe implements the package-build descriptor for the sockpp
// library.
//
// # Overview
//
// A Recipe maps a small set of user-facing build options (shared vs. static
// linkage, whether to build examples, tests, and documentation) onto the
// configuration flags of the underlying CMake build, drives that build
// through its configure, build, and install steps, and publishes consumption
// metadata (include paths, library directories, library names, and
// platform-specific system libraries) for downstream consumers.
//
// # Core Types
//
// Options: the tri-state option set
//
//	opts := recipe.Options{
//	    Shared: recipe.OptionEnabled,   // force shared, disable static
//	    Tests:  recipe.OptionDisabled,  // force tests off
//	    Docs:   recipe.OptionDeferred,  // defer to CMakeLists defaults
//	}
//
// Each option is Enabled, Disabled, or Deferred. Deferred means "emit no
// flag and let the underlying build's own default apply"; it is a distinct
// state, not a spelling of Disabled.
//
// Target: the (os, compiler, build type, arch) tuple a build is performed
// for. Only the operating system affects published package metadata.
//
// Recipe: the lifecycle driver
//
//	r := recipe.New(recipe.Sockpp(), opts, target, driver)
//	if err := r.Build(ctx); err != nil { ... }
//	if err := r.Package(ctx, "dist"); err != nil { ... }
//	info, err := r.PackageInfo()
//
// Configure is re-run at the start of Build and Package; the flag resolution
// is a pure function of the option set, so repeated runs are idempotent.
// PackageInfo is metadata-only and never touches the build system, so a host
// platform may query it without a prior build.
//
// # Concurrency
//
// A Recipe is not safe for concurrent use. Hosts building several targets
// concurrently must use one Recipe per target with isolated build and output
// directories.
package recipe
