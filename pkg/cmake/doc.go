// Package cmake drives the CMake executable through the configure, build,
// and install steps of a packaging run.
//
// The Driver is the production implementation of recipe.BuildSystem. CMake
// is treated as an opaque synchronous tool: each step runs to completion
// with a bounded timeout, a non-zero exit surfaces as an error carrying the
// tail of the tool output, and partial build artifacts are left wherever
// CMake leaves them.
//
// Example usage:
//
//	driver := cmake.New(cmake.Config{
//	    SourceDir: "sockpp",
//	    BuildDir:  "build/linux-amd64",
//	    BuildType: recipe.BuildTypeRelease,
//	})
//	r := recipe.New(recipe.Sockpp(), opts, target, driver)
//	err := r.Build(ctx)
package cmake
