// Copyright (c) 2026, the sockpp project authors.  All rights reserved.
//
// Licensed under the BSD 3-Clause License. See the LICENSE file in the
// repository root for the full license text.

package recipe

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fpagliughi/sockpkg/pkg/errors"
)

// BuildSystem is the consumed interface of the underlying native build
// system. Implementations run synchronously; any blocking happens inside
// these calls, bounded by the provided context.
type BuildSystem interface {
	// Configure hands the resolved flag set to the build system's
	// configuration step, which writes its own generated build files.
	Configure(ctx context.Context, flags FlagSet) error

	// Build invokes the compile step against the previously configured tree.
	Build(ctx context.Context) error

	// Install stages built artifacts into the destination directory.
	Install(ctx context.Context, dest string) error
}

// Recipe is the package-build descriptor: identity metadata, the declared
// option set, the target platform, and the lifecycle operations the host
// packaging platform invokes.
//
// A Recipe owns its state for the duration of one packaging run and is not
// safe for concurrent use; hosts building several targets concurrently must
// use one Recipe per target.
type Recipe struct {
	identity Identity
	options  Options
	target   Target
	bs       BuildSystem
	runID    string
}

// New creates a Recipe for one packaging run. A fresh run ID is attached for
// correlating the configure/build/package steps in logs.
func New(id Identity, opts Options, target Target, bs BuildSystem) *Recipe {
	return &Recipe{
		identity: id,
		options:  opts,
		target:   target,
		bs:       bs,
		runID:    uuid.NewString(),
	}
}

// Identity returns the immutable identity metadata.
func (r *Recipe) Identity() Identity { return r.identity }

// Options returns the option set this run was created with.
func (r *Recipe) Options() Options { return r.options }

// Target returns the target platform tuple.
func (r *Recipe) Target() Target { return r.target }

// RunID returns the correlation ID of this packaging run.
func (r *Recipe) RunID() string { return r.runID }

// Configure resolves the option set into configuration flags and hands them
// to the underlying build system. Failures propagate as CONFIGURATION_FAILED
// (or INVALID_OPTION for local validation failures) and abort the run.
func (r *Recipe) Configure(ctx context.Context) error {
	flags, err := r.options.Resolve()
	if err != nil {
		return err
	}

	slog.Info("configuring",
		"name", r.identity.Name,
		"target", r.target.String(),
		"flags", len(flags),
		"run_id", r.runID,
	)

	if err := r.bs.Configure(ctx, flags); err != nil {
		return errors.WrapWithContext(errors.ErrCodeConfigurationFailed,
			"underlying configure step failed", err,
			map[string]any{"step": "configure", "run_id": r.runID})
	}
	return nil
}

// Build configures, then invokes the underlying compile step. Flags are
// recomputed on every call; resolution is idempotent so the rerun is safe.
// Compile failures propagate as BUILD_FAILED. Partial build artifacts are
// left as the underlying tool leaves them.
func (r *Recipe) Build(ctx context.Context) error {
	if err := r.Configure(ctx); err != nil {
		return err
	}

	slog.Info("building", "name", r.identity.Name, "run_id", r.runID)

	if err := r.bs.Build(ctx); err != nil {
		return errors.WrapWithContext(errors.ErrCodeBuildFailed,
			"underlying compile step failed", err,
			map[string]any{"step": "build", "run_id": r.runID})
	}
	return nil
}

// Package configures, then stages artifacts into dest via the underlying
// install step. Failures propagate as PACKAGE_FAILED.
func (r *Recipe) Package(ctx context.Context, dest string) error {
	if err := r.Configure(ctx); err != nil {
		return err
	}

	slog.Info("packaging", "name", r.identity.Name, "dest", dest, "run_id", r.runID)

	if err := r.bs.Install(ctx, dest); err != nil {
		return errors.WrapWithContext(errors.ErrCodePackageFailed,
			"underlying install step failed", err,
			map[string]any{"step": "package", "run_id": r.runID, "dest": dest})
	}
	return nil
}

// PackageInfo publishes the consumption metadata for the recipe's target
// operating system. It never touches the build system and may be queried at
// any time, including before a build has run.
func (r *Recipe) PackageInfo() (PackageInfo, error) {
	return PackageInfoFor(r.identity, r.target.OS)
}
