package recipe

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/fpagliughi/sockpkg/pkg/errors"
)

// fakeBuildSystem records lifecycle calls and can be primed to fail at a
// given step.
type fakeBuildSystem struct {
	calls        []string
	lastFlags    FlagSet
	lastDest     string
	configureErr error
	buildErr     error
	installErr   error
}

func (f *fakeBuildSystem) Configure(_ context.Context, flags FlagSet) error {
	f.calls = append(f.calls, "configure")
	f.lastFlags = flags
	return f.configureErr
}

func (f *fakeBuildSystem) Build(_ context.Context) error {
	f.calls = append(f.calls, "build")
	return f.buildErr
}

func (f *fakeBuildSystem) Install(_ context.Context, dest string) error {
	f.calls = append(f.calls, "install")
	f.lastDest = dest
	return f.installErr
}

func newTestRecipe(opts Options, bs BuildSystem) *Recipe {
	return New(Sockpp(), opts, Target{OS: OSLinux, Arch: "amd64"}, bs)
}

func TestConfigurePassesResolvedFlags(t *testing.T) {
	fake := &fakeBuildSystem{}
	opts, err := ParseOptions(map[string]string{"shared": "on"})
	require.NoError(t, err)

	r := newTestRecipe(opts, fake)
	require.NoError(t, r.Configure(context.Background()))

	assert.Equal(t, []string{"configure"}, fake.calls)
	assert.Equal(t, FlagSet{
		FlagBuildShared: "ON",
		FlagBuildStatic: "OFF",
	}, fake.lastFlags)
}

func TestBuildRunsConfigureFirst(t *testing.T) {
	fake := &fakeBuildSystem{}
	r := newTestRecipe(DefaultOptions(), fake)

	require.NoError(t, r.Build(context.Background()))
	assert.Equal(t, []string{"configure", "build"}, fake.calls)
}

func TestPackageRunsConfigureFirst(t *testing.T) {
	fake := &fakeBuildSystem{}
	r := newTestRecipe(DefaultOptions(), fake)

	require.NoError(t, r.Package(context.Background(), "dist"))
	assert.Equal(t, []string{"configure", "install"}, fake.calls)
	assert.Equal(t, "dist", fake.lastDest)
}

func TestConfigureFailurePropagates(t *testing.T) {
	cause := errors.New("generator not found")
	fake := &fakeBuildSystem{configureErr: cause}
	r := newTestRecipe(DefaultOptions(), fake)

	err := r.Configure(context.Background())
	require.Error(t, err)
	assert.Equal(t, pkgerrors.ErrCodeConfigurationFailed, pkgerrors.CodeOf(err))
	assert.ErrorIs(t, err, cause)
}

func TestBuildFailureDoesNotReachInstall(t *testing.T) {
	cause := errors.New("compiler exited with status 2")
	fake := &fakeBuildSystem{buildErr: cause}
	r := newTestRecipe(DefaultOptions(), fake)

	err := r.Build(context.Background())
	require.Error(t, err)
	assert.Equal(t, pkgerrors.ErrCodeBuildFailed, pkgerrors.CodeOf(err))
	assert.ErrorIs(t, err, cause)
	assert.NotContains(t, fake.calls, "install")
}

func TestBuildConfigureFailureKeepsConfigureCode(t *testing.T) {
	fake := &fakeBuildSystem{configureErr: errors.New("bad flag")}
	r := newTestRecipe(DefaultOptions(), fake)

	err := r.Build(context.Background())
	require.Error(t, err)
	assert.Equal(t, pkgerrors.ErrCodeConfigurationFailed, pkgerrors.CodeOf(err))
	assert.NotContains(t, fake.calls, "build")
}

func TestPackageFailurePropagates(t *testing.T) {
	fake := &fakeBuildSystem{installErr: errors.New("permission denied")}
	r := newTestRecipe(DefaultOptions(), fake)

	err := r.Package(context.Background(), "dist")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.ErrCodePackageFailed, pkgerrors.CodeOf(err))
}

func TestInvalidOptionsNeverReachBuildSystem(t *testing.T) {
	fake := &fakeBuildSystem{}
	opts := DefaultOptions()
	opts.Shared = OptionValue("sideways")
	r := newTestRecipe(opts, fake)

	err := r.Configure(context.Background())
	require.Error(t, err)
	assert.Equal(t, pkgerrors.ErrCodeInvalidOption, pkgerrors.CodeOf(err))
	assert.Empty(t, fake.calls)
}

func TestPackageInfoNeverTouchesBuildSystem(t *testing.T) {
	fake := &fakeBuildSystem{}
	r := newTestRecipe(DefaultOptions(), fake)

	info, err := r.PackageInfo()
	require.NoError(t, err)
	assert.Equal(t, []string{"sockpp"}, info.Libs)
	assert.Empty(t, fake.calls, "package-info must be metadata-only")
}

func TestPackageInfoUnsupportedTarget(t *testing.T) {
	r := New(Sockpp(), DefaultOptions(), Target{OS: OSType("macos")}, &fakeBuildSystem{})

	_, err := r.PackageInfo()
	require.Error(t, err)
	assert.Equal(t, pkgerrors.ErrCodeUnsupportedPlatform, pkgerrors.CodeOf(err))
}

func TestRunIDsAreUniquePerRecipe(t *testing.T) {
	a := newTestRecipe(DefaultOptions(), &fakeBuildSystem{})
	b := newTestRecipe(DefaultOptions(), &fakeBuildSystem{})

	assert.NotEmpty(t, a.RunID())
	assert.NotEqual(t, a.RunID(), b.RunID())
}

func TestAccessors(t *testing.T) {
	opts, err := ParseOptions(map[string]string{"docs": "on"})
	require.NoError(t, err)
	tgt := Target{OS: OSWindows, Compiler: "msvc", BuildType: BuildTypeRelease, Arch: "x86_64"}
	r := New(Sockpp(), opts, tgt, &fakeBuildSystem{})

	assert.Equal(t, "sockpp", r.Identity().Name)
	assert.Equal(t, "0.7", r.Identity().Version.String())
	assert.Equal(t, opts, r.Options())
	assert.Equal(t, tgt, r.Target())
}
