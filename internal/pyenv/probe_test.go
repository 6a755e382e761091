package pyenv

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPipAvailable(t *testing.T) {
	f := newFakeRunner()
	assert.True(t, PipAvailable(context.Background(), f, "py"))

	f.fail["py -m pip --version"] = errors.New("exit status 1")
	assert.False(t, PipAvailable(context.Background(), f, "py"))
	assert.Equal(t, []string{"py -m pip --version", "py -m pip --version"}, f.recorded())
}

func TestEnsurePip(t *testing.T) {
	f := newFakeRunner()
	assert.NoError(t, EnsurePip(context.Background(), f, "py"))
	assert.Equal(t, []string{"py -m ensurepip --upgrade"}, f.recorded())

	f.fail["py -m ensurepip --upgrade"] = errors.New("exit status 1")
	assert.Error(t, EnsurePip(context.Background(), f, "py"))
}

func TestInVirtualEnv(t *testing.T) {
	probe := "py -c " + venvProbe

	f := newFakeRunner()
	f.stdout[probe] = "True\n"
	assert.True(t, InVirtualEnv(context.Background(), f, "py"))

	f.stdout[probe] = "False\n"
	assert.False(t, InVirtualEnv(context.Background(), f, "py"))

	// Anything other than a clean True is treated as no isolation.
	f.stdout[probe] = "True\nsome warning"
	assert.False(t, InVirtualEnv(context.Background(), f, "py"))

	f.fail[probe] = errors.New("exit status 1")
	assert.False(t, InVirtualEnv(context.Background(), f, "py"))
}

func TestUvAvailable(t *testing.T) {
	f := newFakeRunner()
	assert.True(t, UvAvailable(context.Background(), f, "py"))

	f.fail["py -m uv --version"] = errors.New("exit status 1")
	assert.False(t, UvAvailable(context.Background(), f, "py"))
}

func TestCanImport(t *testing.T) {
	f := newFakeRunner()
	assert.True(t, CanImport(context.Background(), f, "py", "clyp"))
	assert.Equal(t, []string{"py -c import clyp"}, f.recorded())

	f.fail["py -c import clyp"] = errors.New("exit status 1")
	assert.False(t, CanImport(context.Background(), f, "py", "clyp"))
}

func TestSnapshot(t *testing.T) {
	f := newFakeRunner()
	f.stdout["py -m pip freeze"] = "clyp==1.2.3\nrequests==2.32.0\n"
	assert.Equal(t, "clyp==1.2.3\nrequests==2.32.0\n", Snapshot(context.Background(), f, "py"))

	f.fail["py -m pip freeze"] = errors.New("exit status 1")
	assert.Empty(t, Snapshot(context.Background(), f, "py"))
}
