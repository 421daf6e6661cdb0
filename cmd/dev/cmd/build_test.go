package cmd

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTarget(t *testing.T) {
	native := target{os: runtime.GOOS, arch: runtime.GOARCH}
	assert.True(t, native.native())
	goos, goarch := native.resolved()
	assert.Equal(t, runtime.GOOS, goos)
	assert.Equal(t, runtime.GOARCH, goarch)

	cross := target{os: runtime.GOOS, arch: runtime.GOARCH, crossOS: "linux", crossArch: "arm"}
	assert.True(t, cross.native())
	goos, goarch = cross.resolved()
	assert.Equal(t, "linux", goos)
	assert.Equal(t, "arm", goarch)

	halfCross := target{os: "linux", arch: "arm64", crossOS: "linux"}
	goos, goarch = halfCross.resolved()
	assert.Equal(t, "linux", goos)
	assert.Equal(t, "arm64", goarch)

	foreign := target{os: "plan9", arch: "mips"}
	assert.False(t, foreign.native())
}

func TestBuildCmdFlags(t *testing.T) {
	cmd := BuildCmd()
	for _, name := range []string{"no-cache", "version", "os", "arch", "cross-os", "cross-arch"} {
		assert.NotNil(t, cmd.Flag(name), name)
	}
	assert.Equal(t, runtime.GOOS, targetFromFlags(cmd).os)
}
