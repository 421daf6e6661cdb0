package cmd

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/gophertribe/devtool/build"
)

const (
	binary      = "dist/adc"
	mainPackage = "./cmd/adc"
	buildImage  = "gophertribe/gobuild:1.25-bookworm"
)

// target is the platform a build is requested for.
type target struct {
	os, arch           string
	crossOS, crossArch string
}

func (t target) native() bool {
	return t.os == runtime.GOOS && t.arch == runtime.GOARCH
}

// resolved returns the platform go build should produce; a native build can
// still cross-compile when both cross flags are given.
func (t target) resolved() (string, string) {
	if t.crossOS != "" && t.crossArch != "" {
		return t.crossOS, t.crossArch
	}
	return t.os, t.arch
}

func targetFromFlags(cmd *cobra.Command) target {
	return target{
		os:        cmd.Flag("os").Value.String(),
		arch:      cmd.Flag("arch").Value.String(),
		crossOS:   cmd.Flag("cross-os").Value.String(),
		crossArch: cmd.Flag("cross-arch").Value.String(),
	}
}

func BuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the adc cli",
		RunE: func(cmd *cobra.Command, args []string) error {
			t := targetFromFlags(cmd)
			version := cmd.Flag("version").Value.String()

			if t.native() {
				goos, goarch := t.resolved()
				slog.Info("building", "binary", binary, "os", goos, "arch", goarch, "version", version)
				// the adc cli has no cgo dependencies
				return build.GoBuild(binary, mainPackage, build.GoBuildOpts{
					Version:       version,
					InjectVersion: true,
					ConfigPackage: "github.com/mklimuk/adcreader/config",
					EnableCgo:     false,
					OS:            goos,
					Arch:          goarch,
				})
			}

			noCache, err := cmd.Flags().GetBool("no-cache")
			if err != nil {
				return fmt.Errorf("could not get no-cache flag: %w", err)
			}
			slog.Info("building in docker", "image", buildImage, "os", t.os, "arch", t.arch)
			devBinary := fmt.Sprintf("./dev-%s-%s", t.os, t.arch)
			return build.Docker(cmd.Context(), devBinary,
				[]string{"build", "--version", version, "--cross-os", t.crossOS, "--cross-arch", t.crossArch},
				build.DockerBuildOpts{
					NoCache: noCache,
					Image:   buildImage,
				})
		},
	}
	cmd.Flags().Bool("no-cache", false, "do not use docker cache")
	cmd.Flags().String("version", "latest", "version injected into the binary")
	cmd.Flags().String("os", runtime.GOOS, "target os; non-native targets build in docker")
	cmd.Flags().String("arch", runtime.GOARCH, "target arch; non-native targets build in docker")
	cmd.Flags().String("cross-os", "", "os to cross-compile for inside the build container")
	cmd.Flags().String("cross-arch", "", "arch to cross-compile for inside the build container")

	return cmd
}
