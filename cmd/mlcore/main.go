// Command mlcore is a thin CLI over the mlcore library: install a version,
// launch it, or pull in a Fabric loader profile, per SPEC_FULL.md §4.O.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/brightforge/mlcore/events"
	"github.com/brightforge/mlcore/internal/args"
	"github.com/brightforge/mlcore/internal/config"
	"github.com/brightforge/mlcore/internal/folder"
	"github.com/brightforge/mlcore/internal/install"
	"github.com/brightforge/mlcore/internal/options"
	"github.com/brightforge/mlcore/internal/platform"
	"github.com/brightforge/mlcore/internal/process"
	"github.com/brightforge/mlcore/internal/version"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "mlcore",
		Short: "Install and launch Minecraft-like game versions",
	}
	root.PersistentFlags().String("dir", "", "game directory (default: ./.mlcore)")
	v.BindPFlag("game.dir", root.PersistentFlags().Lookup("dir"))

	root.AddCommand(newInstallCmd(v), newLaunchCmd(v), newFabricCmd(v))
	return root
}

func loadConfig(v *viper.Viper) *config.Config {
	cfg, err := config.Load(".")
	if err != nil {
		logrus.WithError(err).Warn("failed to load config file, using defaults")
		cfg = config.Default()
	}
	return cfg
}

func gameDir(v *viper.Viper) string {
	if d := v.GetString("game.dir"); d != "" {
		return d
	}
	return "./.mlcore"
}

func newInstallCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "install <version>",
		Short: "Install a vanilla version into the game directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, cliArgs []string) error {
			cfg := loadConfig(v)
			ins := install.New(gameDir(v), platform.Probe(), cfg)

			_, err := ins.Install(context.Background(), cliArgs[0], progressObserver())
			return err
		},
	}
}

func newFabricCmd(v *viper.Viper) *cobra.Command {
	fabric := &cobra.Command{
		Use:   "fabric",
		Short: "Fabric loader operations",
	}
	fabric.AddCommand(&cobra.Command{
		Use:   "install <mc-version> <loader-version>",
		Short: "Install the Fabric loader on top of a vanilla version",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, cliArgs []string) error {
			cfg := loadConfig(v)
			ins := install.New(gameDir(v), platform.Probe(), cfg)
			id, err := ins.InstallLoader(context.Background(), install.Fabric, cliArgs[0], cliArgs[1])
			if err != nil {
				return err
			}
			fmt.Println(id)
			return nil
		},
	})
	return fabric
}

func newLaunchCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "launch <version>",
		Short: "Launch an installed version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, cliArgs []string) error {
			cfg := loadConfig(v)
			username, _ := cmd.Flags().GetString("user")
			javaBin, _ := cmd.Flags().GetString("java")

			f := folder.New(gameDir(v))
			p := platform.Probe()
			rv, err := version.Resolve(f, cliArgs[0], p, cfg.ForgeMavenURL)
			if err != nil {
				return err
			}

			o, err := options.New(cliArgs[0], f)
			if err != nil {
				return err
			}
			if username != "" {
				o.Profile.Name = username
			}
			if javaBin != "" {
				o.JavaBinary = javaBin
			}

			tokens, err := args.Build(o, rv, p, f)
			if err != nil {
				return err
			}

			code, err := process.Launch(o.JavaBinary, tokens, o.ProcessPriority, processObserver())
			if err != nil {
				return err
			}
			if code != 0 {
				os.Exit(code)
			}
			return nil
		},
	}
	cmd.Flags().String("user", "", "player display name")
	cmd.Flags().String("java", "", "java binary to launch with")
	return cmd
}

func progressObserver() events.DownloadObserver {
	return events.DownloadObserver{
		OnStart: func() { fmt.Println("downloading...") },
		OnProgress: func(p events.Progress) {
			if p.Total == 0 {
				return
			}
			fmt.Printf("\r%d/%d", p.Completed, p.Total)
		},
		OnSucceed: func() { fmt.Println("\ndone") },
		OnFailed: func(errs []error) {
			fmt.Printf("\n%d task(s) failed, first error: %v\n", len(errs), errs[0])
		},
	}
}

func processObserver() events.ProcessObserver {
	return events.ProcessObserver{
		OnStdout: func(line string) { fmt.Println(line) },
		OnStderr: func(line string) { fmt.Fprintln(os.Stderr, line) },
		OnExit:   func(code int) { logrus.WithField("code", code).Info("process exited") },
	}
}
