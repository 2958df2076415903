package cmd

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mj1618/zwm/internal/config"
	"github.com/mj1618/zwm/internal/launch"
	"github.com/mj1618/zwm/internal/logging"
	"github.com/mj1618/zwm/internal/platform"
	"github.com/mj1618/zwm/internal/version"
	"github.com/mj1618/zwm/internal/wm"
)

var rootCmd = &cobra.Command{
	Use:          "zwm",
	Short:        "A minimal X11 window manager",
	Long:         "zwm manages full-screen windows across ten workspaces and every Xinerama screen, driven entirely by key bindings.",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runWM,
}

// exitError carries a process exit code through cobra.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// exitCode maps a command error to the process exit status: 2 for bad
// configuration, 1 for everything else.
func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return 1
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/zwm/config.yaml, env ZWM_CONFIG)")
	rootCmd.Flags().String("log-file", "", "Log file (default $HOME/.zwm, env ZWM_LOG_FILE)")
	rootCmd.Flags().Bool("debug", false, "Log at debug level (env ZWM_DEBUG)")
}

// overrides merges the environment with any flags given explicitly.
func overrides(cmd *cobra.Command) config.Overrides {
	o := config.OverridesFromEnv(os.Environ())
	if f := cmd.Flags().Lookup("config"); f != nil && f.Changed {
		o.ConfigPath = f.Value.String()
	}
	if f := cmd.Flags().Lookup("log-file"); f != nil && f.Changed {
		o.LogFile = f.Value.String()
	}
	if f := cmd.Flags().Lookup("debug"); f != nil && f.Changed {
		o.Debug, _ = cmd.Flags().GetBool("debug")
	}
	return o
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadWith(overrides(cmd))
	if err != nil {
		return nil, &exitError{code: 2, err: fmt.Errorf("config: %w", err)}
	}
	return cfg, nil
}

func runWM(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logFile, err := logging.Open(cfg.LogFile, cfg.Debug)
	if err != nil {
		return err
	}
	defer logFile.Close()
	log.WithFields(log.Fields{"version": version.Version}).Info("Starting zwm")

	launch.IgnoreChildren()

	d, err := platform.Open()
	if err != nil {
		log.Error("open display: ", err)
		return fmt.Errorf("open display: %w", err)
	}

	w, err := wm.New(d, wm.Options{
		Modifier: cfg.Modifier,
		Bindings: cfg.Bindings,
		Spawner:  launch.Detached{},
	})
	if err != nil {
		d.Close()
		log.Error("start: ", err)
		return err
	}

	if err := w.Run(); err != nil {
		log.Error("event loop: ", err)
		return err
	}
	w.Shutdown()
	return nil
}
