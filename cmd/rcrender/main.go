// Command rcrender renders an HTML document with its stylesheets into a PNG
// image, using block layout only.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const appName = "rcrender"

// initializeAppContext prepares application context before command execution but
// after command line has been parsed
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error
	env := envFromContext(ctx)

	configFile := cmd.String("config")
	if env.Cfg, err = LoadConfiguration(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if env.Log, err = newLogger(cmd.Bool("debug")); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	env.Log.Debug("Program started", zap.Strings("args", os.Args), zap.String("runtime", runtime.Version()))
	if len(configFile) == 0 {
		env.Log.Debug("Using defaults (no configuration file)")
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) (err error) {
	env := envFromContext(ctx)
	env.Log.Debug("Program ended", zap.Duration("elapsed", env.uptime()), zap.Strings("parsed args", cmd.Args().Slice()))
	if er := env.Log.Sync(); er != nil && !isIgnorableSyncError(er) {
		err = multierr.Append(err, fmt.Errorf("unable to sync log: %w", er))
	}
	return
}

// Syncing a logger writing to a terminal fails on some platforms.
func isIgnorableSyncError(err error) bool {
	var pe *os.PathError
	return errors.As(err, &pe)
}

var errWasHandled bool

// this is called before appContext is destroyed, so we have a chance to
// properly log any error from subcommand
func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	env := envFromContext(ctx)
	env.Log.Error("Program ended with error", zap.Error(err))
	errWasHandled = true
}

func main() {
	ctx, stop := signal.NotifyContext(contextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	app := &cli.Command{
		Name:            appName,
		Usage:           "renders HTML documents into PNG images (block layout only)",
		Version:         runtime.Version(),
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		ExitErrHandler:  exitErrHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "log debug messages"},
		},
		Commands: []*cli.Command{
			{
				Name:   "render",
				Usage:  "Renders an HTML file to PNG",
				Action: runRender,
				Flags: []cli.Flag{
					&cli.StringSliceFlag{Name: "css", Usage: "apply stylesheet `FILE` (may be repeated)"},
					&cli.IntFlag{Name: "width", Usage: "viewport width in pixels"},
					&cli.IntFlag{Name: "height", Usage: "viewport height in pixels"},
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "write image to `FILE`"},
					&cli.BoolFlag{Name: "lenient", Usage: "skip unsupported CSS instead of failing"},
					&cli.BoolFlag{Name: "no-ua", Usage: "do not apply the user-agent stylesheet"},
					&cli.BoolFlag{Name: "dump", Usage: "print the box tree"},
				},
				ArgsUsage: "FILE.html",
			},
			{
				Name:      "dumpconfig",
				Usage:     "Dumps the actual configuration (YAML)",
				Action:    outputConfiguration,
				ArgsUsage: "[DESTINATION]",
			},
		},
	}

	var err error
	defer func() {
		stop()
		if err != nil {
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = app.Run(ctx, os.Args)
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {
	env := envFromContext(ctx)
	fname := cmd.Args().Get(0)
	data, err := Dump(env.Cfg)
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}
	out := os.Stdout
	if len(fname) > 0 {
		if out, err = os.Create(fname); err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer out.Close()
	}
	if _, err = out.Write(data); err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}
