package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/codegangsta/cli"

	"github.com/kevin-cantwell/glyphart/internal/config"
	"github.com/kevin-cantwell/glyphart/internal/log"
)

// state shared by every command once app.Before has run.
var (
	logger  = slog.Default()
	cfg     config.Config
	closers []io.Closer
)

func main() {
	app := cli.NewApp()
	app.Version = "0.1.0"
	app.Name = "glyphart"
	app.Usage = "Render images as text: character ramps, or your own prose."
	app.UsageText = "1) glyphart [global options] command [options] [file|url]\n" +
		/*      */ "   2) glyphart [global options] command [options] < [file]"
	app.Author = "Kevin Cantwell"
	app.Email = "kevin.cantwell@gmail.com"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "config",
			Usage:  "Read default settings from a YAML, TOML or JSON `FILE`.",
			EnvVar: "GLYPHART_CONFIG",
		},
		cli.StringFlag{
			Name:   "log-level",
			Usage:  "`LEVEL` is one of debug, info, warn or error.",
			Value:  "warn",
			EnvVar: "GLYPHART_LOG_LEVEL",
		},
		cli.StringFlag{
			Name:   "log-file",
			Usage:  "Also append logs to `FILE`.",
			EnvVar: "GLYPHART_LOG_FILE",
		},
	}
	app.Before = setup
	app.After = func(*cli.Context) error {
		var errs []error
		for _, c := range closers {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}
	app.Commands = []cli.Command{
		asciiCommand(),
		scriptCommand(),
		playCommand(),
		streamCommand(),
		fitCommand(),
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup(c *cli.Context) error {
	var err error
	if cfg, err = config.Load(c.String("config")); err != nil {
		return err
	}
	level, file := cfg.Log.Level, cfg.Log.File
	if c.IsSet("log-level") || level == "" {
		level = c.String("log-level")
	}
	if c.IsSet("log-file") {
		file = c.String("log-file")
	}
	logger, closers, err = log.SetupLogger(level, file)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	return nil
}

// interruptible returns a context cancelled by SIGINT or SIGTERM.
func interruptible() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func exit(err error) error {
	if err == nil {
		return nil
	}
	logger.Debug("command failed", "error", err)
	return cli.NewExitError(err.Error(), 1)
}
