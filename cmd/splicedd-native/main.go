// Package main provides the native host process for the splicedd front end.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/splicedd/pkg/adapters/logger"
	"github.com/user/splicedd/pkg/adapters/osfilesystem"
	"github.com/user/splicedd/pkg/bridge"
	"github.com/user/splicedd/pkg/config"
	"github.com/user/splicedd/pkg/gateway"
	"github.com/user/splicedd/pkg/ports"
)

var version = "dev"

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, l10n.F("Error: %s", err))
		os.Exit(1)
	}
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	baseDirFlag := &cli.StringFlag{
		Name:    "base-dir",
		Aliases: []string{"b"},
		Usage:   l10n.T("Base directory (defaults to sample_dir from the configuration)"),
	}

	return &cli.App{
		Name:      "splicedd-native",
		Usage:     l10n.T("Native file access for the splicedd sample browser"),
		Version:   version,
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				EnvVars: []string{"SPLICEDD_CONFIG"},
				Usage:   l10n.T("Configuration file path"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   l10n.T("Log level (debug, info, warn, error)"),
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"Q"},
				Usage:   l10n.T("Suppress all log output"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  l10n.T("Serve file commands as JSON lines over stdin and stdout"),
				Action: serveAction,
			},
			{
				Name:      "write-sample",
				Usage:     l10n.T("Write a .wav sample from a file or stdin"),
				ArgsUsage: "RELATIVE_PATH [SOURCE]",
				Flags:     []cli.Flag{baseDirFlag},
				Action:    writeSampleAction,
			},
			{
				Name:      "exists",
				Usage:     l10n.T("Print whether a file or directory exists"),
				ArgsUsage: "RELATIVE_PATH",
				Flags:     []cli.Flag{baseDirFlag},
				Action:    existsAction,
			},
			{
				Name:      "placeholder",
				Usage:     l10n.T("Create an empty placeholder file"),
				ArgsUsage: "RELATIVE_PATH",
				Flags:     []cli.Flag{baseDirFlag},
				Action:    placeholderAction,
			},
			{
				Name:      "init-config",
				Usage:     l10n.T("Write the default configuration file"),
				ArgsUsage: "[PATH]",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "force", Aliases: []string{"f"}, Usage: l10n.T("Overwrite an existing file")},
				},
				Action: initConfigAction,
			},
		},
	}
}

// host holds what every command needs.
type host struct {
	cfg config.Config
	log ports.Logger
	fs  ports.FileSystem
	gw  *gateway.Gateway
}

// setup loads the configuration and builds the logger and gateway.
// In serve mode stdout carries responses, so logs go to stderr.
func setup(c *cli.Context, serveMode bool) (*host, error) {
	fs := osfilesystem.New()

	path := c.String("config")
	if path == "" {
		if p, err := config.DefaultPath(); err == nil {
			path = p
		}
	}

	cfg := config.Defaults()
	if path != "" {
		loaded, err := config.Load(fs, path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	level := cfg.Level()
	if c.IsSet("log-level") {
		level = ports.ParseLogLevel(c.String("log-level"))
	}

	var log ports.Logger
	switch {
	case c.Bool("quiet") || level == ports.LevelQuiet:
		log = logger.NewNoop()
	case serveMode:
		log = logger.NewStderrConsole(level)
	default:
		log = logger.NewConsole(level)
	}
	if path != "" {
		log.Debug("Loaded configuration from %s", path)
	}

	return &host{
		cfg: cfg,
		log: log,
		fs:  fs,
		gw:  gateway.New(fs, log),
	}, nil
}

func (h *host) baseDir(c *cli.Context) string {
	if c.IsSet("base-dir") {
		return c.String("base-dir")
	}
	return h.cfg.SampleDir
}

func relativePathArg(c *cli.Context) (string, error) {
	if c.NArg() < 1 {
		return "", errors.New(l10n.T("missing RELATIVE_PATH argument"))
	}
	return c.Args().Get(0), nil
}

func serveAction(c *cli.Context) error {
	h, err := setup(c, true)
	if err != nil {
		return err
	}

	registry := bridge.NewRegistry()
	if err := bridge.RegisterGateway(registry, h.gw); err != nil {
		return err
	}
	if err := bridge.RegisterConfig(registry, h.cfg); err != nil {
		return err
	}
	srv := bridge.NewServer(registry, h.log)

	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			h.log.Warn("Interrupted, shutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	h.log.Info("Bridge listening on stdio with %d commands", len(registry.Names()))
	err = srv.Serve(ctx, c.App.Reader, c.App.Writer)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func writeSampleAction(c *cli.Context) error {
	h, err := setup(c, false)
	if err != nil {
		return err
	}
	rel, err := relativePathArg(c)
	if err != nil {
		return err
	}

	var data []byte
	if src := c.Args().Get(1); src != "" && src != "-" {
		data, err = h.fs.ReadFile(src)
	} else {
		data, err = io.ReadAll(c.App.Reader)
	}
	if err != nil {
		return fmt.Errorf("read sample: %w", err)
	}

	return h.gw.WriteSampleFile(h.baseDir(c), rel, data)
}

func existsAction(c *cli.Context) error {
	h, err := setup(c, false)
	if err != nil {
		return err
	}
	rel, err := relativePathArg(c)
	if err != nil {
		return err
	}

	exists, err := h.gw.FileExists(h.baseDir(c), rel)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, exists)
	return nil
}

func placeholderAction(c *cli.Context) error {
	h, err := setup(c, false)
	if err != nil {
		return err
	}
	rel, err := relativePathArg(c)
	if err != nil {
		return err
	}

	return h.gw.CreatePlaceholderFile(h.baseDir(c), rel)
}

func initConfigAction(c *cli.Context) error {
	h, err := setup(c, false)
	if err != nil {
		return err
	}

	path := c.Args().Get(0)
	if path == "" {
		if path, err = config.DefaultPath(); err != nil {
			return err
		}
	}

	exists, err := h.fs.Exists(path)
	if err != nil {
		return err
	}
	if exists && !c.Bool("force") {
		return errors.New(l10n.F("%s already exists (use --force to overwrite)", path))
	}

	if err := config.Defaults().Save(h.fs, path); err != nil {
		return err
	}
	h.log.Info("Wrote default configuration to %s", path)
	return nil
}
