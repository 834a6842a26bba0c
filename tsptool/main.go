package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
	"go.uber.org/zap"
)

// environment is filled in by the app's Before hook and shared by the
// commands.
type environment struct {
	cfg    *Config
	logger *zap.Logger
}

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.App {
	env := &environment{}

	app := cli.NewApp()
	app.Name = "tsptool"
	app.Usage = "inspect, convert and generate TSPLIB instances"
	app.Writer = out
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config", Usage: "path to a config file (default: tsptool.{yaml,toml,json} in . or $HOME/.config/tsptool)"},
		cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
		cli.StringFlag{Name: "log-format", Usage: "console or json"},
		cli.IntFlag{Name: "workers", Usage: "number of files processed in parallel"},
	}
	app.Before = env.setup
	app.After = env.close
	app.Commands = []cli.Command{
		headersCommand(env),
		convertCommand(env),
		formatCommand(env),
		generateCommand(env),
	}
	return app
}

func (env *environment) setup(c *cli.Context) error {
	overrides := map[string]any{}
	if c.IsSet("log-level") {
		overrides["log.level"] = c.String("log-level")
	}
	if c.IsSet("log-format") {
		overrides["log.format"] = c.String("log-format")
	}
	if c.IsSet("workers") {
		overrides["workers"] = c.Int("workers")
	}

	cfg, err := loadConfig(c.String("config"), overrides)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	env.cfg = cfg
	env.logger = logger
	logger.Debug("configuration loaded", zap.Int("workers", cfg.Workers), zap.Bool("json_system", cfg.JSON.System))
	return nil
}

func (env *environment) close(*cli.Context) error {
	if env.logger != nil {
		_ = env.logger.Sync()
	}
	return nil
}
