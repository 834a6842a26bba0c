package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli"
	"go.uber.org/zap"

	"git.solver4all.com/azaryc2s/tsplib"
)

func headersCommand(env *environment) cli.Command {
	return cli.Command{
		Name:      "headers",
		Usage:     "print the header fields of TSPLIB files",
		ArgsUsage: "FILE...",
		Action: func(c *cli.Context) error {
			return printHeaders(env.logger, c.App.Writer, c.Args())
		},
	}
}

func printHeaders(logger *zap.Logger, out io.Writer, paths []string) error {
	if len(paths) == 0 {
		return errors.New("headers: no input files")
	}
	failed := 0
	for _, path := range paths {
		inst, err := tsplib.Load(path)
		if err != nil {
			logger.Error("cannot load instance", zap.String("file", path), zap.Error(err))
			failed++
			continue
		}
		if err := tsplib.WriteHeaders(out, inst); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("headers: %d of %d files failed", failed, len(paths))
	}
	return nil
}
