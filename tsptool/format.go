package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli"
	"go.uber.org/zap"

	"git.solver4all.com/azaryc2s/tsplib"
)

func formatCommand(env *environment) cli.Command {
	return cli.Command{
		Name:      "format",
		Usage:     "fold numeric arrays of JSON files onto single lines, in place",
		ArgsUsage: "FILE...",
		Action: func(c *cli.Context) error {
			return formatFiles(env.logger, c.Args())
		},
	}
}

func formatFiles(logger *zap.Logger, paths []string) error {
	if len(paths) == 0 {
		return errors.New("format: no input files")
	}
	failed := 0
	for _, path := range paths {
		if err := formatFile(path); err != nil {
			logger.Error("cannot format file", zap.String("file", path), zap.Error(err))
			failed++
			continue
		}
		logger.Info("formatted", zap.String("file", path))
	}
	if failed > 0 {
		return fmt.Errorf("format: %d of %d files failed", failed, len(paths))
	}
	return nil
}

func formatFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if !json.Valid(content) {
		return errors.New("not valid JSON")
	}
	return os.WriteFile(path, []byte(tsplib.CompactJSONArrays(string(content))), 0o644)
}
