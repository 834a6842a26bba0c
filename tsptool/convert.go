package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/urfave/cli"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"git.solver4all.com/azaryc2s/tsplib"
)

const instanceExt = ".tsp"

type convertJob struct {
	src string
	dst string
}

func convertCommand(env *environment) cli.Command {
	return cli.Command{
		Name:      "convert",
		Usage:     "convert TSPLIB files (or directories of *.tsp files) to JSON",
		ArgsUsage: "PATH...",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "out", Usage: "output directory (default: next to each input)"},
			cli.BoolFlag{Name: "fail-fast", Usage: "stop starting new files after the first failure"},
		},
		Action: func(c *cli.Context) error {
			jobs, err := collectJobs(c.Args(), c.String("out"))
			if err != nil {
				return err
			}
			return convertAll(context.Background(), env, jobs, c.Bool("fail-fast"))
		},
	}
}

// collectJobs expands directories to the *.tsp files they contain and maps
// every input to its JSON output path. Two inputs that would share an output
// path are an error.
func collectJobs(paths []string, outDir string) ([]convertJob, error) {
	if len(paths) == 0 {
		return nil, errors.New("convert: no input paths")
	}
	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return nil, err
		}
	}

	var sources []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			sources = append(sources, path)
			continue
		}
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), instanceExt) {
				continue
			}
			sources = append(sources, filepath.Join(path, e.Name()))
		}
	}
	sort.Strings(sources)
	sources = slices.Compact(sources)

	jobs := make([]convertJob, 0, len(sources))
	owners := make(map[string]string, len(sources))
	for _, src := range sources {
		dir := outDir
		if dir == "" {
			dir = filepath.Dir(src)
		}
		base := filepath.Base(src)
		base = strings.TrimSuffix(base, filepath.Ext(base)) + ".json"
		dst := filepath.Join(dir, base)
		if prev, ok := owners[dst]; ok {
			return nil, fmt.Errorf("convert: %s and %s would both be written to %s", prev, src, dst)
		}
		owners[dst] = src
		jobs = append(jobs, convertJob{src: src, dst: dst})
	}
	return jobs, nil
}

func convertAll(ctx context.Context, env *environment, jobs []convertJob, failFast bool) error {
	logger := env.logger

	var sys *tsplib.SysInfo
	if env.cfg.JSON.System {
		info, err := tsplib.HostInfo()
		if err != nil {
			logger.Warn("host information unavailable", zap.Error(err))
		} else {
			sys = &info
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(env.cfg.Workers)

	var failed, skipped atomic.Int64
	for _, job := range jobs {
		job := job
		g.Go(func() error {
			if ctx.Err() != nil {
				skipped.Add(1)
				logger.Debug("skipped", zap.String("file", job.src))
				return nil
			}
			dimension, err := convertFile(job, sys, env.cfg.JSON.Indent)
			if err != nil {
				failed.Add(1)
				logger.Error("conversion failed", zap.String("file", job.src), zap.Error(err))
				if failFast {
					return err
				}
				return nil
			}
			logger.Info("converted", zap.String("file", job.src), zap.String("output", job.dst), zap.Int("dimension", dimension))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("convert: %w (%d skipped)", err, skipped.Load())
	}
	if n := failed.Load(); n > 0 {
		return fmt.Errorf("convert: %d of %d files failed", n, len(jobs))
	}
	return nil
}

func convertFile(job convertJob, sys *tsplib.SysInfo, indent string) (int, error) {
	inst, err := tsplib.Load(job.src)
	if err != nil {
		return 0, err
	}
	data, err := tsplib.MarshalDocument(tsplib.NewDocument(inst, filepath.Base(job.src), sys), indent)
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(job.dst, data, 0o644); err != nil {
		return 0, err
	}
	return inst.Dimension, nil
}
