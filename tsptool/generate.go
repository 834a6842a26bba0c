package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli"
	"go.uber.org/zap"

	"git.solver4all.com/azaryc2s/tsplib"
)

type generateOptions struct {
	Nodes          []int
	Count          int
	XMax, YMax     int
	EdgeWeightType string
	Name           string
	Seed           int64
	OutDir         string
}

func generateCommand(env *environment) cli.Command {
	return cli.Command{
		Name:  "generate",
		Usage: "write random TSPLIB instances with integer coordinates",
		Flags: []cli.Flag{
			cli.IntSliceFlag{Name: "n", Usage: "number of nodes, repeat for several sizes"},
			cli.IntFlag{Name: "count", Value: 1, Usage: "number of instances per size"},
			cli.IntFlag{Name: "x", Value: 10000, Usage: "max value on the x-axis"},
			cli.IntFlag{Name: "y", Value: 10000, Usage: "max value on the y-axis"},
			cli.StringFlag{Name: "w", Value: "EUC_2D", Usage: "EDGE_WEIGHT_TYPE written to the files"},
			cli.StringFlag{Name: "name", Value: "random", Usage: "prefix of the instance names"},
			cli.Int64Flag{Name: "seed", Usage: "random seed (default: current time)"},
			cli.StringFlag{Name: "out", Value: ".", Usage: "output directory"},
		},
		Action: func(c *cli.Context) error {
			opts := generateOptions{
				Nodes:          c.IntSlice("n"),
				Count:          c.Int("count"),
				XMax:           c.Int("x"),
				YMax:           c.Int("y"),
				EdgeWeightType: c.String("w"),
				Name:           c.String("name"),
				Seed:           time.Now().UnixNano(),
				OutDir:         c.String("out"),
			}
			if c.IsSet("seed") {
				opts.Seed = c.Int64("seed")
			}
			_, err := generate(env.logger, opts)
			return err
		},
	}
}

// generate writes Count instances for every size in Nodes and returns the
// paths it created.
func generate(logger *zap.Logger, opts generateOptions) ([]string, error) {
	if len(opts.Nodes) == 0 {
		return nil, errors.New("generate: at least one --n is required")
	}
	if opts.XMax <= 0 || opts.YMax <= 0 {
		return nil, fmt.Errorf("generate: axis bounds must be positive, got x=%d y=%d", opts.XMax, opts.YMax)
	}
	for _, n := range opts.Nodes {
		if n < 0 {
			return nil, fmt.Errorf("generate: negative node count %d", n)
		}
	}
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	var written []string
	for l := 0; l < opts.Count; l++ {
		for _, n := range opts.Nodes {
			coordinates := make([][]float64, n)
			for node := 0; node < n; node++ {
				coordinates[node] = []float64{float64(rng.Intn(opts.XMax)), float64(rng.Intn(opts.YMax))}
			}
			inst := &tsplib.Instance{
				Name:            fmt.Sprintf("%s_%d_%d", opts.Name, n, l),
				Type:            "TSP",
				Comment:         fmt.Sprintf("seed-%d", opts.Seed),
				Dimension:       n,
				EdgeWeightType:  opts.EdgeWeightType,
				NodeCoordinates: coordinates,
			}
			path := filepath.Join(opts.OutDir, inst.Name+instanceExt)
			if err := tsplib.Save(path, inst); err != nil {
				return written, fmt.Errorf("generate %s: %w", path, err)
			}
			written = append(written, path)
			logger.Info("generated", zap.String("file", path), zap.Int("dimension", n))
		}
	}
	return written, nil
}
