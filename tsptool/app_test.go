package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"git.solver4all.com/azaryc2s/tsplib"
)

// AppSuite drives the tsptool commands end to end inside a temp directory.
type AppSuite struct {
	suite.Suite
	dir string
	out *bytes.Buffer
}

func TestAppSuite(t *testing.T) {
	suite.Run(t, new(AppSuite))
}

func (s *AppSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.out = &bytes.Buffer{}
}

func (s *AppSuite) run(args ...string) error {
	full := append([]string{"tsptool", "--log-level", "error", "--workers", "2"}, args...)
	return newApp(s.out).Run(full)
}

func (s *AppSuite) path(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *AppSuite) TestGenerateThenLoad() {
	require.NoError(s.T(), s.run("generate", "--n", "3", "--n", "5", "--count", "2", "--seed", "42", "--x", "50", "--y", "20", "--out", s.dir))

	for _, name := range []string{"random_3_0", "random_5_0", "random_3_1", "random_5_1"} {
		inst, err := tsplib.Load(s.path(name + ".tsp"))
		require.NoError(s.T(), err, name)
		require.Equal(s.T(), name, inst.Name)
		require.Equal(s.T(), "seed-42", inst.Comment)
		require.Len(s.T(), inst.NodeCoordinates, inst.Dimension)
		for _, xy := range inst.NodeCoordinates {
			require.GreaterOrEqual(s.T(), xy[0], 0.0)
			require.Less(s.T(), xy[0], 50.0)
			require.Less(s.T(), xy[1], 20.0)
		}
	}
}

func (s *AppSuite) TestGenerateIsDeterministic() {
	opts := generateOptions{Nodes: []int{4}, Count: 1, XMax: 100, YMax: 100, EdgeWeightType: "EUC_2D", Name: "d", Seed: 7}

	opts.OutDir = s.path("a")
	first, err := generate(zap.NewNop(), opts)
	require.NoError(s.T(), err)
	opts.OutDir = s.path("b")
	second, err := generate(zap.NewNop(), opts)
	require.NoError(s.T(), err)

	a, err := os.ReadFile(first[0])
	require.NoError(s.T(), err)
	b, err := os.ReadFile(second[0])
	require.NoError(s.T(), err)
	require.Equal(s.T(), a, b)
}

func (s *AppSuite) TestGenerateRejects() {
	require.Error(s.T(), s.run("generate", "--out", s.dir))
	require.Error(s.T(), s.run("generate", "--n", "3", "--x", "0", "--out", s.dir))
	require.Error(s.T(), s.run("generate", "--n", "3", "--name", "two words", "--out", s.dir))
}

func (s *AppSuite) TestHeaders() {
	require.NoError(s.T(), s.run("headers", filepath.Join("..", "testdata", "test1.tsp")))
	require.Equal(s.T(),
		"\nName:  test1\nType:  TSP\nComment:  sample\nDimension:  3\nEdge Weight Type:  EUC_2D \n\n",
		s.out.String())
}

func (s *AppSuite) TestHeadersReportsFailures() {
	err := s.run("headers", filepath.Join("..", "testdata", "pent5.tsp"), s.path("missing.tsp"))
	require.ErrorContains(s.T(), err, "1 of 2 files failed")
	require.Contains(s.T(), s.out.String(), "Name:  pent5")

	require.Error(s.T(), s.run("headers"))
}

func (s *AppSuite) TestConvertDirectory() {
	require.NoError(s.T(), s.run("generate", "--n", "4", "--count", "3", "--seed", "1", "--out", s.dir))
	require.NoError(s.T(), os.WriteFile(s.path("notes.txt"), []byte("ignored"), 0o644))

	outDir := s.path("json")
	require.NoError(s.T(), s.run("convert", "--out", outDir, s.dir))

	entries, err := os.ReadDir(outDir)
	require.NoError(s.T(), err)
	require.Len(s.T(), entries, 3)

	data, err := os.ReadFile(filepath.Join(outDir, "random_4_2.json"))
	require.NoError(s.T(), err)
	var doc tsplib.Document
	require.NoError(s.T(), json.Unmarshal(data, &doc))
	require.Equal(s.T(), "random_4_2.tsp", doc.Source)
	require.Nil(s.T(), doc.System)

	inst, err := tsplib.Load(s.path("random_4_2.tsp"))
	require.NoError(s.T(), err)
	require.Equal(s.T(), *inst, doc.Instance)
}

func (s *AppSuite) TestConvertNextToInput() {
	src := s.path("test1.tsp")
	content, err := os.ReadFile(filepath.Join("..", "testdata", "test1.tsp"))
	require.NoError(s.T(), err)
	require.NoError(s.T(), os.WriteFile(src, content, 0o644))

	require.NoError(s.T(), s.run("convert", src))
	_, err = os.Stat(s.path("test1.json"))
	require.NoError(s.T(), err)
}

func (s *AppSuite) TestConvertFailures() {
	require.NoError(s.T(), os.WriteFile(s.path("bad.tsp"), []byte("NAME bad\n"), 0o644))
	require.NoError(s.T(), s.run("generate", "--n", "2", "--seed", "3", "--out", s.dir))

	err := s.run("convert", s.dir)
	require.ErrorContains(s.T(), err, "1 of 2 files failed")
	_, statErr := os.Stat(s.path("random_2_0.json"))
	require.NoError(s.T(), statErr)

	err = s.run("convert", "--fail-fast", s.path("bad.tsp"))
	require.ErrorIs(s.T(), err, tsplib.ErrTruncated)

	require.Error(s.T(), s.run("convert", s.path("nowhere")))
}

func (s *AppSuite) TestFormat() {
	path := s.path("doc.json")
	require.NoError(s.T(), os.WriteFile(path, []byte("{\n\t\"node_coordinates\": [\n\t\t[\n\t\t\t1,\n\t\t\t2\n\t\t]\n\t]\n}"), 0o644))

	require.NoError(s.T(), s.run("format", path))
	got, err := os.ReadFile(path)
	require.NoError(s.T(), err)
	require.Equal(s.T(), "{\n\t\"node_coordinates\": [\n\t\t[1,2]\n\t]\n}", string(got))

	require.NoError(s.T(), os.WriteFile(path, []byte("{broken"), 0o644))
	require.ErrorContains(s.T(), s.run("format", path), "1 of 1 files failed")
}

func (s *AppSuite) TestInvalidGlobalConfig() {
	err := newApp(s.out).Run([]string{"tsptool", "--log-level", "chatty", "headers", "x"})
	require.ErrorContains(s.T(), err, "invalid config")
}

func (s *AppSuite) TestConvertRejectsCollidingOutputs() {
	content, err := os.ReadFile(filepath.Join("..", "testdata", "test1.tsp"))
	require.NoError(s.T(), err)
	for _, sub := range []string{"a", "b"} {
		require.NoError(s.T(), os.MkdirAll(s.path(sub), 0o755))
		require.NoError(s.T(), os.WriteFile(filepath.Join(s.path(sub), "x.tsp"), content, 0o644))
	}

	outDir := s.path("json")
	err = s.run("convert", "--out", outDir, s.path("a"), s.path("b"))
	require.ErrorContains(s.T(), err, "would both be written to")

	entries, err := os.ReadDir(outDir)
	require.NoError(s.T(), err)
	require.Empty(s.T(), entries)

	// Naming the same file twice is not a collision.
	src := filepath.Join(s.path("a"), "x.tsp")
	require.NoError(s.T(), s.run("convert", "--out", outDir, src, s.path("a")))
	_, err = os.Stat(filepath.Join(outDir, "x.json"))
	require.NoError(s.T(), err)
}
