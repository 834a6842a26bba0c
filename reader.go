package tsplib

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// headerLabels lists the header lines in the order they must appear.
var headerLabels = [...]string{"NAME", "TYPE", "COMMENT", "DIMENSION", "EDGE_WEIGHT_TYPE"}

const (
	maxLineSize = 1 << 20
	// DIMENSION is not trusted for up-front allocation.
	maxPrealloc = 1 << 12
)

// Load reads the instance stored in the file at path.
func Load(path string) (*Instance, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	inst, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return inst, nil
}

// Read parses an instance from r.
//
// The layout is fixed: NAME, TYPE, COMMENT, DIMENSION and EDGE_WEIGHT_TYPE
// lines, one section line that is skipped, then DIMENSION lines of the form
// "<index> <x> <y>". Only the second token of a header line is kept, so a
// COMMENT with several words is cut down to its first word. Header labels
// are not checked. Nothing after the last coordinate line is read.
func Read(r io.Reader) (*Instance, error) {
	lr := newLineReader(r)

	var values [len(headerLabels)]string
	for i, label := range headerLabels {
		line, err := lr.next(label + " header")
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, &FormatError{Line: lr.line, Text: line, Msg: "missing " + label + " value"}
		}
		values[i] = fields[1]
	}

	dimension, err := strconv.Atoi(values[3])
	if err != nil {
		return nil, &TypeError{Line: 4, Field: "DIMENSION", Value: values[3], Err: err}
	}
	if dimension < 0 {
		return nil, &TypeError{Line: 4, Field: "DIMENSION", Value: values[3]}
	}

	inst := &Instance{
		Name:            values[0],
		Type:            values[1],
		Comment:         values[2],
		Dimension:       dimension,
		EdgeWeightType:  values[4],
		NodeCoordinates: make([][]float64, 0, min(dimension, maxPrealloc)),
	}
	if dimension == 0 {
		return inst, nil
	}

	// NODE_COORD_SECTION
	if _, err := lr.next("NODE_COORD_SECTION"); err != nil {
		return nil, err
	}

	for i := 0; i < dimension; i++ {
		line, err := lr.next(fmt.Sprintf("coordinate %d of %d", i+1, dimension))
		if err != nil {
			return nil, err
		}
		xy, err := parseCoordinate(lr.line, line)
		if err != nil {
			return nil, err
		}
		inst.NodeCoordinates = append(inst.NodeCoordinates, xy)
	}
	return inst, nil
}

func parseCoordinate(lineNo int, line string) ([]float64, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return nil, &FormatError{Line: lineNo, Text: line, Msg: fmt.Sprintf("expected 3 tokens, got %d", len(fields))}
	}
	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return nil, &TypeError{Line: lineNo, Field: "x", Value: fields[1], Err: err}
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return nil, &TypeError{Line: lineNo, Field: "y", Value: fields[2], Err: err}
	}
	return []float64{x, y}, nil
}

// lineReader hands out one line per call and counts them.
type lineReader struct {
	scanner *bufio.Scanner
	line    int
}

func newLineReader(r io.Reader) *lineReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	return &lineReader{scanner: scanner}
}

func (lr *lineReader) next(want string) (string, error) {
	if !lr.scanner.Scan() {
		if err := lr.scanner.Err(); err != nil {
			return "", fmt.Errorf("tsplib: reading line %d: %w", lr.line+1, err)
		}
		return "", &TruncationError{Line: lr.line + 1, Want: want}
	}
	lr.line++
	return lr.scanner.Text(), nil
}
