package tsplib

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// Write emits inst in the layout Read accepts.
//
// Header values must be single non-empty tokens, otherwise the written file
// would not load back to the same instance.
func Write(w io.Writer, inst *Instance) error {
	if inst == nil {
		return ErrNilInstance
	}
	if err := checkWritable(inst); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "NAME %s\n", inst.Name)
	fmt.Fprintf(bw, "TYPE %s\n", inst.Type)
	fmt.Fprintf(bw, "COMMENT %s\n", inst.Comment)
	fmt.Fprintf(bw, "DIMENSION %d\n", inst.Dimension)
	fmt.Fprintf(bw, "EDGE_WEIGHT_TYPE %s\n", inst.EdgeWeightType)
	bw.WriteString("NODE_COORD_SECTION\n")
	for i, xy := range inst.NodeCoordinates {
		fmt.Fprintf(bw, "%d %s %s\n", i+1, formatCoordinate(xy[0]), formatCoordinate(xy[1]))
	}
	return bw.Flush()
}

// Save writes inst to the file at path, replacing any existing content.
func Save(path string, inst *Instance) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	return Write(file, inst)
}

func checkWritable(inst *Instance) error {
	headers := []struct{ label, value string }{
		{"NAME", inst.Name},
		{"TYPE", inst.Type},
		{"COMMENT", inst.Comment},
		{"EDGE_WEIGHT_TYPE", inst.EdgeWeightType},
	}
	for _, h := range headers {
		if h.value == "" || strings.IndexFunc(h.value, unicode.IsSpace) >= 0 {
			return &FormatError{Text: h.value, Msg: fmt.Sprintf("%s value %q must be a single token", h.label, h.value)}
		}
	}
	if inst.Dimension != len(inst.NodeCoordinates) {
		return &FormatError{Msg: fmt.Sprintf("dimension %d does not match %d coordinates", inst.Dimension, len(inst.NodeCoordinates))}
	}
	for i, xy := range inst.NodeCoordinates {
		if len(xy) != 2 {
			return &FormatError{Msg: fmt.Sprintf("coordinate %d has %d values, want 2", i+1, len(xy))}
		}
	}
	return nil
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
