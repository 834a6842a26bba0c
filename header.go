package tsplib

import (
	"fmt"
	"io"
	"os"
)

// WriteHeaders writes the five scalar header fields of inst to w, one
// labelled line each.
func WriteHeaders(w io.Writer, inst *Instance) error {
	if inst == nil {
		return ErrNilInstance
	}
	_, err := fmt.Fprintf(w, "\nName:  %s\nType:  %s\nComment:  %s\nDimension:  %d\nEdge Weight Type:  %s \n\n",
		inst.Name, inst.Type, inst.Comment, inst.Dimension, inst.EdgeWeightType)
	return err
}

// PrintHeaders writes the header fields of inst to standard output. Write
// errors on stdout are ignored.
func PrintHeaders(inst *Instance) {
	WriteHeaders(os.Stdout, inst)
}
