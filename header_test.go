package tsplib_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"git.solver4all.com/azaryc2s/tsplib"
)

func TestWriteHeaders(t *testing.T) {
	inst, err := tsplib.Read(strings.NewReader(test1))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tsplib.WriteHeaders(&buf, inst))
	require.Equal(t,
		"\nName:  test1\nType:  TSP\nComment:  sample\nDimension:  3\nEdge Weight Type:  EUC_2D \n\n",
		buf.String())
}

func TestWriteHeadersNil(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, tsplib.WriteHeaders(&buf, nil), tsplib.ErrNilInstance)
	require.Zero(t, buf.Len())
}
