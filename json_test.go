package tsplib_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"git.solver4all.com/azaryc2s/tsplib"
)

func TestMarshalDocument(t *testing.T) {
	inst, err := tsplib.Read(strings.NewReader(test1))
	require.NoError(t, err)

	data, err := tsplib.MarshalDocument(tsplib.NewDocument(inst, "test1.tsp", nil), "")
	require.NoError(t, err)
	require.Equal(t, `{
	"name": "test1",
	"type": "TSP",
	"comment": "sample",
	"dimension": 3,
	"edge_weight_type": "EUC_2D",
	"node_coordinates": [
		[0,0],
		[3,4],
		[6,0]
	],
	"source": "test1.tsp"
}`, string(data))

	var back tsplib.Document
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, *inst, back.Instance)
	require.Nil(t, back.System)
}

func TestMarshalDocumentWithSystem(t *testing.T) {
	inst := &tsplib.Instance{
		Name: "neg", Type: "TSP", Comment: "c", EdgeWeightType: "EUC_2D",
		Dimension: 2, NodeCoordinates: [][]float64{{-1.5, 2e21}, {0.25, -3}},
	}
	sys := &tsplib.SysInfo{Platform: "linux", CPU: "cpu", RAM: "8 GB"}

	data, err := tsplib.MarshalDocument(tsplib.NewDocument(inst, "", sys), "  ")
	require.NoError(t, err)
	require.Contains(t, string(data), "[-1.5,2e+21],\n    [0.25,-3]\n")
	require.Contains(t, string(data), `"system": {`)
	require.NotContains(t, string(data), `"source"`)

	var back tsplib.Document
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, sys, back.System)
}

func TestCompactJSONArrays(t *testing.T) {
	in := "{\n\t\"a\": [\n\t\t1,\n\t\t-2,\n\t\t3.5\n\t],\n\t\"b\": \"x, y\"\n}"
	require.Equal(t, "{\n\t\"a\": [1,-2,3.5],\n\t\"b\": \"x, y\"\n}", tsplib.CompactJSONArrays(in))

	already := "{\n\t\"a\": [1,2]\n}"
	require.Equal(t, already, tsplib.CompactJSONArrays(already))
}

func TestMarshalDocumentNil(t *testing.T) {
	_, err := tsplib.MarshalDocument(nil, "")
	require.ErrorIs(t, err, tsplib.ErrNilInstance)
}
