package export

import (
	"bytes"
	"strings"
	"testing"

	"chipfire/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sigmaTwo(t *testing.T) *core.FiringGraph {
	t.Helper()
	g, err := core.Graph(2)
	require.NoError(t, err)
	return g
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" CSV ")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	_, err = ParseFormat("dot")
	assert.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sigmaTwo(t), FormatCSV))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		"from_a,from_b,from_c,vertex,to_a,to_b,to_c",
		"0,0,2,C,1,1,0",
		"0,2,0,B,1,0,1",
		"2,0,0,A,0,1,1",
	}, lines)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sigmaTwo(t), FormatYAML))

	assert.Contains(t, buf.String(), "config: [2, 0, 0]")

	var doc Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, 2, doc.Sigma)
	require.Len(t, doc.Nodes, 6)
	assert.Equal(t, [3]int{0, 0, 2}, doc.Nodes[0].Config)
	assert.Equal(t, []MoveDoc{{Vertex: "C", To: [3]int{1, 1, 0}}}, doc.Nodes[0].Moves)
	assert.Empty(t, doc.Nodes[1].Moves)
}

func TestWriteMermaid(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sigmaTwo(t), FormatMermaid))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "graph TD\n"))
	for _, want := range []string{
		`n_2_0_0["(2, 0, 0)"]`,
		`n_1_1_0(("(1, 1, 0)"))`,
		"n_2_0_0 -- A --> n_0_1_1",
		"n_0_0_2 -- C --> n_1_1_0",
	} {
		assert.Contains(t, out, want)
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	assert.Error(t, Write(&bytes.Buffer{}, sigmaTwo(t), Format("svg")))
}

func TestWriteSummaries(t *testing.T) {
	var buf bytes.Buffer
	rows := []core.Summary{sigmaTwo(t).Summarize()}
	require.NoError(t, WriteSummaries(&buf, rows))
	assert.Equal(t, "sigma,nodes,edges,stable,max_out_degree\n2,6,3,3,1\n", buf.String())
}
