// Package export writes the firing graph of a plane in text formats.
package export

import (
	"fmt"
	"io"
	"strings"

	"chipfire/internal/core"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"
)

// Format selects an output encoding.
type Format string

const (
	FormatCSV     Format = "csv"
	FormatYAML    Format = "yaml"
	FormatMermaid Format = "mermaid"
)

// Formats lists every supported format.
var Formats = []Format{FormatCSV, FormatYAML, FormatMermaid}

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want csv, yaml or mermaid)", s)
}

// Write encodes g to w.
func Write(w io.Writer, g *core.FiringGraph, f Format) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, g)
	case FormatYAML:
		return WriteYAML(w, g)
	case FormatMermaid:
		return WriteMermaid(w, g)
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}

type edgeRow struct {
	FromA  int    `csv:"from_a"`
	FromB  int    `csv:"from_b"`
	FromC  int    `csv:"from_c"`
	Vertex string `csv:"vertex"`
	ToA    int    `csv:"to_a"`
	ToB    int    `csv:"to_b"`
	ToC    int    `csv:"to_c"`
}

// WriteCSV writes one row per firing move. Stable nodes have no rows.
func WriteCSV(w io.Writer, g *core.FiringGraph) error {
	rows := make([]*edgeRow, 0, len(g.Edges))
	for _, e := range g.Edges {
		rows = append(rows, &edgeRow{
			FromA: e.From[0], FromB: e.From[1], FromC: e.From[2],
			Vertex: e.Vertex.String(),
			ToA:    e.To[0], ToB: e.To[1], ToC: e.To[2],
		})
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// WriteSummaries writes one CSV row per summary.
func WriteSummaries(w io.Writer, rows []core.Summary) error {
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("write summaries: %w", err)
	}
	return nil
}

// Document is the YAML shape of a firing graph.
type Document struct {
	Sigma int       `yaml:"sigma"`
	Nodes []NodeDoc `yaml:"nodes"`
}

// NodeDoc is one configuration and its moves.
type NodeDoc struct {
	Config [3]int    `yaml:"config,flow"`
	Moves  []MoveDoc `yaml:"moves,omitempty"`
}

// MoveDoc is one firing move.
type MoveDoc struct {
	Vertex string `yaml:"vertex"`
	To     [3]int `yaml:"to,flow"`
}

// NewDocument groups the edges of g under their source nodes.
func NewDocument(g *core.FiringGraph) Document {
	doc := Document{Sigma: g.Sigma, Nodes: make([]NodeDoc, 0, len(g.Nodes))}
	index := make(map[core.Config]int, len(g.Nodes))
	for i, n := range g.Nodes {
		index[n] = i
		doc.Nodes = append(doc.Nodes, NodeDoc{Config: n})
	}
	for _, e := range g.Edges {
		i := index[e.From]
		doc.Nodes[i].Moves = append(doc.Nodes[i].Moves, MoveDoc{Vertex: e.Vertex.String(), To: e.To})
	}
	return doc
}

// WriteYAML writes the graph as a YAML document.
func WriteYAML(w io.Writer, g *core.FiringGraph) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(g)); err != nil {
		return fmt.Errorf("write yaml: %w", err)
	}
	return enc.Close()
}

// WriteMermaid writes a Mermaid flowchart with one node per configuration
// and one labelled arrow per move.
func WriteMermaid(w io.Writer, g *core.FiringGraph) error {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	for _, n := range g.Nodes {
		shape := "[\"%s\"]"
		if n.Stable() {
			shape = "((\"%s\"))"
		}
		fmt.Fprintf(&sb, "    %s"+shape+"\n", mermaidID(n), n.String())
	}
	for _, e := range g.Edges {
		fmt.Fprintf(&sb, "    %s -- %s --> %s\n", mermaidID(e.From), e.Vertex, mermaidID(e.To))
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func mermaidID(c core.Config) string {
	return fmt.Sprintf("n_%d_%d_%d", c[0], c[1], c[2])
}
