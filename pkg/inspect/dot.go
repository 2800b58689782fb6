package inspect

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/svgtree/pkg/errors"
	"github.com/matzehuels/svgtree/pkg/svg"
)

// ToDOT converts the tree rooted at n to a Graphviz digraph. Node IDs are the
// pre-order indices reported by [svg.Walk]; text nodes are drawn as notes.
func ToDOT(n svg.Node, opts Options) (string, error) {
	var buf bytes.Buffer
	buf.WriteString("digraph tree {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"monospace\"];\n")
	buf.WriteString("\n")

	var edges []string
	err := svg.Walk(n, func(v svg.Visit) error {
		attrs := fmt.Sprintf("label=%q", label(v, opts))
		switch {
		case v.Err != nil:
			attrs += ", fillcolor=mistyrose"
		case v.Name == "#text" || v.Name == "#node":
			attrs += ", shape=note, fillcolor=lightyellow"
		}
		fmt.Fprintf(&buf, "  n%d [%s];\n", v.ID, attrs)
		if v.Parent >= 0 {
			edges = append(edges, fmt.Sprintf("  n%d -> n%d;\n", v.Parent, v.ID))
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	if len(edges) > 0 {
		buf.WriteString("\n")
	}
	for _, e := range edges {
		buf.WriteString(e)
	}
	buf.WriteString("}\n")
	return buf.String(), nil
}

// RenderDOT lays out a DOT graph with Graphviz and returns it as SVG.
func RenderDOT(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render DOT")
	}
	return buf.Bytes(), nil
}
