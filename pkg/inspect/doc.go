// Package inspect describes the structure of an element tree for debugging.
//
// Three views are provided, all computed with [svg.Walk] so they never
// touch the nodes themselves:
//
//   - [Outline]: an indented text listing, one node per line
//   - [ToDOT]: a Graphviz digraph with one box per node
//   - [RenderDOT]: the DOT graph laid out and rendered to SVG by Graphviz
//
// Example:
//
//	dot, err := inspect.ToDOT(doc, inspect.Options{Attributes: true})
//	if err != nil {
//	    return err
//	}
//	out, err := inspect.RenderDOT(ctx, dot)
package inspect
