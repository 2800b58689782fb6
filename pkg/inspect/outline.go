package inspect

import (
	"fmt"
	"strings"

	"github.com/matzehuels/svgtree/pkg/svg"
)

// Options controls how much detail the views include.
type Options struct {
	// Attributes lists every attribute next to the tag name.
	Attributes bool
	// MaxText truncates text content to this many runes (0 means 32).
	MaxText int
}

// Entry is one line of an outline.
type Entry struct {
	Depth int
	Label string
	Visit svg.Visit
}

// Entries walks n and returns one entry per node in document order.
func Entries(n svg.Node, opts Options) ([]Entry, error) {
	var out []Entry
	err := svg.Walk(n, func(v svg.Visit) error {
		out = append(out, Entry{Depth: v.Depth, Label: label(v, opts), Visit: v})
		return nil
	})
	return out, err
}

// Outline renders the tree as indented text, two spaces per level.
func Outline(n svg.Node, opts Options) (string, error) {
	entries, err := Entries(n, opts)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(strings.Repeat("  ", e.Depth))
		sb.WriteString(e.Label)
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

func label(v svg.Visit, opts Options) string {
	switch v.Name {
	case "#text":
		return fmt.Sprintf("%q", truncate(v.Text, opts.MaxText))
	case "#node":
		return truncate(v.Markup, opts.MaxText)
	}
	var sb strings.Builder
	sb.WriteString(v.Name)
	if opts.Attributes {
		for _, a := range v.Attributes {
			fmt.Fprintf(&sb, " %s=%q", a.Name, truncate(a.Value, opts.MaxText))
		}
	}
	if v.Err != nil {
		sb.WriteString(" (error)")
	}
	return sb.String()
}

func truncate(s string, max int) string {
	if max <= 0 {
		max = 32
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "…"
}
