package cli

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/svgtree/pkg/inspect"
	"github.com/matzehuels/svgtree/pkg/pipeline"
	"github.com/matzehuels/svgtree/pkg/scene"
)

type inspectOpts struct {
	attributes  bool
	interactive bool
	sceneFormat string
}

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	var opts inspectOpts

	cmd := &cobra.Command{
		Use:   "inspect <scene>",
		Short: "Show the element tree of a scene",
		Long: `Build a scene and print its element tree.

With --interactive the tree opens in a browser where subtrees can be
folded and the attributes of the selected element are listed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), cmd.InOrStdin(), args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.attributes, "attrs", false, "list attributes next to each tag")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse the tree interactively")
	cmd.Flags().StringVar(&opts.sceneFormat, "scene-format", "", "scene encoding: toml, json, yaml (default: detect)")

	return cmd
}

func (c *CLI) runInspect(ctx context.Context, stdin io.Reader, source string, opts inspectOpts) error {
	input, err := readInput(stdin, source)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(nil, c.Logger)
	doc, err := runner.Build(ctx, input, pipeline.Options{
		Scene:      scene.Format(opts.sceneFormat),
		SourceName: source,
	})
	if err != nil {
		return err
	}

	entries, err := inspect.Entries(doc, inspect.Options{Attributes: opts.attributes && !opts.interactive})
	if err != nil {
		return err
	}

	if opts.interactive {
		_, err := tea.NewProgram(newTreeModel(source, entries), tea.WithContext(ctx), tea.WithAltScreen()).Run()
		return err
	}

	fmt.Fprintln(stdout, StyleTitle.Render(source))
	printTree(entries)
	printDetail("%d nodes", len(entries))
	return nil
}
