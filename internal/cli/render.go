package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/svgtree/pkg/errors"
	"github.com/matzehuels/svgtree/pkg/pipeline"
	"github.com/matzehuels/svgtree/pkg/scene"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string // output file path; stdout when empty
	format      string // one of pipeline.Formats
	sceneFormat string // toml, json or yaml; detected when empty
	attributes  bool   // list attributes in tree views
	scale       float64
	noCache     bool
	refresh     bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <scene>",
		Short: "Render a scene file",
		Long: `Render a TOML, JSON or YAML scene file.

Formats:
  svg      the drawing (default)
  dot      the element tree as a Graphviz digraph
  tree     the element tree laid out by Graphviz, as SVG
  outline  the element tree as indented text
  png      the drawing rasterized; needs a view_box or width and height

Use "-" to read the scene from stdin.`,
		Example: `  svgtree render drawing.toml -o drawing.svg
  svgtree render drawing.json -f tree -o tree.svg
  svgtree render drawing.yaml -f png --scale 4 -o drawing.png
  cat drawing.toml | svgtree render - -f outline`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", pipeline.FormatSVG, "output format: svg, dot, tree, outline, png")
	cmd.Flags().StringVar(&opts.sceneFormat, "scene-format", "", "scene encoding: toml, json, yaml (default: detect)")
	cmd.Flags().BoolVar(&opts.attributes, "attrs", false, "include attributes in dot, tree and outline output")
	cmd.Flags().Float64Var(&opts.scale, "scale", 1, "scale factor for png output")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even if cached")

	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return pipeline.Formats, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func (c *CLI) runRender(ctx context.Context, stdin io.Reader, w io.Writer, source string, opts renderOpts) error {
	sw := startStopwatch(c.Logger)

	input, err := readInput(stdin, source)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	popts := pipeline.Options{
		Format:     opts.format,
		Scene:      scene.Format(opts.sceneFormat),
		SourceName: source,
		Refresh:    opts.refresh,
		Attributes: opts.attributes,
		Scale:      opts.scale,
	}

	var spinner *Spinner
	if opts.output != "" {
		spinner = newSpinner(ctx, "Rendering "+filepath.Base(source)+"...")
		spinner.Start()
	}
	res, err := runner.Render(ctx, input, popts)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err := w.Write(res.Data)
		return err
	}

	if err := writeOutput(opts.output, res.Data); err != nil {
		return err
	}
	sw.done("Rendered "+source, "format", res.Format)
	printSuccess("Rendered %s", res.Format)
	printFile(opts.output)
	printStats(res.Stats.NodeCount, len(res.Data), res.CacheHit)
	return nil
}

// readInput reads the scene at path, or stdin when path is "-".
func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read stdin")
		}
		return data, nil
	}
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scene %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return data, nil
}

func writeOutput(path string, data []byte) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "create %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}
