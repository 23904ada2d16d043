package main

import (
	"fmt"
	"io"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/benoitkugler/flowicon/iconset"
)

type rootOptions struct {
	dir      string
	inactive bool
	verbose  bool
}

// newRootCmd builds the command. Status lines go to stdout, logs to stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:           "flowicon",
		Short:         "Draw the workflow icons of the extension",
		Long:          `flowicon draws the workflow glyph on its gradient circle at 16, 48 and 128 pixels, and writes icon16.png, icon48.png and icon128.png.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(iconset.WithLogger(cmd.Context(), iconset.NewLogger(stderr, level)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, stdout, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dir, "dir", "d", ".", "output directory")
	cmd.Flags().BoolVar(&opts.inactive, "inactive", false, "also write the grayed out icon<size>-inactive.png variant")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

func runGenerate(cmd *cobra.Command, w io.Writer, opts rootOptions) error {
	variants := []iconset.Variant{iconset.Active()}
	if opts.inactive {
		variants = append(variants, iconset.Inactive())
	}

	results, err := iconset.Generate(cmd.Context(), iconset.Options{Dir: opts.dir, Variants: variants})
	for _, res := range results {
		if res.Err != nil {
			printError(w, "%s: %s", res.Path, res.Err)
			continue
		}
		printSuccess(w, "%s created", res.Path)
	}
	if err != nil {
		return fmt.Errorf("icon generation failed: %w", err)
	}

	fmt.Fprintln(w)
	printSuccess(w, "All icons generated successfully!")
	printDetail(w, "Icons saved in %s", opts.dir)
	return nil
}
