// Package main provides the propdef binary: it decodes encoded property
// names and previews what a manifest synthesizes to.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/reoring/propdef"
	"github.com/reoring/propdef/i18n"
	"github.com/reoring/propdef/manifest"
)

func main() {
	if err := rootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type globalFlags struct {
	delim   string
	strict  bool
	lang    string
	verbose bool
}

func (g *globalFlags) options(stderr io.Writer) ([]propdef.Option, error) {
	if utf8.RuneCountInString(g.delim) != 1 {
		return nil, fmt.Errorf("--delim must be a single character, got %q", g.delim)
	}
	r, _ := utf8.DecodeRuneInString(g.delim)
	i18n.SetLanguage(g.lang)

	level := zerolog.InfoLevel
	if g.verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).Level(level).With().Timestamp().Logger()

	opts := []propdef.Option{propdef.WithDelimiter(r), propdef.WithLogger(logger)}
	if g.strict {
		opts = append(opts, propdef.WithStrictTags())
	}
	return opts, nil
}

func rootCmd(stdout, stderr io.Writer) *cobra.Command {
	g := &globalFlags{}
	cmd := &cobra.Command{
		Use:           "propdef",
		Short:         "Inspect encoded property declarations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.PersistentFlags().StringVar(&g.delim, "delim", string(propdef.DefaultDelimiter), "Delimiter between base name and tags")
	cmd.PersistentFlags().BoolVar(&g.strict, "strict", false, "Reject unknown tags")
	cmd.PersistentFlags().StringVar(&g.lang, "lang", "en", "Message language (en, ja)")
	cmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Debug logging to stderr")

	cmd.AddCommand(parseCmd(g, stdout, stderr), inspectCmd(g, stdout, stderr))
	return cmd
}

func parseCmd(g *globalFlags, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "parse NAME...",
		Short: "Split encoded names into base and tags",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := g.options(stderr)
			if err != nil {
				return err
			}
			o := propdef.ResolveOptions(opts...)
			for _, arg := range args {
				n, ok := propdef.ParseName(arg, o.Delimiter)
				if !ok {
					fmt.Fprintf(stdout, "%s\t(ignored: empty base)\n", arg)
					continue
				}
				if o.StrictTags && len(n.Unknown) > 0 {
					return propdef.Issues{propdef.IssueAt(arg, propdef.CodeUnknownTag, n.Unknown[0], nil)}
				}
				line := fmt.Sprintf("%s\tbase=%s\ttags=%s", arg, n.Base, n.Tags)
				if len(n.Unknown) > 0 {
					line += "\tunknown=" + strings.Join(n.Unknown, ",")
				}
				if n.Tags.Conflicting() {
					line += "\tconflict"
				}
				fmt.Fprintln(stdout, line)
			}
			return nil
		},
	}
}

func inspectCmd(g *globalFlags, stdout, stderr io.Writer) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Synthesize a manifest and print the resulting properties",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := g.options(stderr)
			if err != nil {
				return err
			}
			obj, err := inspect(args[0], opts)
			if err != nil {
				return err
			}
			return render(stdout, obj, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format (json, yaml)")
	return cmd
}

func inspect(path string, opts []propdef.Option) (*propdef.Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var entries []propdef.Entry
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		entries, err = manifest.ParseJSON(data, opts...)
	case ".yaml", ".yml":
		entries, err = manifest.ParseYAML(data, opts...)
	default:
		return nil, fmt.Errorf("unsupported manifest extension %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	target := propdef.NewObject()
	if _, err := propdef.Synthesize(target, manifest.Object(entries), opts...); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return target, nil
}

func render(w io.Writer, obj *propdef.Object, format string) error {
	views := propdef.Snapshot(obj)
	switch format {
	case "json":
		b, err := json.MarshalIndent(views, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(views); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q", format)
}
