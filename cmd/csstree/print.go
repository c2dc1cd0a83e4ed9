package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tdewolff/csstree/css"
	"github.com/tdewolff/csstree/internal/logger"
	"github.com/tdewolff/csstree/sourcemap"
	"github.com/tdewolff/csstree/transform"
)

func (a *app) printCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print FILE",
		Short: "Print a stylesheet, optionally transformed",
		Long: `Parse a stylesheet and print it again. Without transformations the output equals the input.
Transformations run in the order px-to-rem, short-colors, reverse-props, minify.`,
		Args: cobra.ExactArgs(1),
		RunE: a.runPrint,
	}
	flags := cmd.Flags()
	flags.StringP("output", "o", "", "Output file, defaults to standard output")
	flags.Bool("minify", false, "Remove whitespace and comments")
	flags.Bool("px-to-rem", false, "Convert px lengths to rem")
	flags.Float64("root-value", 16.0, "Root font size in px for --px-to-rem")
	flags.Bool("short-colors", false, "Rewrite colors to their shortest notation")
	flags.Bool("reverse-props", false, "Reverse property names")
	flags.String("source-map", "", "Write a source map to this file")
	_ = a.v.BindPFlag("root-value", flags.Lookup("root-value"))
	return cmd
}

func (a *app) runPrint(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	output, _ := flags.GetString("output")
	mapFile, _ := flags.GetString("source-map")

	root, err := a.parseFile(args[0])
	if err != nil {
		return err
	}

	visitors := []css.MutVisitor{}
	if ok, _ := flags.GetBool("px-to-rem"); ok {
		visitors = append(visitors, transform.NewPxToRem(a.v.GetFloat64("root-value")))
	}
	if ok, _ := flags.GetBool("short-colors"); ok {
		visitors = append(visitors, transform.ShortColors{})
	}
	if ok, _ := flags.GetBool("reverse-props"); ok {
		visitors = append(visitors, transform.ReverseProp{})
	}
	if ok, _ := flags.GetBool("minify"); ok {
		visitors = append(visitors, &transform.Minify{})
	}
	transform.Apply(root, visitors...)
	logger.Debug("applied %d transformations to %s", len(visitors), args[0])

	w := cmd.OutOrStdout()
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	if mapFile == "" {
		_, err = root.WriteTo(w)
		return err
	}
	return writeWithSourceMap(w, root, args[0], output, mapFile)
}

func writeWithSourceMap(w io.Writer, root *css.Root, input, output, mapFile string) error {
	file := ""
	if output != "" {
		file = filepath.Base(output)
	}
	b := sourcemap.NewBuilder(file, input, root.Source)
	b.IncludeSource(true)
	css.Stringify(root, b.Add)

	data, err := b.Map().JSON()
	if err != nil {
		return fmt.Errorf("error marshaling source map: %w", err)
	}
	if err := os.WriteFile(mapFile, data, 0644); err != nil {
		return err
	}

	url := mapFile
	if output != "" {
		if rel, err := filepath.Rel(filepath.Dir(output), mapFile); err == nil {
			url = filepath.ToSlash(rel)
		}
	}
	out := b.String()
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, err = fmt.Fprintf(w, "%s%s\n", out, sourcemap.Comment(url))
	return err
}
