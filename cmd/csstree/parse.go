package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tdewolff/csstree/css"
	"github.com/tdewolff/csstree/internal/load"
)

func (a *app) parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse FILE",
		Short: "Print the tree of a stylesheet",
		Long:  `Parse a stylesheet and print its tree as an indented outline, YAML or JSON. Use - to read from standard input.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			root, err := a.parseFile(args[0])
			if err != nil {
				return err
			}
			return writeTree(cmd.OutOrStdout(), root, format)
		},
	}
	cmd.Flags().StringP("format", "f", "text", "Output format (text, yaml, json)")
	return cmd
}

func (a *app) parseFile(filename string) (*css.Root, error) {
	src, err := load.ReadFile(filename, a.stdin)
	if err != nil {
		return nil, err
	}
	return css.Parse(src, a.options(filename)...)
}

// treeNode is the serialized form of a node.
type treeNode struct {
	Type      string      `json:"type" yaml:"type"`
	Start     int         `json:"start" yaml:"start"`
	End       int         `json:"end" yaml:"end"`
	Selector  string      `json:"selector,omitempty" yaml:"selector,omitempty"`
	Name      string      `json:"name,omitempty" yaml:"name,omitempty"`
	Params    string      `json:"params,omitempty" yaml:"params,omitempty"`
	Prop      string      `json:"prop,omitempty" yaml:"prop,omitempty"`
	Value     string      `json:"value,omitempty" yaml:"value,omitempty"`
	Important bool        `json:"important,omitempty" yaml:"important,omitempty"`
	Text      string      `json:"text,omitempty" yaml:"text,omitempty"`
	Nodes     []*treeNode `json:"nodes,omitempty" yaml:"nodes,omitempty"`
}

func newTreeNode(n css.Node) *treeNode {
	span := n.Range()
	t := &treeNode{
		Type:  n.Type().String(),
		Start: span.Start,
		End:   span.End,
	}
	switch n := n.(type) {
	case *css.Rule:
		t.Selector = n.Selector
	case *css.AtRule:
		t.Name = n.Name
		t.Params = n.Params
	case *css.Declaration:
		t.Prop = n.Prop
		t.Value = n.Value
		t.Important = n.Important
	case *css.Comment:
		t.Text = n.Text
	}
	for _, child := range n.Children() {
		t.Nodes = append(t.Nodes, newTreeNode(child))
	}
	return t
}

func writeTree(w io.Writer, root *css.Root, format string) error {
	switch format {
	case "text":
		return css.NewPrinter(w).Print(root)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newTreeNode(root)); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		out, err := json.MarshalIndent(newTreeNode(root), "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling tree: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	}
	return fmt.Errorf("unknown format %q", format)
}
