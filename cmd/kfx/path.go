package main

import (
	"fmt"

	"github.com/npillmayer/keyframes/dom"
	"github.com/spf13/cobra"
)

var pathRootFlag string

func newPathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path <document> <selector>",
		Short: "Print element paths of elements matching a CSS selector",
		Long: `Path prints the element path of every element of a document matching a
CSS selector, one per line. Paths are absolute, unless a root element is
selected with --root; they are relative to that root then.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			root := doc
			if pathRootFlag != "" {
				if root, err = doc.Query(pathRootFlag); err != nil {
					return err
				} else if root == nil {
					return fmt.Errorf("no root element matches %q", pathRootFlag)
				}
			}
			nodes, err := root.QueryAll(args[1])
			if err != nil {
				return err
			}
			for _, n := range nodes {
				path, ok := n.PathFrom(root)
				if !ok {
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&pathRootFlag, "root", "r", "", "CSS selector of the root element for relative paths")

	return cmd
}

func init() {
	rootCmd.AddCommand(newPathCmd())
}

// describe formats a node for display.
func describe(n *dom.W3CNode) string {
	s := n.String()
	if id, ok := n.Attr("id"); ok {
		s += " #" + id
	}
	if text, _ := n.TextContent(); text != "" {
		if len(text) > 40 {
			text = text[:40] + "…"
		}
		s += fmt.Sprintf(" %q", text)
	}
	return s
}
