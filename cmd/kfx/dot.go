package main

import (
	"bytes"

	"github.com/npillmayer/keyframes/dom"
	"github.com/npillmayer/keyframes/dom/domdbg"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"
)

var dotHighlightFlag string
var dotTimelineFlags []string
var dotOutputFlag string

func newDotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dot <document>",
		Short: "Draw a document as a GraphViz diagram",
		Long: `Dot writes a GraphViz (DOT) diagram of a document. Nodes are labelled with
their element path steps. Elements matching --highlight and the targets of
timelines given with --timeline are highlighted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			var highlight []*dom.W3CNode
			if dotHighlightFlag != "" {
				if highlight, err = doc.QueryAll(dotHighlightFlag); err != nil {
					return err
				}
			}
			for _, file := range dotTimelineFlags {
				tl, err := readTimeline(file)
				if err != nil {
					return err
				}
				if !tl.Resolve(doc.HTMLNode()) {
					tracer().Infof("target of %s not found in %s", file, args[0])
					continue
				}
				highlight = append(highlight, dom.FromHTMLParseTree(tl.Target().(*html.Node)))
			}
			var b bytes.Buffer
			if err = domdbg.ToGraphViz(doc, &b, highlight...); err != nil {
				return err
			}
			return writeOutput(cmd, dotOutputFlag, b.Bytes())
		},
	}
	cmd.Flags().StringVar(&dotHighlightFlag, "highlight", "", "CSS selector of elements to highlight")
	cmd.Flags().StringArrayVar(&dotTimelineFlags, "timeline", nil, "timeline file whose target to highlight (can be repeated)")
	cmd.Flags().StringVarP(&dotOutputFlag, "output", "o", "", "output file (default stdout)")

	return cmd
}

func init() {
	rootCmd.AddCommand(newDotCmd())
}
