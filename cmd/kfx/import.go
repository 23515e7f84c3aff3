package main

import (
	"fmt"

	"github.com/npillmayer/keyframes/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/keyframes/timeline"
	"github.com/spf13/cobra"
)

var importTargetFlag string
var importFramesFlag int
var importOutputFlag string

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <document> <animation>",
		Short: "Create a timeline from a CSS @keyframes rule",
		Long: `Import looks up the @keyframes rule for an animation in the <style> elements
of a document and creates a timeline for a target element. Keyframe offsets
are spread over the given number of frames; only numeric property values
are imported.

The timeline is written as YAML, or as JSON if the output file name does not
end in .yaml or .yml.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			rule := douceuradapter.Merged(doc.HTMLNode()).Keyframes(args[1])
			if rule == nil {
				return fmt.Errorf("no @keyframes %s in %s", args[1], args[0])
			}
			target, err := doc.Query(importTargetFlag)
			if err != nil {
				return err
			}
			if target == nil {
				return fmt.Errorf("no element matches %q", importTargetFlag)
			}
			tl := timeline.NewDOM(target.HTMLNode())
			if err = timeline.ImportKeyframes(tl, rule, importFramesFlag); err != nil {
				return err
			}
			if tl.Len() == 0 {
				return fmt.Errorf("@keyframes %s has no numeric values", args[1])
			}
			format := timeline.YAML
			if importOutputFlag != "" && importOutputFlag != "-" {
				format = timeline.FormatForFile(importOutputFlag)
			}
			data, err := timeline.Encode(tl, format)
			if err != nil {
				return err
			}
			return writeOutput(cmd, importOutputFlag, data)
		},
	}
	cmd.Flags().StringVar(&importTargetFlag, "target", "", "CSS selector of the animated element")
	cmd.Flags().IntVarP(&importFramesFlag, "frames", "f", 100, "number of frames the animation spans")
	cmd.Flags().StringVarP(&importOutputFlag, "output", "o", "", "output file (default stdout)")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func init() {
	rootCmd.AddCommand(newImportCmd())
}
