package main

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/keyframes/compiler"
	"github.com/npillmayer/keyframes/maybe"
	"github.com/npillmayer/keyframes/tween"
	"github.com/npillmayer/keyframes/tween/memengine"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var compileDocFlag string
var compileFpsFlag float64
var compileStrictFlag bool
var compileTreeFlag bool

func newCompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile <timeline-file>",
		Short: "Compile a timeline and list its segments",
		Long: `Compile resolves the target of a timeline within a document and compiles
the timeline into a paused, frame-based container of a recording engine.
The resulting segments are printed as a table.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tl, err := readTimeline(args[0])
			if err != nil {
				return err
			}
			doc, err := loadDocument(compileDocFlag)
			if err != nil {
				return err
			}
			if !tl.Resolve(doc.HTMLNode()) {
				tracer().Infof("target %q not found in %s", tl.Path(), compileDocFlag)
			}
			config, err := engineConfig(compileFpsFlag, compileStrictFlag)
			if err != nil {
				return err
			}
			engine := memengine.New(config).Provision()
			c, segs, err := compiler.CompileSegments(tl, engine, config)
			if err != nil {
				return err
			}
			printSegments(cmd.OutOrStdout(), segs, c, config)
			if compileTreeFlag {
				if mc, ok := engine.Container(c.ID()); ok {
					fmt.Fprintf(cmd.OutOrStdout(), "\n%s", mc.Dump())
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&compileDocFlag, "doc", "d", "", "HTML document containing the timeline's target")
	cmd.Flags().Float64Var(&compileFpsFlag, "fps", 0, "frame rate (default $KFX_FPS or 60)")
	cmd.Flags().BoolVar(&compileStrictFlag, "strict", false, "reject properties without a value at frame 0")
	cmd.Flags().BoolVarP(&compileTreeFlag, "tree", "t", false, "print the tween tree of the container")
	_ = cmd.MarkFlagRequired("doc")

	return cmd
}

func init() {
	rootCmd.AddCommand(newCompileCmd())
}

func printSegments(w io.Writer, segs []compiler.Segment, c tween.Container, config tween.Config) {
	var tableBuffer bytes.Buffer
	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "Property", "From", "To", "Duration", "Start", "Value"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})
	for _, seg := range segs {
		start := startLabel(seg.Start)
		duration := strconv.Itoa(seg.Duration())
		if seg.IsInitialSet {
			duration = "set"
		}
		table.Append([]string{
			strconv.Itoa(seg.ID),
			seg.Property,
			strconv.Itoa(seg.FromFrame),
			strconv.Itoa(seg.ToFrame),
			duration,
			start,
			strconv.FormatFloat(seg.Value, 'g', -1, 64),
		})
	}
	table.SetFooter([]string{
		"", fmt.Sprintf("container #%d", c.ID()), "", "",
		fmt.Sprintf("%g frames", c.Duration()),
		fmt.Sprintf("%.2fs", config.Seconds(c.Duration())), "",
	})
	table.Render()
	fmt.Fprint(w, tableBuffer.String())
}

// startLabel formats the start value of a segment, or "?" if no keyframe
// defines one.
func startLabel(start maybe.Maybe[float64]) string {
	var v float64
	switch m := start.Match(); m {
	case m.Just(&v):
		return strconv.FormatFloat(v, 'g', -1, 64)
	case m.Nothing():
	}
	return "?"
}
