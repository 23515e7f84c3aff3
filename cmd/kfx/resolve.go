package main

import (
	"fmt"

	"github.com/npillmayer/keyframes/dom/elempath"
	"github.com/spf13/cobra"
)

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <document> <path>",
		Short: "Find the node an element path addresses",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := elempath.Parse(args[1]); err != nil {
				return err
			}
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			n := doc.Resolve(args[1])
			if n == nil {
				return fmt.Errorf("%s does not address a node in %s", args[1], args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), describe(n))
			return nil
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(newResolveCmd())
}
