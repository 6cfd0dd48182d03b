package main

import (
	"fmt"

	"github.com/spf13/cobra"

	jsonflatten "github.com/reoring/jsonflatten"
)

func newCheckCmd(g *globalOptions) *cobra.Command {
	o := &templateOptions{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compile a template and print its tree",
		Long:  `Compiles the template, reporting unknown operations or malformed configs, and prints the compiled selector tree.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, err := o.load(g, jsonflatten.DecodeOpt{})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "op key: %s\n", tmpl.OpKey())
			fmt.Fprint(w, tmpl.String())
			return nil
		},
	}
	o.register(cmd)
	return cmd
}
