package main

import (
	"time"

	"github.com/spf13/cobra"

	jsonflatten "github.com/reoring/jsonflatten"
)

type applyOptions struct {
	tmpl       templateOptions
	inputPath  string
	pretty     bool
	indent     string
	maxDepth   int
	maxBytes   int64
	strictKeys bool
}

func newApplyCmd(g *globalOptions) *cobra.Command {
	o := &applyOptions{}
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply a template to a JSON document",
		Long:  `Reads a JSON object (stdin by default), transforms it with the template and writes the result to stdout.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, g, o)
		},
	}
	o.tmpl.register(cmd)
	f := cmd.Flags()
	f.StringVarP(&o.inputPath, "input", "i", "-", "input document (JSON, JSONC or YAML); - reads stdin")
	f.BoolVar(&o.pretty, "pretty", false, "indent the output")
	f.StringVar(&o.indent, "indent", "  ", "indentation used with --pretty")
	f.IntVar(&o.maxDepth, "max-depth", 1000, "maximum nesting depth of input documents (0 disables)")
	f.Int64Var(&o.maxBytes, "max-bytes", 0, "maximum size of input documents in bytes (0 disables)")
	f.BoolVar(&o.strictKeys, "strict-keys", false, "reject documents with duplicate object keys")
	return cmd
}

func (o *applyOptions) decodeOpt() jsonflatten.DecodeOpt {
	opt := jsonflatten.DecodeOpt{MaxDepth: o.maxDepth, MaxBytes: o.maxBytes}
	if o.strictKeys {
		opt.Strictness.OnDuplicateKey = jsonflatten.Error
	}
	return opt
}

func runApply(cmd *cobra.Command, g *globalOptions, o *applyOptions) error {
	opt := o.decodeOpt()
	tmpl, err := o.tmpl.load(g, opt)
	if err != nil {
		return err
	}
	input, err := decodeFile(o.inputPath, cmd.InOrStdin(), opt)
	if err != nil {
		return err
	}
	start := time.Now()
	out, err := jsonflatten.NewFlattener(tmpl).Flatten(input)
	if err != nil {
		return err
	}
	g.logger.Debug("flattened", "input", o.inputPath, "result_kind", out.Kind().String(), "elapsed", time.Since(start))

	indent := ""
	if o.pretty {
		indent = o.indent
	}
	return jsonflatten.Encode(cmd.OutOrStdout(), out, indent)
}
