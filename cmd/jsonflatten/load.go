package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	jsonflatten "github.com/reoring/jsonflatten"
	"github.com/reoring/jsonflatten/source/jsonc"
	srcyaml "github.com/reoring/jsonflatten/source/yaml"
)

// templateOptions select where the template comes from: a config file
// holding __OP_KEY__ and template, or a bare template file plus --op-key.
type templateOptions struct {
	configPath   string
	templatePath string
	opKey        string
}

func (o *templateOptions) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.configPath, "config", "c", "", "config file (JSON, JSONC or YAML) with "+jsonflatten.ConfigOpKeyField+" and template")
	f.StringVarP(&o.templatePath, "template", "t", "", "template file (JSON, JSONC or YAML)")
	f.StringVar(&o.opKey, "op-key", "", "operation key used inside the template (with --template)")
	cmd.MarkFlagsMutuallyExclusive("config", "template")
	cmd.MarkFlagsOneRequired("config", "template")
	cmd.MarkFlagsRequiredTogether("template", "op-key")
}

func (o *templateOptions) load(g *globalOptions, opt jsonflatten.DecodeOpt) (*jsonflatten.Template, error) {
	if o.configPath != "" {
		cfg, err := decodeFile(o.configPath, nil, opt)
		if err != nil {
			return nil, err
		}
		g.logger.Debug("loaded config", "path", o.configPath)
		return jsonflatten.ParseConfig(cfg, opt)
	}
	v, err := decodeFile(o.templatePath, nil, opt)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(*jsonflatten.Object)
	if !ok {
		return nil, jsonflatten.Issues{{Code: jsonflatten.CodeMalformedTemplate, Message: "template must be an object, got " + v.Kind().String()}}
	}
	g.logger.Debug("loaded template", "path", o.templatePath, "op_key", o.opKey)
	return jsonflatten.ParseTemplate(o.opKey, obj)
}

// decodeFile decodes path, or stdin when path is "-", choosing the token
// driver from the file extension.
func decodeFile(path string, stdin io.Reader, opt jsonflatten.DecodeOpt) (jsonflatten.Value, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		if stdin == nil {
			stdin = os.Stdin
		}
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		return nil, jsonflatten.Issues{{Code: jsonflatten.CodeTruncated, Message: "max bytes exceeded"}}
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return jsonflatten.Decode(srcyaml.NewBytes(data), opt)
	case ".jsonc", ".hujson":
		return jsonflatten.Decode(jsonc.Driver(nil).NewBytes(data), opt)
	}
	return jsonflatten.DecodeBytes(data, opt)
}
