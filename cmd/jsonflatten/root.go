package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	jsonflatten "github.com/reoring/jsonflatten"
	"github.com/reoring/jsonflatten/i18n"
	"github.com/reoring/jsonflatten/internal/logging"
	drvgojson "github.com/reoring/jsonflatten/source/gojson"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	logLevel string
	lang     string
	driver   string
	noColor  bool

	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	g := &globalOptions{logger: logging.NewNop()}
	root := &cobra.Command{
		Use:           "jsonflatten",
		Short:         "Filter and reshape JSON documents with a declarative template",
		Long:          `jsonflatten compiles a template that mirrors the shape of the expected input and applies it to JSON documents, keeping, renaming, dropping or flattening fields as the template's operation strings say.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.setup(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&g.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.StringVar(&g.lang, "lang", os.Getenv("JSONFLATTEN_LANG"), "language for issue messages (en, ja)")
	pf.StringVar(&g.driver, "driver", "go-json", "JSON driver (go-json, encoding/json)")
	pf.BoolVar(&g.noColor, "no-color", false, "disable colored diagnostics")

	root.AddCommand(newApplyCmd(g), newCheckCmd(g))
	return root
}

func (g *globalOptions) setup(cmd *cobra.Command) error {
	level, err := logging.ParseLevel(g.logLevel)
	if err != nil {
		return err
	}
	g.logger = logging.New(cmd.ErrOrStderr(), level)

	switch g.driver {
	case "go-json":
		jsonflatten.SetJSONDriver(drvgojson.Driver())
	case "encoding/json", "json":
		jsonflatten.UseDefaultJSONDriver()
	default:
		return fmt.Errorf("unknown driver %q", g.driver)
	}
	if g.lang != "" {
		i18n.SetLanguage(g.lang)
	}
	g.logger.Debug("configured", "driver", jsonflatten.CurrentJSONDriver().Name(), "lang", g.lang)
	return nil
}

// Execute runs the CLI with args and returns the process exit code.
func Execute(args []string) int {
	return execute(newRootCmd(), args, stderrIsTerminal())
}

func execute(root *cobra.Command, args []string, tty bool) int {
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		noColor, _ := root.PersistentFlags().GetBool("no-color")
		reportError(root.ErrOrStderr(), err, tty && !noColor)
		return 1
	}
	return 0
}
