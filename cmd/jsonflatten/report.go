package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	jsonflatten "github.com/reoring/jsonflatten"
	"github.com/reoring/jsonflatten/i18n"
)

func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// reportError prints issues one per line as "code path: message". Other
// errors are printed verbatim.
func reportError(w io.Writer, err error, useColor bool) {
	codeColor := color.New(color.FgRed, color.Bold)
	pathColor := color.New(color.FgCyan)
	if !useColor {
		codeColor.DisableColor()
		pathColor.DisableColor()
	}
	iss, ok := jsonflatten.AsIssues(err)
	if !ok {
		fmt.Fprintf(w, "%s %v\n", codeColor.Sprint("error"), err)
		return
	}
	for _, it := range iss {
		path := it.Path
		if path == "" {
			path = "/"
		}
		fmt.Fprintf(w, "%s %s: %s\n", codeColor.Sprint(it.Code), pathColor.Sprint(path), issueMessage(it))
	}
}

// issueMessage prefers the translated catalogue message when the issue has
// parameters to fill it, otherwise the issue's own message.
func issueMessage(it jsonflatten.Issue) string {
	if len(it.Params) == 0 {
		if it.Message != "" {
			return it.Message
		}
		return i18n.T(it.Code, nil)
	}
	data := make(map[string]string, len(it.Params))
	for k, v := range it.Params {
		data[k] = fmt.Sprint(v)
	}
	return i18n.T(it.Code, data)
}
