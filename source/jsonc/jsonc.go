// Package jsonc reads JSON with comments and trailing commas (HuJSON), a
// convenient format for hand-written templates.
package jsonc

import (
	"io"

	"github.com/tailscale/hujson"

	jsonflatten "github.com/reoring/jsonflatten"
)

// Driver returns a JSONDriver that standardizes HuJSON input and hands the
// result to inner. A nil inner uses the driver current at read time.
func Driver(inner jsonflatten.JSONDriver) jsonflatten.JSONDriver {
	return driverJSONC{inner: inner}
}

type driverJSONC struct {
	inner jsonflatten.JSONDriver
}

func (d driverJSONC) NewReader(r io.Reader) jsonflatten.Source {
	b, err := io.ReadAll(r)
	if err != nil {
		return errSource{err: err}
	}
	return d.NewBytes(b)
}

func (d driverJSONC) NewBytes(b []byte) jsonflatten.Source {
	std, err := Standardize(b)
	if err != nil {
		return errSource{err: err}
	}
	inner := d.inner
	if inner == nil {
		inner = jsonflatten.CurrentJSONDriver()
	}
	return inner.NewBytes(std)
}

func (d driverJSONC) Name() string {
	if d.inner == nil {
		return "hujson"
	}
	return "hujson+" + d.inner.Name()
}

// Standardize strips comments and trailing commas, leaving plain JSON.
func Standardize(b []byte) ([]byte, error) { return hujson.Standardize(b) }

type errSource struct{ err error }

func (s errSource) NextToken() (jsonflatten.Token, error) { return jsonflatten.Token{}, s.err }
func (s errSource) Location() int64                       { return -1 }
