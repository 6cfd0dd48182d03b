//go:build gojson

package jsonflatten_test

import (
	jsonflatten "github.com/reoring/jsonflatten"
	drv "github.com/reoring/jsonflatten/source/gojson"
)

func init() {
	jsonflatten.SetJSONDriver(drv.Driver())
}
