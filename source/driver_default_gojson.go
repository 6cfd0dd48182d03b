// Package source groups the token drivers. Importing it for side effects
// makes go-json the driver behind jsonflatten.DecodeBytes and friends.
package source

import (
	jsonflatten "github.com/reoring/jsonflatten"
	drvgojson "github.com/reoring/jsonflatten/source/gojson"
)

// The root package cannot import its drivers, so the switch lives here.
func init() { jsonflatten.SetJSONDriver(drvgojson.Driver()) }
