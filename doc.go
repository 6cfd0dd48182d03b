// Package jsonflatten filters and reshapes JSON documents with a declarative
// template.
//
// A template mirrors the shape of the expected input. Every field it names is
// kept; everything else is dropped. Operation strings attached to a field
// (under a configurable operation key) rename it, hoist its children into the
// parent ("delete"), or flatten list elements ("compact").
//
// The package provides:
//
// - An ordered JSON Value model (Object keeps key order, Number keeps its text)
// - A compiler from templates to an immutable Node tree (Compile/ParseTemplate/ParseConfig)
// - The flattening engine (Flatten, Flattener, Template.Flatten)
// - A stable error model via Issues (JSON Pointer, code, message)
// - Pluggable token drivers with duplicate-key/depth/size enforcement
//
// Design policy:
// - Keep only public APIs in the root package; put token plumbing under internal/.
// - Place input drivers under source/ and the CLI under cmd/jsonflatten.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	tmpl, err := jsonflatten.ParseTemplate("ops", `{"users":{"ops":"list;compact","all":{"1":""}}}`)
//	in, err := jsonflatten.DecodeBytes(data)
//	out, err := tmpl.Flatten(in)
//	b, err := jsonflatten.Marshal(out)
package jsonflatten
