package engine

import (
	"strconv"
	"strings"
)

var jsonPointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// EscapePointerToken escapes a reference token per RFC 6901.
func EscapePointerToken(s string) string {
	return jsonPointerEscaper.Replace(s)
}

// JoinPointer appends a reference token to a JSON Pointer. The root pointer is "".
func JoinPointer(base, token string) string {
	return base + "/" + EscapePointerToken(token)
}

// JoinIndex appends an array index to a JSON Pointer.
func JoinIndex(base string, i int) string {
	return base + "/" + strconv.Itoa(i)
}

// NormalizePointer renders the root pointer as "/" for display.
func NormalizePointer(p string) string {
	if p == "" {
		return "/"
	}
	return p
}
