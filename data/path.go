// Package data holds the multidimensional data store the chart reads from
// and the transformers mapping its values to visual encodings.
//
// Values are addressed by Path: dimension, then entity, then slice, e.g.
// "x/Norway/1990". Leaves are numbers; missing or non-numeric leaves read as
// NaN.
package data

import "strings"

// Separator joins path elements in the string form of a Path.
const Separator = "/"

// Path addresses a node of a Store.
type Path []string

// ParsePath splits s on Separator, dropping empty elements.
func ParsePath(s string) Path {
	parts := strings.Split(s, Separator)
	p := make(Path, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			p = append(p, part)
		}
	}
	return p
}

// String returns the slash-joined form.
func (p Path) String() string {
	return strings.Join(p, Separator)
}

// Append returns a new path with names added. p is not modified.
func (p Path) Append(names ...string) Path {
	out := make(Path, 0, len(p)+len(names))
	out = append(out, p...)
	return append(out, names...)
}

// Equal reports whether p and q name the same node.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Last returns the final element, or "".
func (p Path) Last() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}
