package data

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
)

// node is one element of the store tree. Children keep insertion order.
type node struct {
	value    float64
	hasValue bool
	names    []string
	children map[string]*node
}

func (n *node) child(name string, create bool) *node {
	if c, ok := n.children[name]; ok {
		return c
	}
	if !create {
		return nil
	}
	if n.children == nil {
		n.children = make(map[string]*node)
	}
	c := &node{}
	n.children[name] = c
	n.names = append(n.names, name)
	return c
}

// Store is an ordered tree of named nodes with numeric leaves. It is not
// safe for concurrent mutation.
type Store struct {
	root node
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

func (s *Store) lookup(p Path) *node {
	n := &s.root
	for _, name := range p {
		if n = n.child(name, false); n == nil {
			return nil
		}
	}
	return n
}

// Set stores v at p, creating intermediate nodes. NaN clears the value.
func (s *Store) Set(p Path, v float64) {
	n := &s.root
	for _, name := range p {
		n = n.child(name, true)
	}
	n.value = v
	n.hasValue = !math.IsNaN(v)
}

// Value returns the number stored at p.
func (s *Store) Value(p Path) (float64, bool) {
	n := s.lookup(p)
	if n == nil || !n.hasValue {
		return math.NaN(), false
	}
	return n.value, true
}

// Has reports whether a node exists at p.
func (s *Store) Has(p Path) bool {
	return s.lookup(p) != nil
}

// Children returns the names of the children of p in insertion order.
func (s *Store) Children(p Path) []string {
	n := s.lookup(p)
	if n == nil {
		return nil
	}
	out := make([]string, len(n.names))
	copy(out, n.names)
	return out
}

// Min returns the smallest numeric leaf under p, or NaN when there is none.
func (s *Store) Min(p Path) float64 {
	lo, _, ok := s.bounds(p)
	if !ok {
		return math.NaN()
	}
	return lo
}

// Max returns the largest numeric leaf under p, or NaN when there is none.
func (s *Store) Max(p Path) float64 {
	_, hi, ok := s.bounds(p)
	if !ok {
		return math.NaN()
	}
	return hi
}

// bounds walks every value under p keeping an independent running minimum
// and maximum.
func (s *Store) bounds(p Path) (lo, hi float64, ok bool) {
	n := s.lookup(p)
	if n == nil {
		return 0, 0, false
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	var walk func(n *node)
	walk = func(n *node) {
		if n.hasValue {
			lo = math.Min(lo, n.value)
			hi = math.Max(hi, n.value)
			ok = true
		}
		for _, name := range n.names {
			walk(n.children[name])
		}
	}
	walk(n)
	return lo, hi, ok
}

// ErrMalformed is returned by Load for input that is not a tree of objects
// with numeric or null leaves.
var ErrMalformed = errors.New("data: malformed document")

// Load reads a JSON document of nested objects whose leaves are numbers or
// null. Object key order is preserved.
func Load(r io.Reader) (*Store, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	s := NewStore()
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("data: read document: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("%w: top level must be an object", ErrMalformed)
	}
	if err := s.loadObject(dec, &s.root, nil); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) loadObject(dec *json.Decoder, n *node, p Path) error {
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("data: read key under %q: %w", p.String(), err)
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("%w: key under %q", ErrMalformed, p.String())
		}
		c := n.child(name, true)
		if err := s.loadValue(dec, c, p.Append(name)); err != nil {
			return err
		}
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("data: close object %q: %w", p.String(), err)
	}
	return nil
}

func (s *Store) loadValue(dec *json.Decoder, n *node, p Path) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("data: read %q: %w", p.String(), err)
	}
	switch v := tok.(type) {
	case json.Delim:
		if v != '{' {
			return fmt.Errorf("%w: %q is an array", ErrMalformed, p.String())
		}
		return s.loadObject(dec, n, p)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return fmt.Errorf("data: parse %q: %w", p.String(), err)
		}
		n.value, n.hasValue = f, true
	case nil:
		n.hasValue = false
	default:
		return fmt.Errorf("%w: %q is %T", ErrMalformed, p.String(), tok)
	}
	return nil
}
