// Released under an MIT license. See LICENSE.

// Package bindings loads values to bind before a script runs.
//
// Bindings are read from a YAML mapping of names to values:
//
//	limit: 10
//	greeting: hello
//	primes: [2, 3, 5, 7]
//
// Numbers become Num, booleans become 1 or 0, strings become Str, null
// becomes Unit and sequences become arrays. Nested mappings are rejected.
package bindings

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/michaelmacinnis/fomo/pkg/ast"
)

// ErrNotMapping is returned when a document is not a mapping of names
// to values.
var ErrNotMapping = errors.New("bindings must be a mapping of names to values")

// T is a named value.
type T struct {
	Name  string
	Value ast.Value
}

// Setter is anything values can be bound in.
type Setter interface {
	Set(name string, v ast.Value)
}

// Apply binds each value in bs, in order.
func Apply(s Setter, bs []T) {
	for _, b := range bs {
		s.Set(b.Name, b.Value)
	}
}

// Load reads bindings from r in document order. An empty document has no
// bindings.
func Load(r io.Reader) ([]T, error) {
	var doc yaml.Node

	err := yaml.NewDecoder(r).Decode(&doc)
	if errors.Is(err, io.EOF) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("bindings: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, nil
		}

		root = root.Content[0]
	}

	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: %w", root.Line, ErrNotMapping)
	}

	bs := make([]T, 0, len(root.Content)/2)

	for k := 0; k+1 < len(root.Content); k += 2 {
		name := root.Content[k].Value

		v, err := value(name, root.Content[k+1])
		if err != nil {
			return nil, err
		}

		bs = append(bs, T{Name: name, Value: v})
	}

	return bs, nil
}

// LoadFile reads bindings from the file at path.
func LoadFile(path string) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bs, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return bs, nil
}

func value(name string, n *yaml.Node) (ast.Value, error) {
	switch n.Kind { //nolint:exhaustive
	case yaml.AliasNode:
		return value(name, n.Alias)

	case yaml.MappingNode:
		return nil, fmt.Errorf("%s: line %d: %w", name, n.Line, ErrNotMapping)

	case yaml.SequenceNode:
		items := make([]ast.Value, len(n.Content))

		for k, item := range n.Content {
			v, err := value(name, item)
			if err != nil {
				return nil, err
			}

			items[k] = v
		}

		return ast.NewArray(items...), nil
	}

	var v interface{}
	if err := n.Decode(&v); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	switch v := v.(type) {
	case nil:
		return ast.Nil, nil
	case bool:
		return ast.Bool(v), nil
	case int:
		return ast.Num(v), nil
	case int64:
		return ast.Num(v), nil
	case uint64:
		return ast.Num(v), nil
	case float64:
		return ast.Num(v), nil
	case time.Time:
		return ast.Str(n.Value), nil
	}

	return ast.Str(n.Value), nil
}
