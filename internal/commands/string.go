// Released under an MIT license. See LICENSE.

package commands

import (
	"strings"

	"github.com/michaelmacinnis/fomo/pkg/ast"
)

func join(sep, a, _, _ ast.Value) ast.Value {
	arr, ok := a.(*ast.Array)
	if !ok {
		return ast.Nil
	}

	s := make([]string, len(arr.Items))
	for k, item := range arr.Items {
		s[k] = ast.String(item)
	}

	return ast.Str(strings.Join(s, ast.String(sep)))
}

func lower(v, _, _, _ ast.Value) ast.Value {
	if s, ok := v.(ast.Str); ok {
		return ast.Str(strings.ToLower(string(s)))
	}

	return ast.Nil
}

func split(sep, s, _, _ ast.Value) ast.Value {
	if _, ok := s.(ast.Str); !ok {
		return ast.Nil
	}

	parts := strings.Split(ast.String(s), ast.String(sep))

	items := make([]ast.Value, len(parts))
	for k, part := range parts {
		items[k] = ast.Str(part)
	}

	return ast.NewArray(items...)
}

func str(v, _, _, _ ast.Value) ast.Value {
	return ast.Str(ast.String(v))
}

func upper(v, _, _, _ ast.Value) ast.Value {
	if s, ok := v.(ast.Str); ok {
		return ast.Str(strings.ToUpper(string(s)))
	}

	return ast.Nil
}
