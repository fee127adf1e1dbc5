// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"
	"io"
	"strings"

	"fortio.org/log"
	"github.com/michaelmacinnis/adapted"

	"github.com/michaelmacinnis/fomo/pkg/ast"
)

func debug(v, _, _, _ ast.Value) ast.Value {
	log.Infof("debug: %s", ast.Literal(v))

	return v
}

func each(e Engine) ast.Callback {
	return func(a, fn, _, _ ast.Value) ast.Value {
		arr, ok := a.(*ast.Array)
		if !ok || !ast.IsCallable(fn) {
			return ast.Nil
		}

		for k, item := range arr.Items {
			e.Call(fn, item, ast.Num(k))
		}

		return ast.Nil
	}
}

func glob(pattern, _, _, _ ast.Value) ast.Value {
	p, ok := pattern.(ast.Str)
	if !ok {
		return ast.Nil
	}

	matches, err := adapted.Glob(string(p))
	if err != nil {
		log.LogVf("glob %q: %v", p, err)

		return ast.Nil
	}

	items := make([]ast.Value, len(matches))
	for k, m := range matches {
		items[k] = ast.Str(m)
	}

	return ast.NewArray(items...)
}

func match(pattern, s, _, _ ast.Value) ast.Value {
	p, ok := pattern.(ast.Str)
	if !ok {
		return ast.Nil
	}

	ok, err := adapted.Match(string(p), ast.String(s))
	if err != nil {
		log.LogVf("match %q: %v", p, err)

		return ast.Nil
	}

	return ast.Bool(ok)
}

func printer(w io.Writer) ast.Callback {
	return func(a, b, c, d ast.Value) ast.Value {
		s := []string{}

		for _, v := range []ast.Value{a, b, c, d} {
			if !ast.IsUnit(v) {
				s = append(s, ast.String(v))
			}
		}

		if _, err := fmt.Fprintln(w, strings.Join(s, " ")); err != nil {
			log.Errf("print: %v", err)
		}

		return ast.Nil
	}
}
