// Released under an MIT license. See LICENSE.

package engine

import (
	"fortio.org/log"

	"github.com/michaelmacinnis/fomo/pkg/ast"
)

// The set of names that must not be replaced while copying a body.
// Names are only ever added. A name bound anywhere earlier in the walk
// stays protected for the rest of it.
type protected map[string]bool

// instantiate captures the current value of each free variable in l's body.
//
// Free variables that resolve on the current stack are replaced by their
// values. Anything unresolved is left as a dynamic reference. This is what
// lets a function refer to itself. Subtrees with no replacements are
// shared with the original body.
func (e *engine) instantiate(l *ast.Lambda) *ast.Function {
	p := protected{}
	for _, name := range l.Params {
		p[name] = true
	}

	body := e.substitute(l.Body, p)

	if log.LogVerbose() {
		log.LogVf("instantiate %s", e.arena.Dump(body))
	}

	return &ast.Function{Params: l.Params, Body: body}
}

func (e *engine) substitute(i ast.Index, p protected) ast.Index {
	switch n := e.arena.Node(i).(type) {
	case *ast.Binary:
		l := n.Left
		if _, ok := e.arena.Node(l).(*ast.Get); !ok || n.Op != ast.Assign {
			l = e.substitute(l, p)
		}

		r := e.substitute(n.Right, p)
		if l == n.Left && r == n.Right {
			return i
		}

		return e.arena.Push(&ast.Binary{Op: n.Op, Left: l, Right: r})

	case *ast.Block:
		body, changed := e.substituteAll(n.Body, p)
		if !changed {
			return i
		}

		return e.arena.Push(&ast.Block{Body: body})

	case *ast.Call:
		callee := e.substitute(n.Callee, p)

		args, changed := e.substituteAll(n.Args, p)
		if !changed && callee == n.Callee {
			return i
		}

		return e.arena.Push(&ast.Call{Callee: callee, Args: args})

	case *ast.Get:
		if p[n.Name] {
			return i
		}

		if v, ok := e.Resolve(n.Name); ok {
			return e.arena.Push(v)
		}

	case *ast.If:
		c := e.substitute(n.Cond, p)
		t := e.substitute(n.Then, p)
		f := e.substitute(n.Else, p)

		if c == n.Cond && t == n.Then && f == n.Else {
			return i
		}

		return e.arena.Push(&ast.If{Cond: c, Then: t, Else: f})

	case *ast.Lambda:
		for _, name := range n.Params {
			p[name] = true
		}

		body := e.substitute(n.Body, p)
		if body == n.Body {
			return i
		}

		return e.arena.Push(&ast.Lambda{Params: n.Params, Body: body})

	case *ast.Let:
		v := e.substitute(n.Value, p)

		p[n.Name] = true

		if v == n.Value {
			return i
		}

		return e.arena.Push(&ast.Let{Name: n.Name, Value: v})

	case *ast.List:
		items, changed := e.substituteAll(n.Items, p)
		if !changed {
			return i
		}

		return e.arena.Push(&ast.List{Items: items})

	case *ast.While:
		c := e.substitute(n.Cond, p)
		b := e.substitute(n.Body, p)

		if c == n.Cond && b == n.Body {
			return i
		}

		return e.arena.Push(&ast.While{Cond: c, Body: b})
	}

	return i
}

func (e *engine) substituteAll(is []ast.Index, p protected) ([]ast.Index, bool) {
	changed := false
	out := make([]ast.Index, len(is))

	for k, i := range is {
		out[k] = e.substitute(i, p)
		if out[k] != i {
			changed = true
		}
	}

	if !changed {
		return is, false
	}

	return out, true
}
