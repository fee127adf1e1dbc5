// Released under an MIT license. See LICENSE.

package engine

import (
	"math"

	"fortio.org/log"

	"github.com/michaelmacinnis/fomo/pkg/ast"
)

func (e *engine) binary(n *ast.Binary) ast.Value {
	if n.Op == ast.Assign {
		return e.assign(n)
	}

	l := e.Evaluate(n.Left)
	r := e.Evaluate(n.Right)

	switch n.Op { //nolint:exhaustive
	case ast.And, ast.Or:
		return e.logical(n.Op, l, r)

	case ast.Add, ast.Concat:
		if v, ok := concat(l, r); ok {
			return v
		}

	case ast.Equals, ast.NotEquals:
		if equal, ok := ast.Equal(l, r); ok {
			return ast.Bool(equal == (n.Op == ast.Equals))
		}
	}

	if a, ok := l.(ast.Num); ok {
		if b, ok := r.(ast.Num); ok {
			if v, ok := arithmetic(n.Op, float64(a), float64(b)); ok {
				return v
			}
		}
	}

	if log.LogVerbose() {
		log.LogVf("%s %s %s is undefined", ast.Literal(l), n.Op, ast.Literal(r))
	}

	return ast.Nil
}

func (e *engine) assign(n *ast.Binary) ast.Value {
	get, ok := e.arena.Node(n.Left).(*ast.Get)
	if !ok {
		log.LogVf("cannot assign to %s", e.arena.Dump(n.Left))

		return ast.Nil
	}

	slot, ok := e.Lookup(get.Name)
	if !ok {
		log.LogVf("cannot assign to %s: not bound", get.Name)

		return ast.Nil
	}

	// Evaluating the right-hand side can only add bindings above slot.
	e.Assign(slot, e.Evaluate(n.Right))

	return ast.Nil
}

func (e *engine) logical(op ast.Op, l, r ast.Value) ast.Value {
	a, ok := l.(*ast.Array)
	if ok && ast.IsCallable(r) {
		if op == ast.And {
			return e.filter(a, r)
		}

		return e.fold(a, r)
	}

	if _, rok := r.(*ast.Array); ok || rok {
		return ast.Nil
	}

	if op == ast.And {
		return ast.Bool(ast.Truthy(l) && ast.Truthy(r))
	}

	return ast.Bool(ast.Truthy(l) || ast.Truthy(r))
}

func (e *engine) filter(a *ast.Array, fn ast.Value) ast.Value {
	items := []ast.Value{}

	for k, item := range a.Items {
		if ast.Truthy(e.Call(fn, item, ast.Num(k))) {
			items = append(items, item)
		}
	}

	return ast.NewArray(items...)
}

func (e *engine) fold(a *ast.Array, fn ast.Value) ast.Value {
	if len(a.Items) == 0 {
		return ast.Nil
	}

	acc := a.Items[0]
	for _, item := range a.Items[1:] {
		acc = e.Call(fn, acc, item)
	}

	return acc
}

func arithmetic(op ast.Op, a, b float64) (ast.Value, bool) {
	switch op { //nolint:exhaustive
	case ast.Add:
		return ast.Num(a + b), true
	case ast.Sub:
		return ast.Num(a - b), true
	case ast.Mul:
		return ast.Num(a * b), true
	case ast.Div:
		return ast.Num(a / b), true
	case ast.Mod:
		return ast.Num(math.Mod(a, b)), true
	case ast.Less:
		return ast.Bool(a < b), true
	case ast.Greater:
		return ast.Bool(a > b), true
	case ast.LessEquals:
		return ast.Bool(a <= b), true
	case ast.GreaterEquals:
		return ast.Bool(a >= b), true
	}

	return nil, false
}

// Arrays are checked before strings so that ["a"] + "b" appends.
func concat(l, r ast.Value) (ast.Value, bool) {
	la, lok := l.(*ast.Array)
	ra, rok := r.(*ast.Array)

	switch {
	case lok && rok:
		items := make([]ast.Value, 0, len(la.Items)+len(ra.Items))
		items = append(items, la.Items...)

		return ast.NewArray(append(items, ra.Items...)...), true

	case lok:
		items := make([]ast.Value, 0, len(la.Items)+1)
		items = append(items, la.Items...)

		return ast.NewArray(append(items, r)...), true

	case rok:
		items := make([]ast.Value, 0, len(ra.Items)+1)
		items = append(items, l)

		return ast.NewArray(append(items, ra.Items...)...), true
	}

	_, lok = l.(ast.Str)
	_, rok = r.(ast.Str)

	if lok || rok {
		return ast.Str(ast.String(l) + ast.String(r)), true
	}

	return nil, false
}
