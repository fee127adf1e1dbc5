// Released under an MIT license. See LICENSE.

package engine

import (
	"math"

	"fortio.org/log"

	"github.com/michaelmacinnis/fomo/pkg/ast"
)

const arity = 4 // Number of arguments passed to a native callback.

// Call applies fn to args. It is safe to call from inside a native
// callback.
func (e *engine) Call(fn ast.Value, args ...ast.Value) ast.Value {
	switch fn := fn.(type) {
	case *ast.Array:
		return e.index(fn, args)

	case *ast.Function:
		mark := e.Mark()
		defer e.Truncate(mark)

		for k, name := range fn.Params {
			var v ast.Value = ast.Nil
			if k < len(args) {
				v = args[k]
			}

			e.Push(name, v)
		}

		return e.Evaluate(fn.Body)

	case *ast.Native:
		var a [arity]ast.Value
		for k := range a {
			a[k] = ast.Nil
		}

		copy(a[:], args)

		if v := fn.Fn(a[0], a[1], a[2], a[3]); v != nil {
			return v
		}

		return ast.Nil
	}

	if log.LogVerbose() {
		log.LogVf("%s is not callable", ast.Literal(fn))
	}

	return ast.Nil
}

func (e *engine) call(n *ast.Call) ast.Value {
	fn := e.Evaluate(n.Callee)

	switch fn.(type) {
	case *ast.Array, *ast.Function, *ast.Native:
	default:
		if log.LogVerbose() {
			log.LogVf("%s is not callable", ast.Literal(fn))
		}

		return ast.Nil
	}

	// Every argument is evaluated before any parameter is bound so that
	// a parameter never shadows a name used by a later argument.
	args := make([]ast.Value, len(n.Args))
	for k, arg := range n.Args {
		args[k] = e.Evaluate(arg)
	}

	return e.Call(fn, args...)
}

func (e *engine) index(a *ast.Array, args []ast.Value) ast.Value {
	if len(args) == 0 {
		return ast.Num(len(a.Items))
	}

	switch arg := args[0].(type) {
	case ast.Num:
		n := float64(len(a.Items))

		k := math.Trunc(float64(arg))
		if k < 0 {
			k += n
		}

		if k >= 0 && k < n {
			return a.Items[int(k)]
		}

		if log.LogVerbose() {
			log.LogVf("index %s out of range for %d items", ast.Literal(arg), len(a.Items))
		}

	case *ast.Function, *ast.Native:
		items := make([]ast.Value, len(a.Items))
		for k, item := range a.Items {
			items[k] = e.Call(arg, item, ast.Num(k))
		}

		return ast.NewArray(items...)
	}

	return ast.Nil
}
