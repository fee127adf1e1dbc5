// Released under an MIT license. See LICENSE.

package engine

import (
	"fortio.org/log"

	"github.com/michaelmacinnis/fomo/pkg/ast"
)

// Evaluate evaluates the node at index i and returns its value.
// Evaluation never fails. Anything that cannot be evaluated is Nil.
func (e *engine) Evaluate(i ast.Index) ast.Value {
	switch n := e.arena.Node(i).(type) {
	case ast.Value:
		return n

	case *ast.Binary:
		return e.binary(n)

	case *ast.Block:
		return e.block(n)

	case *ast.Call:
		return e.call(n)

	case *ast.Get:
		v, ok := e.Resolve(n.Name)
		if !ok {
			log.LogVf("%s is not bound", n.Name)
		}

		return v

	case *ast.If:
		if ast.Truthy(e.Evaluate(n.Cond)) {
			return e.Evaluate(n.Then)
		}

		return e.Evaluate(n.Else)

	case *ast.Lambda:
		return e.instantiate(n)

	case *ast.Let:
		e.Push(n.Name, e.Evaluate(n.Value))

		return ast.Nil

	case *ast.List:
		items := make([]ast.Value, len(n.Items))
		for k, item := range n.Items {
			items[k] = e.Evaluate(item)
		}

		return ast.NewArray(items...)

	case *ast.While:
		var v ast.Value = ast.Nil

		for ast.Truthy(e.Evaluate(n.Cond)) {
			v = e.Evaluate(n.Body)
		}

		return v
	}

	return ast.Nil
}

func (e *engine) block(n *ast.Block) ast.Value {
	mark := e.Mark()
	defer e.Truncate(mark)

	var v ast.Value = ast.Nil

	for _, i := range n.Body {
		v = e.Evaluate(i)
	}

	return v
}
