// Released under an MIT license. See LICENSE.

package ast

import (
	"strings"
)

// Dump returns a parenthesized prefix representation of the tree rooted at
// index i. Useful for debugging and for comparing trees in tests.
func (a *arena) Dump(i Index) string {
	var b strings.Builder

	a.dump(&b, i)

	return b.String()
}

func (a *arena) dump(b *strings.Builder, i Index) {
	switch n := a.Node(i).(type) {
	case *Call:
		b.WriteString("(call ")
		a.dump(b, n.Callee)
		a.dumpAll(b, n.Args)
		b.WriteByte(')')
	case *Block:
		b.WriteString("(block")
		a.dumpAll(b, n.Body)
		b.WriteByte(')')
	case *If:
		b.WriteString("(if ")
		a.dump(b, n.Cond)
		b.WriteByte(' ')
		a.dump(b, n.Then)
		b.WriteByte(' ')
		a.dump(b, n.Else)
		b.WriteByte(')')
	case *While:
		b.WriteString("(while ")
		a.dump(b, n.Cond)
		b.WriteByte(' ')
		a.dump(b, n.Body)
		b.WriteByte(')')
	case *Let:
		b.WriteString("(let " + n.Name + " ")
		a.dump(b, n.Value)
		b.WriteByte(')')
	case *Get:
		b.WriteString(n.Name)
	case *Binary:
		b.WriteString("(" + n.Op.String() + " ")
		a.dump(b, n.Left)
		b.WriteByte(' ')
		a.dump(b, n.Right)
		b.WriteByte(')')
	case *Lambda:
		b.WriteString("(lambda (" + strings.Join(n.Params, " ") + ") ")
		a.dump(b, n.Body)
		b.WriteByte(')')
	case *Function:
		b.WriteString("(function (" + strings.Join(n.Params, " ") + ") ")
		a.dump(b, n.Body)
		b.WriteByte(')')
	case *List:
		b.WriteString("[")
		for k, item := range n.Items {
			if k > 0 {
				b.WriteByte(' ')
			}
			a.dump(b, item)
		}
		b.WriteString("]")
	case Value:
		b.WriteString(Literal(n))
	}
}

func (a *arena) dumpAll(b *strings.Builder, is []Index) {
	for _, i := range is {
		b.WriteByte(' ')
		a.dump(b, i)
	}
}
