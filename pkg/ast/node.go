// Released under an MIT license. See LICENSE.

// Package ast provides the fomo syntax tree and runtime value types.
//
// Nodes live in an Arena and refer to their children by Index. Terminal
// nodes (numbers, strings, arrays, functions, natives and unit) are also the
// values produced by evaluation.
package ast

// Node is any element that can be stored in an Arena.
type Node interface {
	node()
}

// Call applies the value of Callee to Args.
type Call struct {
	Callee Index
	Args   []Index
}

// Block evaluates Body in order in a new scope.
type Block struct {
	Body []Index
}

// If evaluates Then when Cond is truthy and Else otherwise.
type If struct {
	Cond Index
	Then Index
	Else Index
}

// While evaluates Body for as long as Cond is truthy.
type While struct {
	Cond Index
	Body Index
}

// Let binds Name to the value of Value in the current scope.
type Let struct {
	Name  string
	Value Index
}

// Get is a variable reference.
type Get struct {
	Name string
}

// Binary applies Op to Left and Right.
type Binary struct {
	Op    Op
	Left  Index
	Right Index
}

// Lambda is a function definition. It becomes a Function when evaluated.
type Lambda struct {
	Params []string
	Body   Index
}

// List is an array literal.
type List struct {
	Items []Index
}

func (*Call) node()   {}
func (*Block) node()  {}
func (*If) node()     {}
func (*While) node()  {}
func (*Let) node()    {}
func (*Get) node()    {}
func (*Binary) node() {}
func (*Lambda) node() {}
func (*List) node()   {}

func (Num) node()       {}
func (Str) node()       {}
func (*Array) node()    {}
func (*Function) node() {}
func (*Native) node()   {}
func (*Unit) node()     {}

// A compiler-checked list of interfaces these types satisfy. Never called.
func implements() { //nolint:deadcode,unused
	for _, n := range []Node{
		&Call{}, &Block{}, &If{}, &While{}, &Let{}, &Get{},
		&Binary{}, &Lambda{}, &List{},
	} {
		_ = n
	}

	for _, v := range []Value{
		Num(0), Str(""), &Array{}, &Function{}, &Native{}, Nil,
	} {
		_ = v
	}
}
