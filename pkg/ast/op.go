// Released under an MIT license. See LICENSE.

package ast

// Op is a binary operator.
type Op int

// Binary operators.
const (
	Add Op = iota
	Sub
	Mul
	Div
	Mod
	And
	Or
	Assign
	Equals
	NotEquals
	Less
	Greater
	LessEquals
	GreaterEquals
	Concat
)

//nolint:gochecknoglobals
var operators = map[string]Op{
	"+":  Add,
	"-":  Sub,
	"*":  Mul,
	"/":  Div,
	"%":  Mod,
	"&":  And,
	"|":  Or,
	"=":  Assign,
	"==": Equals,
	"!=": NotEquals,
	"<":  Less,
	">":  Greater,
	"<=": LessEquals,
	">=": GreaterEquals,
	"++": Concat,
}

// Operator returns the Op spelled s.
func Operator(s string) (Op, bool) {
	op, ok := operators[s]

	return op, ok
}

// Multiplicative returns true for the operators that bind tighter than the rest.
func (op Op) Multiplicative() bool {
	return op == Mul || op == Div
}

// String returns the operator's spelling.
func (op Op) String() string {
	for s, o := range operators {
		if o == op {
			return s
		}
	}

	return "?"
}
