// Released under an MIT license. See LICENSE.

package ast

import (
	"math"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/adapted"
)

// Value is a terminal node: the result of evaluating any node.
type Value interface {
	Node
	value()
}

// Num is a number. All fomo numbers are float64.
type Num float64

// Str is a string.
type Str string

// Array is an ordered sequence of values. Arrays are never modified in
// place; operations that change an array return a new one.
type Array struct {
	Items []Value
}

// Function is a materialized closure.
type Function struct {
	Params []string
	Body   Index
}

// Callback is the signature of host functions callable from fomo.
// Arguments not supplied by the caller are Nil.
type Callback func(a, b, c, d Value) Value

// Native wraps a host callback. Copies of a Native share the callback.
type Native struct {
	Name string
	Fn   Callback
}

// Unit is the absence of a value.
type Unit struct{}

// Nil is the shared Unit value.
var Nil = &Unit{} //nolint:gochecknoglobals

func (Num) value()       {}
func (Str) value()       {}
func (*Array) value()    {}
func (*Function) value() {}
func (*Native) value()   {}
func (*Unit) value()     {}

// NewArray creates an array holding vs.
func NewArray(vs ...Value) *Array {
	if vs == nil {
		vs = []Value{}
	}

	return &Array{Items: vs}
}

// NewNative wraps the callback fn as a Native called name.
func NewNative(name string, fn Callback) *Native {
	return &Native{Name: name, Fn: fn}
}

// IsCallable returns true if v can be applied to arguments.
func IsCallable(v Value) bool {
	switch v.(type) {
	case *Function, *Native:
		return true
	}

	return false
}

// IsUnit returns true if v is the unit value.
func IsUnit(v Value) bool {
	_, ok := v.(*Unit)

	return ok || v == nil
}

// Equal compares numbers with numbers and strings with strings.
// The second result is false for any other combination.
func Equal(a, b Value) (equal bool, ok bool) {
	switch a := a.(type) {
	case Num:
		if b, ok := b.(Num); ok {
			return a == b, true
		}
	case Str:
		if b, ok := b.(Str); ok {
			return a == b, true
		}
	}

	return false, false
}

// Truthy returns the truth value of v. Non-zero numbers, non-empty strings
// and non-empty arrays are true. Everything else is false.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case Num:
		return v != 0
	case Str:
		return v != ""
	case *Array:
		return len(v.Items) > 0
	}

	return false
}

// Bool converts b to the numbers 1 or 0.
func Bool(b bool) Num {
	if b {
		return 1
	}

	return 0
}

// String returns the text used when v is concatenated with a string.
func String(v Value) string {
	var b strings.Builder

	write(&b, v, false)

	return b.String()
}

// Literal returns the representation of v used when displaying results.
// Unlike String, strings are quoted and escaped so the result is always
// a single line.
func Literal(v Value) string {
	var b strings.Builder

	write(&b, v, true)

	return b.String()
}

func write(b *strings.Builder, v Value, quote bool) {
	switch v := v.(type) {
	case Num:
		b.WriteString(number(float64(v)))
	case Str:
		if quote {
			b.WriteString(adapted.CanonicalString(string(v)))
		} else {
			b.WriteString(string(v))
		}
	case *Array:
		b.WriteByte('[')
		for i, item := range v.Items {
			if i > 0 {
				b.WriteString(", ")
			}
			write(b, item, true)
		}
		b.WriteByte(']')
	case *Function:
		b.WriteByte('(')
		b.WriteString(strings.Join(v.Params, ", "))
		b.WriteString(") => ...")
	case *Native:
		b.WriteString("native ")
		b.WriteString(v.Name)
	default:
		b.WriteString("()")
	}
}

func number(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "NaN"
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}
