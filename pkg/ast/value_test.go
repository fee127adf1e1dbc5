package ast

import (
	"math"
	"strings"
	"testing"
)

func TestTruthy(t *testing.T) {
	for _, tc := range []struct {
		v    Value
		want bool
	}{
		{Num(0), false},
		{Num(-2), true},
		{Num(math.NaN()), true},
		{Str(""), false},
		{Str("x"), true},
		{NewArray(), false},
		{NewArray(Nil), true},
		{&Function{}, false},
		{NewNative("f", nil), false},
		{Nil, false},
	} {
		if got := Truthy(tc.v); got != tc.want {
			t.Fatalf("Truthy(%s) = %v, expected %v", Literal(tc.v), got, tc.want)
		}
	}
}

func TestString(t *testing.T) {
	for _, tc := range []struct {
		v    Value
		want string
	}{
		{Num(1), "1"},
		{Num(0.5), "0.5"},
		{Num(-3.25), "-3.25"},
		{Num(1e21), "1000000000000000000000"},
		{Num(math.Inf(1)), "inf"},
		{Str("hi"), "hi"},
		{NewArray(Num(1), Str("a")), `[1, $'a']`},
		{&Function{Params: []string{"a", "b"}}, "(a, b) => ..."},
		{NewNative("print", nil), "native print"},
		{Nil, "()"},
	} {
		if got := String(tc.v); got != tc.want {
			t.Fatalf("String() = %q, expected %q", got, tc.want)
		}
	}
}

func TestLiteralQuotesStrings(t *testing.T) {
	for _, tc := range []struct {
		v    Value
		want string
	}{
		{Str("hi"), `$'hi'`},
		{Str("a\nb\"c"), `$'a\nb"c'`},
		{Str("it's\t"), `$'it\'s\t'`},
		{NewArray(Str("x\ny")), `[$'x\ny']`},
	} {
		got := Literal(tc.v)
		if got != tc.want {
			t.Fatalf("Literal() = %s, expected %s", got, tc.want)
		}

		if strings.Contains(got, "\n") {
			t.Fatalf("Literal() = %q spans more than one line", got)
		}
	}

	if got := String(Str("a\nb")); got != "a\nb" {
		t.Fatalf("String() = %q, expected the text unchanged", got)
	}
}

func TestEqual(t *testing.T) {
	if eq, ok := Equal(Num(2), Num(2)); !eq || !ok {
		t.Fatal("expected 2 == 2")
	}

	if eq, ok := Equal(Str("a"), Str("b")); eq || !ok {
		t.Fatal("expected \"a\" != \"b\"")
	}

	if _, ok := Equal(Num(1), Str("1")); ok {
		t.Fatal("numbers and strings should not be comparable")
	}
}

func TestArenaIndicesAreStable(t *testing.T) {
	a := NewArena()

	first := a.Push(Num(1))
	for i := 0; i < 1000; i++ {
		a.Push(&Get{Name: "x"})
	}

	if n, ok := a.Node(first).(Num); !ok || n != 1 {
		t.Fatalf("expected node %d to still be 1, got %v", first, a.Node(first))
	}

	if a.Len() != 1001 {
		t.Fatalf("expected 1001 nodes, got %d", a.Len())
	}
}

func TestOperatorSpelling(t *testing.T) {
	for _, s := range []string{"+", "-", "*", "/", "%", "&", "|", "=", "==", "!=", "<", ">", "<=", ">=", "++"} {
		op, ok := Operator(s)
		if !ok {
			t.Fatalf("%q is not an operator", s)
		}

		if op.String() != s {
			t.Fatalf("expected %q, got %q", s, op.String())
		}
	}
}
