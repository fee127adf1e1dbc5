package engine

import (
	"testing"

	"github.com/michaelmacinnis/fomo/pkg/ast"
)

const (
	counter = `{
		let x = 0
		while x<1000
			x = x+1
		x
	}`

	deep = `{
		let x = 0
		while x<1000 {
			{
				{
					x = x+1
				}
			}
		}
		x
	}`

	fib = `{let fib = (e)=> if e<2 e else fib(e-1)+fib(e-2)
		fib(20)}`
)

func evaluate(b *testing.B, e *T, code string) ast.Value {
	b.Helper()

	e.Insert(code)

	i, err := e.ParseNext()
	if err != nil {
		b.Fatal(err)
	}

	return e.Evaluate(i)
}

func BenchmarkCounter(b *testing.B) {
	for n := 0; n < b.N; n++ {
		evaluate(b, New("bench"), counter)
	}
}

func BenchmarkCounterDeep(b *testing.B) {
	for n := 0; n < b.N; n++ {
		evaluate(b, New("bench"), deep)
	}
}

func BenchmarkCounterParse(b *testing.B) {
	for n := 0; n < b.N; n++ {
		e := New("bench")
		e.Insert(deep)

		if _, err := e.ParseNext(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFib20(b *testing.B) {
	for n := 0; n < b.N; n++ {
		evaluate(b, New("bench"), fib)
	}
}

func BenchmarkMapReduce(b *testing.B) {
	ones := make([]ast.Value, 1000)
	for k := range ones {
		ones[k] = ast.Num(1)
	}

	arr := ast.NewArray(ones...)

	for n := 0; n < b.N; n++ {
		e := New("bench")
		e.Set("arr", arr)

		if v := evaluate(b, e, "arr((e)=>e*2) | (a,b)=>a+b"); v != ast.Num(2000) {
			b.Fatalf("expected 2000; got %s", ast.Literal(v))
		}
	}
}
