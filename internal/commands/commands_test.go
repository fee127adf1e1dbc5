package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/michaelmacinnis/fomo/pkg/ast"
	"github.com/michaelmacinnis/fomo/pkg/engine"
)

type harness struct {
	*testing.T

	engine *engine.T
	output *strings.Builder
}

func setup(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		T:      t,
		engine: engine.New(t.Name()),
		output: &strings.Builder{},
	}

	Register(h.engine, h.output)

	return h
}

func (h *harness) check(code, expected string) {
	h.Helper()

	v, err := h.engine.Run(code)
	if err != nil {
		h.Fatalf("%q: unexpected error: %v", code, err)
	}

	if actual := ast.Literal(v); actual != expected {
		h.Fatalf("%q: expected %s; got %s", code, expected, actual)
	}
}

func TestPrint(t *testing.T) {
	h := setup(t)

	h.check(`print("a", 1, [2])`, "()")
	h.check(`print()`, "()")
	h.check(`print(x, "b")`, "()")

	if actual := h.output.String(); actual != "a 1 [2]\n\nb\n" {
		t.Fatalf("unexpected output %q", actual)
	}
}

func TestNumbers(t *testing.T) {
	h := setup(t)

	h.check("floor(2.7)", "2")
	h.check("floor(-2.5)", "-3")
	h.check(`floor("x")`, "()")
	h.check("sqrt(16)", "4")
	h.check(`num(" 42 ")`, "42")
	h.check("num(1.5)", "1.5")
	h.check(`num("forty-two")`, "()")
	h.check("range(4)", "[0, 1, 2, 3]")
	h.check("range(0)", "[]")
	h.check("range(-1)", "[]")
	h.check("range(2.5)", "[0, 1]")
	h.check("range(1/0)", "()")
	h.check("range(1e15)", "()")
	h.check("range(-1/0)", "[]")
	h.check("range(0/0)", "[]")
	h.check("range(3) | (a,b)=>a+b", "3")
}

func TestStrings(t *testing.T) {
	h := setup(t)

	h.check("str(1.25)", `$'1.25'`)
	h.check(`str([1, "a"])`, `$'[1, $\'a\']'`)
	h.check(`upper("abc")`, `$'ABC'`)
	h.check(`lower("ABC")`, `$'abc'`)
	h.check(`split(",", "a,b,c")`, `[$'a', $'b', $'c']`)
	h.check(`join("-", [1, "b", 3])`, `$'1-b-3'`)
	h.check(`join("-", 3)`, "()")
}

func TestMatch(t *testing.T) {
	h := setup(t)

	h.check(`match("*.go", "main.go")`, "1")
	h.check(`match("*.go", "main.rs")`, "0")
	h.check(`match("f?o", "foo")`, "1")
	h.check(`match(1, "x")`, "()")
}

func TestGlob(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"b.txt", "a.txt", "c.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o600); err != nil {
			t.Fatal(err)
		}
	}

	h := setup(t)

	h.check(`glob("`+filepath.Join(dir, "*.txt")+`")((p) => split("/", p)(-1))`, "[$'a.txt', $'b.txt']")
	h.check(`glob("`+filepath.Join(dir, "*.go")+`")`, "[]")
	h.check("glob(1)", "()")
}

func TestEach(t *testing.T) {
	h := setup(t)

	// The function is re-entered for every element.
	h.check(`each(["x", "y"], (e, i) => print(i, e))`, "()")

	if actual := h.output.String(); actual != "0 x\n1 y\n" {
		t.Fatalf("unexpected output %q", actual)
	}

	h.check("each(1, print)", "()")
	h.check("each([1], 2)", "()")
}

func TestDebug(t *testing.T) {
	h := setup(t)

	h.check("debug(5) + 1", "6")
}
