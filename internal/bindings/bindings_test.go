package bindings

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/michaelmacinnis/fomo/pkg/ast"
	"github.com/michaelmacinnis/fomo/pkg/engine"
)

func load(t *testing.T, doc string) []T {
	t.Helper()

	bs, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return bs
}

func TestLoad(t *testing.T) {
	bs := load(t, `
limit: 10
ratio: 0.5
greeting: hello
quoted: "42"
on: true
off: false
nothing: ~
primes: [2, 3, 5]
nested:
  - [1, "a"]
  - []
day: 2024-01-02
`)

	expected := []struct {
		name    string
		literal string
	}{
		{"limit", "10"},
		{"ratio", "0.5"},
		{"greeting", `$'hello'`},
		{"quoted", `$'42'`},
		{"on", "1"},
		{"off", "0"},
		{"nothing", "()"},
		{"primes", "[2, 3, 5]"},
		{"nested", `[[1, $'a'], []]`},
		{"day", `$'2024-01-02'`},
	}

	if len(bs) != len(expected) {
		t.Fatalf("expected %d bindings; got %d", len(expected), len(bs))
	}

	for k, e := range expected {
		if bs[k].Name != e.name {
			t.Fatalf("binding %d: expected %s; got %s", k, e.name, bs[k].Name)
		}

		if actual := ast.Literal(bs[k].Value); actual != e.literal {
			t.Fatalf("%s: expected %s; got %s", e.name, e.literal, actual)
		}
	}
}

func TestEmpty(t *testing.T) {
	if bs := load(t, ""); len(bs) != 0 {
		t.Fatalf("expected no bindings; got %d", len(bs))
	}
}

func TestRejected(t *testing.T) {
	for _, doc := range []string{
		"- 1\n- 2\n",
		"just a string\n",
		"outer:\n  inner: 1\n",
		"list: [{a: 1}]\n",
	} {
		_, err := Load(strings.NewReader(doc))
		if !errors.Is(err, ErrNotMapping) {
			t.Fatalf("%q: expected %v; got %v", doc, ErrNotMapping, err)
		}
	}

	_, err := Load(strings.NewReader("outer:\n  inner: 1\n"))
	if err == nil || !strings.HasPrefix(err.Error(), "outer:") {
		t.Fatalf("expected the error to name the binding; got %v", err)
	}

	if _, err = Load(strings.NewReader("a: [")); err == nil {
		t.Fatal("expected a syntax error")
	}
}

func TestApply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bindings.yaml")

	err := os.WriteFile(path, []byte("x: 3\nitems: [1, 2, 3]\n"), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	bs, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	e := engine.New("test")
	Apply(e, bs)

	v, err := e.Run("items((n) => n * x) | (a, b) => a + b")
	if err != nil {
		t.Fatal(err)
	}

	if ast.Literal(v) != "18" {
		t.Fatalf("expected 18; got %s", ast.Literal(v))
	}

	if _, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
