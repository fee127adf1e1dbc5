package loc

import "testing"

func TestAt(t *testing.T) {
	code := []rune("let x = 1\n{\n  x\n}")

	for _, tc := range []struct {
		i    int
		want string
	}{
		{0, "test:1:1"},
		{4, "test:1:5"},
		{10, "test:2:1"},
		{14, "test:3:3"},
		{100, "test:4:2"},
	} {
		l := At("test", code, tc.i)
		if l.String() != tc.want {
			t.Fatalf("At(%d) = %s, expected %s", tc.i, l.String(), tc.want)
		}
	}
}
