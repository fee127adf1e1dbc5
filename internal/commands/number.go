// Released under an MIT license. See LICENSE.

package commands

import (
	"math"
	"strconv"
	"strings"

	"fortio.org/log"

	"github.com/michaelmacinnis/fomo/pkg/ast"
)

func floor(v, _, _, _ ast.Value) ast.Value {
	if n, ok := v.(ast.Num); ok {
		return ast.Num(math.Floor(float64(n)))
	}

	return ast.Nil
}

func number(v, _, _, _ ast.Value) ast.Value {
	switch v := v.(type) {
	case ast.Num:
		return v
	case ast.Str:
		f, err := strconv.ParseFloat(strings.TrimSpace(string(v)), 64)
		if err == nil {
			return ast.Num(f)
		}
	}

	return ast.Nil
}

// Largest array range will create.
const maxRange = 1 << 24

// span returns the array [0, 1, ..., n-1].
func span(v, _, _, _ ast.Value) ast.Value {
	n, ok := v.(ast.Num)
	if !ok || math.IsNaN(float64(n)) || n < 0 {
		return ast.NewArray()
	}

	if n > maxRange {
		log.LogVf("range %s is too large", ast.Literal(n))

		return ast.Nil
	}

	items := make([]ast.Value, int(n))
	for k := range items {
		items[k] = ast.Num(k)
	}

	return ast.NewArray(items...)
}

func sqrt(v, _, _, _ ast.Value) ast.Value {
	if n, ok := v.(ast.Num); ok {
		return ast.Num(math.Sqrt(float64(n)))
	}

	return ast.Nil
}
