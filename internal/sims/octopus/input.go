package octopus

import (
	"errors"
	"fmt"
	"strings"

	"octoflash/internal/core"
)

// puzzleInput is the starting energy map for the default run.
const puzzleInput = `8548335644
6576521782
1223677762
1284713113
6125654778
6435726842
5664175556
1445736556
2248473568
6451473526
`

var errEmptyInput = errors.New("octopus: empty input")

// Parse reads a block of single-digit rows into a grid. Blank lines and
// surrounding whitespace are ignored; every row must have the same width.
func Parse(s string) (*core.ByteGrid, error) {
	var rows []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if len(rows) == 0 {
		return nil, errEmptyInput
	}

	width := len(rows[0])
	g := core.NewByteGrid(width, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("octopus: row %d has width %d, want %d", y+1, len(row), width)
		}
		for x := 0; x < width; x++ {
			c := row[x]
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("octopus: row %d col %d: invalid energy level %q", y+1, x+1, c)
			}
			g.Set(x, y, c-'0')
		}
	}
	return g, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) *core.ByteGrid {
	g, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return g
}

// String renders the grid back into digit rows. Cells above 9 are printed as
// '*', which only happens mid-step.
func String(g *core.ByteGrid) string {
	var b strings.Builder
	b.Grow((g.W + 1) * g.H)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			v := g.At(x, y)
			if v > FlashThreshold {
				b.WriteByte('*')
				continue
			}
			b.WriteByte('0' + v)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
