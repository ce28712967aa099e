package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/logrusorgru/aurora"
)

// String serializes the grid in its bordered ascii form: '+' corners, '-'
// top and bottom edges, '|' side edges, '#' for alive and ' ' for dead.
// A 0x0 grid renders as "++\n++\n".
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 3) * (g.height + 2))

	edge := "+" + strings.Repeat("-", g.width) + "+\n"
	b.WriteString(edge)
	for y := 0; y < g.height; y++ {
		b.WriteByte('|')
		for x := 0; x < g.width; x++ {
			b.WriteByte(g.cells[g.index(x, y)].Rune())
		}
		b.WriteString("|\n")
	}
	b.WriteString(edge)
	return b.String()
}

// WriteTo writes the bordered ascii form to w.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, g.String())
	return int64(n), err
}

// TerminalRenderer implements basic terminal rendering of a grid, with the
// same bordered layout as Grid.String but alive cells highlighted.
type TerminalRenderer struct {
	// Color disables aurora highlighting when false, for dumb terminals.
	Color bool
}

// Display renders the grid to stdout.
func (r *TerminalRenderer) Display(g *Grid) {
	if !r.Color {
		fmt.Print(g.String())
		return
	}

	edge := "+" + strings.Repeat("-", g.GetWidth()) + "+"
	fmt.Println(edge)
	for y := 0; y < g.GetHeight(); y++ {
		var b strings.Builder
		b.WriteByte('|')
		for x := 0; x < g.GetWidth(); x++ {
			if c, _ := g.Get(x, y); c == Alive {
				b.WriteString(aurora.Green("#").String())
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('|')
		fmt.Println(b.String())
	}
	fmt.Println(edge)
}

// Clear clears the terminal screen.
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command("clear")
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}
