package model

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	// Move the cursor home, then erase the screen.
	ansiClear = "\x1b[H\x1b[2J"
)

// Renderer draws one generation. Implementations must not retain the grid
// past the Display call; the simulator replaces it on the next step.
type Renderer interface {
	Clear()
	Display(g *Grid)
}

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out io.Writer
}

func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout}
}

// Display renders the grid to the terminal, one write per frame
func (r *TerminalRenderer) Display(g *Grid) {
	var b strings.Builder
	b.Grow(g.height * (g.width*len(gridPosBlock) + 1))
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				b.WriteString(gridPosBlock)
			} else {
				b.WriteString(gridPosEmpty)
			}
		}
		b.WriteByte('\n')
	}
	fmt.Fprint(r.Out, b.String())
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	fmt.Fprint(r.Out, ansiClear)
}
