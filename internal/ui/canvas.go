package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
)

// Canvas composes lipgloss-rendered blocks into a cell buffer so an overlay
// can be painted over the board without breaking the ANSI sequences beneath.
type Canvas struct {
	screen *cellbuf.Screen
	writer *cellbuf.ScreenWriter
	width  int
	height int
}

// NewCanvas returns a blank canvas; non-positive sizes are clamped to 1.
func NewCanvas(width, height int) *Canvas {
	width = max(width, 1)
	height = max(height, 1)
	screen := cellbuf.NewScreen(io.Discard, width, height, &cellbuf.ScreenOptions{
		ShowCursor: false,
		AltScreen:  false,
	})
	return &Canvas{
		screen: screen,
		writer: cellbuf.NewScreenWriter(screen),
		width:  width,
		height: height,
	}
}

// Fill paints every cell with bg.
func (c *Canvas) Fill(bg lipgloss.TerminalColor) {
	fill := lipgloss.NewStyle().
		Background(bg).
		Width(c.width).
		Height(c.height).
		Render("")
	c.DrawStringAt(0, 0, fill)
}

// DrawStringAt writes block with its top-left corner at x,y, cropping
// anything past the canvas edge.
func (c *Canvas) DrawStringAt(x, y int, block string) {
	lines := splitBlock(block)
	x, y = max(x, 0), max(y, 0)
	for i, line := range lines {
		row := y + i
		if row >= c.height {
			break
		}
		if line == "" {
			continue
		}
		c.writer.PrintCropAt(x, row, line, "")
	}
}

// DrawCentered places block in the middle of the rows between topMargin and
// the last bottomMargin rows, so header and footer stay visible.
func (c *Canvas) DrawCentered(block string, topMargin, bottomMargin int) {
	w, h := blockSize(block)
	x, y := centeredOffsets(c.width, c.height, w, h, topMargin, bottomMargin)
	c.DrawStringAt(x, y, block)
}

// DrawBottomRight anchors block to the bottom-right corner with padding.
func (c *Canvas) DrawBottomRight(block string, padding int) {
	w, h := blockSize(block)
	padding = max(padding, 0)
	c.DrawStringAt(c.width-w-padding, c.height-h-padding, block)
}

// Render flattens the canvas into a newline-delimited frame and releases it.
func (c *Canvas) Render() string {
	raw := cellbuf.Render(c.screen)
	_ = c.screen.Close()
	return strings.ReplaceAll(raw, "\r\n", "\n")
}

func splitBlock(block string) []string {
	if block == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(block, "\r\n", "\n"), "\n")
}

func blockSize(block string) (int, int) {
	lines := splitBlock(block)
	width := 0
	for _, line := range lines {
		width = max(width, lipgloss.Width(line))
	}
	return width, len(lines)
}

func centeredOffsets(containerW, containerH, contentW, contentH, topMargin, bottomMargin int) (int, int) {
	topMargin, bottomMargin = max(topMargin, 0), max(bottomMargin, 0)

	usable := max(containerH-topMargin-bottomMargin, contentH)
	y := topMargin + (usable-contentH)/2
	y = min(y, containerH-bottomMargin-contentH)
	y = max(y, topMargin)
	y = max(y, 0)

	x := max((containerW-contentW)/2, 0)
	return x, y
}

// composeOverlay paints overlay centered above base, keeping the first
// topMargin and last bottomMargin rows of base uncovered.
func composeOverlay(base, overlay string, width, height, topMargin, bottomMargin int) string {
	canvas := NewCanvas(width, height)
	canvas.DrawStringAt(0, 0, base)
	canvas.DrawCentered(overlay, topMargin, bottomMargin)
	return canvas.Render()
}
