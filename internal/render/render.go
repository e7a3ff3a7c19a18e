// Package render draws crossword grids as PNG images: an empty
// numbered grid for solving and a fully lettered solution.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/bodul/crossgen/internal/grid"
)

// Renderer draws grids at a fixed cell size.
type Renderer struct {
	CellSize int // pixels per cell, default 36
	Margin   int // pixels around the grid, default 10
}

func (r Renderer) cellSize() int {
	if r.CellSize <= 0 {
		return 36
	}
	return r.CellSize
}

func (r Renderer) margin() int {
	if r.Margin < 0 {
		return 0
	}
	if r.Margin == 0 {
		return 10
	}
	return r.Margin
}

// WriteGrid renders the puzzle grid (blocked and open cells with clue
// numbers, no letters) and writes it to path as PNG.
func (r Renderer) WriteGrid(path string, g *grid.Grid) error {
	return r.write(path, g, false)
}

// WriteSolution renders the fully lettered grid and writes it to path.
func (r Renderer) WriteSolution(path string, g *grid.Grid) error {
	return r.write(path, g, true)
}

func (r Renderer) write(path string, g *grid.Grid, letters bool) error {
	img := r.draw(g, letters)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

func (r Renderer) draw(g *grid.Grid, letters bool) *image.RGBA {
	cs, m := r.cellSize(), r.margin()
	side := g.Size*cs + 2*m
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	black := color.RGBA{A: 255}
	numbers := grid.Numbers(g)

	for row := 0; row < g.Size; row++ {
		for col := 0; col < g.Size; col++ {
			x0, y0 := m+col*cs, m+row*cs
			cell := image.Rect(x0, y0, x0+cs, y0+cs)
			if g.IsBlocked(row, col) {
				draw.Draw(img, cell, image.NewUniform(black), image.Point{}, draw.Src)
				continue
			}
			if n, ok := numbers[grid.Coord{Row: row, Col: col}]; ok {
				drawText(img, fmt.Sprintf("%d", n), x0+2, y0+11, black)
			}
			if letters {
				letter := string(g.At(row, col))
				// Center the glyph; Face7x13 advances 7px per rune.
				drawText(img, letter, x0+(cs-7)/2, y0+(cs+13)/2, black)
			}
		}
	}

	// Cell borders and outer frame.
	for i := 0; i <= g.Size; i++ {
		hline(img, m, m+i*cs, g.Size*cs, black)
		vline(img, m+i*cs, m, g.Size*cs, black)
	}
	return img
}

func drawText(img *image.RGBA, s string, x, y int, c color.Color) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func hline(img *image.RGBA, x, y, length int, c color.Color) {
	for i := 0; i <= length; i++ {
		img.Set(x+i, y, c)
	}
}

func vline(img *image.RGBA, x, y, length int, c color.Color) {
	for i := 0; i <= length; i++ {
		img.Set(x, y+i, c)
	}
}
