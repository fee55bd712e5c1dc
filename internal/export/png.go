// Package export renders board snapshots to PNG images.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/tictactoe"
)

var (
	background = color.White
	gridColor  = color.RGBA{0x60, 0x60, 0x60, 0xff}
	xColor     = color.RGBA{0x1e, 0x88, 0xe5, 0xff}
	oColor     = color.RGBA{0xd8, 0x1b, 0x60, 0xff}
	winColor   = color.RGBA{0x43, 0xa0, 0x47, 0xff}
	textColor  = color.Black
)

// Geometry describes where the board sits inside the image.
type Geometry struct {
	Margin  float64 // Space around the board
	Cell    float64 // Side of one cell
	Caption float64 // Height of the caption strip under the board
	Width   int
	Height  int
}

// GeometryFor computes the image layout for the export settings.
func GeometryFor(s config.ExportSettings) Geometry {
	cell := float64(s.CellSize)
	margin := cell / 4
	caption := s.FontSize * 2
	side := cell*tictactoe.BoardSize + margin*2
	return Geometry{
		Margin:  margin,
		Cell:    cell,
		Caption: caption,
		Width:   int(side),
		Height:  int(side + caption),
	}
}

// CellCenter returns the pixel centre of cell i.
func (g Geometry) CellCenter(i int) (float64, float64) {
	row, col := tictactoe.Coords(i)
	return g.Margin + (float64(col)+0.5)*g.Cell, g.Margin + (float64(row)+0.5)*g.Cell
}

// Render draws board with status as a caption.
func Render(board tictactoe.Board, status string, s config.ExportSettings) (image.Image, error) {
	dc, err := draw(board, status, s)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

func draw(board tictactoe.Board, status string, s config.ExportSettings) (*gg.Context, error) {
	geo := GeometryFor(s)
	dc := gg.NewContext(geo.Width, geo.Height)
	dc.SetColor(background)
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("export: parse font: %w", err)
	}
	dc.SetFontFace(truetype.NewFace(ttfFont, &truetype.Options{
		Size:    s.FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	}))

	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineWidth(s.LineWidth)
	drawGrid(dc, geo)

	line, won := tictactoe.WinningLine(board)
	for i, m := range board {
		drawMark(dc, geo, i, m, s.LineWidth)
	}
	if won {
		x1, y1 := geo.CellCenter(line[0])
		x2, y2 := geo.CellCenter(line[2])
		dc.SetColor(winColor)
		dc.SetLineWidth(s.LineWidth * 1.5)
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
	}

	dc.SetColor(textColor)
	boardBottom := geo.Margin*2 + geo.Cell*tictactoe.BoardSize
	dc.DrawStringAnchored(status, float64(geo.Width)/2, boardBottom+geo.Caption/2, 0.5, 0.5)

	return dc, nil
}

// WritePNG renders the board and encodes it to w.
func WritePNG(w io.Writer, board tictactoe.Board, status string, s config.ExportSettings) error {
	dc, err := draw(board, status, s)
	if err != nil {
		return err
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("export: encode png: %w", err)
	}
	return nil
}

// Save writes the board to a timestamped file in the export directory
// and returns the path written. Existing files are never overwritten.
func Save(board tictactoe.Board, status string, s config.ExportSettings, now time.Time) (string, error) {
	dir := config.ExpandPath(s.Dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("export: create dir: %w", err)
	}
	path := uniquePath(dir, FileName(now))
	if err := SavePNG(path, board, status, s); err != nil {
		return "", err
	}
	return path, nil
}

// SavePNG writes the board image to path.
func SavePNG(path string, board tictactoe.Board, status string, s config.ExportSettings) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := WritePNG(f, board, status, s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// FileName returns the export file name for a moment in time,
// precise to the millisecond.
func FileName(now time.Time) string {
	return fmt.Sprintf("tictactoe_%s_%03d.png",
		now.Format("20060102_150405"), now.Nanosecond()/int(time.Millisecond))
}

// uniquePath joins dir and name, adding a counter before the extension
// while the file already exists.
func uniquePath(dir, name string) string {
	path := filepath.Join(dir, name)
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for n := 1; ; n++ {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return path
		}
		path = filepath.Join(dir, fmt.Sprintf("%s_%d%s", base, n, ext))
	}
}

func drawGrid(dc *gg.Context, geo Geometry) {
	dc.SetColor(gridColor)
	end := geo.Margin + geo.Cell*tictactoe.BoardSize
	for k := 1; k < tictactoe.BoardSize; k++ {
		p := geo.Margin + float64(k)*geo.Cell
		dc.DrawLine(p, geo.Margin, p, end)
		dc.DrawLine(geo.Margin, p, end, p)
	}
	dc.Stroke()
}

func drawMark(dc *gg.Context, geo Geometry, i int, m tictactoe.Mark, lineWidth float64) {
	cx, cy := geo.CellCenter(i)
	r := geo.Cell*0.3 - lineWidth/2

	switch m {
	case tictactoe.X:
		dc.SetColor(xColor)
		dc.DrawLine(cx-r, cy-r, cx+r, cy+r)
		dc.DrawLine(cx-r, cy+r, cx+r, cy-r)
		dc.Stroke()
	case tictactoe.O:
		dc.SetColor(oColor)
		dc.DrawCircle(cx, cy, r)
		dc.Stroke()
	}
}
