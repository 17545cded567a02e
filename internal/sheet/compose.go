package sheet

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const lineWidth = 1

var backgroundFill = color.NRGBA{R: 16, G: 16, B: 16, A: 0xff}

type nativeRenderer struct{}

// Render composes the selected frames into a labeled grid and writes the
// encoded PNG in one shot, so a failed composition leaves no partial output.
func (nativeRenderer) Render(ctx context.Context, req Request) (string, error) {
	frames, err := Discover(req.Dir)
	if err != nil {
		return "", err
	}
	selected := Select(frames, req.Cols*req.Rows)

	images := make([]image.Image, len(selected))
	for i, frame := range selected {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		img, err := loadPNG(frame.Path)
		if err != nil {
			return "", fmt.Errorf("load frame %s: %w", frame.Name(), err)
		}
		images[i] = img
	}

	sheetImg := compose(selected, images, req)

	var buf bytes.Buffer
	if err := png.Encode(&buf, sheetImg); err != nil {
		return "", fmt.Errorf("encode sheet: %w", err)
	}
	outputPath := req.OutputPath()
	if err := os.WriteFile(outputPath, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write sheet: %w", err)
	}
	return outputPath, nil
}

// Layout captures the cell and sheet geometry derived from a selection.
type Layout struct {
	CellWidth   int
	CellHeight  int
	LabelHeight int
	SheetWidth  int
	SheetHeight int
}

// ComputeLayout derives grid geometry from the scaled frame dimensions. The
// uniform cell width is the configured maximum capped by the widest source
// frame; each frame scales proportionally to that width and the cell height
// is the tallest result.
func ComputeLayout(sizes []image.Point, cols, rows, maxWidth, labelSize int) Layout {
	widest := 0
	for _, size := range sizes {
		if size.X > widest {
			widest = size.X
		}
	}
	cellW := maxWidth
	if widest < cellW {
		cellW = widest
	}
	if cellW < 1 {
		cellW = 1
	}

	cellH := 1
	for _, size := range sizes {
		scaled := scaledSize(size, cellW)
		if scaled.Y > cellH {
			cellH = scaled.Y
		}
	}

	labelH := labelSize + 8
	return Layout{
		CellWidth:   cellW,
		CellHeight:  cellH,
		LabelHeight: labelH,
		SheetWidth:  cols*cellW + (cols+1)*lineWidth,
		SheetHeight: rows*(cellH+labelH) + (rows+1)*lineWidth,
	}
}

func scaledSize(size image.Point, cellW int) image.Point {
	if size.X <= 0 || size.Y <= 0 {
		return image.Pt(1, 1)
	}
	scale := float64(cellW) / float64(size.X)
	w := int(float64(size.X) * scale)
	h := int(float64(size.Y) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return image.Pt(w, h)
}

func compose(selected []Frame, images []image.Image, req Request) *image.RGBA {
	sizes := make([]image.Point, len(images))
	for i, img := range images {
		sizes[i] = img.Bounds().Size()
	}
	layout := ComputeLayout(sizes, req.Cols, req.Rows, req.MaxWidth, req.LabelSize)

	sheetImg := image.NewRGBA(image.Rect(0, 0, layout.SheetWidth, layout.SheetHeight))
	draw.Draw(sheetImg, sheetImg.Bounds(), image.NewUniform(backgroundFill), image.Point{}, draw.Src)

	face := loadFace(req.LabelSize)
	drawer := &font.Drawer{
		Dst:  sheetImg,
		Src:  image.NewUniform(color.White),
		Face: face,
	}
	ascent := face.Metrics().Ascent.Ceil()

	for idx, img := range images {
		row := idx / req.Cols
		col := idx % req.Cols

		cellX := col*layout.CellWidth + (col+1)*lineWidth
		cellY := row*(layout.CellHeight+layout.LabelHeight) + (row+1)*lineWidth

		scaled := scaleFrame(img, layout.CellWidth)
		bounds := scaled.Bounds()

		// Center the frame in its cell; frames of differing aspect ratio
		// leave background visible on two sides.
		x := cellX + (layout.CellWidth-bounds.Dx())/2
		y := cellY + (layout.CellHeight-bounds.Dy())/2
		draw.Draw(sheetImg, image.Rect(x, y, x+bounds.Dx(), y+bounds.Dy()), scaled, bounds.Min, draw.Over)

		label := selected[idx].Name()
		if req.FPS > 0 {
			label += fmt.Sprintf(" (%s)", elapsedLabel(selected[idx].Index, req.FPS))
		}
		drawer.Dot = fixed.P(cellX+2, cellY+layout.CellHeight+2+ascent)
		drawer.DrawString(label)
	}

	drawGridLines(sheetImg, layout, req)
	return sheetImg
}

func scaleFrame(img image.Image, cellW int) *image.RGBA {
	size := scaledSize(img.Bounds().Size(), cellW)
	if size == img.Bounds().Size() {
		flat := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
		draw.Draw(flat, flat.Bounds(), img, img.Bounds().Min, draw.Src)
		return flat
	}
	scaled := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return scaled
}

func drawGridLines(sheetImg *image.RGBA, layout Layout, req Request) {
	lineFill := image.NewUniform(req.LineColor)

	for col := 0; col <= req.Cols; col++ {
		x := col*layout.CellWidth + col*lineWidth
		rect := image.Rect(x, 0, x+lineWidth, layout.SheetHeight)
		draw.Draw(sheetImg, rect, lineFill, image.Point{}, draw.Src)
	}
	for row := 0; row <= req.Rows; row++ {
		y := row*(layout.CellHeight+layout.LabelHeight) + row*lineWidth
		rect := image.Rect(0, y, layout.SheetWidth, y+lineWidth)
		draw.Draw(sheetImg, rect, lineFill, image.Point{}, draw.Src)
	}
}

// elapsedLabel formats the wall-clock position of a frame given its index in
// the full listing and the capture rate.
func elapsedLabel(frameIndex, fps int) string {
	return fmt.Sprintf("%.2fs", float64(frameIndex)/float64(fps))
}

func loadPNG(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	img, err := png.Decode(file)
	if err != nil {
		return nil, err
	}
	return img, nil
}
