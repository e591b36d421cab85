// Package raster renders frames into RGBA images with golang.org/x/image/vector.
package raster

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"math"
	"os"
	"sync"

	"github.com/gekko3d/shapeviz/geom"
	"github.com/gekko3d/shapeviz/scene"
	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// DefaultLineWidth is the stroke width in pixels.
const DefaultLineWidth = 1.0

type Renderer struct {
	mu     sync.Mutex
	width  float64
	height float64

	LineWidth float64
	// Label is drawn in the top-left corner when non-empty.
	Label string

	img *image.RGBA
}

func NewRenderer(width, height float64) *Renderer {
	return &Renderer{width: width, height: height, LineWidth: DefaultLineWidth}
}

func (r *Renderer) SetSize(width, height float64) {
	r.mu.Lock()
	r.width, r.height = width, height
	r.mu.Unlock()
}

func (r *Renderer) Size() (float64, float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

func pixels(v float64) int {
	return max(int(math.Round(v)), 1)
}

func (r *Renderer) Render(cmd scene.RenderCommand) error {
	w, h := r.Size()
	pw, ph := pixels(w), pixels(h)
	strokes, dots := cmd.Project(geom.Screen{Width: float64(pw), Height: float64(ph)})

	img := image.NewRGBA(image.Rect(0, 0, pw, ph))
	if cmd.Scene != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(cmd.Scene.Background.RGBA()), image.Point{}, draw.Src)
	}

	for _, d := range dots {
		plot(img, d)
	}

	if len(strokes) > 0 {
		width := r.LineWidth
		if width <= 0 {
			width = DefaultLineWidth
		}
		z := vector.NewRasterizer(pw, ph)
		for _, s := range strokes {
			quad(z, s.A, s.B, width/2)
		}
		z.Draw(img, img.Bounds(), image.NewUniform(strokes[0].Color.RGBA()), image.Point{})
	}

	if r.Label != "" && cmd.Scene != nil && cmd.Scene.Shape() != nil {
		d := font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(cmd.Scene.Shape().Color().RGBA()),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(4, basicfont.Face7x13.Ascent+4),
		}
		d.DrawString(r.Label)
	}

	r.mu.Lock()
	r.img = img
	r.mu.Unlock()
	return nil
}

// plot sets the pixel containing d; dots off the image are skipped.
func plot(img *image.RGBA, d scene.Dot) {
	x, y := int(math.Floor(d.P.X())), int(math.Floor(d.P.Y()))
	if image.Pt(x, y).In(img.Rect) {
		img.SetRGBA(x, y, d.Color.RGBA())
	}
}

// quad adds a segment as a closed rectangle of half-width hw.
func quad(z *vector.Rasterizer, a, b mgl64.Vec2, hw float64) {
	d := b.Sub(a)
	if d.Len() < 1e-9 {
		d = mgl64.Vec2{1, 0}
	}
	d = d.Normalize()
	n := mgl64.Vec2{-d.Y(), d.X()}.Mul(hw)
	a, b = a.Sub(d.Mul(hw)), b.Add(d.Mul(hw))

	p0, p1, p2, p3 := a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)
	z.MoveTo(float32(p0.X()), float32(p0.Y()))
	z.LineTo(float32(p1.X()), float32(p1.Y()))
	z.LineTo(float32(p2.X()), float32(p2.Y()))
	z.LineTo(float32(p3.X()), float32(p3.Y()))
	z.ClosePath()
}

// Image returns the last rendered frame, or nil before the first Render.
func (r *Renderer) Image() *image.RGBA {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.img
}

// Save encodes the last frame as PNG.
func (r *Renderer) Save(path string) error {
	img := r.Image()
	if img == nil {
		return fmt.Errorf("save %s: nothing rendered yet", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
