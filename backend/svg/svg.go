// Package svg renders frames as standalone SVG documents.
package svg

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"

	"github.com/gekko3d/shapeviz/geom"
	"github.com/gekko3d/shapeviz/scene"
)

// Renderer keeps the last rendered document in memory.
type Renderer struct {
	mu     sync.Mutex
	width  float64
	height float64
	// Transparent skips the background rect.
	Transparent bool

	doc []byte
}

func NewRenderer(width, height float64) *Renderer {
	return &Renderer{width: width, height: height}
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

func (r *Renderer) Render(cmd scene.RenderCommand) error {
	w, h := r.Size()
	strokes, dots := cmd.Project(geom.Screen{Width: w, Height: h})

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`,
		num(w), num(h), num(w), num(h))
	buf.WriteByte('\n')

	if !r.Transparent && cmd.Scene != nil {
		fmt.Fprintf(&buf, `<rect width="100%%" height="100%%" fill="%s"/>`, cmd.Scene.Background.CSS())
		buf.WriteByte('\n')
	}

	if len(dots) > 0 {
		fmt.Fprintf(&buf, `<g fill="%s">`, dots[0].Color.CSS())
		for _, d := range dots {
			fmt.Fprintf(&buf, `<rect x="%s" y="%s" width="1" height="1"/>`, num(d.P.X()), num(d.P.Y()))
		}
		buf.WriteString("</g>\n")
	}

	if len(strokes) > 0 {
		writePath(&buf, strokes)
	}

	buf.WriteString("</svg>\n")

	r.mu.Lock()
	r.doc = buf.Bytes()
	r.mu.Unlock()
	return nil
}

// Strokes share the shape color, so the whole shape becomes one path.
func writePath(buf *bytes.Buffer, strokes []scene.Stroke) {
	fmt.Fprintf(buf, `<path fill="none" stroke="%s" stroke-width="1" d="`, strokes[0].Color.CSS())
	for i, s := range strokes {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(buf, "M%s %sL%s %s", num(s.A.X()), num(s.A.Y()), num(s.B.X()), num(s.B.Y()))
	}
	buf.WriteString(`"/>`)
	buf.WriteByte('\n')
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Bytes returns a copy of the last document, or nil before the first Render.
func (r *Renderer) Bytes() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.doc == nil {
		return nil
	}
	return bytes.Clone(r.doc)
}

func (r *Renderer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.Bytes())
	return int64(n), err
}

// Save writes the last document to path.
func (r *Renderer) Save(path string) error {
	doc := r.Bytes()
	if doc == nil {
		return fmt.Errorf("save %s: nothing rendered yet", path)
	}
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
