/*
 * render.go, part of protview.
 *
 * Copyright 2024 The protview authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */


//Package render draws scenes to images with gonum/plot. A Canvas is a
//scene.Graphics backend: it keeps the shapes allocated by the scene
//builder and draws whatever is alive when asked for a frame.
package render

import (
	"bytes"
	"image/color"
	"io"
	"math"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/rmera/protview/scene"
)

// DefaultBackground is the color behind the structure.
var DefaultBackground = color.RGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xff}

// Canvas is a drawing backend that renders to image files.
type Canvas struct {
	*scene.MemGraphics
	Width, Height vg.Length
	Background    color.Color
	Title         string

	mu     sync.Mutex
	frame  []byte //last frame drawn by Draw, PNG.
	frames int
}

// NewCanvas returns an empty canvas of the given size.
func NewCanvas(width, height vg.Length) *Canvas {
	return &Canvas{
		MemGraphics: scene.NewMemGraphics(),
		Width:       width,
		Height:      height,
		Background:  DefaultBackground,
	}
}

// Aspect returns the width/height ratio of the canvas.
func (C *Canvas) Aspect() float64 {
	return float64(C.Width / C.Height)
}

type projected struct {
	shape scene.Shape
	ndc   r3.Vec
	depth float64
}

// Plot returns a plot with the live shapes seen through cam. Atoms are
// drawn far to near, over the bonds.
func (C *Canvas) Plot(cam *scene.Camera) (*plot.Plot, error) {
	aspect := C.Aspect()
	if aspect <= 0 || math.IsNaN(aspect) {
		return nil, errors.Errorf("render: invalid canvas size %vx%v", C.Width, C.Height)
	}
	p := plot.New()
	p.HideAxes()
	p.BackgroundColor = C.Background
	p.Title.Text = C.Title
	p.Title.TextStyle.Color = color.White
	p.X.Min, p.X.Max = -1, 1
	p.Y.Min, p.Y.Max = -1, 1
	forward := r3.Unit(r3.Sub(cam.Target, cam.Position))
	t := 1 / math.Tan(cam.FOV*math.Pi/360)
	var atoms []projected
	for _, s := range C.Shapes() {
		switch s.Kind {
		case scene.SegmentShape:
			a, oka := cam.Project(s.From, aspect)
			b, okb := cam.Project(s.To, aspect)
			if !oka || !okb {
				continue
			}
			l, err := plotter.NewLine(plotter.XYs{{X: a.X, Y: a.Y}, {X: b.X, Y: b.Y}})
			if err != nil {
				return nil, errors.Wrap(err, "render: bond")
			}
			l.LineStyle.Color = s.Color.RGBA()
			l.LineStyle.Width = vg.Points(1.5)
			p.Add(l)
		case scene.SphereShape:
			ndc, ok := cam.Project(s.From, aspect)
			if !ok {
				continue
			}
			atoms = append(atoms, projected{s, ndc, r3.Dot(r3.Sub(s.From, cam.Position), forward)})
		}
	}
	if len(atoms) == 0 {
		return p, nil
	}
	sort.SliceStable(atoms, func(i, j int) bool { return atoms[i].depth > atoms[j].depth })
	xys := make(plotter.XYs, len(atoms))
	for i, a := range atoms {
		xys[i].X, xys[i].Y = a.ndc.X, a.ndc.Y
	}
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, errors.Wrap(err, "render: atoms")
	}
	half := C.Height / 2
	sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		a := atoms[i]
		//apparent radius, in NDC units of height
		r := a.shape.Radius * t / a.depth
		return draw.GlyphStyle{
			Color:  a.shape.Color.RGBA(),
			Radius: vg.Length(r) * half,
			Shape:  draw.CircleGlyph{},
		}
	}
	p.Add(sc)
	return p, nil
}

// WriteTo draws the live shapes seen through cam to w, in the given image
// format ("png", "svg", "pdf", "jpg"...).
func (C *Canvas) WriteTo(w io.Writer, cam *scene.Camera, format string) error {
	p, err := C.Plot(cam)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(C.Width, C.Height, format)
	if err != nil {
		return errors.Wrap(err, "render")
	}
	if _, err := wt.WriteTo(w); err != nil {
		return errors.Wrap(err, "render: writing image")
	}
	return nil
}

// Save draws the live shapes seen through cam to the file name. The
// format is taken from the extension.
func (C *Canvas) Save(name string, cam *scene.Camera) error {
	p, err := C.Plot(cam)
	if err != nil {
		return err
	}
	if err := p.Save(C.Width, C.Height, name); err != nil {
		return errors.Wrapf(err, "render: saving %s", filepath.Base(name))
	}
	return nil
}

// Format returns the image format for the file name, "png" by default.
func Format(name string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	switch ext {
	case "png", "svg", "pdf", "jpg", "jpeg", "eps", "tif", "tiff":
		return ext
	}
	return "png"
}

// Draw renders a PNG frame and keeps it as the last frame.
func (C *Canvas) Draw(cam *scene.Camera) error {
	var buf bytes.Buffer
	if err := C.WriteTo(&buf, cam, "png"); err != nil {
		return err
	}
	C.mu.Lock()
	C.frame = buf.Bytes()
	C.frames++
	C.mu.Unlock()
	return nil
}

// Frame returns the last frame drawn, and how many frames have been drawn.
func (C *Canvas) Frame() ([]byte, int) {
	C.mu.Lock()
	defer C.mu.Unlock()
	return C.frame, C.frames
}
