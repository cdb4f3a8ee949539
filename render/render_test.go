/*
 * render_test.go, part of protview.
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

package render

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/plot/vg"

	"github.com/rmera/protview"
	"github.com/rmera/protview/scene"
)

func miniCanvas(Te *testing.T) (*Canvas, *scene.Scene, *scene.Camera) {
	data, err := os.ReadFile("../test/mini.pdb")
	if err != nil {
		Te.Fatal(err)
	}
	c := NewCanvas(4*vg.Inch, 3*vg.Inch)
	b, err := scene.NewBuilder(nil, c)
	if err != nil {
		Te.Fatal(err)
	}
	sc, err := b.Build(context.Background(), protview.Parse(string(data)), scene.AllVisible(), nil)
	if err != nil {
		Te.Fatal(err)
	}
	return c, sc, scene.NewCamera(sc.MaxDistance)
}

func TestDraw(Te *testing.T) {
	c, sc, cam := miniCanvas(Te)
	if c.Live() != sc.Len()+len(sc.Bonds) {
		Te.Errorf("The canvas should hold every primitive, %d live", c.Live())
	}
	if err := c.Draw(cam); err != nil {
		Te.Fatal(err)
	}
	frame, n := c.Frame()
	if n != 1 || !bytes.HasPrefix(frame, []byte("\x89PNG")) {
		Te.Errorf("Expected one PNG frame, got %d frames", n)
	}
	var svg bytes.Buffer
	if err := c.WriteTo(&svg, cam, "svg"); err != nil {
		Te.Fatal(err)
	}
	if !bytes.Contains(svg.Bytes(), []byte("<svg")) {
		Te.Error("Expected an SVG image")
	}
	name := filepath.Join(Te.TempDir(), "mini.png")
	if err := c.Save(name, cam); err != nil {
		Te.Fatal(err)
	}
	if info, err := os.Stat(name); err != nil || info.Size() == 0 {
		Te.Error("The image file was not written")
	}
	sc.Dispose()
	if c.Live() != 0 {
		Te.Error("Disposing the scene should empty the canvas")
	}
	if err := c.Draw(cam); err != nil {
		Te.Errorf("An empty canvas should still draw: %v", err)
	}
}

func TestFormat(Te *testing.T) {
	cases := map[string]string{"a.PNG": "png", "b.svg": "svg", "c": "png", "d.txt": "png", "e.pdf": "pdf"}
	for n, want := range cases {
		if got := Format(n); got != want {
			Te.Errorf("Format(%s) = %s, want %s", n, got, want)
		}
	}
}
