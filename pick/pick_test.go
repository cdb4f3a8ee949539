/*
 * pick_test.go, part of protview.
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

package pick

import (
	"bytes"
	"context"
	"log"
	"math"
	"os"
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/rmera/protview"
	"github.com/rmera/protview/scene"
)

func miniScene(Te *testing.T) (*scene.Scene, *scene.Camera) {
	data, err := os.ReadFile("../test/mini.pdb")
	if err != nil {
		Te.Fatal(err)
	}
	b, err := scene.NewBuilder(nil, scene.NewMemGraphics())
	if err != nil {
		Te.Fatal(err)
	}
	sc, err := b.Build(context.Background(), protview.Parse(string(data)), scene.AllVisible(), nil)
	if err != nil {
		Te.Fatal(err)
	}
	return sc, scene.NewCamera(sc.MaxDistance)
}

//screen returns the screen point where p is drawn.
func screen(Te *testing.T, cam *scene.Camera, vp Viewport, p r3.Vec) (float64, float64) {
	ndc, ok := cam.Project(p, vp.Aspect())
	if !ok {
		Te.Fatalf("%v is not visible", p)
	}
	return vp.Left + (ndc.X+1)/2*vp.Width, vp.Top + (1-ndc.Y)/2*vp.Height
}

func TestNDC(Te *testing.T) {
	vp := Viewport{Left: 10, Top: 20, Width: 200, Height: 100}
	cases := [][4]float64{
		{10, 20, -1, 1},
		{210, 120, 1, -1},
		{110, 70, 0, 0},
	}
	for _, c := range cases {
		x, y, err := NDC(vp, c[0], c[1])
		if err != nil {
			Te.Fatal(err)
		}
		if x != c[2] || y != c[3] {
			Te.Errorf("NDC(%v, %v) = %v, %v, want %v, %v", c[0], c[1], x, y, c[2], c[3])
		}
	}
	if _, _, err := NDC(Viewport{Width: 0, Height: 10}, 1, 1); err == nil {
		Te.Error("An empty viewport should fail")
	}
}

func TestIntersectSphere(Te *testing.T) {
	t, ok := IntersectSphere(r3.Vec{Z: 10}, r3.Vec{Z: -1}, r3.Vec{}, 1)
	if !ok || math.Abs(t-9) > 1e-12 {
		Te.Errorf("Expected a hit at 9, got %v %v", t, ok)
	}
	if _, ok := IntersectSphere(r3.Vec{Z: 10}, r3.Vec{Z: 1}, r3.Vec{}, 1); ok {
		Te.Error("A sphere behind the ray should not be hit")
	}
	if _, ok := IntersectSphere(r3.Vec{X: 2, Z: 10}, r3.Vec{Z: -1}, r3.Vec{}, 1); ok {
		Te.Error("The ray misses the sphere")
	}
	if t, ok := IntersectSphere(r3.Vec{}, r3.Vec{X: 1}, r3.Vec{}, 2); !ok || t != 2 {
		Te.Errorf("From inside the exit point should be returned, got %v", t)
	}
}

func TestPick(Te *testing.T) {
	sc, cam := miniScene(Te)
	vp := Viewport{Width: 800, Height: 600}
	p := NewPicker(protview.NewClassifier(), nil)
	target := sc.Lookup(scene.Key{ChainID: "A", ResSeq: 3, Serial: 17})
	x, y := screen(Te, cam, vp, target.Center)
	hit := p.Pick(sc, cam, vp, x, y)
	if hit == nil {
		Te.Fatal("Expected a hit on LYS 3 CA")
	}
	if hit.ResidueIndex != 3 || hit.AminoAcid == nil || hit.AminoAcid.ThreeLetter != "LYS" {
		Te.Errorf("Wrong hit %+v", hit)
	}
	if hit.Distance <= 0 || hit.Distance > 2*cam.Distance() {
		Te.Errorf("Hit at an unlikely distance %f", hit.Distance)
	}
	if hit := p.Pick(sc, cam, vp, 1, 1); hit != nil {
		Te.Errorf("The corner should be empty, got %+v", hit.Atom)
	}
	water := sc.Lookup(scene.Key{ChainID: "A", ResSeq: 201, Serial: 43})
	x, y = screen(Te, cam, vp, water.Center)
	hit = p.Pick(sc, cam, vp, x, y)
	if hit == nil || hit.AminoAcid != nil || hit.ResidueName != "HOH" {
		Te.Fatalf("Expected an unclassified hit on the water, got %+v", hit)
	}
	if tt := Tooltip(hit); tt.Title != "HOH" || !strings.Contains(tt.String(), "element: O") {
		Te.Errorf("Wrong tooltip for the water:\n%s", tt)
	}
	sc.Dispose()
	if p.Pick(sc, cam, vp, x, y) != nil {
		Te.Error("A disposed scene should not be picked")
	}
}

func TestPickNucleotide(Te *testing.T) {
	content := "ATOM      1  P     G R   1       1.000   2.000   3.000  1.00 20.00           P\n"
	b, err := scene.NewBuilder(nil, scene.NewMemGraphics())
	if err != nil {
		Te.Fatal(err)
	}
	sc, err := b.Build(context.Background(), protview.Parse(content), scene.AllVisible(), nil)
	if err != nil {
		Te.Fatal(err)
	}
	cam := scene.NewCamera(sc.MaxDistance)
	vp := Viewport{Width: 400, Height: 400}
	x, y := screen(Te, cam, vp, sc.Spheres[0].Center)
	hit := NewPicker(protview.NewClassifier(), nil).Pick(sc, cam, vp, x, y)
	if hit == nil {
		Te.Fatal("Expected a hit on the guanine phosphate")
	}
	if hit.AminoAcid != nil {
		Te.Errorf("Guanine reported as %s", hit.AminoAcid.FullName)
	}
	if tt := Tooltip(hit); tt.Title != "G" {
		Te.Errorf("Wrong tooltip title %q", tt.Title)
	}
}

func TestPickRecovers(Te *testing.T) {
	var logs bytes.Buffer
	p := NewPicker(nil, log.New(&logs, "", 0))
	//a sphere without atom makes the hit resolution fail
	sc := &scene.Scene{Spheres: []*scene.Sphere{{Center: r3.Vec{}, Radius: 1}}}
	cam := scene.NewCamera(1)
	vp := Viewport{Width: 100, Height: 100}
	if hit := p.Pick(sc, cam, vp, 50, 50); hit != nil {
		Te.Error("A failed pick should be a miss")
	}
	if !strings.Contains(logs.String(), "recovered") {
		Te.Errorf("The failure should be logged, got %q", logs.String())
	}
}

func TestTooltip(Te *testing.T) {
	c := protview.NewClassifier()
	lys, _ := c.Lookup("K")
	tt := Tooltip(&Hit{AminoAcid: lys, ResidueIndex: 42})
	want := "lysine\nresidue #42\ncode: K / LYS\ntype: positive\nmolecular weight: 146.19 da"
	if tt.String() != want {
		Te.Errorf("Wrong tooltip:\n%s\nwant\n%s", tt, want)
	}
	if tt.Color != protview.PositiveColor {
		Te.Error("The tooltip should use the type color")
	}
}

func TestPlace(Te *testing.T) {
	vp := Viewport{Width: 1000, Height: 800}
	if x, y := Place(vp, 100, 100, TooltipWidth, TooltipHeight); x != 116 || y != 116 {
		Te.Errorf("Wrong placement %v %v", x, y)
	}
	//near the bottom right corner the tooltip flips
	if x, y := Place(vp, 950, 780, TooltipWidth, TooltipHeight); x != 950-TooltipWidth-16 || y != 780-TooltipHeight-16 {
		Te.Errorf("Wrong flipped placement %v %v", x, y)
	}
	small := Viewport{Width: 100, Height: 100}
	if x, y := Place(small, 50, 50, TooltipWidth, TooltipHeight); x != 16 || y != 16 {
		Te.Errorf("The tooltip should be clamped to the padding, got %v %v", x, y)
	}
}
