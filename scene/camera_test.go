/*
 * camera_test.go, part of protview.
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

package scene

import (
	"bytes"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/rmera/protview/internal/zio"
	"github.com/rmera/protview/params"
)

func near(a, b r3.Vec, tol float64) bool {
	return r3.Norm(r3.Sub(a, b)) < tol
}

func TestCameraFraming(Te *testing.T) {
	s := readStructure(Te, "mini.pdb")
	sc, _ := build(Te, s, AllVisible(), nil)
	if sc.MaxDistance <= 0 {
		Te.Fatalf("maxDistance should be positive, got %f", sc.MaxDistance)
	}
	cam := NewCamera(sc.MaxDistance)
	if want := (r3.Vec{Z: sc.MaxDistance * FrameFactor}); cam.Position != want {
		Te.Errorf("Camera at %v, want %v", cam.Position, want)
	}
	if err := cam.Zoom(2); err != nil {
		Te.Fatal(err)
	}
	if math.Abs(cam.Distance()-sc.MaxDistance*FrameFactor/2) > 1e-9 {
		Te.Errorf("Zoom(2) should halve the distance, got %f", cam.Distance())
	}
	if err := cam.Zoom(0); err == nil {
		Te.Error("A zero zoom factor should fail")
	}
	cam.Zoom(1e9)
	if cam.Distance() < 1 {
		Te.Errorf("The camera got too close: %f", cam.Distance())
	}
	cam.Reset()
	if cam.Distance() != cam.Home() {
		Te.Error("Reset should bring the camera home")
	}
	if NewCamera(0).Home() != MinFrameRadius*FrameFactor {
		Te.Error("A degenerate scene should be framed with the minimum radius")
	}
}

func TestProjection(Te *testing.T) {
	cam := NewCamera(10)
	aspect := 1.5
	ndc, ok := cam.Project(r3.Vec{}, aspect)
	if !ok || math.Abs(ndc.X) > 1e-9 || math.Abs(ndc.Y) > 1e-9 {
		Te.Errorf("The origin should project to the center, got %v", ndc)
	}
	p := r3.Vec{X: 3, Y: -2, Z: 1}
	ndc, ok = cam.Project(p, aspect)
	if !ok {
		Te.Fatal("Point should be in front of the camera")
	}
	back, err := cam.Unproject(ndc, aspect)
	if err != nil {
		Te.Fatal(err)
	}
	if !near(back, p, 1e-6) {
		Te.Errorf("Unproject(Project(p)) = %v, want %v", back, p)
	}
	if _, ok := cam.Project(r3.Vec{Z: 100}, aspect); ok {
		Te.Error("A point behind the camera should not project")
	}
	origin, dir, err := cam.Ray(0, 0, aspect)
	if err != nil {
		Te.Fatal(err)
	}
	if origin != cam.Position || !near(dir, r3.Vec{Z: -1}, 1e-9) {
		Te.Errorf("Central ray should point down -Z, got %v", dir)
	}
	if _, _, err := cam.Ray(0, 0, 0); err == nil {
		Te.Error("A zero aspect ratio should fail")
	}
}

func TestSnapshotRoundTrip(Te *testing.T) {
	s := readStructure(Te, "mini.pdb")
	sc, _ := build(Te, s, AllVisible(), resOverlay{4: 0xabcdef})
	meta := params.New()
	meta.Set("name", params.String("hydrolase/test peptide"))
	meta.Set("atoms", params.Number(float64(s.Len())))
	meta.Set("backbone", params.Bool(sc.Backbone))
	snap := NewSnapshot(sc, NewCamera(sc.MaxDistance), meta)
	for _, f := range []zio.Format{zio.Zstd, zio.Gzip, zio.Plain} {
		var buf bytes.Buffer
		if err := snap.Write(&buf, f); err != nil {
			Te.Fatal(err)
		}
		got, err := ReadSnapshot(&buf, f)
		if err != nil {
			Te.Fatal(err)
		}
		if len(got.Atoms) != sc.Len() || len(got.Bonds) != len(sc.Bonds) {
			Te.Errorf("%s: wrong sizes %d %d", f, len(got.Atoms), len(got.Bonds))
		}
		if keys := got.Meta.Keys(); len(keys) != 3 || keys[0] != "name" || keys[2] != "backbone" {
			Te.Errorf("%s: metadata order lost: %v", f, keys)
		}
		for i, a := range got.Atoms {
			if a != snap.Atoms[i] {
				Te.Errorf("%s: atom %d differs: %v %v", f, i, a, snap.Atoms[i])
				break
			}
		}
		if got.Camera != snap.Camera {
			Te.Errorf("%s: camera differs", f)
		}
	}
}
