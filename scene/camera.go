/*
 * camera.go, part of protview.
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
	"fmt"
	"math"

	matrix "github.com/skelterjohn/go.matrix"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	DefaultFOV  = 60.0 //vertical field of view, degrees
	DefaultNear = 0.1
	DefaultFar  = 2000.0
	// The camera is placed at FrameFactor times the structure radius.
	FrameFactor = 2.5
	// Radius used to frame scenes with no extent (a single atom, or nothing).
	MinFrameRadius  = 4.0
	minZoomDistance = 1.0
)

// Camera is a perspective camera. The home position is on the +Z axis,
// looking at the origin, with +Y up.
type Camera struct {
	Position r3.Vec
	Target   r3.Vec
	Up       r3.Vec
	FOV      float64
	Near     float64
	Far      float64
	home     float64
}

// NewCamera returns a camera framing a scene of radius maxDistance.
func NewCamera(maxDistance float64) *Camera {
	C := &Camera{FOV: DefaultFOV, Near: DefaultNear, Far: DefaultFar}
	C.Frame(maxDistance)
	return C
}

// Frame sets the home position for a scene of radius maxDistance and
// moves the camera there.
func (C *Camera) Frame(maxDistance float64) {
	if maxDistance <= 0 || math.IsNaN(maxDistance) {
		maxDistance = MinFrameRadius
	}
	C.home = maxDistance * FrameFactor
	C.Reset()
}

// Reset moves the camera back to its home position.
func (C *Camera) Reset() {
	C.Position = r3.Vec{Z: C.home}
	C.Target = r3.Vec{}
	C.Up = r3.Vec{Y: 1}
}

// Home returns the distance from the home position to the origin.
func (C *Camera) Home() float64 {
	return C.home
}

// Distance returns the distance from the camera to its target.
func (C *Camera) Distance() float64 {
	return r3.Norm(r3.Sub(C.Position, C.Target))
}

// Zoom moves the camera towards its target, dividing the distance by
// factor. Factors below 1 move it away. The distance is kept between
// 1 A and half the far plane.
func (C *Camera) Zoom(factor float64) error {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return Error{message: fmt.Sprintf("invalid zoom factor %v", factor), deco: []string{"Zoom"}}
	}
	dir := r3.Sub(C.Position, C.Target)
	d := r3.Norm(dir)
	nd := math.Min(math.Max(d/factor, minZoomDistance), C.Far/2)
	C.Position = r3.Add(C.Target, r3.Scale(nd/d, dir))
	return nil
}

// View returns the 4x4 world-to-camera matrix.
func (C *Camera) View() *matrix.DenseMatrix {
	f := r3.Unit(r3.Sub(C.Target, C.Position))
	s := r3.Unit(r3.Cross(f, C.Up))
	u := r3.Cross(s, f)
	e := C.Position
	return matrix.MakeDenseMatrix([]float64{
		s.X, s.Y, s.Z, -r3.Dot(s, e),
		u.X, u.Y, u.Z, -r3.Dot(u, e),
		-f.X, -f.Y, -f.Z, r3.Dot(f, e),
		0, 0, 0, 1,
	}, 4, 4)
}

// Projection returns the 4x4 perspective projection matrix for the
// given width/height ratio.
func (C *Camera) Projection(aspect float64) *matrix.DenseMatrix {
	t := 1 / math.Tan(C.FOV*math.Pi/360)
	n, f := C.Near, C.Far
	return matrix.MakeDenseMatrix([]float64{
		t / aspect, 0, 0, 0,
		0, t, 0, 0,
		0, 0, (f + n) / (n - f), 2 * f * n / (n - f),
		0, 0, -1, 0,
	}, 4, 4)
}

func (C *Camera) viewProjection(aspect float64) (*matrix.DenseMatrix, error) {
	if aspect <= 0 || math.IsNaN(aspect) {
		return nil, Error{message: fmt.Sprintf("invalid aspect ratio %v", aspect), deco: []string{"viewProjection"}}
	}
	return C.Projection(aspect).TimesDense(C.View())
}

//transform applies the 4x4 matrix m to p, and returns the
//result divided by w, along with w itself.
func transform(m *matrix.DenseMatrix, p r3.Vec) (r3.Vec, float64, error) {
	h, err := m.TimesDense(matrix.MakeDenseMatrix([]float64{p.X, p.Y, p.Z, 1}, 4, 1))
	if err != nil {
		return r3.Vec{}, 0, err
	}
	w := h.Get(3, 0)
	if w == 0 {
		return r3.Vec{}, 0, Error{message: "point at infinity", deco: []string{"transform"}}
	}
	return r3.Vec{X: h.Get(0, 0) / w, Y: h.Get(1, 0) / w, Z: h.Get(2, 0) / w}, w, nil
}

// Project returns the normalized device coordinates of the world point p.
// The second value is false if p is behind the camera.
func (C *Camera) Project(p r3.Vec, aspect float64) (r3.Vec, bool) {
	vp, err := C.viewProjection(aspect)
	if err != nil {
		return r3.Vec{}, false
	}
	ndc, w, err := transform(vp, p)
	if err != nil || w <= 0 {
		return r3.Vec{}, false
	}
	return ndc, true
}

// Unproject returns the world point for the normalized device coordinates ndc.
func (C *Camera) Unproject(ndc r3.Vec, aspect float64) (r3.Vec, error) {
	vp, err := C.viewProjection(aspect)
	if err != nil {
		return r3.Vec{}, errDecorate(err, "Unproject")
	}
	inv, err := vp.Inverse()
	if err != nil {
		return r3.Vec{}, errDecorate(err, "Unproject")
	}
	p, _, err := transform(inv, ndc)
	if err != nil {
		return r3.Vec{}, errDecorate(err, "Unproject")
	}
	return p, nil
}

// Ray returns the origin and unit direction of the ray from the camera
// through the point (x, y) in normalized device coordinates.
func (C *Camera) Ray(x, y, aspect float64) (origin, dir r3.Vec, err error) {
	p, err := C.Unproject(r3.Vec{X: x, Y: y, Z: 0.5}, aspect)
	if err != nil {
		return origin, dir, errDecorate(err, "Ray")
	}
	return C.Position, r3.Unit(r3.Sub(p, C.Position)), nil
}
