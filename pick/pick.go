/*
 * pick.go, part of protview.
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


//Package pick finds the atom under a pointer in a rendered scene. A ray
//is cast from the camera through the pointer position, and the nearest
//sphere it crosses is the hit.
package pick

import (
	"fmt"
	"log"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/rmera/protview"
	"github.com/rmera/protview/scene"
)

// Viewport is the screen rectangle where the scene is drawn.
type Viewport struct {
	Left, Top     float64
	Width, Height float64
}

// Aspect returns the width/height ratio of the viewport.
func (V Viewport) Aspect() float64 {
	return V.Width / V.Height
}

// Contains returns true if the screen point (x, y) is inside the viewport.
func (V Viewport) Contains(x, y float64) bool {
	return x >= V.Left && x <= V.Left+V.Width && y >= V.Top && y <= V.Top+V.Height
}

// NDC converts the screen point (x, y) to normalized device coordinates,
// where the viewport spans [-1, 1] on both axes and +Y points up.
func NDC(vp Viewport, x, y float64) (float64, float64, error) {
	if vp.Width <= 0 || vp.Height <= 0 {
		return 0, 0, fmt.Errorf("pick: empty viewport %vx%v", vp.Width, vp.Height)
	}
	nx := ((x-vp.Left)/vp.Width)*2 - 1
	ny := -((y-vp.Top)/vp.Height)*2 + 1
	return nx, ny, nil
}

// IntersectSphere returns the distance along the ray (origin, dir) to its
// first crossing with the sphere, and whether there is one. dir must be a
// unit vector. Spheres behind the origin are not hit; if the origin is
// inside the sphere the exit point is returned.
func IntersectSphere(origin, dir, center r3.Vec, radius float64) (float64, bool) {
	oc := r3.Sub(origin, center)
	b := r3.Dot(oc, dir)
	c := r3.Dot(oc, oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// Hit is the result of a successful pick.
type Hit struct {
	AminoAcid    *protview.AminoAcidInfo //nil for unclassified residues
	ResidueIndex int
	ResidueName  string
	ChainID      string
	Element      string
	Atom         *protview.Atom
	Sphere       *scene.Sphere
	Distance     float64 //from the camera
}

// Picker resolves pointer positions to atoms.
type Picker struct {
	classifier *protview.Classifier
	logger     *log.Logger
}

// NewPicker returns a picker that classifies hits with c. A nil c is
// replaced by the standard classifier. If logger is nil, recovered
// failures are logged with the standard logger.
func NewPicker(c *protview.Classifier, logger *log.Logger) *Picker {
	if c == nil {
		c = protview.NewClassifier()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Picker{classifier: c, logger: logger}
}

// Pick returns the nearest atom of sc under the screen point (x, y), seen
// through cam, or nil if there is none. Pick never panics: failures during
// the intersection are logged and reported as a miss.
func (P *Picker) Pick(sc *scene.Scene, cam *scene.Camera, vp Viewport, x, y float64) (hit *Hit) {
	defer func() {
		if r := recover(); r != nil {
			P.logger.Printf("pick: recovered from failure at (%.1f, %.1f): %v", x, y, r)
			hit = nil
		}
	}()
	if sc == nil || cam == nil || sc.Disposed() {
		return nil
	}
	nx, ny, err := NDC(vp, x, y)
	if err != nil {
		return nil
	}
	origin, dir, err := cam.Ray(nx, ny, vp.Aspect())
	if err != nil {
		P.logger.Printf("pick: %v", err)
		return nil
	}
	var best *scene.Sphere
	bestT := math.Inf(1)
	for _, s := range sc.Spheres {
		if t, ok := IntersectSphere(origin, dir, s.Center, s.Radius); ok && t < bestT {
			best, bestT = s, t
		}
	}
	if best == nil {
		return nil
	}
	return P.resolve(best, bestT)
}

func (P *Picker) resolve(s *scene.Sphere, t float64) *Hit {
	a := s.Atom
	h := &Hit{
		ResidueIndex: a.ResSeq,
		ResidueName:  a.ResName,
		ChainID:      a.ChainID,
		Element:      a.Element,
		Atom:         a,
		Sphere:       s,
		Distance:     t,
	}
	if info, ok := P.classifier.Residue(a.ResName); ok {
		h.AminoAcid = info
	}
	return h
}
