/*
 * scene.go, part of protview.
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
	"sync"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/rmera/protview"
)

// Key identifies a rendered atom.
type Key struct {
	ChainID string
	ResSeq  int
	Serial  int
}

func (k Key) String() string {
	return fmt.Sprintf("%s_%d_%d", k.ChainID, k.ResSeq, k.Serial)
}

// Sphere is a rendered atom. Its position is relative to the centroid
// of the structure.
type Sphere struct {
	Key
	Handle      Handle
	Atom        *protview.Atom
	Info        *protview.AminoAcidInfo //nil for unclassified residues
	Center      r3.Vec
	Radius      float64
	Color       protview.Color
	Highlighted bool
}

// Bond is a segment between two consecutive CA atoms.
type Bond struct {
	Handle   Handle
	From, To *Sphere
}

// Scene is the set of primitives built from one structure. It owns
// the graphics resources of its primitives until Dispose is called.
type Scene struct {
	mu       sync.Mutex
	g        Graphics
	disposed bool

	Spheres []*Sphere
	Bonds   []*Bond
	byKey   map[Key]*Sphere
	segs    [][]*Sphere

	// Centroid of all the parsed atoms, in the original coordinates.
	Centroid r3.Vec
	// MaxDistance is the largest distance from a rendered atom to the centroid.
	MaxDistance float64
	// Backbone is true if only backbone atoms were rendered.
	Backbone bool
	Filter   Filter
}

func newScene(g Graphics) *Scene {
	return &Scene{g: g, byKey: make(map[Key]*Sphere)}
}

// Len returns the number of rendered atoms.
func (S *Scene) Len() int {
	return len(S.Spheres)
}

// Lookup returns the sphere for k, or nil. If several atoms share a
// key the last one rendered is returned.
func (S *Scene) Lookup(k Key) *Sphere {
	return S.byKey[k]
}

// Segments returns the continuous backbone traces, each one ordered
// as rendered.
func (S *Scene) Segments() [][]*Sphere {
	return S.segs
}

// Disposed returns true once Dispose has been called.
func (S *Scene) Disposed() bool {
	S.mu.Lock()
	defer S.mu.Unlock()
	return S.disposed
}

// Dispose releases every graphics resource held by the scene. Calling
// it again does nothing. All resources are released even if some
// releases fail, the first error is returned.
func (S *Scene) Dispose() error {
	S.mu.Lock()
	defer S.mu.Unlock()
	if S.disposed {
		return nil
	}
	S.disposed = true
	var first error
	release := func(h Handle) {
		if h == 0 {
			return
		}
		if err := S.g.Release(h); err != nil && first == nil {
			first = errDecorate(err, "Dispose")
		}
	}
	for _, b := range S.Bonds {
		release(b.Handle)
		b.Handle = 0
	}
	for _, s := range S.Spheres {
		release(s.Handle)
		s.Handle = 0
	}
	return first
}
