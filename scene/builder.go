/*
 * builder.go, part of protview.
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
	"context"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/rmera/protview"
	v3 "github.com/rmera/protview/v3"
)

const (
	// If no more than this many backbone atoms are present, all atoms are rendered.
	BackboneMinAtoms = 10
	// Radius for CA atoms.
	EmphasisRadius = 1.0
	// Scale applied to the element radius of non-CA atoms.
	RadiusScale = 0.5
	// Color of the CA-CA segments.
	BondColor protview.Color = 0x666666
)

//how many atoms are processed between checks of the context.
const ctxCheckEvery = 256

// Overlay gives the color of highlighted residues. SiteColor returns
// false for residues that are not highlighted.
type Overlay interface {
	SiteColor(resSeq int) (protview.Color, bool)
}

// Builder turns structures into scenes.
type Builder struct {
	classifier *protview.Classifier
	graphics   Graphics
}

// NewBuilder returns a builder that allocates its primitives in g. A nil
// classifier is replaced by the standard one. A nil g is an error.
func NewBuilder(c *protview.Classifier, g Graphics) (*Builder, error) {
	if g == nil {
		return nil, errDecorate(ErrNoGraphics, "NewBuilder")
	}
	if c == nil {
		c = protview.NewClassifier()
	}
	return &Builder{classifier: c, graphics: g}, nil
}

// Classifier returns the residue classifier used by the builder.
func (B *Builder) Classifier() *protview.Classifier {
	return B.classifier
}

// Graphics returns the backend in which the builder allocates primitives.
func (B *Builder) Graphics() Graphics {
	return B.graphics
}

// RenderedAtoms returns the atoms of s that are drawn before filtering:
// the backbone atoms, or all of them if there are BackboneMinAtoms or fewer
// backbone atoms. The atoms are given chain by chain, with the residues of
// each chain in ascending order. The second value is true if only the
// backbone is used.
func RenderedAtoms(s *protview.Structure) ([]*protview.Atom, bool) {
	all := make([]*protview.Atom, 0, s.Len())
	bb := make([]*protview.Atom, 0, s.Len()/2)
	for _, c := range s.Chains {
		for _, r := range c.Residues {
			for _, a := range r.Atoms {
				all = append(all, a)
				if a.IsBackbone() {
					bb = append(bb, a)
				}
			}
		}
	}
	if len(bb) > BackboneMinAtoms {
		return bb, true
	}
	return all, false
}

// Centroid returns the mean position of all the atoms in s.
func Centroid(s *protview.Structure) (r3.Vec, error) {
	coords := v3.Zeros(s.Len())
	for i, a := range s.Atoms {
		coords.SetVec(i, a.X, a.Y, a.Z)
	}
	c, err := v3.Centroid(coords)
	if err != nil {
		return r3.Vec{}, err
	}
	v := c.Vec(0)
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}, nil
}

// AtomStyle returns the color and radius used to draw atom a, which
// belongs to a residue described by info (nil for unclassified residues).
func AtomStyle(a *protview.Atom, info *protview.AminoAcidInfo) (protview.Color, float64) {
	var color protview.Color
	if info != nil {
		color = protview.TypeColor(info.Type)
	} else {
		color = protview.ElementColor(a.Element)
	}
	radius := protview.ElementRadius(a.Element) * RadiusScale
	if a.IsCA() {
		radius = EmphasisRadius
	}
	return color, radius
}

// Build creates the scene for s with the visibility filter f. Residues
// highlighted by overlay, which can be nil, take the overlay color.
// If the build fails, or ctx is done before it finishes, every resource
// allocated so far is released and an error is returned.
func (B *Builder) Build(ctx context.Context, s *protview.Structure, f Filter, overlay Overlay) (*Scene, error) {
	sc := newScene(B.graphics)
	sc.Filter = f
	if s == nil || s.Len() == 0 {
		return sc, nil
	}
	var err error
	sc.Centroid, err = Centroid(s)
	if err != nil {
		return nil, errDecorate(err, "Build")
	}
	atoms, backbone := RenderedAtoms(s)
	sc.Backbone = backbone
	fail := func(err error) (*Scene, error) {
		sc.Dispose()
		return nil, errDecorate(err, "Build")
	}
	for i, a := range atoms {
		if i%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return fail(err)
			}
		}
		info, classified := B.classifier.Residue(a.ResName)
		if classified && !f.Allows(info.Type) {
			continue
		}
		if !classified {
			info = nil
		}
		sp := &Sphere{Key: Key{a.ChainID, a.ResSeq, a.Serial}, Atom: a, Info: info}
		sp.Color, sp.Radius = AtomStyle(a, info)
		if overlay != nil {
			if c, ok := overlay.SiteColor(a.ResSeq); ok {
				sp.Color = c
				sp.Highlighted = true
			}
		}
		sp.Center = r3.Sub(r3.Vec{X: a.X, Y: a.Y, Z: a.Z}, sc.Centroid)
		sp.Handle, err = B.graphics.NewSphere(sp.Center, sp.Radius, sp.Color)
		if err != nil {
			return fail(err)
		}
		sc.Spheres = append(sc.Spheres, sp)
		sc.byKey[sp.Key] = sp
	}
	if err := ctx.Err(); err != nil {
		return fail(err)
	}
	if err := B.bond(sc); err != nil {
		return fail(err)
	}
	sc.MaxDistance = maxDistance(sc.Spheres)
	return sc, nil
}

// maxDistance returns the largest distance from a sphere center to the origin.
func maxDistance(spheres []*Sphere) float64 {
	if len(spheres) == 0 {
		return 0
	}
	centers := v3.Zeros(len(spheres))
	for i, s := range spheres {
		centers.SetVec(i, s.Center.X, s.Center.Y, s.Center.Z)
	}
	return v3.MaxDistance(centers, v3.Zeros(1))
}
