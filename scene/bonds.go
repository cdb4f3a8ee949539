/*
 * bonds.go, part of protview.
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
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/rmera/protview"
)

// Bonded returns true if a and b, two consecutive CA atoms, should be
// joined: they are in the same chain, and their residue numbers differ
// by at most one.
func Bonded(a, b *protview.Atom) bool {
	if a.ChainID != b.ChainID {
		return false
	}
	d := a.ResSeq - b.ResSeq
	return d <= 1 && d >= -1
}

//bond joins consecutive rendered CA atoms, and builds the backbone
//segments from the resulting graph.
func (B *Builder) bond(sc *Scene) error {
	var cas []*Sphere
	for _, s := range sc.Spheres {
		if s.Atom.IsCA() {
			cas = append(cas, s)
		}
	}
	g := simple.NewUndirectedGraph()
	for i := range cas {
		g.AddNode(simple.Node(i))
	}
	for i := 0; i < len(cas)-1; i++ {
		a, b := cas[i], cas[i+1]
		if !Bonded(a.Atom, b.Atom) {
			continue
		}
		h, err := B.graphics.NewSegment(a.Center, b.Center, BondColor)
		if err != nil {
			return errDecorate(err, "bond")
		}
		sc.Bonds = append(sc.Bonds, &Bond{Handle: h, From: a, To: b})
		g.SetEdge(g.NewEdge(simple.Node(i), simple.Node(i+1)))
	}
	sc.segs = segments(g, cas)
	return nil
}

//segments returns the connected components of g as slices of spheres,
//each ordered by position in cas, and sorted by their first element.
func segments(g graph.Undirected, cas []*Sphere) [][]*Sphere {
	comps := topo.ConnectedComponents(g)
	idx := make([][]int, 0, len(comps))
	for _, c := range comps {
		ids := make([]int, 0, len(c))
		for _, n := range c {
			ids = append(ids, int(n.ID()))
		}
		sort.Ints(ids)
		idx = append(idx, ids)
	}
	sort.Slice(idx, func(i, j int) bool { return idx[i][0] < idx[j][0] })
	ret := make([][]*Sphere, len(idx))
	for i, ids := range idx {
		for _, id := range ids {
			ret[i] = append(ret[i], cas[id])
		}
	}
	return ret
}
