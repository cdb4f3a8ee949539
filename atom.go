/*
 * atom.go, part of protview.
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

package protview

import "strings"

// Atom contains the data read from an ATOM or HETATM record.
// Atoms are not modified by this library once they are parsed.
type Atom struct {
	Serial     int
	Name       string
	AltLoc     string
	ResName    string
	ChainID    string
	ResSeq     int
	ICode      string
	X, Y, Z    float64
	Occupancy  float64
	TempFactor float64
	Element    string
	Het        bool // is hetatm in the pdb file?
	Line       int  //line of the input where the atom was read, 1-based
}

// Coords returns the cartesian coordinates of the atom.
func (A *Atom) Coords() [3]float64 {
	return [3]float64{A.X, A.Y, A.Z}
}

// IsBackbone returns true for the N, CA, C and O atoms.
func (A *Atom) IsBackbone() bool {
	return isInString(backboneNames, strings.ToUpper(A.Name))
}

// IsCA returns true if the atom is an alpha carbon.
func (A *Atom) IsCA() bool {
	return strings.EqualFold(A.Name, "CA")
}

// the atoms that are rendered when a structure is reduced to its backbone.
var backboneNames = []string{"CA", "C", "N", "O"}

// ResidueKey identifies a residue in a structure.
type ResidueKey struct {
	ChainID string
	ResSeq  int
}

// Residue is one residue of a chain. It owns its atoms, in the order
// they were read.
type Residue struct {
	ChainID string
	ResSeq  int
	ResName string
	Atoms   []*Atom
}

// Key returns the key that identifies the residue.
func (R *Residue) Key() ResidueKey {
	return ResidueKey{R.ChainID, R.ResSeq}
}

// Atom returns the i-th atom of the residue. Panics if out of range.
func (R *Residue) Atom(i int) *Atom {
	return R.Atoms[i]
}

// Len returns the number of atoms in the residue.
func (R *Residue) Len() int {
	return len(R.Atoms)
}

// AtomByName returns the first atom in the residue with the given name
// (case-insensitive), or nil if there is none.
func (R *Residue) AtomByName(name string) *Atom {
	for _, a := range R.Atoms {
		if strings.EqualFold(a.Name, name) {
			return a
		}
	}
	return nil
}

// Chain is an ordered sequence of residues sharing a chain identifier.
// Residues are sorted by ResSeq.
type Chain struct {
	ID       string
	Residues []*Residue
}

// Residue returns the first residue in the chain with sequence number seq,
// or nil.
func (C *Chain) Residue(seq int) *Residue {
	for _, r := range C.Residues {
		if r.ResSeq == seq {
			return r
		}
	}
	return nil
}

// Len returns the number of atoms in the chain.
func (C *Chain) Len() int {
	n := 0
	for _, r := range C.Residues {
		n += len(r.Atoms)
	}
	return n
}

// SSKind is the kind of a secondary structure range.
type SSKind int

const (
	Helix SSKind = iota
	Sheet
)

func (k SSKind) String() string {
	if k == Sheet {
		return "sheet"
	}
	return "helix"
}

// SecondaryStructure is a range of residues read from a HELIX or SHEET
// record. It is informational only.
type SecondaryStructure struct {
	ChainID    string
	Start, End int
	Kind       SSKind
}

// Structure is the result of parsing a PDB file.
type Structure struct {
	Atoms    []*Atom
	Residues []*Residue
	Chains   []*Chain
	Helices  []SecondaryStructure
	Sheets   []SecondaryStructure
	Models   int //number of MODEL records, all of them are merged.
	Warnings []ParseWarning
}

// Atom returns the i-th atom read. Panics if out of range.
func (S *Structure) Atom(i int) *Atom {
	return S.Atoms[i]
}

// Len returns the number of atoms in the structure.
func (S *Structure) Len() int {
	return len(S.Atoms)
}

// Chain returns the chain with the given identifier, or nil.
func (S *Structure) Chain(id string) *Chain {
	for _, c := range S.Chains {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// SkippedLines returns the numbers of the lines that could not be parsed.
func (S *Structure) SkippedLines() []int {
	ret := make([]int, 0, len(S.Warnings))
	for _, w := range S.Warnings {
		ret = append(ret, w.Line)
	}
	return ret
}
