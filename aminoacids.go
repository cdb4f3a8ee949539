/*
 * aminoacids.go, part of protview.
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

// ResidueType is the biochemical class of an amino acid.
type ResidueType int

const (
	Hydrophobic ResidueType = iota
	Polar
	Positive
	Negative
	Special
)

// ResidueTypes lists all the residue types, in display order.
var ResidueTypes = []ResidueType{Hydrophobic, Polar, Positive, Negative, Special}

var residueTypeNames = [...]string{"hydrophobic", "polar", "positive", "negative", "special"}

func (t ResidueType) String() string {
	if t < 0 || int(t) >= len(residueTypeNames) {
		return "unknown"
	}
	return residueTypeNames[t]
}

// ParseResidueType returns the type with the given name (case-insensitive).
func ParseResidueType(s string) (ResidueType, bool) {
	for i, v := range residueTypeNames {
		if strings.EqualFold(v, strings.TrimSpace(s)) {
			return ResidueType(i), true
		}
	}
	return 0, false
}

// The colors for each residue type. Scene rendering and tooltips both
// use them, so they must not change.
const (
	HydrophobicColor Color = 0xf59e0b // amber
	PolarColor       Color = 0x10b981 // emerald
	PositiveColor    Color = 0x3b82f6 // blue
	NegativeColor    Color = 0xef4444 // red
	SpecialColor     Color = 0x8b5cf6 // violet
)

var typeColors = [...]Color{HydrophobicColor, PolarColor, PositiveColor, NegativeColor, SpecialColor}

// TypeColor returns the color associated to the residue type t.
func TypeColor(t ResidueType) Color {
	if t < 0 || int(t) >= len(typeColors) {
		return 0xff69b4
	}
	return typeColors[t]
}

// AminoAcidInfo is the reference data for one amino acid.
type AminoAcidInfo struct {
	Code            byte   //one-letter code, upper case
	ThreeLetter     string //upper case
	FullName        string
	Type            ResidueType
	MolecularWeight float64 //g/mol
}

//the reference table. Weights are for the free amino acid.
var aminoAcidData = []AminoAcidInfo{
	{'A', "ALA", "alanine", Hydrophobic, 89.09},
	{'R', "ARG", "arginine", Positive, 174.20},
	{'N', "ASN", "asparagine", Polar, 132.12},
	{'D', "ASP", "aspartic acid", Negative, 133.10},
	{'C', "CYS", "cysteine", Special, 121.16},
	{'E', "GLU", "glutamic acid", Negative, 147.13},
	{'Q', "GLN", "glutamine", Polar, 146.15},
	{'G', "GLY", "glycine", Special, 75.07},
	{'H', "HIS", "histidine", Positive, 155.16},
	{'I', "ILE", "isoleucine", Hydrophobic, 131.17},
	{'L', "LEU", "leucine", Hydrophobic, 131.17},
	{'K', "LYS", "lysine", Positive, 146.19},
	{'M', "MET", "methionine", Hydrophobic, 149.21},
	{'F', "PHE", "phenylalanine", Hydrophobic, 165.19},
	{'P', "PRO", "proline", Special, 115.13},
	{'S', "SER", "serine", Polar, 105.09},
	{'T', "THR", "threonine", Polar, 119.12},
	{'W', "TRP", "tryptophan", Hydrophobic, 204.23},
	{'Y', "TYR", "tyrosine", Polar, 181.19},
	{'V', "VAL", "valine", Hydrophobic, 117.15},
}

// Classifier maps residue codes to amino acid data. It is immutable
// once built, and safe for concurrent use. Build one with NewClassifier
// and pass it to whoever needs it.
type Classifier struct {
	byCode  map[string]*AminoAcidInfo
	entries []*AminoAcidInfo
}

// NewClassifier returns a classifier for the 20 standard amino acids.
func NewClassifier() *Classifier {
	c := &Classifier{byCode: make(map[string]*AminoAcidInfo, 2*len(aminoAcidData))}
	for i := range aminoAcidData {
		info := new(AminoAcidInfo)
		*info = aminoAcidData[i]
		c.entries = append(c.entries, info)
		c.byCode[string(info.Code)] = info
		c.byCode[info.ThreeLetter] = info
	}
	return c
}

// Lookup returns the data for the amino acid with the given one or
// three-letter code (case-insensitive). The second return value is false
// for residues not in the table, such as ligands or waters.
func (C *Classifier) Lookup(code string) (*AminoAcidInfo, bool) {
	info, ok := C.byCode[strings.ToUpper(strings.TrimSpace(code))]
	return info, ok
}

// Residue returns the data for the amino acid with the given
// three-letter residue name, as found in PDB records. Unlike Lookup it
// never matches one-letter codes, so nucleotides such as "A" or "G"
// stay unclassified.
func (C *Classifier) Residue(resName string) (*AminoAcidInfo, bool) {
	resName = strings.ToUpper(strings.TrimSpace(resName))
	if len(resName) != 3 {
		return nil, false
	}
	info, ok := C.byCode[resName]
	return info, ok
}

// Classify returns the type of the residue with the given code. The
// second return value is false if the residue is not classified.
func (C *Classifier) Classify(code string) (ResidueType, bool) {
	info, ok := C.Lookup(code)
	if !ok {
		return 0, false
	}
	return info.Type, true
}

// ByType returns the amino acids of type t, in table order.
func (C *Classifier) ByType(t ResidueType) []*AminoAcidInfo {
	ret := make([]*AminoAcidInfo, 0, 6)
	for _, v := range C.entries {
		if v.Type == t {
			ret = append(ret, v)
		}
	}
	return ret
}

// Len returns the number of amino acids in the table.
func (C *Classifier) Len() int {
	return len(C.entries)
}
