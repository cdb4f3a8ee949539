/*
 * aminoacids_test.go, part of protview.
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

import (
	"encoding/json"
	"image/color"
	"testing"
)

func TestClassifier(Te *testing.T) {
	c := NewClassifier()
	if c.Len() != 20 {
		Te.Fatalf("Expected 20 amino acids, got %d", c.Len())
	}
	cases := []struct {
		code string
		t    ResidueType
	}{
		{"ALA", Hydrophobic}, {"a", Hydrophobic}, {"ser", Polar}, {"K", Positive},
		{"HIS", Positive}, {"ASP", Negative}, {"glu", Negative}, {"GLY", Special},
		{"PRO", Special}, {"CYS", Special}, {" TRP ", Hydrophobic}, {"Y", Polar},
	}
	for _, v := range cases {
		t, ok := c.Classify(v.code)
		if !ok || t != v.t {
			Te.Errorf("%q should be %s, got %s (%v)", v.code, v.t, t, ok)
		}
	}
	for _, code := range []string{"HOH", "ZN", "", "XYZ", "B"} {
		if _, ok := c.Classify(code); ok {
			Te.Errorf("%q should not be classified", code)
		}
	}
	info, ok := c.Lookup("w")
	if !ok || info.ThreeLetter != "TRP" || info.FullName != "tryptophan" || info.MolecularWeight != 204.23 {
		Te.Errorf("Wrong data for W: %+v", info)
	}
	same, _ := c.Lookup("TRP")
	if same != info {
		Te.Error("One and three-letter codes should give the same entry")
	}
	total := 0
	for _, t := range ResidueTypes {
		n := len(c.ByType(t))
		if n == 0 {
			Te.Errorf("No amino acids of type %s", t)
		}
		total += n
	}
	if total != 20 {
		Te.Errorf("The types should partition the table, got %d", total)
	}
	if len(c.ByType(Special)) != 3 {
		Te.Error("GLY, PRO and CYS are the special residues")
	}
}

func TestResidueNames(Te *testing.T) {
	c := NewClassifier()
	for _, name := range []string{"A", "G", "C", "T", "U", "DA", "K", ""} {
		if info, ok := c.Residue(name); ok {
			Te.Errorf("Residue name %q should not match %s", name, info.ThreeLetter)
		}
	}
	info, ok := c.Residue(" lys")
	if !ok || info.Code != 'K' {
		Te.Errorf("LYS not found by residue name: %+v", info)
	}
}

func TestResidueTypeNames(Te *testing.T) {
	for _, t := range ResidueTypes {
		back, ok := ParseResidueType(t.String())
		if !ok || back != t {
			Te.Errorf("%s did not parse back", t)
		}
	}
	if t, ok := ParseResidueType(" Positive"); !ok || t != Positive {
		Te.Error("Names should be case-insensitive")
	}
	if _, ok := ParseResidueType("acidic"); ok {
		Te.Error("acidic is not a residue type")
	}
	if ResidueType(9).String() != "unknown" || TypeColor(ResidueType(-1)) != DefaultElementColor {
		Te.Error("Out of range types should be unknown")
	}
	want := map[ResidueType]Color{Hydrophobic: 0xf59e0b, Polar: 0x10b981, Positive: 0x3b82f6, Negative: 0xef4444, Special: 0x8b5cf6}
	for t, col := range want {
		if TypeColor(t) != col {
			Te.Errorf("Wrong color for %s: %s", t, TypeColor(t))
		}
	}
}

func TestElements(Te *testing.T) {
	colors := map[string]Color{"C": 0x808080, "n": 0x3050f8, "O": 0xff0d0d, "S": 0xffff30, "P": 0xff8000,
		"H": 0xffffff, "FE": 0xe06633, "Ca": 0x3dff00, " mg": 0x8aff00, "ZN": 0x7d80b0, "Se": 0xff69b4, "": 0xff69b4}
	for sym, col := range colors {
		if ElementColor(sym) != col {
			Te.Errorf("Wrong color for %q: %s", sym, ElementColor(sym))
		}
	}
	radii := map[string]float64{"C": 0.77, "N": 0.75, "O": 0.73, "s": 1.02, "P": 1.06, "H": 0.37,
		"Fe": 1.26, "CA": 1.97, "Mg": 1.45, "zn": 1.35, "Xx": 0.77}
	for sym, r := range radii {
		if ElementRadius(sym) != r {
			Te.Errorf("Wrong radius for %q: %v", sym, ElementRadius(sym))
		}
	}
}

func TestColor(Te *testing.T) {
	c := Color(0x3050f8)
	if c.Hex() != "#3050f8" || c.String() != "#3050f8" {
		Te.Errorf("Wrong hex %s", c.Hex())
	}
	if c.RGBA() != (color.RGBA{R: 0x30, G: 0x50, B: 0xf8, A: 255}) {
		Te.Errorf("Wrong RGBA %v", c.RGBA())
	}
	for _, s := range []string{"#3050F8", "3050f8", " #3050f8 "} {
		if p, err := ParseColor(s); err != nil || p != c {
			Te.Errorf("%q should parse, got %v %v", s, p, err)
		}
	}
	for _, s := range []string{"", "#fff", "#3050fg", "0x3050f8"} {
		if _, err := ParseColor(s); err == nil {
			Te.Errorf("%q should not parse", s)
		}
	}
	b, err := json.Marshal(map[string]Color{"site": 0xef4444})
	if err != nil || string(b) != `{"site":"#ef4444"}` {
		Te.Errorf("Wrong JSON %s %v", b, err)
	}
	var back map[string]Color
	if err := json.Unmarshal(b, &back); err != nil || back["site"] != 0xef4444 {
		Te.Errorf("Wrong decoded color %v %v", back, err)
	}
	if err := json.Unmarshal([]byte(`{"site":"red"}`), &back); err == nil {
		Te.Error("Color names are not supported")
	}
}
