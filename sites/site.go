/*
 * site.go, part of protview.
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


//Package sites keeps the binding sites defined on a structure, either by
//the user or imported from predictions, and which of them are highlighted.
package sites

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rmera/protview"
)

// DefaultColor is the color given to new sites when none is chosen.
const DefaultColor protview.Color = 0x3b82f6

// Site is a named set of residues.
type Site struct {
	ID             string
	Name           string
	ResidueIndices []int
	Color          protview.Color
	Affinity       *float64 //Kd, nM. nil if unknown.
}

// Contains returns true if the residue number seq belongs to the site.
func (s Site) Contains(seq int) bool {
	for _, v := range s.ResidueIndices {
		if v == seq {
			return true
		}
	}
	return false
}

func (s Site) String() string {
	aff := "-"
	if s.Affinity != nil {
		aff = FormatAffinity(*s.Affinity)
	}
	return fmt.Sprintf("%s %q residues %v color %s affinity %s", s.ID, s.Name, s.ResidueIndices, s.Color, aff)
}

func (s Site) clone() Site {
	s.ResidueIndices = append([]int(nil), s.ResidueIndices...)
	if s.Affinity != nil {
		a := *s.Affinity
		s.Affinity = &a
	}
	return s
}

// Data is what is needed to create a site.
type Data struct {
	Name           string
	ResidueIndices []int
	Color          protview.Color
	Affinity       *float64
}

// ParseResidueList reads a comma-separated list of residue numbers, like
// "12, 15, 40". Entries that are not integers are skipped.
func ParseResidueList(s string) []int {
	var ret []int
	for _, f := range strings.Split(s, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			continue
		}
		ret = append(ret, v)
	}
	return ret
}

// uniqueSorted returns the distinct values in v, in ascending order.
func uniqueSorted(v []int) []int {
	ret := append([]int(nil), v...)
	sort.Ints(ret)
	j := 0
	for i, x := range ret {
		if i == 0 || x != ret[j-1] {
			ret[j] = x
			j++
		}
	}
	return ret[:j]
}
