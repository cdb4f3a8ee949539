/*
 * filter.go, part of protview.
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
	"strings"

	"github.com/rmera/protview"
)

// Filter holds one visibility toggle per residue type. Atoms of
// unclassified residues are never filtered out.
type Filter struct {
	Hydrophobic bool
	Polar       bool
	Positive    bool
	Negative    bool
	Special     bool
}

// AllVisible returns a filter that lets everything through.
func AllVisible() Filter {
	return Filter{true, true, true, true, true}
}

// NoneVisible returns a filter that hides every classified residue.
func NoneVisible() Filter {
	return Filter{}
}

func (F *Filter) field(t protview.ResidueType) *bool {
	switch t {
	case protview.Hydrophobic:
		return &F.Hydrophobic
	case protview.Polar:
		return &F.Polar
	case protview.Positive:
		return &F.Positive
	case protview.Negative:
		return &F.Negative
	case protview.Special:
		return &F.Special
	}
	return nil
}

// Allows returns whether residues of type t are visible.
func (F Filter) Allows(t protview.ResidueType) bool {
	if b := F.field(t); b != nil {
		return *b
	}
	return true
}

// Set sets the visibility of type t.
func (F *Filter) Set(t protview.ResidueType, visible bool) {
	if b := F.field(t); b != nil {
		*b = visible
	}
}

// Toggle flips the visibility of type t and returns the new state.
func (F *Filter) Toggle(t protview.ResidueType) bool {
	b := F.field(t)
	if b == nil {
		return true
	}
	*b = !*b
	return *b
}

func (F Filter) String() string {
	var on []string
	for _, t := range protview.ResidueTypes {
		if F.Allows(t) {
			on = append(on, t.String())
		}
	}
	if len(on) == 0 {
		return "none"
	}
	return strings.Join(on, ",")
}

// ParseFilter reads a comma-separated list of visible residue types.
// "all" and "none" are also accepted.
func ParseFilter(s string) (Filter, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "", "all":
		return AllVisible(), nil
	case "none":
		return NoneVisible(), nil
	}
	f := NoneVisible()
	for _, v := range strings.Split(s, ",") {
		t, ok := protview.ParseResidueType(v)
		if !ok {
			return f, Error{message: "unknown residue type '" + strings.TrimSpace(v) + "'", deco: []string{"ParseFilter"}}
		}
		f.Set(t, true)
	}
	return f, nil
}
