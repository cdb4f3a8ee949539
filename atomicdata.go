/*
 * atomicdata.go, part of protview.
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

//Display colors for the elements common in proteins.
//Unlisted elements get DefaultElementColor.
var symbolColor = map[string]Color{
	"C":  0x808080,
	"N":  0x3050f8,
	"O":  0xff0d0d,
	"S":  0xffff30,
	"P":  0xff8000,
	"H":  0xffffff,
	"Fe": 0xe06633,
	"Ca": 0x3dff00,
	"Mg": 0x8aff00,
	"Zn": 0x7d80b0,
}

//Radii, in A, used to size atoms for display.
//Note that just common "bio-elements" are present.
var symbolVdwrad = map[string]float64{
	"C":  0.77,
	"N":  0.75,
	"O":  0.73,
	"S":  1.02,
	"P":  1.06,
	"H":  0.37,
	"Fe": 1.26,
	"Ca": 1.97,
	"Mg": 1.45,
	"Zn": 1.35,
}

const (
	// DefaultElementColor is used for elements with no entry in the table (hot pink).
	DefaultElementColor Color = 0xff69b4
	// DefaultElementRadius is used for elements with no entry in the table.
	DefaultElementRadius = 0.77
)

// normalizes an element symbol so "FE", "fe" and " Fe" all read "Fe".
func normalizeSymbol(s string) string {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// ElementColor returns the display color for the element symbol, ignoring case.
func ElementColor(symbol string) Color {
	if c, ok := symbolColor[normalizeSymbol(symbol)]; ok {
		return c
	}
	return DefaultElementColor
}

// ElementRadius returns the display radius, in A, for the element symbol, ignoring case.
func ElementRadius(symbol string) float64 {
	if r, ok := symbolVdwrad[normalizeSymbol(symbol)]; ok {
		return r
	}
	return DefaultElementRadius
}
