/*
 * color.go, part of protview.
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
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is a 24 bit RGB color, 0xRRGGBB.
type Color uint32

// RGBA returns the color as an opaque color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 255}
}

// Hex returns the color in the "#rrggbb" notation.
func (c Color) Hex() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xffffff)
}

func (c Color) String() string { return c.Hex() }

// ParseColor reads a color in the "#rrggbb" or "rrggbb" notations.
func ParseColor(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return 0, &PDBError{message: fmt.Sprintf("invalid color '%s'", s), deco: []string{"ParseColor"}}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, &PDBError{message: fmt.Sprintf("invalid color '%s'", s), deco: []string{"ParseColor"}}
	}
	return Color(v), nil
}

// MarshalText encodes the color as "#rrggbb".
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText decodes a "#rrggbb" color.
func (c *Color) UnmarshalText(b []byte) error {
	v, err := ParseColor(string(b))
	if err != nil {
		return errDecorate(err, "UnmarshalText")
	}
	*c = v
	return nil
}
