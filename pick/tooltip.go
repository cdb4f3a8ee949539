/*
 * tooltip.go, part of protview.
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

package pick

import (
	"fmt"
	"strings"

	"github.com/rmera/protview"
)

// Tooltip size and spacing, in screen units.
const (
	TooltipWidth   = 220.0
	TooltipHeight  = 160.0
	TooltipOffset  = 16.0
	TooltipPadding = 16.0
)

// TooltipContent is what the tooltip shows for a hit.
type TooltipContent struct {
	Title string
	Color protview.Color
	Lines []string
}

func (t TooltipContent) String() string {
	return t.Title + "\n" + strings.Join(t.Lines, "\n")
}

// Tooltip returns the tooltip for h. Classified residues show the full
// amino acid data, anything else just the residue and the element.
func Tooltip(h *Hit) TooltipContent {
	if h == nil {
		return TooltipContent{}
	}
	if aa := h.AminoAcid; aa != nil {
		return TooltipContent{
			Title: aa.FullName,
			Color: protview.TypeColor(aa.Type),
			Lines: []string{
				fmt.Sprintf("residue #%d", h.ResidueIndex),
				fmt.Sprintf("code: %c / %s", aa.Code, aa.ThreeLetter),
				fmt.Sprintf("type: %s", aa.Type),
				fmt.Sprintf("molecular weight: %.2f da", aa.MolecularWeight),
			},
		}
	}
	chain := h.ChainID
	if chain == "" {
		chain = "-"
	}
	return TooltipContent{
		Title: h.ResidueName,
		Color: protview.ElementColor(h.Element),
		Lines: []string{
			fmt.Sprintf("residue #%d, chain %s", h.ResidueIndex, chain),
			fmt.Sprintf("element: %s", h.Element),
		},
	}
}

// Place returns the top-left corner for a w x h tooltip shown for the
// pointer at (x, y). The tooltip goes below and right of the pointer,
// and flips to the other side when it would leave the viewport.
func Place(vp Viewport, x, y, w, h float64) (float64, float64) {
	left, top := x+TooltipOffset, y+TooltipOffset
	if left+w > vp.Left+vp.Width-TooltipPadding {
		left = x - w - TooltipOffset
	}
	if top+h > vp.Top+vp.Height-TooltipPadding {
		top = y - h - TooltipOffset
	}
	if left < vp.Left+TooltipPadding {
		left = vp.Left + TooltipPadding
	}
	if top < vp.Top+TooltipPadding {
		top = vp.Top + TooltipPadding
	}
	return left, top
}
