/*
 * affinity.go, part of protview.
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

package sites

import (
	"fmt"

	"github.com/rmera/protview"
)

// AffinityLabel returns the qualitative label for a Kd, in nM.
// Lower is tighter.
func AffinityLabel(kd float64) string {
	switch {
	case kd <= 1:
		return "excellent"
	case kd <= 10:
		return "strong"
	case kd <= 100:
		return "moderate"
	case kd <= 1000:
		return "weak"
	}
	return "very weak"
}

// FormatAffinity returns kd, in nM, in a readable unit: pM under 1 nM,
// uM from 1000 nM on.
func FormatAffinity(kd float64) string {
	switch {
	case kd < 1:
		return fmt.Sprintf("%.0f pM", kd*1000)
	case kd >= 1000:
		return fmt.Sprintf("%.1f µM", kd/1000)
	}
	return fmt.Sprintf("%.1f nM", kd)
}

// AffinityColor returns the color for a Kd, in nM, from green for
// tight binders to red for the weakest.
func AffinityColor(kd float64) protview.Color {
	switch {
	case kd <= 1:
		return 0x10b981
	case kd <= 10:
		return 0x22c55e
	case kd <= 100:
		return 0x84cc16
	case kd <= 1000:
		return 0xeab308
	case kd <= 10000:
		return 0xf59e0b
	}
	return 0xef4444
}
