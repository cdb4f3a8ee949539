/*
 * build.go, part of protview.
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
	"sort"

	"gonum.org/v1/gonum/stat"
)

//buildModel groups the atoms of s into residues, by chain and residue number,
//and the residues into chains. Chains keep the order in which they first
//appear in the file, while the residues in each chain are sorted by sequence
//number, since PDB files are not guaranteed to be sequential.
func buildModel(s *Structure) {
	resmap := make(map[ResidueKey]*Residue)
	chainmap := make(map[string]*Chain)
	s.Residues = s.Residues[:0]
	s.Chains = s.Chains[:0]
	for _, at := range s.Atoms {
		key := ResidueKey{at.ChainID, at.ResSeq}
		res, ok := resmap[key]
		if !ok {
			res = &Residue{ChainID: at.ChainID, ResSeq: at.ResSeq, ResName: at.ResName}
			resmap[key] = res
			s.Residues = append(s.Residues, res)
			chain, ok := chainmap[at.ChainID]
			if !ok {
				chain = &Chain{ID: at.ChainID}
				chainmap[at.ChainID] = chain
				s.Chains = append(s.Chains, chain)
			}
			chain.Residues = append(chain.Residues, res)
		}
		res.Atoms = append(res.Atoms, at)
	}
	for _, c := range s.Chains {
		sort.SliceStable(c.Residues, func(i, j int) bool {
			return c.Residues[i].ResSeq < c.Residues[j].ResSeq
		})
	}
}

// Summary contains counts and statistics of a structure, for display.
type Summary struct {
	Chains         int
	Residues       int
	Atoms          int
	Helices        int
	Sheets         int
	Models         int
	Warnings       int
	MeanTempFactor float64
	StdTempFactor  float64
}

// Summary returns the summary of S.
func (S *Structure) Summary() Summary {
	ret := Summary{
		Chains:   len(S.Chains),
		Residues: len(S.Residues),
		Atoms:    len(S.Atoms),
		Helices:  len(S.Helices),
		Sheets:   len(S.Sheets),
		Models:   S.Models,
		Warnings: len(S.Warnings),
	}
	if len(S.Atoms) == 0 {
		return ret
	}
	bfacs := make([]float64, len(S.Atoms))
	weights := make([]float64, len(S.Atoms))
	for i, a := range S.Atoms {
		bfacs[i] = a.TempFactor
		weights[i] = a.Occupancy
	}
	if len(bfacs) > 1 {
		ret.MeanTempFactor, ret.StdTempFactor = stat.MeanStdDev(bfacs, weights)
	} else {
		ret.MeanTempFactor = bfacs[0]
	}
	return ret
}

// Sequence returns the one-letter sequence of the chain with identifier chainID,
// using the classifier c. Residues not in the table are given as 'X'.
// An empty string is returned if there is no such chain.
func (S *Structure) Sequence(chainID string, c *Classifier) string {
	chain := S.Chain(chainID)
	if chain == nil {
		return ""
	}
	seq := make([]byte, 0, len(chain.Residues))
	for _, r := range chain.Residues {
		if info, ok := c.Residue(r.ResName); ok {
			seq = append(seq, info.Code)
		} else {
			seq = append(seq, 'X')
		}
	}
	return string(seq)
}
