/*
 * predicted.go, part of protview.
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
	"encoding/json"
	"io"
	"sort"

	"github.com/pkg/errors"

	"github.com/rmera/protview"
)

// Point is a position in space, in A.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Predicted is a residue scored by an external binding-site predictor.
// Scores and confidences go from 0 to 1.
type Predicted struct {
	ResidueID    string  `json:"residueId"`
	ChainID      string  `json:"chainId"`
	ResidueName  string  `json:"residueName"`
	Position     int     `json:"position"`
	BindingScore float64 `json:"bindingScore"`
	Confidence   float64 `json:"confidence"`
	Coordinates  *Point  `json:"coordinates,omitempty"`
}

// Prediction is the output of a prediction run.
type Prediction struct {
	ID              string      `json:"_id"`
	OverallScore    float64     `json:"overallScore"`
	ConfidenceScore float64     `json:"confidenceScore"`
	BindingSites    []Predicted `json:"bindingSites"`
	ModelName       string      `json:"modelName"`
	ModelVersion    string      `json:"modelVersion"`
	InferenceTime   float64     `json:"inferenceTime"`
	Status          string      `json:"status"`
}

// ReadPrediction decodes a JSON prediction from r.
func ReadPrediction(r io.Reader) (*Prediction, error) {
	p := new(Prediction)
	if err := json.NewDecoder(r).Decode(p); err != nil {
		return nil, errors.Wrap(err, "sites: decoding prediction")
	}
	return p, nil
}

// Band is a qualitative range of binding scores.
type Band int

const (
	LowScore Band = iota
	FairScore
	GoodScore
	HighScore
)

func (b Band) String() string {
	return [...]string{"low", "fair", "good", "high"}[b]
}

// Color returns the display color for the band.
func (b Band) Color() protview.Color {
	return [...]protview.Color{0xef4444, 0xeab308, 0x3b82f6, 0x22c55e}[b]
}

// ScoreBand returns the band for a binding score.
func ScoreBand(score float64) Band {
	switch {
	case score >= 0.8:
		return HighScore
	case score >= 0.6:
		return GoodScore
	case score >= 0.4:
		return FairScore
	}
	return LowScore
}

// SortPredicted sorts p in place, by descending binding score if byScore
// is true, by ascending position otherwise. The sort is stable.
func SortPredicted(p []Predicted, byScore bool) {
	if byScore {
		sort.SliceStable(p, func(i, j int) bool { return p[i].BindingScore > p[j].BindingScore })
		return
	}
	sort.SliceStable(p, func(i, j int) bool { return p[i].Position < p[j].Position })
}

// ImportPredicted creates in store one site with the positions of the
// predicted residues scoring at least minScore. The predictions are only
// displayed, nothing is scored here.
func ImportPredicted(store *Store, name string, color protview.Color, preds []Predicted, minScore float64) (Site, error) {
	var res []int
	for _, p := range preds {
		if p.BindingScore >= minScore {
			res = append(res, p.Position)
		}
	}
	if len(res) == 0 {
		return Site{}, errors.Wrapf(ErrNoResidues, "no predicted residue scores %.2f or more", minScore)
	}
	return store.Create(Data{Name: name, ResidueIndices: res, Color: color})
}
