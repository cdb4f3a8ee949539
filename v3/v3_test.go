/*
 * v3_test.go, part of protview.
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

package v3

import (
	"math"
	"testing"
)

func TestNewMatrix(Te *testing.T) {
	if _, err := NewMatrix([]float64{1, 2}); err == nil {
		Te.Error("A slice of length 2 should not make a matrix")
	}
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 2 {
		Te.Errorf("Expected 2 vectors, got %d", A.NVecs())
	}
	if v := A.Vec(1); v != [3]float64{4, 5, 6} {
		Te.Errorf("Wrong second vector %v", v)
	}
	view := A.VecView(1)
	view.Set(0, 0, 100)
	if A.At(1, 0) != 100 {
		Te.Error("VecView should share its data with the original matrix")
	}
	if Zeros(0).NVecs() != 0 {
		Te.Error("Zeros(0) should have no vectors")
	}
}

func TestCentroidAndDistance(Te *testing.T) {
	A, _ := NewMatrix([]float64{
		1, 0, 0,
		-1, 0, 0,
		0, 3, 0,
		0, -3, 4,
	})
	c, err := Centroid(A)
	if err != nil {
		Te.Fatal(err)
	}
	if v := c.Vec(0); v != [3]float64{0, 0, 1} {
		Te.Errorf("Wrong centroid %v", v)
	}
	B := Zeros(A.NVecs())
	B.SubVec(A, c)
	if v := B.Vec(3); v != [3]float64{0, -3, 3} {
		Te.Errorf("Wrong centered vector %v", v)
	}
	origin := Zeros(1)
	if d := MaxDistance(B, origin); math.Abs(d-math.Sqrt(18)) > 1e-9 {
		Te.Errorf("Wrong max distance %f", d)
	}
	norms := B.Norms()
	if math.Abs(norms[0]-math.Sqrt(2)) > 1e-9 {
		Te.Errorf("Wrong norm %f", norms[0])
	}
	B.AddVec(B, c)
	if v := B.Vec(2); v != A.Vec(2) {
		Te.Errorf("AddVec should revert SubVec, got %v", v)
	}
	if _, err := Centroid(Zeros(0)); err == nil {
		Te.Error("The centroid of nothing should be an error")
	}
}
