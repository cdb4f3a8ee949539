/*
 * export.go, part of protview.
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
	"encoding/json"
	"io"
	"os"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/rmera/protview"
	"github.com/rmera/protview/internal/zio"
	"github.com/rmera/protview/params"
)

// SnapshotAtom is a rendered atom in a snapshot.
type SnapshotAtom struct {
	Serial      int            `json:"serial"`
	Name        string         `json:"name"`
	ResName     string         `json:"resName"`
	ChainID     string         `json:"chainId"`
	ResSeq      int            `json:"resSeq"`
	Element     string         `json:"element"`
	Position    [3]float64     `json:"position"`
	Radius      float64        `json:"radius"`
	Color       protview.Color `json:"color"`
	Highlighted bool           `json:"highlighted,omitempty"`
}

// SnapshotCamera is the camera state in a snapshot.
type SnapshotCamera struct {
	Position [3]float64 `json:"position"`
	Target   [3]float64 `json:"target"`
	FOV      float64    `json:"fov"`
}

// Snapshot is a serializable copy of a scene. Bonds are pairs of
// indexes in Atoms.
type Snapshot struct {
	Meta   *params.Params `json:"meta"`
	Camera SnapshotCamera `json:"camera"`
	Atoms  []SnapshotAtom `json:"atoms"`
	Bonds  [][2]int       `json:"bonds"`
}

func vec(v r3.Vec) [3]float64 { return [3]float64{v.X, v.Y, v.Z} }

// NewSnapshot copies the state of sc and cam. meta can be nil.
func NewSnapshot(sc *Scene, cam *Camera, meta *params.Params) *Snapshot {
	if meta == nil {
		meta = params.New()
	}
	snap := &Snapshot{Meta: meta, Atoms: make([]SnapshotAtom, 0, sc.Len())}
	if cam != nil {
		snap.Camera = SnapshotCamera{vec(cam.Position), vec(cam.Target), cam.FOV}
	}
	index := make(map[*Sphere]int, sc.Len())
	for i, s := range sc.Spheres {
		index[s] = i
		snap.Atoms = append(snap.Atoms, SnapshotAtom{
			Serial:      s.Atom.Serial,
			Name:        s.Atom.Name,
			ResName:     s.Atom.ResName,
			ChainID:     s.ChainID,
			ResSeq:      s.ResSeq,
			Element:     s.Atom.Element,
			Position:    vec(s.Center),
			Radius:      s.Radius,
			Color:       s.Color,
			Highlighted: s.Highlighted,
		})
	}
	snap.Bonds = make([][2]int, 0, len(sc.Bonds))
	for _, b := range sc.Bonds {
		snap.Bonds = append(snap.Bonds, [2]int{index[b.From], index[b.To]})
	}
	return snap
}

// Write encodes the snapshot as JSON to w, compressed with format f.
func (S *Snapshot) Write(w io.Writer, f zio.Format) error {
	zw, err := zio.NewWriter(w, f)
	if err != nil {
		return errDecorate(err, "Write")
	}
	enc := json.NewEncoder(zw)
	if f == zio.Plain {
		enc.SetIndent("", " ")
	}
	if err := enc.Encode(S); err != nil {
		zw.Close()
		return errDecorate(err, "Write")
	}
	if err := zw.Close(); err != nil {
		return errDecorate(err, "Write")
	}
	return nil
}

// WriteFile writes the snapshot to the file name. The compression is
// chosen from the extension: .zst for zstd, .gz for gzip, plain JSON otherwise.
func (S *Snapshot) WriteFile(name string) error {
	fout, err := os.Create(name)
	if err != nil {
		return errDecorate(err, "WriteFile")
	}
	if err := S.Write(fout, zio.FormatOf(name)); err != nil {
		fout.Close()
		return errDecorate(err, "WriteFile")
	}
	if err := fout.Close(); err != nil {
		return errDecorate(err, "WriteFile")
	}
	return nil
}

// ReadSnapshot decodes a snapshot written with format f from r.
func ReadSnapshot(r io.Reader, f zio.Format) (*Snapshot, error) {
	zr, err := zio.NewReader(r, f)
	if err != nil {
		return nil, errDecorate(err, "ReadSnapshot")
	}
	defer zr.Close()
	snap := &Snapshot{Meta: params.New()}
	if err := json.NewDecoder(zr).Decode(snap); err != nil {
		return nil, errDecorate(err, "ReadSnapshot")
	}
	return snap, nil
}

// ReadSnapshotFile reads a snapshot from the file name. See WriteFile.
func ReadSnapshotFile(name string) (*Snapshot, error) {
	fin, err := os.Open(name)
	if err != nil {
		return nil, errDecorate(err, "ReadSnapshotFile")
	}
	defer fin.Close()
	return ReadSnapshot(fin, zio.FormatOf(name))
}
