/*
 * graphics.go, part of protview.
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
	"fmt"
	"sort"
	"sync"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/rmera/protview"
)

// Handle identifies a resource allocated by a Graphics backend.
// The zero Handle is never returned by a successful allocation.
type Handle uint64

// Graphics is a drawing backend. Every handle it returns must be
// given back through Release, the backend does not reclaim anything
// on its own.
type Graphics interface {
	NewSphere(center r3.Vec, radius float64, color protview.Color) (Handle, error)
	NewSegment(from, to r3.Vec, color protview.Color) (Handle, error)
	Release(h Handle) error
}

// ShapeKind tells spheres and segments apart.
type ShapeKind int

const (
	SphereShape ShapeKind = iota
	SegmentShape
)

// Shape is a live resource in a MemGraphics.
type Shape struct {
	Handle Handle
	Kind   ShapeKind
	From   r3.Vec //center, for spheres
	To     r3.Vec //unused for spheres
	Radius float64
	Color  protview.Color
}

// MemGraphics is a Graphics backend that just keeps its shapes in
// memory. It is safe for concurrent use, and it keeps track of
// live handles, so leaks can be detected.
type MemGraphics struct {
	mu        sync.Mutex
	next      Handle
	live      map[Handle]Shape
	failAfter int //if >0, allocations fail after this many succeed.
	allocated int
}

// NewMemGraphics returns an empty in-memory backend.
func NewMemGraphics() *MemGraphics {
	return &MemGraphics{live: make(map[Handle]Shape)}
}

// FailAfter makes the backend refuse allocations once n more of them
// have succeeded. n<=0 disables the failure.
func (M *MemGraphics) FailAfter(n int) {
	M.mu.Lock()
	defer M.mu.Unlock()
	M.failAfter = n
	M.allocated = 0
}

func (M *MemGraphics) alloc(s Shape) (Handle, error) {
	M.mu.Lock()
	defer M.mu.Unlock()
	if M.failAfter > 0 && M.allocated >= M.failAfter {
		return 0, ErrOutOfResources
	}
	M.allocated++
	M.next++
	s.Handle = M.next
	M.live[s.Handle] = s
	return s.Handle, nil
}

func (M *MemGraphics) NewSphere(center r3.Vec, radius float64, color protview.Color) (Handle, error) {
	return M.alloc(Shape{Kind: SphereShape, From: center, Radius: radius, Color: color})
}

func (M *MemGraphics) NewSegment(from, to r3.Vec, color protview.Color) (Handle, error) {
	return M.alloc(Shape{Kind: SegmentShape, From: from, To: to, Color: color})
}

// Release frees h. Releasing an unknown or already released handle is an error.
func (M *MemGraphics) Release(h Handle) error {
	M.mu.Lock()
	defer M.mu.Unlock()
	if _, ok := M.live[h]; !ok {
		return Error{message: fmt.Sprintf("handle %d is not live", h), deco: []string{"Release"}}
	}
	delete(M.live, h)
	return nil
}

// Live returns the number of live handles.
func (M *MemGraphics) Live() int {
	M.mu.Lock()
	defer M.mu.Unlock()
	return len(M.live)
}

// Shapes returns the live shapes, ordered by handle.
func (M *MemGraphics) Shapes() []Shape {
	M.mu.Lock()
	ret := make([]Shape, 0, len(M.live))
	for _, v := range M.live {
		ret = append(ret, v)
	}
	M.mu.Unlock()
	sort.Slice(ret, func(i, j int) bool { return ret[i].Handle < ret[j].Handle })
	return ret
}
