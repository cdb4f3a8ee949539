/*
 * store.go, part of protview.
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
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/rmera/protview"
)

// Error is the error type of the package.
type Error string

func (err Error) Error() string { return "sites: " + string(err) }

const (
	ErrNoName     = Error("a site needs a name")
	ErrNoResidues = Error("a site needs at least one residue")
	ErrNoSite     = Error("no such site")
)

// Store is a registry of binding sites with their highlight state.
// It is safe for concurrent use.
type Store struct {
	mu          sync.RWMutex
	order       []string //ids in creation order
	sites       map[string]*Site
	highlighted map[string]bool
	newID       func() string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		sites:       make(map[string]*Site),
		highlighted: make(map[string]bool),
		newID:       func() string { return "site-" + uuid.NewString() },
	}
}

// Create adds a site built from d and returns it. The name is lowercased,
// the residues sorted and deduplicated, and a zero color is replaced by
// DefaultColor. New sites start highlighted. The id is never reused.
func (S *Store) Create(d Data) (Site, error) {
	name := strings.ToLower(strings.TrimSpace(d.Name))
	if name == "" {
		return Site{}, ErrNoName
	}
	if len(d.ResidueIndices) == 0 {
		return Site{}, ErrNoResidues
	}
	s := &Site{
		Name:           name,
		ResidueIndices: uniqueSorted(d.ResidueIndices),
		Color:          d.Color,
	}
	if s.Color == 0 {
		s.Color = DefaultColor
	}
	if d.Affinity != nil {
		a := *d.Affinity
		s.Affinity = &a
	}
	S.mu.Lock()
	defer S.mu.Unlock()
	s.ID = S.newID()
	S.sites[s.ID] = s
	S.order = append(S.order, s.ID)
	S.highlighted[s.ID] = true
	return s.clone(), nil
}

// Get returns the site with the given id.
func (S *Store) Get(id string) (Site, bool) {
	S.mu.RLock()
	defer S.mu.RUnlock()
	s, ok := S.sites[id]
	if !ok {
		return Site{}, false
	}
	return s.clone(), true
}

// Sites returns all the sites, in creation order.
func (S *Store) Sites() []Site {
	S.mu.RLock()
	defer S.mu.RUnlock()
	ret := make([]Site, 0, len(S.order))
	for _, id := range S.order {
		ret = append(ret, S.sites[id].clone())
	}
	return ret
}

// Len returns the number of sites.
func (S *Store) Len() int {
	S.mu.RLock()
	defer S.mu.RUnlock()
	return len(S.order)
}

// ToggleHighlight adds id to the highlighted set if it is not there, and
// removes it otherwise. It returns the new state. Unknown ids give ErrNoSite.
func (S *Store) ToggleHighlight(id string) (bool, error) {
	S.mu.Lock()
	defer S.mu.Unlock()
	if _, ok := S.sites[id]; !ok {
		return false, ErrNoSite
	}
	if S.highlighted[id] {
		delete(S.highlighted, id)
		return false, nil
	}
	S.highlighted[id] = true
	return true, nil
}

// Highlighted returns true if the site id is highlighted.
func (S *Store) Highlighted(id string) bool {
	S.mu.RLock()
	defer S.mu.RUnlock()
	return S.highlighted[id]
}

// HighlightedIDs returns the highlighted ids in creation order.
func (S *Store) HighlightedIDs() []string {
	S.mu.RLock()
	defer S.mu.RUnlock()
	var ret []string
	for _, id := range S.order {
		if S.highlighted[id] {
			ret = append(ret, id)
		}
	}
	return ret
}

// Delete removes the site id from the registry and from the highlighted
// set. Deleting an absent id does nothing. It returns true if something
// was removed.
func (S *Store) Delete(id string) bool {
	S.mu.Lock()
	defer S.mu.Unlock()
	delete(S.highlighted, id)
	if _, ok := S.sites[id]; !ok {
		return false
	}
	delete(S.sites, id)
	for i, v := range S.order {
		if v == id {
			S.order = append(S.order[:i], S.order[i+1:]...)
			break
		}
	}
	return true
}

// Clear removes every site.
func (S *Store) Clear() {
	S.mu.Lock()
	defer S.mu.Unlock()
	S.order = nil
	S.sites = make(map[string]*Site)
	S.highlighted = make(map[string]bool)
}

// SiteColor returns the color of the first highlighted site, in creation
// order, that contains the residue number seq.
func (S *Store) SiteColor(seq int) (protview.Color, bool) {
	S.mu.RLock()
	defer S.mu.RUnlock()
	for _, id := range S.order {
		if !S.highlighted[id] {
			continue
		}
		if s := S.sites[id]; s.Contains(seq) {
			return s.Color, true
		}
	}
	return 0, false
}
