/*
 * viewer.go, part of protview.
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


//Package viewer puts together parsing, scene building, picking and the
//binding sites of an interactive protein viewer. A Viewer can be used
//from several goroutines: a new load supersedes any build still running,
//and pointer events are ignored while a build is in progress.
package viewer

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/rmera/protview"
	"github.com/rmera/protview/config"
	"github.com/rmera/protview/events"
	"github.com/rmera/protview/params"
	"github.com/rmera/protview/pick"
	"github.com/rmera/protview/scene"
	"github.com/rmera/protview/sites"
	"github.com/rmera/protview/upload"
)

var (
	ErrSuperseded  = errors.New("viewer: build superseded by a newer one")
	ErrClosed      = errors.New("viewer: closed")
	ErrNoStructure = errors.New("viewer: no structure loaded")
)

// Drawer is implemented by graphics backends that can draw a frame.
type Drawer interface {
	Draw(cam *scene.Camera) error
}

// Options are the collaborators of a Viewer. Nil fields get defaults.
type Options struct {
	Config     *config.Config
	Classifier *protview.Classifier
	Sites      *sites.Store
	Logger     *log.Logger
}

// LoadedEvent is published when a structure has been loaded and its
// scene installed.
type LoadedEvent struct {
	Name     string
	Summary  protview.Summary
	Rendered int //atoms in the scene
	Bonds    int
}

// SitesEvent is published when the binding sites or their highlights change.
type SitesEvent struct {
	Sites       []sites.Site
	Highlighted []string
}

// HoverEvent is published for each pick. Hit is nil on a miss.
type HoverEvent struct {
	X, Y float64
	Hit  *pick.Hit
}

// Viewer is an interactive structure viewer.
type Viewer struct {
	cfg     config.Config
	logger  *log.Logger
	builder *scene.Builder
	picker  *pick.Picker
	store   *sites.Store
	drawer  Drawer

	gen      atomic.Uint64
	building atomic.Int32

	mu        sync.Mutex
	structure *protview.Structure
	pending   *protview.Structure //being loaded
	stale     bool                //the filter or the sites changed during the load of pending
	name      string
	filter    scene.Filter
	current   *scene.Scene
	camera    *scene.Camera
	err       error
	closed    bool
	done      chan struct{}

	Loaded       *events.Topic[LoadedEvent]
	Failed       *events.Topic[error]
	SitesChanged *events.Topic[SitesEvent]
	Hover        *events.Topic[HoverEvent]
}

// New returns a viewer drawing in g. If g also implements Drawer, the
// redraw loop started by Run draws with it. A nil g is an error: the
// viewer can't work without graphics.
func New(g scene.Graphics, opt Options) (*Viewer, error) {
	cfg := config.Default()
	if opt.Config != nil {
		cfg = *opt.Config
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "viewer")
	}
	filter, err := cfg.Filter()
	if err != nil {
		return nil, errors.Wrap(err, "viewer")
	}
	builder, err := scene.NewBuilder(opt.Classifier, g)
	if err != nil {
		return nil, errors.Wrap(err, "viewer: initializing graphics")
	}
	logger := opt.Logger
	if logger == nil {
		logger = log.Default()
	}
	store := opt.Sites
	if store == nil {
		store = sites.NewStore()
	}
	V := &Viewer{
		cfg:          cfg,
		logger:       logger,
		builder:      builder,
		picker:       pick.NewPicker(builder.Classifier(), logger),
		store:        store,
		filter:       filter,
		camera:       scene.NewCamera(0),
		done:         make(chan struct{}),
		Loaded:       events.NewTopic[LoadedEvent]("loaded", logger),
		Failed:       events.NewTopic[error]("failed", logger),
		SitesChanged: events.NewTopic[SitesEvent]("sites", logger),
		Hover:        events.NewTopic[HoverEvent]("hover", logger),
	}
	if d, ok := g.(Drawer); ok {
		V.drawer = d
	}
	return V, nil
}

// Config returns the configuration of the viewer.
func (V *Viewer) Config() config.Config { return V.cfg }

// Sites returns the binding site store of the viewer.
func (V *Viewer) Sites() *sites.Store { return V.store }

// Err returns the error that made the viewer fail, or nil. A failed
// viewer can't be used anymore, a new one has to be created.
func (V *Viewer) Err() error {
	V.mu.Lock()
	defer V.mu.Unlock()
	return V.err
}

func (V *Viewer) usable() error {
	V.mu.Lock()
	defer V.mu.Unlock()
	if V.closed {
		return ErrClosed
	}
	return V.err
}

//fail marks the viewer as failed and tells the subscribers.
func (V *Viewer) fail(err error) {
	V.mu.Lock()
	if V.err != nil {
		V.mu.Unlock()
		return
	}
	V.err = err
	V.mu.Unlock()
	V.logger.Printf("viewer: failed: %v", err)
	V.Failed.Publish(err)
}

// Load parses content, clears the binding sites and shows the new
// structure. Content that fails validation gives the *protview.FormatError
// and leaves the viewer as it was. fileName is used to name structures
// without HEADER or TITLE records.
func (V *Viewer) Load(ctx context.Context, content, fileName string) error {
	if err := V.usable(); err != nil {
		return err
	}
	if res := protview.Validate(content); !res.Valid {
		return res.Err
	}
	s := protview.Parse(content)
	if V.cfg.Verbose {
		for _, w := range s.Warnings {
			V.logger.Printf("viewer: %s: %s", fileName, w)
		}
	}
	V.store.Clear()
	name := upload.DisplayName(content, fileName)
	V.mu.Lock()
	V.pending = s
	for {
		V.stale = false
		gen, f := V.gen.Add(1), V.filter
		V.mu.Unlock()
		sc, err := V.rebuild(ctx, gen, s, f, true)
		V.mu.Lock()
		//filter or site changes made meanwhile were left for this load.
		if err == nil && V.stale && V.pending == s {
			continue
		}
		if V.pending == s {
			V.pending = nil
		}
		if err != nil {
			V.mu.Unlock()
			return err
		}
		V.name = name
		V.mu.Unlock()
		V.Loaded.Publish(LoadedEvent{Name: name, Summary: s.Summary(), Rendered: sc.Len(), Bonds: len(sc.Bonds)})
		V.publishSites()
		return nil
	}
}

// LoadFile reads the file name through the upload checks and loads it.
func (V *Viewer) LoadFile(ctx context.Context, name string) error {
	content, err := upload.ReadFile(name, V.cfg.MaxUploadBytes)
	if err != nil {
		return err
	}
	return V.Load(ctx, content, name)
}

// rebuild tears down the current scene and builds one for s. gen must be
// taken from V.gen while holding V.mu. The new scene is installed only if
// no other build started meanwhile, otherwise it is disposed and
// ErrSuperseded returned. If frame is true the camera is moved to frame
// the new scene.
func (V *Viewer) rebuild(ctx context.Context, gen uint64, s *protview.Structure, f scene.Filter, frame bool) (*scene.Scene, error) {
	defer V.building.Add(-1)
	V.mu.Lock()
	V.building.Add(1)
	old := V.current
	V.current = nil
	V.mu.Unlock()
	if old != nil {
		if err := old.Dispose(); err != nil {
			V.logger.Printf("viewer: releasing old scene: %v", err)
		}
	}
	sc, err := V.builder.Build(ctx, s, f, V.store)
	if err != nil {
		if ctx.Err() == nil && V.gen.Load() == gen {
			V.fail(errors.Wrap(err, "viewer: building scene"))
		}
		return nil, err
	}
	V.mu.Lock()
	if V.closed {
		V.mu.Unlock()
		sc.Dispose()
		return nil, ErrClosed
	}
	if V.gen.Load() != gen {
		V.mu.Unlock()
		sc.Dispose()
		return nil, ErrSuperseded
	}
	V.current = sc
	V.structure = s
	V.filter = f
	if frame {
		V.camera.Frame(sc.MaxDistance)
	}
	V.mu.Unlock()
	return sc, nil
}

//refresh rebuilds the current structure with the filter f and the
//current sites. While a load is in progress it only records the change,
//and the load builds with it.
func (V *Viewer) refresh(ctx context.Context, f scene.Filter) error {
	if err := V.usable(); err != nil {
		return err
	}
	V.mu.Lock()
	V.filter = f
	if V.pending != nil {
		V.stale = true
		V.mu.Unlock()
		return nil
	}
	s := V.structure
	if s == nil {
		V.mu.Unlock()
		return nil
	}
	gen := V.gen.Add(1)
	V.mu.Unlock()
	_, err := V.rebuild(ctx, gen, s, f, false)
	if errors.Cause(err) == ErrSuperseded {
		//the newer build already uses f and the sites.
		return nil
	}
	return err
}

// Filter returns the current visibility filter.
func (V *Viewer) Filter() scene.Filter {
	V.mu.Lock()
	defer V.mu.Unlock()
	return V.filter
}

// SetFilter changes the visibility filter and rebuilds the scene.
func (V *Viewer) SetFilter(ctx context.Context, f scene.Filter) error {
	return V.refresh(ctx, f)
}

// Structure returns the loaded structure, or nil.
func (V *Viewer) Structure() *protview.Structure {
	V.mu.Lock()
	defer V.mu.Unlock()
	return V.structure
}

// Name returns the name of the loaded structure.
func (V *Viewer) Name() string {
	V.mu.Lock()
	defer V.mu.Unlock()
	return V.name
}

// Scene returns the current scene, or nil. The scene is owned by the
// viewer, and may be disposed at any moment by a rebuild.
func (V *Viewer) Scene() *scene.Scene {
	V.mu.Lock()
	defer V.mu.Unlock()
	return V.current
}

// Camera returns a copy of the camera.
func (V *Viewer) Camera() scene.Camera {
	V.mu.Lock()
	defer V.mu.Unlock()
	return *V.camera
}

// Snapshot returns a copy of the current scene and camera, with the
// structure name, its summary and the filter as metadata.
func (V *Viewer) Snapshot() (*scene.Snapshot, error) {
	V.mu.Lock()
	defer V.mu.Unlock()
	if V.current == nil || V.structure == nil {
		return nil, ErrNoStructure
	}
	sum := V.structure.Summary()
	meta := params.New()
	meta.Set("name", params.String(V.name))
	meta.Set("chains", params.Number(float64(sum.Chains)))
	meta.Set("residues", params.Number(float64(sum.Residues)))
	meta.Set("atoms", params.Number(float64(sum.Atoms)))
	meta.Set("rendered", params.Number(float64(V.current.Len())))
	meta.Set("backbone", params.Bool(V.current.Backbone))
	meta.Set("filter", params.String(V.current.Filter.String()))
	meta.Set("sites", params.Number(float64(V.store.Len())))
	return scene.NewSnapshot(V.current, V.camera, meta), nil
}

// Building returns true while a scene is being built.
func (V *Viewer) Building() bool {
	return V.building.Load() > 0
}

// ResetView frames the atoms currently rendered again, and moves the
// camera there.
func (V *Viewer) ResetView() {
	V.mu.Lock()
	defer V.mu.Unlock()
	if V.current == nil {
		V.camera.Reset()
		return
	}
	V.camera.Frame(V.current.MaxDistance)
}

// Zoom zooms the camera by factor, see scene.Camera.Zoom.
func (V *Viewer) Zoom(factor float64) error {
	V.mu.Lock()
	defer V.mu.Unlock()
	return V.camera.Zoom(factor)
}

// Pick returns the atom under the screen point (x, y) of vp, or nil.
// While a scene is being built every pick is a miss. Each pick is
// published in the Hover topic.
func (V *Viewer) Pick(vp pick.Viewport, x, y float64) *pick.Hit {
	var hit *pick.Hit
	V.mu.Lock()
	sc, cam := V.current, *V.camera
	ready := sc != nil && !V.Building() && !V.closed && V.err == nil
	V.mu.Unlock()
	if ready {
		hit = V.picker.Pick(sc, &cam, vp, x, y)
		//a rebuild may have started during the pick.
		if sc.Disposed() {
			hit = nil
		}
	}
	V.Hover.Publish(HoverEvent{X: x, Y: y, Hit: hit})
	return hit
}

// CreateSite adds a binding site and redraws with its highlight.
func (V *Viewer) CreateSite(ctx context.Context, d sites.Data) (sites.Site, error) {
	if d.Color == 0 {
		d.Color = V.cfg.SiteColor
	}
	s, err := V.store.Create(d)
	if err != nil {
		return s, err
	}
	return s, V.sitesChanged(ctx)
}

// ToggleSite flips the highlight of the site id.
func (V *Viewer) ToggleSite(ctx context.Context, id string) (bool, error) {
	on, err := V.store.ToggleHighlight(id)
	if err != nil {
		return on, err
	}
	return on, V.sitesChanged(ctx)
}

// DeleteSite removes the site id. Deleting an absent site does nothing.
func (V *Viewer) DeleteSite(ctx context.Context, id string) error {
	if !V.store.Delete(id) {
		return nil
	}
	return V.sitesChanged(ctx)
}

// ImportPredicted shows the predicted residues scoring at least the
// configured minimum as a new site.
func (V *Viewer) ImportPredicted(ctx context.Context, name string, preds []sites.Predicted) (sites.Site, error) {
	s, err := sites.ImportPredicted(V.store, name, V.cfg.SiteColor, preds, V.cfg.MinPredictedScore)
	if err != nil {
		return s, err
	}
	return s, V.sitesChanged(ctx)
}

func (V *Viewer) sitesChanged(ctx context.Context) error {
	V.publishSites()
	return V.refresh(ctx, V.Filter())
}

func (V *Viewer) publishSites() {
	V.SitesChanged.Publish(SitesEvent{Sites: V.store.Sites(), Highlighted: V.store.HighlightedIDs()})
}

// Run redraws the scene periodically until ctx is done or the viewer
// is closed. It returns the drawing error if a frame fails, which also
// makes the viewer fail. Without a Drawer backend Run just waits.
func (V *Viewer) Run(ctx context.Context) error {
	if err := V.usable(); err != nil {
		return err
	}
	ticker := time.NewTicker(V.cfg.RedrawInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-V.done:
			return nil
		case <-ticker.C:
			if err := V.redraw(); err != nil {
				V.fail(errors.Wrap(err, "viewer: drawing"))
				return V.Err()
			}
		}
	}
}

func (V *Viewer) redraw() error {
	if V.drawer == nil || V.Building() {
		return nil
	}
	V.mu.Lock()
	defer V.mu.Unlock()
	if V.current == nil || V.closed {
		return nil
	}
	return V.drawer.Draw(V.camera)
}

// Close stops the redraw loop and releases the scene. It can be called
// more than once.
func (V *Viewer) Close() error {
	V.mu.Lock()
	if V.closed {
		V.mu.Unlock()
		return nil
	}
	V.closed = true
	close(V.done)
	sc := V.current
	V.current = nil
	V.mu.Unlock()
	V.gen.Add(1)
	if sc != nil {
		return sc.Dispose()
	}
	return nil
}
