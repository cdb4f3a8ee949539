/*
 * app.go, part of protview.
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

//Package app is the protview command line program.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	perrors "github.com/pkg/errors"
	"gonum.org/v1/plot/vg"

	"github.com/rmera/protview"
	"github.com/rmera/protview/config"
	"github.com/rmera/protview/internal/zio"
	"github.com/rmera/protview/pick"
	"github.com/rmera/protview/render"
	"github.com/rmera/protview/scene"
	"github.com/rmera/protview/sites"
	"github.com/rmera/protview/upload"
	"github.com/rmera/protview/viewer"
)

// Exit codes.
const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

//screen resolution assumed to turn viewport pixels into plot lengths.
const dpi = 96

type command struct {
	name    string
	summary string
	run     func(ctx context.Context, e *env, o *options, file string) int
}

var commands = []command{
	{"info", "print a summary of the structure", runInfo},
	{"validate", "check that the file is a usable PDB file", runValidate},
	{"name", "print the protein name", runName},
	{"render", "draw the structure to an image", runRender},
	{"pick", "print what is under a screen point", runPick},
	{"export", "write a scene snapshot (JSON, optionally .gz or .zst)", runExport},
}

type env struct {
	stdout, stderr io.Writer
	cfg            config.Config
	logger         *log.Logger
}

type options struct {
	config    string
	verbose   bool
	visible   string
	site      string
	predicted string
	zoom      float64
	out       string
	x, y      float64
}

func newFlagSet(name string, o *options) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.StringVar(&o.config, "config", "", "YAML configuration file")
	fs.BoolVar(&o.verbose, "v", false, "report skipped lines")
	switch name {
	case "render", "pick", "export":
		fs.StringVar(&o.visible, "visible", "", "visible residue types, comma separated, or all/none")
		fs.StringVar(&o.site, "site", "", "residue numbers to highlight, comma separated")
		fs.StringVar(&o.predicted, "predicted", "", "JSON prediction whose residues are highlighted")
		fs.Float64Var(&o.zoom, "zoom", 1, "zoom factor")
	}
	switch name {
	case "render", "export":
		fs.StringVar(&o.out, "o", "", "output file")
	case "pick":
		fs.Float64Var(&o.x, "x", 0, "screen x, pixels from the left")
		fs.Float64Var(&o.y, "y", 0, "screen y, pixels from the top")
	}
	return fs
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: protview <command> [flags] file")
	fmt.Fprintln(w, "\ncommands:")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-9s %s\n", c.name, c.summary)
	}
	fmt.Fprintln(w, "\nrun 'protview <command> -h' for the flags of a command.")
}

func commandUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, "usage: protview %s [flags] file\n\nflags:\n", fs.Name())
	fs.SetOutput(w)
	fs.PrintDefaults()
	fs.SetOutput(io.Discard)
}

// RunContext runs the command line in argv and returns the exit code.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	if len(argv) == 0 || argv[0] == "-h" || argv[0] == "-help" || argv[0] == "help" {
		usage(stdout)
		return exitOK
	}
	var cmd *command
	for i := range commands {
		if commands[i].name == argv[0] {
			cmd = &commands[i]
		}
	}
	if cmd == nil {
		fmt.Fprintf(stderr, "protview: unknown command %q\n", argv[0])
		usage(stderr)
		return exitUsage
	}
	o := new(options)
	fs := newFlagSet(cmd.name, o)
	if err := fs.Parse(argv[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			commandUsage(stdout, fs)
			return exitOK
		}
		fmt.Fprintln(stderr, "protview:", err)
		commandUsage(stderr, fs)
		return exitUsage
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(stderr, "protview: %s needs exactly one file\n", cmd.name)
		commandUsage(stderr, fs)
		return exitUsage
	}
	e, err := setup(o, stdout, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "protview:", err)
		return exitUsage
	}
	return cmd.run(ctx, e, o, fs.Arg(0))
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

//setup loads the configuration file, if any, and applies the flags over it.
func setup(o *options, stdout, stderr io.Writer) (*env, error) {
	cfg := config.Default()
	if o.config != "" {
		var err error
		if cfg, err = config.Load(o.config); err != nil {
			return nil, err
		}
	}
	if o.verbose {
		cfg.Verbose = true
	}
	if o.visible != "" {
		cfg.Visible = strings.Split(o.visible, ",")
		if _, err := cfg.Filter(); err != nil {
			return nil, err
		}
	}
	return &env{stdout: stdout, stderr: stderr, cfg: cfg, logger: log.New(stderr, "protview: ", 0)}, nil
}

func (e *env) fail(err error) int {
	fmt.Fprintln(e.stderr, "protview:", err)
	return exitFail
}

func (e *env) read(file string) (string, error) {
	return upload.ReadFile(file, e.cfg.MaxUploadBytes)
}

func runValidate(ctx context.Context, e *env, o *options, file string) int {
	content, err := e.read(file)
	if err != nil {
		return e.fail(err)
	}
	res := protview.Validate(content)
	if !res.Valid {
		fmt.Fprintf(e.stdout, "%s: invalid: %s\n", file, res.Err.Reason())
		return exitFail
	}
	fmt.Fprintf(e.stdout, "%s: ok\n", file)
	return exitOK
}

func runName(ctx context.Context, e *env, o *options, file string) int {
	content, err := e.read(file)
	if err != nil {
		return e.fail(err)
	}
	fmt.Fprintln(e.stdout, protview.ExtractProteinName(content))
	return exitOK
}

func runInfo(ctx context.Context, e *env, o *options, file string) int {
	content, err := e.read(file)
	if err != nil {
		return e.fail(err)
	}
	if res := protview.Validate(content); !res.Valid {
		return e.fail(res.Err)
	}
	s := protview.Parse(content)
	sum := s.Summary()
	w := e.stdout
	fmt.Fprintf(w, "name:     %s\n", upload.DisplayName(content, file))
	fmt.Fprintf(w, "atoms:    %d\n", sum.Atoms)
	fmt.Fprintf(w, "residues: %d\n", sum.Residues)
	fmt.Fprintf(w, "chains:   %d\n", sum.Chains)
	fmt.Fprintf(w, "helices:  %d\n", sum.Helices)
	fmt.Fprintf(w, "sheets:   %d\n", sum.Sheets)
	if sum.Models > 0 {
		fmt.Fprintf(w, "models:   %d (merged)\n", sum.Models)
	}
	fmt.Fprintf(w, "b-factor: %.2f +/- %.2f\n", sum.MeanTempFactor, sum.StdTempFactor)
	fmt.Fprintf(w, "skipped:  %d\n", sum.Warnings)
	c := protview.NewClassifier()
	for _, ch := range s.Chains {
		id := ch.ID
		if id == "" {
			id = "-"
		}
		fmt.Fprintf(w, "chain %s: %s\n", id, s.Sequence(ch.ID, c))
	}
	if e.cfg.Verbose {
		for _, v := range s.Warnings {
			fmt.Fprintf(w, "skipped %s\n", v)
		}
	}
	return exitOK
}

//open loads file in a new viewer drawing on g, and applies the site and
//zoom options.
func (e *env) open(ctx context.Context, g scene.Graphics, o *options, file string) (*viewer.Viewer, error) {
	v, err := viewer.New(g, viewer.Options{Config: &e.cfg, Logger: e.logger})
	if err != nil {
		return nil, err
	}
	if err := v.LoadFile(ctx, file); err != nil {
		v.Close()
		return nil, err
	}
	if o.site != "" {
		res := sites.ParseResidueList(o.site)
		if _, err := v.CreateSite(ctx, sites.Data{Name: "selection", ResidueIndices: res}); err != nil {
			v.Close()
			return nil, err
		}
	}
	if o.predicted != "" {
		f, err := os.Open(o.predicted)
		if err != nil {
			v.Close()
			return nil, perrors.Wrap(err, "reading prediction")
		}
		p, err := sites.ReadPrediction(f)
		f.Close()
		if err != nil {
			v.Close()
			return nil, err
		}
		name := p.ModelName
		if name == "" {
			name = "predicted"
		}
		if _, err := v.ImportPredicted(ctx, name, p.BindingSites); err != nil {
			v.Close()
			return nil, err
		}
	}
	if o.zoom != 1 {
		if err := v.Zoom(o.zoom); err != nil {
			v.Close()
			return nil, err
		}
	}
	return v, nil
}

func pixels(n int) vg.Length {
	return vg.Length(n) * vg.Inch / dpi
}

//output returns the name given with -o, or the input name with its
//extensions replaced by ext.
func output(o *options, file, ext string) string {
	if o.out != "" {
		return o.out
	}
	base := zio.Strip(file)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ext
}

func runRender(ctx context.Context, e *env, o *options, file string) int {
	c := render.NewCanvas(pixels(e.cfg.Viewport.Width), pixels(e.cfg.Viewport.Height))
	v, err := e.open(ctx, c, o, file)
	if err != nil {
		return e.fail(err)
	}
	defer v.Close()
	c.Title = v.Name()
	out := output(o, file, ".png")
	cam := v.Camera()
	if err := c.Save(out, &cam); err != nil {
		return e.fail(err)
	}
	fmt.Fprintf(e.stdout, "wrote %s (%d atoms, %d bonds)\n", out, v.Scene().Len(), len(v.Scene().Bonds))
	return exitOK
}

func runPick(ctx context.Context, e *env, o *options, file string) int {
	v, err := e.open(ctx, scene.NewMemGraphics(), o, file)
	if err != nil {
		return e.fail(err)
	}
	defer v.Close()
	vp := pick.Viewport{Width: float64(e.cfg.Viewport.Width), Height: float64(e.cfg.Viewport.Height)}
	hit := v.Pick(vp, o.x, o.y)
	if hit == nil {
		fmt.Fprintf(e.stdout, "nothing at %g,%g\n", o.x, o.y)
		return exitOK
	}
	tip := pick.Tooltip(hit)
	fmt.Fprintf(e.stdout, "%s (%s)\n", tip.Title, tip.Color)
	for _, l := range tip.Lines {
		fmt.Fprintln(e.stdout, " ", l)
	}
	fmt.Fprintf(e.stdout, "  atom %s %d, chain %s, %.2f A from the camera\n", hit.Atom.Name, hit.Atom.Serial, hit.ChainID, hit.Distance)
	return exitOK
}

func runExport(ctx context.Context, e *env, o *options, file string) int {
	v, err := e.open(ctx, scene.NewMemGraphics(), o, file)
	if err != nil {
		return e.fail(err)
	}
	defer v.Close()
	snap, err := v.Snapshot()
	if err != nil {
		return e.fail(err)
	}
	out := output(o, file, ".json"+zio.Zstd.Ext())
	if err := snap.WriteFile(out); err != nil {
		return e.fail(err)
	}
	fmt.Fprintf(e.stdout, "wrote %s\n", out)
	return exitOK
}
