/*
 * app_test.go, part of protview.
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

package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rmera/protview/scene"
)

const mini = "../../test/mini.pdb"

func run(args ...string) (int, string, string) {
	var out, errb bytes.Buffer
	code := Run(args, &out, &errb)
	return code, out.String(), errb.String()
}

func TestUsage(Te *testing.T) {
	code, out, _ := run()
	if code != 0 || !strings.Contains(out, "usage: protview") || !strings.Contains(out, "export") {
		Te.Errorf("Wrong usage output (%d): %s", code, out)
	}
	if code, _, errs := run("frobnicate", mini); code != 2 || !strings.Contains(errs, "unknown command") {
		Te.Errorf("Unknown commands are usage errors, got %d %s", code, errs)
	}
	if code, out, _ := run("render", "-h"); code != 0 || !strings.Contains(out, "-visible") {
		Te.Errorf("Wrong help for render (%d): %s", code, out)
	}
	if code, _, _ := run("info"); code != 2 {
		Te.Error("A missing file is a usage error")
	}
	if code, _, _ := run("info", "-nope", mini); code != 2 {
		Te.Error("Unknown flags are usage errors")
	}
	if code, _, _ := run("render", "-visible", "acidic", mini); code != 2 {
		Te.Error("Unknown residue types are usage errors")
	}
}

func TestValidateAndName(Te *testing.T) {
	code, out, _ := run("validate", mini)
	if code != 0 || !strings.HasSuffix(out, ": ok\n") {
		Te.Errorf("mini.pdb should be valid (%d): %s", code, out)
	}
	dir := Te.TempDir()
	empty := filepath.Join(dir, "empty.pdb")
	if err := os.WriteFile(empty, []byte("HEADER    NOTHING\n"), 0644); err != nil {
		Te.Fatal(err)
	}
	code, out, _ = run("validate", empty)
	if code != 1 || !strings.Contains(out, "no atom records") {
		Te.Errorf("Expected an invalid file (%d): %s", code, out)
	}
	if code, _, errs := run("validate", filepath.Join(dir, "x.txt")); code != 1 || errs == "" {
		Te.Error("Missing files should fail")
	}
	code, out, _ = run("name", mini)
	if code != 0 || out != "hydrolase/test peptide\n" {
		Te.Errorf("Wrong name (%d): %q", code, out)
	}
}

func TestInfo(Te *testing.T) {
	code, out, _ := run("info", "-v", mini)
	if code != 0 {
		Te.Fatalf("info failed with %d", code)
	}
	for _, want := range []string{"atoms:    43", "residues: 11", "chains:   2", "chain A: ASKDGLXX", "chain B: VEF", "skipped line 35"} {
		if !strings.Contains(out, want) {
			Te.Errorf("Missing %q in:\n%s", want, out)
		}
	}
}

func TestRenderAndExport(Te *testing.T) {
	dir := Te.TempDir()
	img := filepath.Join(dir, "mini.png")
	code, out, errs := run("render", "-o", img, "-site", "2,3", "-zoom", "1.5", mini)
	if code != 0 {
		Te.Fatalf("render failed (%d): %s", code, errs)
	}
	if !strings.Contains(out, "37 atoms, 6 bonds") {
		Te.Errorf("Wrong render report: %s", out)
	}
	data, err := os.ReadFile(img)
	if err != nil || !bytes.HasPrefix(data, []byte("\x89PNG")) {
		Te.Errorf("No PNG was written: %v", err)
	}
	snapName := filepath.Join(dir, "mini.json.zst")
	code, _, errs = run("export", "-o", snapName, "-visible", "hydrophobic,polar", mini)
	if code != 0 {
		Te.Fatalf("export failed (%d): %s", code, errs)
	}
	snap, err := scene.ReadSnapshotFile(snapName)
	if err != nil {
		Te.Fatal(err)
	}
	if v, ok := snap.Meta.Get("filter"); !ok || v.String() != "hydrophobic,polar" {
		Te.Errorf("Wrong filter in the snapshot: %v", v)
	}
	for _, a := range snap.Atoms {
		if a.ResName == "GLY" || a.ResName == "LYS" {
			Te.Errorf("%s should be hidden", a.ResName)
		}
	}
}

func TestPick(Te *testing.T) {
	code, out, _ := run("pick", "-x", "1", "-y", "1", mini)
	if code != 0 || !strings.HasPrefix(out, "nothing at") {
		Te.Errorf("The corner should be empty (%d): %s", code, out)
	}
	one := filepath.Join(Te.TempDir(), "one.pdb")
	line := "ATOM      1  CA  LYS A   7       5.000  -2.000   1.000  1.00 20.00           C\n"
	if err := os.WriteFile(one, []byte(line), 0644); err != nil {
		Te.Fatal(err)
	}
	code, out, errs := run("pick", "-x", "400", "-y", "300", one)
	if code != 0 {
		Te.Fatalf("pick failed (%d): %s", code, errs)
	}
	if !strings.HasPrefix(out, "lysine (#3b82f6)") || !strings.Contains(out, "residue #7") {
		Te.Errorf("Expected the lysine tooltip, got %s", out)
	}
}
