/*
 * config_test.go, part of protview.
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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rmera/protview"
)

func TestDefaults(Te *testing.T) {
	c, err := Parse(nil)
	if err != nil {
		Te.Fatal(err)
	}
	if c.MaxUploadBytes != 10*1024*1024 || c.RedrawInterval != DefaultRedrawInterval {
		Te.Errorf("Wrong defaults %+v", c)
	}
	f, _ := c.Filter()
	if !f.Hydrophobic || !f.Special {
		Te.Error("Everything should be visible by default")
	}
}

func TestOverride(Te *testing.T) {
	data := []byte(`
visible: [hydrophobic, polar]
max_upload_bytes: 1024
redraw_interval: 33ms
viewport: {width: 320, height: 200}
site_color: "#f97316"
verbose: true
`)
	c, err := Parse(data)
	if err != nil {
		Te.Fatal(err)
	}
	if c.MaxUploadBytes != 1024 || c.RedrawInterval != 33*time.Millisecond || !c.Verbose {
		Te.Errorf("Overrides not applied: %+v", c)
	}
	if c.Viewport != (Viewport{320, 200}) || c.SiteColor != 0xf97316 {
		Te.Errorf("Wrong viewport or color %+v", c)
	}
	if c.MinPredictedScore != DefaultMinPredictedScore {
		Te.Error("Fields not in the file should keep their defaults")
	}
	f, err := c.Filter()
	if err != nil {
		Te.Fatal(err)
	}
	if !f.Allows(protview.Polar) || f.Allows(protview.Negative) {
		Te.Errorf("Wrong filter %s", f)
	}
}

func TestBadConfig(Te *testing.T) {
	bad := []string{
		"max_upload_bytes: -1",
		"visible: [greasy]",
		"redraw_interval: 0s",
		"no_such_field: 3",
		"site_color: blue",
		"min_predicted_score: 2",
	}
	for _, b := range bad {
		if _, err := Parse([]byte(b)); err == nil {
			Te.Errorf("%q should not parse", b)
		}
	}
}

func TestLoad(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "protview.yaml")
	c := Default()
	c.Verbose = true
	c.Viewport.Width = 1024
	data, err := c.Marshal()
	if err != nil {
		Te.Fatal(err)
	}
	if err := os.WriteFile(name, data, 0o644); err != nil {
		Te.Fatal(err)
	}
	c2, err := Load(name)
	if err != nil {
		Te.Fatal(err)
	}
	if !c2.Verbose || c2.Viewport.Width != 1024 || c2.SiteColor != c.SiteColor {
		Te.Errorf("Round trip through a file changed the config: %+v", c2)
	}
	if _, err := Load(filepath.Join(Te.TempDir(), "nope.yaml")); err == nil {
		Te.Error("A missing file should fail")
	}
}
