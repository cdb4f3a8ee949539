/*
 * config.go, part of protview.
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


//Package config holds the viewer settings. Defaults can be overridden
//from a YAML file, like:
//
//	visible: [hydrophobic, polar, positive, negative]
//	max_upload_bytes: 5242880
//	redraw_interval: 33ms
//	viewport: {width: 1024, height: 768}
//	site_color: "#f97316"
//	min_predicted_score: 0.6
//	verbose: true
package config

import (
	"bytes"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/rmera/protview"
	"github.com/rmera/protview/scene"
)

// Default values.
const (
	DefaultMaxUploadBytes    = 10 * 1024 * 1024
	DefaultRedrawInterval    = time.Second / 60
	DefaultWidth             = 800
	DefaultHeight            = 600
	DefaultMinPredictedScore = 0.5
)

// Viewport is the size of the drawing area, in pixels.
type Viewport struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Config is the viewer configuration.
type Config struct {
	// Residue types shown. Empty means all.
	Visible []string `yaml:"visible,omitempty"`
	// Largest accepted upload, after decompression.
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`
	// Period of the redraw loop.
	RedrawInterval time.Duration `yaml:"redraw_interval"`
	Viewport       Viewport      `yaml:"viewport"`
	// Color for sites created without one.
	SiteColor protview.Color `yaml:"site_color"`
	// Predicted residues scoring less than this are not imported.
	MinPredictedScore float64 `yaml:"min_predicted_score"`
	// Log parse warnings.
	Verbose bool `yaml:"verbose"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		MaxUploadBytes:    DefaultMaxUploadBytes,
		RedrawInterval:    DefaultRedrawInterval,
		Viewport:          Viewport{DefaultWidth, DefaultHeight},
		SiteColor:         0x3b82f6,
		MinPredictedScore: DefaultMinPredictedScore,
	}
}

// Parse reads a YAML configuration from data. Fields not present in data
// keep their default values. Unknown fields are an error.
func Parse(data []byte) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return c, errors.Wrap(err, "config: parsing YAML")
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Load reads the configuration in the file name. See Parse.
func Load(name string) (Config, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return Default(), errors.Wrap(err, "config: reading file")
	}
	c, err := Parse(data)
	if err != nil {
		return c, errors.WithMessage(err, name)
	}
	return c, nil
}

// Validate checks that the values in c make sense.
func (c Config) Validate() error {
	if c.MaxUploadBytes <= 0 {
		return errors.Errorf("config: max_upload_bytes must be positive, got %d", c.MaxUploadBytes)
	}
	if c.RedrawInterval <= 0 {
		return errors.Errorf("config: redraw_interval must be positive, got %s", c.RedrawInterval)
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return errors.Errorf("config: invalid viewport %dx%d", c.Viewport.Width, c.Viewport.Height)
	}
	if c.MinPredictedScore < 0 || c.MinPredictedScore > 1 {
		return errors.Errorf("config: min_predicted_score must be between 0 and 1, got %g", c.MinPredictedScore)
	}
	if _, err := c.Filter(); err != nil {
		return errors.Wrap(err, "config")
	}
	return nil
}

// Filter returns the visibility filter for the configured residue types.
func (c Config) Filter() (scene.Filter, error) {
	if len(c.Visible) == 0 {
		return scene.AllVisible(), nil
	}
	return scene.ParseFilter(strings.Join(c.Visible, ","))
}

// Marshal encodes c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
