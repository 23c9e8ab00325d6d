// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package style holds the presentation settings shared by all survey
// charts: font sizes keyed by option name, and color palettes.
//
// The default configuration is immutable. Callers that want different
// sizes pass overrides to Merge, which returns a new Config.
package style

import (
	"fmt"
	"io"
	"sort"

	"github.com/BurntSushi/toml"
)

// Font sizes in points.
const (
	SmallFont  = 14
	MediumFont = 18
	BigFont    = 24
	HugeFont   = 30
)

// Option names understood by the chart surface.
const (
	FontSize        = "font.size"
	AxesLabelSize   = "axes.labelsize"
	AxesTitleSize   = "axes.titlesize"
	LegendFontSize  = "legend.fontsize"
	LegendTitleSize = "legend.title_fontsize"
	XTickLabelSize  = "xtick.labelsize"
	YTickLabelSize  = "ytick.labelsize"
	FigureTitleSize = "figure.titlesize"
)

// Config maps style option names to values.
type Config map[string]float64

var defaults = Config{
	FontSize:        SmallFont,
	AxesLabelSize:   BigFont,
	AxesTitleSize:   HugeFont,
	LegendFontSize:  MediumFont,
	LegendTitleSize: BigFont,
	XTickLabelSize:  MediumFont,
	YTickLabelSize:  MediumFont,
	FigureTitleSize: HugeFont,
}

// Default returns a copy of the default configuration.
func Default() Config {
	return Merge(nil)
}

// Merge returns a copy of the default configuration with every key
// in overrides replacing the default value. Keys that have no
// default are added as is. A nil overrides returns the defaults.
func Merge(overrides Config) Config {
	c := make(Config, len(defaults)+len(overrides))
	for k, v := range defaults {
		c[k] = v
	}
	for k, v := range overrides {
		c[k] = v
	}
	return c
}

// Get returns the value of key in c, falling back to the default
// value and then to SmallFont.
func (c Config) Get(key string) float64 {
	if v, ok := c[key]; ok {
		return v
	}
	if v, ok := defaults[key]; ok {
		return v
	}
	return SmallFont
}

// Keys returns the option names set in c in sorted order.
func (c Config) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Load reads style overrides from a TOML document. Options may be
// written either as quoted dotted keys:
//
//	"font.size" = 16
//
// or as tables:
//
//	[axes]
//	titlesize = 28
//
// The result holds only the overrides; pass it to Merge.
func Load(r io.Reader) (Config, error) {
	var raw map[string]interface{}
	if _, err := toml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding style: %w", err)
	}
	c := make(Config)
	if err := flatten(c, "", raw); err != nil {
		return nil, err
	}
	return c, nil
}

func flatten(dst Config, prefix string, m map[string]interface{}) error {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch v := v.(type) {
		case map[string]interface{}:
			if err := flatten(dst, key, v); err != nil {
				return err
			}
		case int64:
			dst[key] = float64(v)
		case float64:
			dst[key] = v
		default:
			return fmt.Errorf("style option %q: want a number, got %T", key, v)
		}
	}
	return nil
}
