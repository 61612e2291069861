// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"math"

	"github.com/BurntSushi/toml"

	"gioui.org/webinput/app"
	"gioui.org/webinput/io/pointer"
)

type config struct {
	PreventTouchScroll bool     `toml:"prevent_touch_scroll"`
	Kinds              []string `toml:"kinds"`
	Scale              float64  `toml:"scale"`
	Trace              string   `toml:"trace"`
}

// readConfig reads the configuration at path. An empty path returns the
// defaults.
func readConfig(path string) (*config, error) {
	conf := new(config)
	if path == "" {
		return conf, nil
	}
	md, err := toml.DecodeFile(path, conf)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return nil, fmt.Errorf("read config: unknown key %q", undec[0].String())
	}
	if conf.Scale < 0 || math.IsNaN(conf.Scale) || math.IsInf(conf.Scale, 0) {
		return nil, fmt.Errorf("read config: invalid scale %v", conf.Scale)
	}
	return conf, nil
}

func (c *config) options() ([]app.Option, error) {
	opts := []app.Option{app.PreventTouchScroll(c.PreventTouchScroll)}
	if len(c.Kinds) == 0 {
		return opts, nil
	}
	var kinds pointer.Kind
	for _, name := range c.Kinds {
		k, err := pointer.ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds |= k
	}
	return append(opts, app.Kinds(kinds)), nil
}
