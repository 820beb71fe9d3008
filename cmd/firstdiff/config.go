// Copyright 2026 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// fileConfig is the content of a config file. Unset keys are nil.
type fileConfig struct {
	Unit    *string `toml:"unit"`
	Fill    *string `toml:"fill"`
	Align   *bool   `toml:"align"`
	Color   *string `toml:"color"`
	Context *int    `toml:"context"`
	Inline  *bool   `toml:"inline"`
}

// loadFile reads the TOML config file at path and applies all values to cfg, except for those
// whose flag was set explicitly.
func loadFile(cfg *config, path string, set map[string]bool) error {
	var fc fileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		cfg.undecoded = append(cfg.undecoded, key.String())
	}

	if fc.Unit != nil && !set["unit"] {
		cfg.unit = *fc.Unit
	}
	if fc.Fill != nil && !set["fill"] {
		cfg.fill = *fc.Fill
	}
	if fc.Align != nil && !set["align"] {
		cfg.align = *fc.Align
	}
	if fc.Color != nil && !set["color"] {
		cfg.color = *fc.Color
	}
	if fc.Context != nil && !set["context"] {
		cfg.context = *fc.Context
	}
	if fc.Inline != nil && !set["inline"] {
		cfg.inline = *fc.Inline
	}
	return nil
}
