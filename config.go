/*
 * config.go, part of goEBSD.
 *
 * Copyright 2025 The goEBSD authors
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

package ebsd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const (
	//DefaultElevation is the z coordinate given to every point of a 2D scan,
	//in the length unit of the scan's x and y columns.
	DefaultElevation = 0.05

	//MinPhases and MaxPhases limit the phase counts the CTF parser table knows about.
	MinPhases = 1
	MaxPhases = 10

	//maximum size of a configuration file, in bytes.
	maxConfigSize = 1 << 20
)

//Config holds the settings of a conversion. A zero Workers value means one worker
//per available CPU. Precision is the number of decimals written for floating point
//fields, -1 meaning the shortest representation that reads back to the same value.
type Config struct {
	Elevation float64 `json:"elevation"`
	Workers   int     `json:"workers"`
	Precision int     `json:"precision"`
	Header    bool    `json:"header"`
}

//DefaultConfig returns the settings used when nothing else is specified.
func DefaultConfig() *Config {
	return &Config{
		Elevation: DefaultElevation,
		Workers:   0,
		Precision: -1,
		Header:    false,
	}
}

//LoadConfig reads settings from a JSON file. Fields not present in the file keep
//their default values.
func LoadConfig(path string) (*Config, error) {
	clean := filepath.Clean(path)
	if ext := filepath.Ext(clean); ext != ".json" {
		return nil, NewError(ErrFileOpen, clean, fmt.Sprintf("config file must have .json extension, got %q", ext), nil, "LoadConfig")
	}
	info, err := os.Stat(clean)
	if err != nil {
		return nil, NewError(ErrFileOpen, clean, "", err, "LoadConfig")
	}
	if info.Size() > maxConfigSize {
		return nil, NewError(ErrSizeQuery, clean, fmt.Sprintf("config file too large: %d bytes (max %d)", info.Size(), maxConfigSize), nil, "LoadConfig")
	}
	b, err := os.ReadFile(clean)
	if err != nil {
		return nil, NewError(ErrFileOpen, clean, "", err, "LoadConfig")
	}
	cfg := DefaultConfig()
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, NewError(ErrParse, clean, "invalid configuration", err, "LoadConfig")
	}
	return cfg, nil
}

//NWorkers returns the number of goroutines the transform will use.
func (C *Config) NWorkers() int {
	if C.Workers < 1 {
		return runtime.GOMAXPROCS(0)
	}
	return C.Workers
}

//CheckPhases returns an ErrRange error if phases is not in [MinPhases, MaxPhases].
func CheckPhases(phases int) error {
	if phases < MinPhases || phases > MaxPhases {
		return NewError(ErrRange, "", fmt.Sprintf("phases must be in [%d,%d], got %d", MinPhases, MaxPhases, phases), nil, "CheckPhases")
	}
	return nil
}
