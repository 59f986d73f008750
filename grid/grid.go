/*
 * grid.go, part of goEBSD.
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

package grid

import (
	"log"
	"path/filepath"
	"time"

	ebsd "github.com/rmera/goebsd"
	"github.com/rmera/goebsd/ctf"
	"github.com/rmera/goebsd/gridio"
	"github.com/rmera/goebsd/gridplot"
	"github.com/rmera/goebsd/scanstat"
	"golang.org/x/sync/errgroup"
)

//Options describes one conversion.
type Options struct {
	Phases int    //Number of phases declared in the input header, 1 to 10.
	Input  string //Input CTF file, optionally gzip or zstd compressed.
	Output string //Output CSV file. If empty, ebsd.OutputName(Input) is used.
	Config *ebsd.Config

	//Optional outputs. Empty names or a false Zstd mean the output is not written.
	Zstd    bool //Also write Output+".zst"
	Parquet string
	Stats   string
	Plot    string
}

//Result summarizes a finished conversion.
type Result struct {
	Output  string
	Rows    int
	Header  map[string]string
	Phases  []string
	Summary *scanstat.Summary //nil unless Options.Stats was given.
	Elapsed time.Duration
}

//Run reads O.Input with the parser for O.Phases, converts every row and writes
//the grid file. The optional outputs are written afterwards, concurrently.
func Run(O Options) (*Result, error) {
	start := time.Now()
	conf := O.Config
	if conf == nil {
		conf = ebsd.DefaultConfig()
	}
	out := O.Output
	if out == "" {
		out = ebsd.OutputName(O.Input)
	}
	if filepath.Clean(out) == filepath.Clean(O.Input) {
		return nil, ebsd.NewError(ebsd.ErrFileOpen, out, "the output file would overwrite the input", nil, "grid.Run")
	}
	p, err := ctf.Lookup(O.Phases)
	if err != nil {
		return nil, ebsd.ErrDecorate(err, "grid.Run")
	}
	scan, err := ctf.ReadFile(O.Input, p)
	if err != nil {
		return nil, ebsd.ErrDecorate(err, "grid.Run")
	}
	rows := ebsd.Transform(scan.Rows, conf.Elevation, conf.NWorkers())
	opts := gridio.FromConfig(conf)
	if err := gridio.WriteFile(out, rows, opts); err != nil {
		return nil, ebsd.ErrDecorate(err, "grid.Run")
	}
	res := &Result{
		Output: out,
		Rows:   len(rows),
		Header: scan.Header,
		Phases: scan.Phases,
	}
	names := phaseNames(scan)
	var g errgroup.Group
	if O.Zstd {
		g.Go(func() error { return gridio.WriteZstd(out+".zst", rows, opts) })
	}
	if O.Parquet != "" {
		g.Go(func() error { return gridio.WriteParquet(O.Parquet, rows) })
	}
	if O.Stats != "" {
		g.Go(func() error {
			res.Summary = scanstat.Summarize(scan.Rows, names)
			return res.Summary.WriteJSON(O.Stats)
		})
	}
	if O.Plot != "" {
		g.Go(func() error { return gridplot.SavePhaseMap(O.Plot, rows, names) })
	}
	if err := g.Wait(); err != nil {
		return res, ebsd.ErrDecorate(err, "grid.Run")
	}
	res.Elapsed = time.Since(start)
	log.Printf("%s: %d points written to %s in %v", O.Input, res.Rows, out, res.Elapsed)
	return res, nil
}

func phaseNames(S *ctf.Scan) []string {
	names := make([]string, len(S.Phases))
	for i := range names {
		names[i] = S.PhaseName(i + 1)
	}
	return names
}
