/*
 * main.go, part of goEBSD.
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

//ebsd2grid converts an EBSD scan in CTF format into a grid CSV file with
//the orientations as Bunge Euler angles in radians and as quaternions.
//The number of phases and the input file are asked for on stdin unless given
//with -phases and -in.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	ebsd "github.com/rmera/goebsd"
	"github.com/rmera/goebsd/grid"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("ebsd2grid: ")
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("ebsd2grid", flag.ContinueOnError)
	phases := fs.Int("phases", 0, "Number of phases in the input header, 1-10. Asked for if not given.")
	in := fs.String("in", "", "Input CTF file (.ctf, .ctf.gz or .ctf.zst). Asked for if not given.")
	out := fs.String("out", "", "Output CSV file. Default: the input name up to its first '.', plus .csv")
	z := fs.Float64("z", ebsd.DefaultElevation, "Elevation (z) given to every point")
	workers := fs.Int("workers", 0, "Goroutines for the conversion. 0 uses all CPUs")
	config := fs.String("config", "", "JSON configuration file. Flags given explicitly override it")
	header := fs.Bool("header", false, "Write a header line with the column names")
	prec := fs.Int("prec", -1, "Digits after the decimal point. -1 writes the shortest exact representation")
	zst := fs.Bool("zstd", false, "Also write a zstd-compressed copy of the output, with a .zst suffix")
	parq := fs.String("parquet", "", "Also write the output as a Parquet table to this file")
	stats := fs.String("stats", "", "Write scan statistics as JSON to this file")
	plot := fs.String("plot", "", "Draw a phase map to this file (png, svg or pdf)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	conf := ebsd.DefaultConfig()
	if *config != "" {
		var err error
		conf, err = ebsd.LoadConfig(*config)
		if err != nil {
			return err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "z":
			conf.Elevation = *z
		case "workers":
			conf.Workers = *workers
		case "header":
			conf.Header = *header
		case "prec":
			conf.Precision = *prec
		}
	})
	stdr := bufio.NewReader(stdin)
	if *phases == 0 {
		fmt.Fprint(stdout, "Phase number (1-10, default 1): ")
		p, err := readPhases(stdr)
		if err != nil {
			return err
		}
		*phases = p
	}
	if *in == "" {
		name, err := readName(stdr)
		if err != nil {
			return err
		}
		*in = name
	}
	res, err := grid.Run(grid.Options{
		Phases:  *phases,
		Input:   *in,
		Output:  *out,
		Config:  conf,
		Zstd:    *zst,
		Parquet: *parq,
		Stats:   *stats,
		Plot:    *plot,
	})
	if err != nil {
		return err
	}
	if res.Summary != nil {
		fmt.Fprintln(stdout, res.Summary)
	}
	return nil
}

//readPhases reads the number of phases from a line of r. An empty line means 1.
func readPhases(r *bufio.Reader) (int, error) {
	line, err := r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return 0, fmt.Errorf("can't read the number of phases: %w", err)
	}
	f := strings.Fields(line)
	if len(f) == 0 {
		return ebsd.MinPhases, nil
	}
	p, err := strconv.Atoi(f[0])
	if err != nil {
		return 0, ebsd.NewError(ebsd.ErrRange, "", fmt.Sprintf("%q is not a number of phases", f[0]), err, "readPhases")
	}
	return p, nil
}

//readName reads the input file name, a whole line of r.
func readName(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("can't read the input file name: %w", err)
	}
	name := strings.TrimRight(line, "\r\n")
	if name == "" {
		return "", ebsd.NewError(ebsd.ErrFileOpen, "", "no input file given", nil, "readName")
	}
	return name, nil
}
