package scanstat

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	ebsd "github.com/rmera/goebsd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//MADDividers are the bin limits, in degrees, of the MAD histograms.
var MADDividers = []float64{0, 0.2, 0.4, 0.6, 0.8, 1.0, 1.2, 1.5, 2.0, 3.0, 5.0}

//PhaseStats summarizes the points of one phase. Phase 0 gathers the non-indexed points.
type PhaseStats struct {
	Phase    int        `json:"phase"`
	Name     string     `json:"name,omitempty"`
	Points   int        `json:"points"`
	Fraction float64    `json:"fraction"`
	MeanMAD  float64    `json:"mean_mad"`
	MeanBC   float64    `json:"mean_bc"`
	StdBC    float64    `json:"std_bc"`
	MAD      *Histogram `json:"mad_histogram"`
}

//Summary describes a whole scan.
type Summary struct {
	Points  int           `json:"points"`
	Indexed int           `json:"indexed"`
	XMin    float64       `json:"x_min"`
	XMax    float64       `json:"x_max"`
	YMin    float64       `json:"y_min"`
	YMax    float64       `json:"y_max"`
	Phases  []*PhaseStats `json:"phases"`
}

//Summarize computes the statistics of rows. names, which can be nil, holds the
//name of each phase: names[i] is the name of phase i+1. NaN and infinite MAD values
//and coordinates are left out of the means, histograms and extents.
func Summarize(rows []ebsd.InputRow, names []string) *Summary {
	S := &Summary{Points: len(rows)}
	if len(rows) == 0 {
		return S
	}
	xs := make([]float64, len(rows))
	ys := make([]float64, len(rows))
	mads := make(map[int][]float64)
	bcs := make(map[int][]float64)
	for i, r := range rows {
		xs[i], ys[i] = r.X, r.Y
		mads[r.Phase] = append(mads[r.Phase], r.MAD)
		bcs[r.Phase] = append(bcs[r.Phase], float64(r.BC))
		if r.Phase != 0 {
			S.Indexed++
		}
	}
	if xs = finite(xs); len(xs) > 0 {
		S.XMin, S.XMax = floats.Min(xs), floats.Max(xs)
	}
	if ys = finite(ys); len(ys) > 0 {
		S.YMin, S.YMax = floats.Min(ys), floats.Max(ys)
	}
	for phase, m := range mads {
		P := &PhaseStats{
			Phase:    phase,
			Points:   len(m),
			Fraction: float64(len(m)) / float64(len(rows)),
			MeanMAD:  mean(m),
			MeanBC:   stat.Mean(bcs[phase], nil),
		}
		if len(m) > 1 {
			P.StdBC = stat.StdDev(bcs[phase], nil)
		}
		if phase > 0 && phase <= len(names) {
			P.Name = names[phase-1]
		}
		P.MAD = NewHistogram(MADDividers, finite(m), phase)
		S.Phases = append(S.Phases, P)
	}
	sort.Slice(S.Phases, func(i, j int) bool { return S.Phases[i].Phase < S.Phases[j].Phase })
	return S
}

//finite returns the values in x that are neither NaN nor infinite. x is reused.
func finite(x []float64) []float64 {
	ret := x[:0]
	for _, v := range x {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			ret = append(ret, v)
		}
	}
	return ret
}

//mean returns the mean of the finite values in x, or 0 if there are none.
//x is not modified.
func mean(x []float64) float64 {
	f := finite(append([]float64(nil), x...))
	if len(f) == 0 {
		return 0
	}
	return stat.Mean(f, nil)
}

//Phase returns the statistics for the given phase, or nil if the scan has no points of it.
func (S *Summary) Phase(phase int) *PhaseStats {
	for _, v := range S.Phases {
		if v.Phase == phase {
			return v
		}
	}
	return nil
}

func (S *Summary) String() string {
	lines := []string{fmt.Sprintf("%d points, %d indexed, x: %g to %g, y: %g to %g", S.Points, S.Indexed, S.XMin, S.XMax, S.YMin, S.YMax)}
	for _, v := range S.Phases {
		name := v.Name
		if v.Phase == 0 {
			name = "non-indexed"
		}
		lines = append(lines, fmt.Sprintf("phase %d (%s): %d points (%.1f%%), MAD %.3f, BC %.1f+-%.1f", v.Phase, name, v.Points, 100*v.Fraction, v.MeanMAD, v.MeanBC, v.StdBC))
	}
	return strings.Join(lines, "\n")
}

//WriteJSON writes the summary to the file name.
func (S *Summary) WriteJSON(name string) error {
	b, err := json.MarshalIndent(S, "", "  ")
	if err != nil {
		return ebsd.NewError(ebsd.ErrWrite, name, "can't encode the summary", err, "WriteJSON")
	}
	if err := os.WriteFile(name, append(b, '\n'), 0o644); err != nil {
		return ebsd.NewError(ebsd.ErrWrite, name, "", err, "WriteJSON")
	}
	return nil
}
