package scanstat

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Histogram counts values in the bins defined by a sorted slice of dividers.
//Bin i holds the values v with dividers[i] <= v < dividers[i+1]. Values outside
//[dividers[0], dividers[len-1]) are dropped.
type Histogram struct {
	id         int
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

//NewHistogram returns a new histogram with the given dividers and, if rawdata is not nil,
//the values in it. rawdata is sorted in place. If an ID is given it is set, otherwise the
//ID is -1.
func NewHistogram(dividers []float64, rawdata []float64, ID ...int) *Histogram {
	H := new(Histogram)
	H.dividers = make([]float64, len(dividers))
	copy(H.dividers, dividers)
	H.histo = make([]float64, len(dividers)-1)
	if rawdata != nil {
		H.ReHisto(H.dividers, rawdata)
	}
	H.id = -1
	if len(ID) > 0 {
		H.id = ID[0]
	}
	return H
}

//ID returns the ID of the histogram
func (H *Histogram) ID() int {
	return H.id
}

//Total returns the number of values in the bins of the histogram.
func (H *Histogram) Total() int {
	return H.total
}

//AddData adds the given values to the histogram.
func (H *Histogram) AddData(point ...float64) {
	var norma bool
	if H.normalized {
		norma = true
		H.UnNormalize()
	}
	for _, v := range point {
		//values out of the dividers' range, NaN included, are just omitted.
		j := sort.SearchFloat64s(H.dividers, v)
		if j < len(H.dividers) && H.dividers[j] == v {
			j++
		}
		if j > 0 && j < len(H.dividers) {
			H.histo[j-1]++
			H.total++
		}
	}
	if norma {
		H.Normalize()
	}
}

//ReHisto replaces the contents of the histogram with the values in rawdata,
//binned with dividers. Values outside the dividers are dropped.
func (H *Histogram) ReHisto(dividers, rawdata []float64) {
	if rawdata != nil {
		sort.Float64s(rawdata)
		//stat.Histogram panics with values out of the dividers' range, so
		//those are removed first.
		maxi := sort.SearchFloat64s(rawdata, dividers[len(dividers)-1])
		mini := sort.SearchFloat64s(rawdata, dividers[0])
		rawdata = rawdata[mini:maxi]
	}
	H.total = len(rawdata)
	H.histo = stat.Histogram(nil, dividers, rawdata, nil)
	H.normalized = false
}

//Normalized returns true if the histogram is normalized
func (H *Histogram) Normalized() bool {
	return H.normalized
}

//Normalize divides each bin by the total number of values.
func (H *Histogram) Normalize() {
	H.normaunnorma(true)
}

//UnNormalize reverts Normalize.
func (H *Histogram) UnNormalize() {
	H.normaunnorma(false)
}

func (H *Histogram) normaunnorma(normalize bool) {
	if H.total <= 0 || H.normalized == normalize {
		return
	}
	n := float64(H.total)
	H.normalized = false
	if normalize {
		n = 1 / float64(H.total)
		H.normalized = true
	}
	floats.Scale(n, H.histo)
}

//View returns the bins. Changing the returned slice changes the histogram.
func (H *Histogram) View() []float64 {
	return H.histo
}

//Dividers returns a copy of the dividers.
func (H *Histogram) Dividers() []float64 {
	d := make([]float64, len(H.dividers))
	copy(d, H.dividers)
	return d
}

//Sum returns the sum of all bins.
func (H *Histogram) Sum() float64 {
	return floats.Sum(H.histo)
}

//String returns the histogram in 3 lines of text.
func (H *Histogram) String() string {
	ret := fmt.Sprintf("ID: %d, Normalized: %v, TotalData: %d\n", H.id, H.normalized, H.total)
	d := make([]string, 0, len(H.histo))
	h := make([]string, 0, len(H.histo))
	for i, v := range H.histo {
		d = append(d, fmt.Sprintf("%4.2f-%4.2f", H.dividers[i], H.dividers[i+1]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return ret + fmt.Sprintf("%s\n%s", strings.Join(d, " "), strings.Join(h, " "))
}

type jsonHisto struct {
	ID         int       `json:"id"`
	Normalized bool      `json:"normalized"`
	Total      int       `json:"total"`
	Dividers   []float64 `json:"dividers"`
	Histo      []float64 `json:"histo"`
}

func (H *Histogram) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonHisto{
		ID:         H.id,
		Normalized: H.normalized,
		Total:      H.total,
		Dividers:   H.dividers,
		Histo:      H.histo,
	})
}

func (H *Histogram) UnmarshalJSON(b []byte) error {
	var a jsonHisto
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	H.id = a.ID
	H.normalized = a.Normalized
	H.total = a.Total
	H.dividers = a.Dividers
	H.histo = a.Histo
	return nil
}
