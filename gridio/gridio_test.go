package gridio

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/klauspost/compress/zstd"
	ebsd "github.com/rmera/goebsd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rows = []ebsd.OutputRow{
	{X: 0, Y: 1, Z: 0.05, Phi1: 0.17453292519943295, Phi: 0.3490658503988659, Phi2: 0.5235987755982988,
		Q0: 0.9254165783983234, Q1: 0.17101007166283433, Q2: -0.030153689607045796, Q3: 0.33682408883346515, Phase: 1},
	{X: 0.5, Y: 1, Z: 0.05, Q0: 1, Phase: 0},
	{X: 1, Y: 1.5, Z: 0.05, Phi1: 3.14, Phi: 1.5, Phi2: 0.25, Q0: 0.5, Q1: 0.5, Q2: 0.5, Q3: 0.5, Phase: 10},
}

//parseCSV reads CSV data back into rows.
func parseCSV(t *testing.T, data []byte) ([]string, []ebsd.OutputRow) {
	t.Helper()
	recs, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	var header []string
	if len(recs) > 0 {
		if _, err := strconv.ParseFloat(recs[0][0], 64); err != nil {
			header, recs = recs[0], recs[1:]
		}
	}
	out := make([]ebsd.OutputRow, len(recs))
	for i, rec := range recs {
		require.Len(t, rec, ebsd.NColumns)
		var f [10]float64
		for j := range f {
			f[j], err = strconv.ParseFloat(rec[j], 64)
			require.NoError(t, err)
		}
		p, err := strconv.Atoi(rec[10])
		require.NoError(t, err)
		out[i] = ebsd.OutputRow{X: f[0], Y: f[1], Z: f[2], Phi1: f[3], Phi: f[4], Phi2: f[5], Q0: f[6], Q1: f[7], Q2: f[8], Q3: f[9], Phase: p}
	}
	return header, out
}

func TestWriteFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "scan.csv")
	require.NoError(t, WriteFile(name, rows, Options{Precision: -1}))
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	header, got := parseCSV(t, data)
	assert.Nil(t, header)
	assert.Equal(t, rows, got, "the shortest representation should read back exactly")
	assert.Equal(t, "0.5,1,0.05,0,0,0,1,0,0,0,0", string(bytes.Split(data, []byte{'\n'})[1]))
}

func TestEncodeOptions(t *testing.T) {
	data := Encode(rows[:1], Options{Precision: 6, Header: true})
	assert.Equal(t, "x,y,z,phi1,Phi,phi2,q0,q1,q2,q3,phase\n"+
		"0.000000,1.000000,0.050000,0.174533,0.349066,0.523599,0.925417,0.171010,-0.030154,0.336824,1\n", string(data))
	header, got := parseCSV(t, data)
	assert.Equal(t, ebsd.OutputColumns[:], header)
	require.Len(t, got, 1)
	assert.InDelta(t, rows[0].Phi2, got[0].Phi2, 1e-6)

	opts := FromConfig(&ebsd.Config{Precision: 3, Header: true})
	assert.Equal(t, Options{Precision: 3, Header: true}, opts)
}

func TestWriteEmpty(t *testing.T) {
	name := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, WriteFile(name, nil, Options{Precision: -1}))
	info, err := os.Stat(name)
	require.NoError(t, err)
	assert.Equal(t, int64(0), info.Size())
}

func TestWriteFileError(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "scan.csv"), rows, Options{Precision: -1})
	assert.ErrorIs(t, err, ebsd.ErrFileOpen)
}

func TestWriteZstd(t *testing.T) {
	name := filepath.Join(t.TempDir(), "scan.csv.zst")
	o := Options{Precision: -1, Header: true}
	require.NoError(t, WriteZstd(name, rows, o))
	comp, err := os.ReadFile(name)
	require.NoError(t, err)
	d, err := zstd.NewReader(nil)
	require.NoError(t, err)
	defer d.Close()
	data, err := d.DecodeAll(comp, nil)
	require.NoError(t, err)
	assert.Equal(t, Encode(rows, o), data)
}

func TestParquet(t *testing.T) {
	name := filepath.Join(t.TempDir(), "scan.parquet")
	require.NoError(t, WriteParquet(name, rows))
	got, err := ReadParquet(name)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}
