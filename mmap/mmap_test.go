package mmap

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	ebsd "github.com/rmera/goebsd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//openFDs returns the number of file descriptors open in this process, or -1
//if that can't be known on this system.
func openFDs(t *testing.T) int {
	t.Helper()
	ents, err := os.ReadDir("/proc/self/fd")
	if err != nil {
		return -1
	}
	return len(ents)
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.ctf")
	content := []byte("Channel Text File\n1\t0.0\t1.0\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	v, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, content, v.Bytes())
	assert.Equal(t, len(content), v.Len())
	assert.Equal(t, path, v.Name())
	assert.False(t, v.Writable())

	require.NoError(t, v.Release())
	assert.True(t, v.Released())
	assert.Nil(t, v.Bytes())
	//a second release does nothing
	assert.NoError(t, v.Release())
}

func TestOpenEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.ctf")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	v, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, 0, v.Len())
	assert.NoError(t, v.Release())
}

func TestCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.csv")
	content := []byte("0,1,0.05\n")
	v, err := Create(path, len(content))
	require.NoError(t, err)
	assert.True(t, v.Writable())
	require.Equal(t, len(content), v.Len())
	copy(v.Bytes(), content)
	require.NoError(t, v.Flush())
	require.NoError(t, v.Release())
	assert.NoError(t, v.Flush())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	//Create truncates existing files
	v, err = Create(path, 2)
	require.NoError(t, err)
	copy(v.Bytes(), "ok")
	require.NoError(t, v.Release())
	got, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(got))

	v, err = Create(path, 0)
	require.NoError(t, err)
	require.NoError(t, v.Release())
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(0), info.Size())
}

func TestOpenMissing(t *testing.T) {
	before := openFDs(t)
	v, err := Open(filepath.Join(t.TempDir(), "nothere.ctf"))
	assert.Nil(t, v)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ebsd.ErrFileOpen))
	assert.True(t, errors.Is(err, os.ErrNotExist))
	if before >= 0 {
		assert.Equal(t, before, openFDs(t), "a failed Open leaked file descriptors")
	}
}

func TestCreateErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Create(filepath.Join(dir, "no", "such", "dir.csv"), 10)
	assert.True(t, errors.Is(err, ebsd.ErrFileOpen), "got %v", err)
	_, err = Create(filepath.Join(dir, "neg.csv"), -1)
	assert.True(t, errors.Is(err, ebsd.ErrSizeQuery), "got %v", err)
}

//Directories can be opened, but not mapped. The handle opened for the attempt
//must be closed.
func TestMappingFailureReleases(t *testing.T) {
	if !Zerocopy {
		t.Skip("no memory mappings on this system")
	}
	dir := t.TempDir()
	before := openFDs(t)
	v, err := Open(dir)
	if err == nil {
		v.Release()
		t.Skip("this filesystem reports an empty directory, nothing gets mapped")
	}
	assert.True(t, errors.Is(err, ebsd.ErrMapping), "got %v", err)
	if before >= 0 {
		assert.Equal(t, before, openFDs(t), "a failed mapping leaked file descriptors")
	}
}

func TestReleaseNil(t *testing.T) {
	var v *View
	assert.NoError(t, v.Release())
}
