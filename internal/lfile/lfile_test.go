/*
File    : lox/internal/lfile/lfile_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lfile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/lox/internal/value"
)

func TestWriteThenReadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scratch.txt")

	w, err := Open(path, "w")
	require.NoError(t, err)
	n, err := w.Write("hello")
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	require.NoError(t, w.Close())

	r, err := Open(path, "r")
	require.NoError(t, err)
	defer r.Close()

	got, err := r.Read(5)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestSeekAndTell(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scratch.txt")
	f, err := Open(path, "w+")
	require.NoError(t, err)
	defer f.Close()

	_, err = f.Write("abcdef")
	require.NoError(t, err)

	pos, err := f.Seek(2, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, pos)

	tell, err := f.Tell()
	require.NoError(t, err)
	assert.EqualValues(t, 2, tell)
}

func TestOpenRejectsInvalidMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scratch.txt")
	_, err := Open(path, "bogus")
	assert.Error(t, err)
}

func TestNativesRoundTripThroughValueInterface(t *testing.T) {
	path := filepath.Join(t.TempDir(), "native.txt")
	natives := Natives()
	byName := make(map[string]*value.Native)
	for _, n := range natives {
		byName[n.NativeName] = n
	}

	opened, err := byName["fopen"].Fn([]value.Value{value.String_{Value: path}, value.String_{Value: "w"}})
	require.NoError(t, err)
	handle := opened.(*Handle)
	assert.Equal(t, "file", handle.Type())

	written, err := byName["fwrite"].Fn([]value.Value{handle, value.String_{Value: "hi"}})
	require.NoError(t, err)
	assert.Equal(t, value.Number{Value: 2}, written)

	_, err = byName["fclose"].Fn([]value.Value{handle})
	require.NoError(t, err)
}
