/*
File    : lox/internal/lfile/lfile.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package lfile adapts go-mix's stateful file I/O (file/file.go) into a
// value.Value and a set of value.Native callbacks built on Lox's value
// model: since there is no Integer type, sizes, offsets, and byte counts
// are all Number.
// It is deliberately not registered by package natives: Lox has no file
// I/O surface beyond `print`, so nothing in the default global scope
// calls Open/Natives.
// It is kept, adapted, and tested as a ready-made extension point rather
// than deleted outright, the way go-mix keeps file.go alongside its
// other optional std packages.
package lfile

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/lox/internal/value"
)

// Handle wraps an open OS file handle as a Lox value.
type Handle struct {
	File *os.File
	Path string
}

func (h *Handle) Type() string   { return "file" }
func (h *Handle) String() string { return fmt.Sprintf("<file: %s>", h.Path) }

// Open opens path in mode ("r", "w", "a", "r+", "w+") and returns a
// *Handle value, mirroring go-mix's fopen.
func Open(path, mode string) (*Handle, error) {
	var flag int
	switch mode {
	case "r":
		flag = os.O_RDONLY
	case "w":
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case "a":
		flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	case "r+":
		flag = os.O_RDWR
	case "w+":
		flag = os.O_RDWR | os.O_CREATE | os.O_TRUNC
	default:
		return nil, fmt.Errorf("invalid file mode '%s'", mode)
	}
	f, err := os.OpenFile(path, flag, 0644)
	if err != nil {
		return nil, fmt.Errorf("could not open file '%s': %w", path, err)
	}
	return &Handle{File: f, Path: path}, nil
}

func (h *Handle) Close() error { return h.File.Close() }

// Read reads up to n bytes, returning fewer at EOF.
func (h *Handle) Read(n int) (string, error) {
	buf := make([]byte, n)
	read, err := h.File.Read(buf)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read failed: %w", err)
	}
	return string(buf[:read]), nil
}

// Write writes content at the handle's current offset (at the end for
// mode "a"), returning the byte count written.
func (h *Handle) Write(content string) (int, error) {
	n, err := h.File.WriteString(content)
	if err != nil {
		return 0, fmt.Errorf("write failed: %w", err)
	}
	return n, nil
}

// Seek repositions the handle's cursor and returns the new offset.
func (h *Handle) Seek(offset int64, whence int) (int64, error) {
	pos, err := h.File.Seek(offset, whence)
	if err != nil {
		return 0, fmt.Errorf("seek failed: %w", err)
	}
	return pos, nil
}

// Tell returns the handle's current cursor offset.
func (h *Handle) Tell() (int64, error) {
	return h.Seek(0, io.SeekCurrent)
}

// Natives returns the fopen/fclose/fread/fwrite/fseek/ftell callbacks as
// value.Native instances, ready to be registered into an environment by
// a caller that wants file I/O available to Lox scripts. Not wired into
// the default global scope by package natives.
func Natives() []*value.Native {
	return []*value.Native{
		{NativeName: "fopen", NativeArity: 2, Fn: nativeOpen},
		{NativeName: "fclose", NativeArity: 1, Fn: nativeClose},
		{NativeName: "fread", NativeArity: 2, Fn: nativeRead},
		{NativeName: "fwrite", NativeArity: 2, Fn: nativeWrite},
		{NativeName: "fseek", NativeArity: 3, Fn: nativeSeek},
		{NativeName: "ftell", NativeArity: 1, Fn: nativeTell},
	}
}

func asHandle(v value.Value) (*Handle, error) {
	h, ok := v.(*Handle)
	if !ok {
		return nil, fmt.Errorf("argument must be a file handle")
	}
	return h, nil
}

func asString(v value.Value) (string, error) {
	s, ok := v.(value.String_)
	if !ok {
		return "", fmt.Errorf("argument must be a string")
	}
	return s.Value, nil
}

func asNumber(v value.Value) (float64, error) {
	n, ok := v.(value.Number)
	if !ok {
		return 0, fmt.Errorf("argument must be a number")
	}
	return n.Value, nil
}

func nativeOpen(args []value.Value) (value.Value, error) {
	path, err := asString(args[0])
	if err != nil {
		return nil, err
	}
	mode, err := asString(args[1])
	if err != nil {
		return nil, err
	}
	return Open(path, mode)
}

func nativeClose(args []value.Value) (value.Value, error) {
	h, err := asHandle(args[0])
	if err != nil {
		return nil, err
	}
	if err := h.Close(); err != nil {
		return nil, err
	}
	return value.NilValue, nil
}

func nativeRead(args []value.Value) (value.Value, error) {
	h, err := asHandle(args[0])
	if err != nil {
		return nil, err
	}
	n, err := asNumber(args[1])
	if err != nil {
		return nil, err
	}
	s, err := h.Read(int(n))
	if err != nil {
		return nil, err
	}
	return value.String_{Value: s}, nil
}

func nativeWrite(args []value.Value) (value.Value, error) {
	h, err := asHandle(args[0])
	if err != nil {
		return nil, err
	}
	content, err := asString(args[1])
	if err != nil {
		return nil, err
	}
	n, err := h.Write(content)
	if err != nil {
		return nil, err
	}
	return value.Number{Value: float64(n)}, nil
}

func nativeSeek(args []value.Value) (value.Value, error) {
	h, err := asHandle(args[0])
	if err != nil {
		return nil, err
	}
	offset, err := asNumber(args[1])
	if err != nil {
		return nil, err
	}
	whence, err := asNumber(args[2])
	if err != nil {
		return nil, err
	}
	pos, err := h.Seek(int64(offset), int(whence))
	if err != nil {
		return nil, err
	}
	return value.Number{Value: float64(pos)}, nil
}

func nativeTell(args []value.Value) (value.Value, error) {
	h, err := asHandle(args[0])
	if err != nil {
		return nil, err
	}
	pos, err := h.Tell()
	if err != nil {
		return nil, err
	}
	return value.Number{Value: float64(pos)}, nil
}
