package dmat

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/edsrzf/mmap-go"
)

// mappedBuf keeps the file and mapping behind an mmap-backed local panel so
// Close can release both.
type mappedBuf struct {
	f *os.File
	m mmap.MMap
}

// allocLocal provides the local panel: a heap slice by default, or a slice
// over a memory-mapped scratch file when dir is set. Zero-length panels
// (observers, empty local slices) never touch the filesystem.
func allocLocal[T Scalar](n int, dir string) ([]T, *mappedBuf, error) {
	if dir == "" || n == 0 {
		return make([]T, n), nil, nil
	}
	var zero T
	f, err := os.CreateTemp(dir, "parmat-*.panel")
	if err != nil {
		return nil, nil, fmt.Errorf("dmat: scratch file: %w", err)
	}
	size := int64(n) * int64(unsafe.Sizeof(zero))
	if err := f.Truncate(size); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, nil, fmt.Errorf("dmat: scratch file: %w", err)
	}
	m, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, nil, fmt.Errorf("dmat: scratch mapping: %w", err)
	}
	data := unsafe.Slice((*T)(unsafe.Pointer(&m[0])), n)
	return data, &mappedBuf{f: f, m: m}, nil
}

// release unmaps and removes the scratch file. Safe on nil.
func (b *mappedBuf) release() error {
	if b == nil {
		return nil
	}
	err := b.m.Unmap()
	name := b.f.Name()
	if cerr := b.f.Close(); err == nil {
		err = cerr
	}
	if rerr := os.Remove(name); err == nil {
		err = rerr
	}
	return err
}
