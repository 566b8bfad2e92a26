// Package loader acquires the byte buffer a container.Header and the
// rest of abcfile decode from, the "external collaborator" spec.md §5
// describes as outside the core model's concurrency story.
package loader

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// MmapThreshold is the file-size cutoff above which Load prefers
// memory-mapping over a full read, spec.md §5's "size-threshold
// policy": buffers above 100 MiB may be memory-mapped rather than
// read fully. This is a performance hint, not observable through the
// decoded model's interface.
const MmapThreshold = 100 * 1024 * 1024

// Buffer is an acquired file buffer. Close releases whatever backing
// resource was used (a no-op for a plain read, munmap for a mapped
// file).
type Buffer struct {
	Bytes []byte

	mapped bool
}

// Close releases the mapping, if any. Safe to call on a Buffer that
// was read rather than mapped.
func (b *Buffer) Close() error {
	if !b.mapped || b.Bytes == nil {
		return nil
	}
	err := unix.Munmap(b.Bytes)
	b.Bytes = nil
	return err
}

// Load acquires path's contents as a Buffer, choosing between a full
// read and a memory-mapping per MmapThreshold.
func Load(path string) (*Buffer, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided container file path
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("loader: stat %s: %w", path, err)
	}

	if info.Size() <= MmapThreshold {
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided container file path
		if err != nil {
			return nil, fmt.Errorf("loader: read %s: %w", path, err)
		}
		return &Buffer{Bytes: data}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(info.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("loader: mmap %s: %w", path, err)
	}
	return &Buffer{Bytes: data, mapped: true}, nil
}
