// Package container decodes the ABC container format: the fixed file
// header, class/field/method records, the region index, and the
// literal-array pool. It never executes or interprets bytecode — that
// is the job of internal/disasm — it only turns bytes into the
// structures spec.md §3 describes.
package container

import (
	"errors"
	"fmt"

	"github.com/arkbc/abcdis/internal/cursor"
)

// ErrMalformedHeader is returned when the magic does not match, the
// buffer is truncated, or the header's own offsets are impossible.
var ErrMalformedHeader = errors.New("container: malformed header")

// magic is the fixed 8-byte signature every ABC file starts with.
var magic = [8]byte{'P', 'A', 'N', 'D', 'A', 0, 0, 0}

// HeaderSize is the fixed on-disk size of Header in bytes.
const HeaderSize = 60

// Header is the fixed 60-byte file header. Display is for diagnostics
// only; it is not a stable surface.
type Header struct {
	Magic               [8]byte
	Checksum            uint32
	Version             [4]byte
	FileSize            uint32
	ForeignOff          uint32
	ForeignSize         uint32
	NumClasses          uint32
	ClassIdxOff         uint32
	NumLineNumberProgs  uint32
	LineNumberProgOff   uint32
	NumLiteralArrays    uint32
	LiteralArrayIdxOff  uint32
	RegionSize          uint32
	RegionOff           uint32
}

// ReadHeader reads exactly HeaderSize bytes from offset 0 of buf. It
// does not verify the checksum.
func ReadHeader(buf []byte) (Header, error) {
	var h Header
	if len(buf) < HeaderSize {
		return h, fmt.Errorf("%w: file is %d bytes, need at least %d", ErrMalformedHeader, len(buf), HeaderSize)
	}

	off := 0
	for i := 0; i < 8; i++ {
		h.Magic[i] = buf[off+i]
	}
	off += 8
	if h.Magic != magic {
		return h, fmt.Errorf("%w: magic %q, want %q", ErrMalformedHeader, h.Magic[:], magic[:])
	}

	var v uint32
	var err error
	if v, off, err = cursor.U32(buf, off); err != nil {
		return h, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}
	h.Checksum = v

	for i := 0; i < 4; i++ {
		h.Version[i] = buf[off+i]
	}
	off += 4

	fields := []*uint32{
		&h.FileSize, &h.ForeignOff, &h.ForeignSize,
		&h.NumClasses, &h.ClassIdxOff,
		&h.NumLineNumberProgs, &h.LineNumberProgOff,
		&h.NumLiteralArrays, &h.LiteralArrayIdxOff,
		&h.RegionSize, &h.RegionOff,
	}
	for _, f := range fields {
		if v, off, err = cursor.U32(buf, off); err != nil {
			return h, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
		}
		*f = v
	}

	if h.ForeignOff+h.ForeignSize > h.FileSize {
		return h, fmt.Errorf("%w: foreign region [%d, %d) exceeds file size %d", ErrMalformedHeader, h.ForeignOff, h.ForeignOff+h.ForeignSize, h.FileSize)
	}
	if uint64(h.ClassIdxOff)+4*uint64(h.NumClasses) > uint64(h.FileSize) {
		return h, fmt.Errorf("%w: class index [%d, +%d*4) exceeds file size %d", ErrMalformedHeader, h.ClassIdxOff, h.NumClasses, h.FileSize)
	}

	return h, nil
}

// IsForeignOffset reports whether off lies in the half-open foreign
// interval [ForeignOff, ForeignOff+ForeignSize). spec.md §9 leaves the
// half-open-vs-inclusive choice open; we implement half-open.
func (h Header) IsForeignOffset(off uint32) bool {
	return off >= h.ForeignOff && off < h.ForeignOff+h.ForeignSize
}

// String renders the header for human diagnostics. Not a stable format.
func (h Header) String() string {
	return fmt.Sprintf(
		"magic=%q checksum=0x%08x version=%d.%d.%d.%d file_size=%d foreign=[%d,+%d) classes=%d class_idx_off=%d lnps=%d literal_arrays=%d regions=%d region_off=%d",
		h.Magic[:5], h.Checksum,
		h.Version[0], h.Version[1], h.Version[2], h.Version[3],
		h.FileSize, h.ForeignOff, h.ForeignSize,
		h.NumClasses, h.ClassIdxOff,
		h.NumLineNumberProgs, h.NumLiteralArrays, h.RegionSize, h.RegionOff,
	)
}
