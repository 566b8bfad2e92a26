package tools_test

import (
	"testing"

	"github.com/arkbc/abcdis/internal/container"
)

// minimalBuilder is a trimmed-down version of the layout builder used
// in abcfile's own tests, kept local to this package so tools tests
// don't need to reach into abcfile's internal test helpers.
type minimalBuilder struct {
	buf []byte
}

func (b *minimalBuilder) offset() uint32 { return uint32(len(b.buf)) }

func (b *minimalBuilder) u32(v uint32) uint32 {
	start := b.offset()
	b.buf = append(b.buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	return start
}

func (b *minimalBuilder) patchU32(at, v uint32) {
	b.buf[at] = byte(v)
	b.buf[at+1] = byte(v >> 8)
	b.buf[at+2] = byte(v >> 16)
	b.buf[at+3] = byte(v >> 24)
}

func (b *minimalBuilder) u16(v uint16) uint32 {
	start := b.offset()
	b.buf = append(b.buf, byte(v), byte(v>>8))
	return start
}

func (b *minimalBuilder) u8(v uint8) uint32 {
	start := b.offset()
	b.buf = append(b.buf, v)
	return start
}

func (b *minimalBuilder) uleb(v uint64) uint32 {
	start := b.offset()
	for {
		by := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b.buf = append(b.buf, by|0x80)
			continue
		}
		b.buf = append(b.buf, by)
		break
	}
	return start
}

func (b *minimalBuilder) str(s string) uint32 {
	start := b.offset()
	b.uleb(uint64(len(s)<<1) | 1)
	b.buf = append(b.buf, []byte(s)...)
	b.u8(0)
	return start
}

// buildEmptyFile returns a minimal valid header-only .abc buffer (S1).
func buildEmptyFile() []byte {
	var b minimalBuilder
	b.buf = make([]byte, container.HeaderSize)
	copy(b.buf[0:8], []byte{'P', 'A', 'N', 'D', 'A', 0, 0, 0})
	b.patchU32(16, container.HeaderSize) // file_size
	return b.buf
}

// buildTwoOverlappingRegions returns a header-only-class file whose
// region table has two regions that overlap, exercising the
// disjointness check independent of any class/method content.
func buildTwoOverlappingRegions() []byte {
	var b minimalBuilder
	b.buf = make([]byte, container.HeaderSize)
	copy(b.buf[0:8], []byte{'P', 'A', 'N', 'D', 'A', 0, 0, 0})

	regionOff := b.offset()
	// region A: [0, 100)
	b.u32(0)
	b.u32(100)
	for i := 0; i < 8; i++ {
		b.u32(0)
	}
	// region B: [50, 150) -- overlaps region A
	b.u32(50)
	b.u32(150)
	for i := 0; i < 8; i++ {
		b.u32(0)
	}

	fileSize := b.offset()
	b.patchU32(16, fileSize)
	b.patchU32(52, 2)         // region_size
	b.patchU32(56, regionOff) // region_off
	return b.buf
}
