package abcfile_test

import (
	"errors"
	"testing"

	"github.com/arkbc/abcdis/abcfile"
	"github.com/arkbc/abcdis/internal/container"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileBuilder assembles a synthetic .abc buffer section by section,
// tracking each section's start offset so fixed-size header fields
// that point forward (class_idx_off, region_off, a method's name_off
// or code_off) can be filled in once the layout is known, rather than
// hand-counted.
type fileBuilder struct {
	buf []byte
}

func (b *fileBuilder) offset() uint32 { return uint32(len(b.buf)) }

func (b *fileBuilder) bytes(p []byte) uint32 {
	start := b.offset()
	b.buf = append(b.buf, p...)
	return start
}

func (b *fileBuilder) u32(v uint32) uint32 {
	start := b.offset()
	b.buf = append(b.buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	return start
}

func (b *fileBuilder) u16(v uint16) uint32 {
	start := b.offset()
	b.buf = append(b.buf, byte(v), byte(v>>8))
	return start
}

func (b *fileBuilder) u8(v uint8) uint32 {
	return b.bytes([]byte{v})
}

func (b *fileBuilder) uleb128(v uint64) uint32 {
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

// asciiString writes the length-prefixed MUTF-8 encoding of an ASCII
// string and returns its start offset.
func (b *fileBuilder) asciiString(s string) uint32 {
	start := b.offset()
	b.uleb128(uint64(len(s)<<1) | 1)
	b.bytes([]byte(s))
	b.u8(0)
	return start
}

func (b *fileBuilder) patchU32(at, v uint32) {
	b.buf[at] = byte(v)
	b.buf[at+1] = byte(v >> 8)
	b.buf[at+2] = byte(v >> 16)
	b.buf[at+3] = byte(v >> 24)
}

// buildS2 builds the spec's S2 scenario: one class Lfoo/Bar; with one
// method baz whose code is the single byte 0x65 (returnundefined).
func buildS2(t *testing.T) []byte {
	t.Helper()
	var b fileBuilder

	// Reserve the 60-byte fixed header; patched last.
	headerStart := b.offset()
	b.buf = append(b.buf, make([]byte, container.HeaderSize)...)
	require.Equal(t, uint32(0), headerStart)

	classIdxOff := b.offset()
	classIdxSlot := b.u32(0) // patched once the class record's offset is known

	classOff := b.offset()
	b.asciiString("Lfoo/Bar;")
	b.u32(0)        // super_off = 0 (no superclass)
	b.uleb128(0)    // access
	b.uleb128(0)    // field_count
	b.uleb128(1)    // method_count
	b.u8(0x00)      // class_data: tag NOTHING

	methodOff := b.offset()
	b.u16(0) // class_idx (unused by this test; type resolution not exercised)
	b.u16(0) // proto_idx
	nameOffSlot := b.u32(0) // patched below
	b.uleb128(0)            // access
	b.u8(0x01)              // method_data tag CODE
	codeOffSlot := b.u32(0) // patched below
	b.u8(0x00)              // method_data tag NOTHING

	nameOff := b.asciiString("baz")
	b.patchU32(nameOffSlot, nameOff)

	codeOff := b.offset()
	b.uleb128(0) // num_regs
	b.uleb128(0) // num_args
	b.uleb128(1) // code_size
	b.uleb128(0) // tries_size
	b.u8(0x65)   // returnundefined
	b.patchU32(codeOffSlot, codeOff)

	b.patchU32(classIdxSlot, classOff)
	_ = classIdxOff

	regionOff := b.offset()
	b.u32(0)     // start
	b.u32(1_000) // end (covers methodOff)
	b.u32(0)     // class_idx_size
	b.u32(0)     // class_idx_off
	b.u32(0)     // msl_size
	b.u32(0)     // msl_off
	b.u32(0)     // field_idx_size
	b.u32(0)     // field_idx_off
	b.u32(0)     // proto_idx_size
	b.u32(0)     // proto_idx_off

	fileSize := b.offset()

	// Patch the header in place.
	copy(b.buf[0:8], []byte{'P', 'A', 'N', 'D', 'A', 0, 0, 0})
	b.patchU32(8, 0)               // checksum
	b.patchU32(16, fileSize)       // file_size
	b.patchU32(20, 0)              // foreign_off
	b.patchU32(24, 0)              // foreign_size
	b.patchU32(28, 1)              // num_classes
	b.patchU32(32, classIdxOff)    // class_idx_off
	b.patchU32(36, 0)              // num_line_number_progs
	b.patchU32(40, 0)              // line_number_prog_off
	b.patchU32(44, 0)              // num_literal_arrays
	b.patchU32(48, 0)              // literal_array_idx_off
	b.patchU32(52, 1)              // region_size
	b.patchU32(56, regionOff)      // region_off

	_ = methodOff
	return b.buf
}

func TestAbcfileS2OneClassOneMethod(t *testing.T) {
	buf := buildS2(t)

	f, err := abcfile.New(buf, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"Lfoo/Bar;"}, f.ClassNames())
	assert.Equal(t, []string{"Lfoo/Bar;->baz"}, f.MethodNames())

	insns, err := f.DisassembleMethod("Lfoo/Bar;->baz")
	require.NoError(t, err)
	require.Len(t, insns, 1)
	assert.Equal(t, "returnundefined", insns[0].Mnemonic)
}

func TestAbcfileS1EmptyFile(t *testing.T) {
	var b fileBuilder
	b.buf = append(b.buf, make([]byte, container.HeaderSize)...)
	copy(b.buf[0:8], []byte{'P', 'A', 'N', 'D', 'A', 0, 0, 0})
	b.patchU32(16, container.HeaderSize) // file_size

	f, err := abcfile.New(b.buf, nil)
	require.NoError(t, err)

	assert.Empty(t, f.ClassNames())
	assert.Empty(t, f.MethodNames())
	assert.Empty(t, f.Strings())
}

func TestAbcfileDisassembleUnknownMethod(t *testing.T) {
	buf := buildS2(t)
	f, err := abcfile.New(buf, nil)
	require.NoError(t, err)

	_, err = f.DisassembleMethod("Lfoo/Bar;->nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, abcfile.ErrInvalidMethodReference)
}
