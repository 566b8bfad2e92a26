// Package cursor provides bounds-checked reads of fixed-width integers,
// LEB128/SLEB128 variable-length integers, and raw byte slices from an
// immutable buffer. It never mutates the buffer and carries no cursor
// state of its own: callers track the offset and get the next offset
// back from every read, the same contract spec.md §4.1 describes.
package cursor

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned when a read would exceed the buffer.
var ErrOutOfBounds = errors.New("cursor: out of bounds")

// ErrInvalidLeb128 is returned when a LEB128/SLEB128 sequence exceeds
// 10 bytes without a terminating byte.
var ErrInvalidLeb128 = errors.New("cursor: invalid leb128 sequence")

// maxLebBytes bounds a LEB128 sequence: 10 groups of 7 bits (70 bits)
// are the fewest that cover the full 64-bit range, matching the reference
// parser's "over-long" failure mode.
const maxLebBytes = 10

func need(buf []byte, off, n int) error {
	if off < 0 || n < 0 || off+n > len(buf) {
		return fmt.Errorf("%w: need %d bytes at offset %d, buffer is %d bytes", ErrOutOfBounds, n, off, len(buf))
	}
	return nil
}

// U8 reads one byte at off.
func U8(buf []byte, off int) (uint8, int, error) {
	if err := need(buf, off, 1); err != nil {
		return 0, off, err
	}
	return buf[off], off + 1, nil
}

// U16 reads a little-endian uint16 at off.
func U16(buf []byte, off int) (uint16, int, error) {
	if err := need(buf, off, 2); err != nil {
		return 0, off, err
	}
	return uint16(buf[off]) | uint16(buf[off+1])<<8, off + 2, nil
}

// U16BE reads a big-endian uint16 at off.
func U16BE(buf []byte, off int) (uint16, int, error) {
	if err := need(buf, off, 2); err != nil {
		return 0, off, err
	}
	return uint16(buf[off])<<8 | uint16(buf[off+1]), off + 2, nil
}

// U32 reads a little-endian uint32 at off.
func U32(buf []byte, off int) (uint32, int, error) {
	if err := need(buf, off, 4); err != nil {
		return 0, off, err
	}
	return uint32(buf[off]) | uint32(buf[off+1])<<8 | uint32(buf[off+2])<<16 | uint32(buf[off+3])<<24, off + 4, nil
}

// U32BE reads a big-endian uint32 at off.
func U32BE(buf []byte, off int) (uint32, int, error) {
	if err := need(buf, off, 4); err != nil {
		return 0, off, err
	}
	return uint32(buf[off])<<24 | uint32(buf[off+1])<<16 | uint32(buf[off+2])<<8 | uint32(buf[off+3]), off + 4, nil
}

// U64 reads a little-endian uint64 at off.
func U64(buf []byte, off int) (uint64, int, error) {
	if err := need(buf, off, 8); err != nil {
		return 0, off, err
	}
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(buf[off+i]) << (8 * i)
	}
	return v, off + 8, nil
}

// U64BE reads a big-endian uint64 at off.
func U64BE(buf []byte, off int) (uint64, int, error) {
	if err := need(buf, off, 8); err != nil {
		return 0, off, err
	}
	var v uint64
	for i := 0; i < 8; i++ {
		v = v<<8 | uint64(buf[off+i])
	}
	return v, off + 8, nil
}

// Bytes returns a sub-slice of buf[off:off+n] without copying.
func Bytes(buf []byte, off, n int) ([]byte, int, error) {
	if err := need(buf, off, n); err != nil {
		return nil, off, err
	}
	return buf[off : off+n], off + n, nil
}

// Uleb128 decodes an unsigned LEB128 integer starting at off.
func Uleb128(buf []byte, off int) (uint64, int, error) {
	var result uint64
	var shift uint
	pos := off
	for i := 0; i < maxLebBytes; i++ {
		b, next, err := U8(buf, pos)
		if err != nil {
			return 0, off, err
		}
		pos = next
		result |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return result, pos, nil
		}
		shift += 7
	}
	return 0, off, ErrInvalidLeb128
}

// Sleb128 decodes a signed LEB128 integer starting at off.
func Sleb128(buf []byte, off int) (int64, int, error) {
	var result int64
	var shift uint
	pos := off
	var b byte
	var err error
	for i := 0; i < maxLebBytes; i++ {
		b, pos, err = U8(buf, pos)
		if err != nil {
			return 0, off, err
		}
		result |= int64(b&0x7f) << shift
		shift += 7
		if b&0x80 == 0 {
			if shift < 64 && b&0x40 != 0 {
				result |= -1 << shift
			}
			return result, pos, nil
		}
	}
	return 0, off, ErrInvalidLeb128
}
