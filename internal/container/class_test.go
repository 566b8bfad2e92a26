package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkbc/abcdis/internal/container"
)

type classFixtureBuilder struct {
	buf []byte
}

func (b *classFixtureBuilder) offset() uint32 { return uint32(len(b.buf)) }

func (b *classFixtureBuilder) u32(v uint32) uint32 {
	start := b.offset()
	b.buf = append(b.buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	return start
}

func (b *classFixtureBuilder) patchU32(at uint32, v uint32) {
	b.buf[at] = byte(v)
	b.buf[at+1] = byte(v >> 8)
	b.buf[at+2] = byte(v >> 16)
	b.buf[at+3] = byte(v >> 24)
}

func (b *classFixtureBuilder) u16(v uint16) uint32 {
	start := b.offset()
	b.buf = append(b.buf, byte(v), byte(v>>8))
	return start
}

func (b *classFixtureBuilder) u8(v uint8) uint32 {
	start := b.offset()
	b.buf = append(b.buf, v)
	return start
}

func (b *classFixtureBuilder) uleb(v uint64) uint32 {
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

func (b *classFixtureBuilder) sleb(v int64) uint32 {
	start := b.offset()
	more := true
	for more {
		by := byte(v & 0x7f)
		v >>= 7
		if (v == 0 && by&0x40 == 0) || (v == -1 && by&0x40 != 0) {
			more = false
		} else {
			by |= 0x80
		}
		b.buf = append(b.buf, by)
	}
	return start
}

func (b *classFixtureBuilder) asciiString(s string) uint32 {
	start := b.offset()
	b.uleb(uint64(len(s)<<1) | 1)
	b.buf = append(b.buf, []byte(s)...)
	b.u8(0)
	return start
}

// buildOneClassOneFieldOneMethod lays out a class index with a single
// class entry that has one field (with an int-value field_data tag)
// and one method (with a source-lang method_data tag, no CODE).
func buildOneClassOneFieldOneMethod(t *testing.T) ([]byte, container.Header) {
	t.Helper()
	var b classFixtureBuilder

	classIdxOff := b.offset()
	classSlot := b.u32(0)

	classOff := b.offset()
	b.asciiString("Lfoo/Widget;")
	b.u32(0) // super_off = 0 (no superclass)
	b.uleb(0)
	b.uleb(1) // field_count
	b.uleb(1) // method_count
	b.u8(0x00) // class_data: nothing

	// field: class_idx, type_idx, name_off, access, field_data{int_value, nothing}
	b.u16(0)
	b.u16(0)
	fieldNameSlot := b.u32(0)
	b.uleb(0)
	b.u8(0x01) // field_data tag: int value
	b.sleb(42)
	b.u8(0x00)

	fieldNameOff := b.asciiString("count")
	b.patchU32(fieldNameSlot, fieldNameOff)

	// method: class_idx, proto_idx, name_off, access, method_data{source_lang, nothing}
	b.u16(0)
	b.u16(0)
	methodNameSlot := b.u32(0)
	b.uleb(0)
	b.u8(0x02) // method_data tag: source lang
	b.u8(1)
	b.u8(0x00)

	methodNameOff := b.asciiString("reset")
	b.patchU32(methodNameSlot, methodNameOff)

	b.patchU32(classSlot, classOff)

	h := container.Header{
		NumClasses:  1,
		ClassIdxOff: classIdxOff,
	}
	return b.buf, h
}

func TestReadClassIndexFieldAndMethodTags(t *testing.T) {
	buf, h := buildOneClassOneFieldOneMethod(t)

	classes, foreign, err := container.ReadClassIndex(buf, h)
	require.NoError(t, err)
	assert.Empty(t, foreign)
	require.Len(t, classes, 1)

	var class container.Class
	for _, c := range classes {
		class = c
	}

	assert.Equal(t, "Lfoo/Widget;", class.Name)
	assert.Empty(t, class.SuperName)
	require.Len(t, class.Fields, 1)
	require.Len(t, class.Methods, 1)

	field := class.Fields[0]
	require.NotNil(t, field.Data.IntValue)
	assert.Equal(t, int64(42), *field.Data.IntValue)

	method := class.Methods[0]
	require.NotNil(t, method.Data.SourceLang)
	assert.Equal(t, uint8(1), *method.Data.SourceLang)
	assert.False(t, method.Data.HasCode)
}

func TestReadClassIndexUnknownTagFails(t *testing.T) {
	var b classFixtureBuilder

	classIdxOff := b.offset()
	classSlot := b.u32(0)

	classOff := b.offset()
	b.asciiString("Lbad/Class;")
	b.u32(0)
	b.uleb(0)
	b.uleb(0)
	b.uleb(0)
	b.u8(0xee) // unknown class_data tag

	b.patchU32(classSlot, classOff)

	h := container.Header{NumClasses: 1, ClassIdxOff: classIdxOff}

	_, _, err := container.ReadClassIndex(b.buf, h)
	require.Error(t, err)
	assert.ErrorIs(t, err, container.ErrMalformedClassData)
}

func TestReadClassIndexSuperclassResolved(t *testing.T) {
	var b classFixtureBuilder

	classIdxOff := b.offset()
	superSlot := b.u32(0)
	subSlot := b.u32(0)

	superOff := b.offset()
	b.asciiString("Lfoo/Base;")
	b.u32(0)
	b.uleb(0)
	b.uleb(0)
	b.uleb(0)
	b.u8(0x00)
	b.patchU32(superSlot, superOff)

	subOff := b.offset()
	b.asciiString("Lfoo/Sub;")
	b.u32(superOff)
	b.uleb(0)
	b.uleb(0)
	b.uleb(0)
	b.u8(0x00)
	b.patchU32(subSlot, subOff)

	h := container.Header{NumClasses: 2, ClassIdxOff: classIdxOff}

	classes, _, err := container.ReadClassIndex(b.buf, h)
	require.NoError(t, err)
	require.Len(t, classes, 2)
	assert.Equal(t, "Lfoo/Base;", classes[superOff].Name)
	assert.Equal(t, "Lfoo/Sub;", classes[subOff].Name)
	assert.Equal(t, "Lfoo/Base;", classes[subOff].SuperName)
}
