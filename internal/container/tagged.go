package container

import (
	"errors"
	"fmt"

	"github.com/arkbc/abcdis/internal/cursor"
)

// ErrMalformedClassData is returned when a class/field/method tagged
// value list contains a tag outside the domain's known set. Tags
// overlap numerically across class/field/method but differ
// semantically, so each domain gets its own terminator-driven reader
// rather than one shared polymorphic loop — spec.md §9 "Tagged-value
// lists as parser state machines".
var ErrMalformedClassData = errors.New("container: malformed class data")

// ErrMalformedFieldData mirrors ErrMalformedClassData for field_data.
var ErrMalformedFieldData = errors.New("container: malformed field data")

// ErrMalformedMethodData mirrors ErrMalformedClassData for method_data.
var ErrMalformedMethodData = errors.New("container: malformed method data")

// classTag values, per spec.md §4.4 step 5.
const (
	classTagNothing    = 0x00
	classTagInterfaces = 0x01
	classTagSourceLang = 0x02
	classTagOffset3    = 0x03
	classTagOffset4    = 0x04
	classTagOffset5    = 0x05
	classTagOffset6    = 0x06
	classTagSourceFile = 0x07
)

// ClassData is the decoded class tagged-value list.
type ClassData struct {
	HasInterfaces bool
	SourceLang    *uint8
	SourceFileOff *uint32
	RawOffsets    map[uint8]uint32
}

func readClassData(buf []byte, off int) (ClassData, int, error) {
	var cd ClassData
	cd.RawOffsets = make(map[uint8]uint32)
	for {
		tag, next, err := cursor.U8(buf, off)
		if err != nil {
			return cd, off, err
		}
		off = next
		switch tag {
		case classTagNothing:
			return cd, off, nil
		case classTagInterfaces:
			// Open question (spec.md §9): INTERFACES is documented as
			// presence-only in the source this was distilled from; we
			// follow that and read no payload.
			cd.HasInterfaces = true
		case classTagSourceLang:
			v, next, err := cursor.U8(buf, off)
			if err != nil {
				return cd, off, err
			}
			off = next
			cd.SourceLang = &v
		case classTagOffset3, classTagOffset4, classTagOffset5, classTagOffset6:
			v, next, err := cursor.U32(buf, off)
			if err != nil {
				return cd, off, err
			}
			off = next
			cd.RawOffsets[tag] = v
		case classTagSourceFile:
			v, next, err := cursor.U32(buf, off)
			if err != nil {
				return cd, off, err
			}
			off = next
			cd.SourceFileOff = &v
		default:
			return cd, off, fmt.Errorf("%w: unknown class tag 0x%02x", ErrMalformedClassData, tag)
		}
	}
}

// field_data tags, per spec.md §4.4 "Field decoding".
const (
	fieldTagNothing  = 0x00
	fieldTagIntValue = 0x01
	fieldTagValue2   = 0x02
	fieldTagValue3   = 0x03
	fieldTagValue4   = 0x04
	fieldTagValue5   = 0x05
	fieldTagValue6   = 0x06
)

// FieldData is the decoded field tagged-value list.
type FieldData struct {
	IntValue     *int64
	ValueOffsets map[uint8]uint32
}

func readFieldData(buf []byte, off int) (FieldData, int, error) {
	var fd FieldData
	fd.ValueOffsets = make(map[uint8]uint32)
	for {
		tag, next, err := cursor.U8(buf, off)
		if err != nil {
			return fd, off, err
		}
		off = next
		switch tag {
		case fieldTagNothing:
			return fd, off, nil
		case fieldTagIntValue:
			v, next, err := cursor.Sleb128(buf, off)
			if err != nil {
				return fd, off, err
			}
			off = next
			fd.IntValue = &v
		case fieldTagValue2, fieldTagValue3, fieldTagValue4, fieldTagValue5, fieldTagValue6:
			v, next, err := cursor.U32(buf, off)
			if err != nil {
				return fd, off, err
			}
			off = next
			fd.ValueOffsets[tag] = v
		default:
			return fd, off, fmt.Errorf("%w: unknown field tag 0x%02x", ErrMalformedFieldData, tag)
		}
	}
}

// method_data tags, per spec.md §4.4 "Method decoding". Only CODE
// (0x01) matters to disassembly; the rest are consumed for cursor
// advancement and kept as raw offsets.
const (
	methodTagNothing    = 0x00
	methodTagCode       = 0x01
	methodTagSourceLang = 0x02
	methodTagOffset3    = 0x03
	methodTagOffset4    = 0x04
	methodTagOffset5    = 0x05
	methodTagOffset6    = 0x06
	methodTagOffset7    = 0x07
	methodTagOffset8    = 0x08
	methodTagOffset9    = 0x09
)

// MethodData is the decoded method tagged-value list.
type MethodData struct {
	CodeOff    uint32
	HasCode    bool
	SourceLang *uint8
	RawOffsets map[uint8]uint32
}

func readMethodData(buf []byte, off int) (MethodData, int, error) {
	var md MethodData
	md.RawOffsets = make(map[uint8]uint32)
	for {
		tag, next, err := cursor.U8(buf, off)
		if err != nil {
			return md, off, err
		}
		off = next
		switch tag {
		case methodTagNothing:
			return md, off, nil
		case methodTagCode:
			v, next, err := cursor.U32(buf, off)
			if err != nil {
				return md, off, err
			}
			off = next
			md.CodeOff = v
			md.HasCode = true
		case methodTagSourceLang:
			v, next, err := cursor.U8(buf, off)
			if err != nil {
				return md, off, err
			}
			off = next
			md.SourceLang = &v
		case methodTagOffset3, methodTagOffset4, methodTagOffset5, methodTagOffset6,
			methodTagOffset7, methodTagOffset8, methodTagOffset9:
			v, next, err := cursor.U32(buf, off)
			if err != nil {
				return md, off, err
			}
			off = next
			md.RawOffsets[tag] = v
		default:
			return md, off, fmt.Errorf("%w: unknown method tag 0x%02x", ErrMalformedMethodData, tag)
		}
	}
}
