package container

import "github.com/arkbc/abcdis/internal/cursor"

// Field is a decoded field record, spec.md §3 "Field" / §4.4 "Field
// decoding". TypeIdx is resolved against the enclosing region's
// class-region-index by the caller; Field itself only carries the raw
// index.
type Field struct {
	ClassIdx    uint16
	TypeIdx     uint16
	NameOff     uint32
	Access      AccessFlags
	Data        FieldData
	EncodedSize int
}

func readField(buf []byte, off int) (Field, error) {
	start := off
	var f Field
	var err error

	if f.ClassIdx, off, err = readU16(buf, off); err != nil {
		return f, err
	}
	if f.TypeIdx, off, err = readU16(buf, off); err != nil {
		return f, err
	}
	if f.NameOff, off, err = cursor.U32(buf, off); err != nil {
		return f, err
	}
	accessVal, off2, err := cursor.Uleb128(buf, off)
	if err != nil {
		return f, err
	}
	off = off2
	f.Access = AccessFlags(accessVal)

	if f.Data, off, err = readFieldData(buf, off); err != nil {
		return f, err
	}

	f.EncodedSize = off - start
	return f, nil
}

func readU16(buf []byte, off int) (uint16, int, error) {
	return cursor.U16(buf, off)
}
