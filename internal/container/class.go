package container

import "github.com/arkbc/abcdis/internal/cursor"

// ForeignClass is a class declared externally, resident in the
// foreign region (spec.md §3 "Class index").
type ForeignClass struct {
	Name string
}

// Class is a decoded class record, spec.md §3 "Class" / §4.4 "Class
// decoding".
type Class struct {
	Offset      uint32
	Name        string
	SuperName   string // empty if the superclass offset was 0
	Access      AccessFlags
	FieldCount  uint64
	MethodCount uint64
	Data        ClassData
	Fields      []Field
	Methods     []Method
}

// readForeignClass decodes a ForeignClass: just a name string at off.
func readForeignClass(buf []byte, off int) (ForeignClass, error) {
	name, _, err := ReadString(buf, off)
	if err != nil {
		return ForeignClass{}, err
	}
	return ForeignClass{Name: name}, nil
}

// readClass decodes a Class at off, per spec.md §4.4 ordered steps
// 1-7: name, superclass offset, access flags, field/method counts,
// class_data, field records, method records.
func readClass(buf []byte, off int) (Class, error) {
	var c Class
	c.Offset = uint32(off)
	var err error

	if c.Name, off, err = ReadString(buf, off); err != nil {
		return c, err
	}

	superOff, off2, err := cursor.U32(buf, off)
	if err != nil {
		return c, err
	}
	off = off2
	if superOff != 0 {
		if c.SuperName, _, err = ReadString(buf, int(superOff)); err != nil {
			return c, err
		}
	}

	accessVal, off3, err := cursor.Uleb128(buf, off)
	if err != nil {
		return c, err
	}
	off = off3
	c.Access = AccessFlags(accessVal)

	if c.FieldCount, off, err = cursor.Uleb128(buf, off); err != nil {
		return c, err
	}
	if c.MethodCount, off, err = cursor.Uleb128(buf, off); err != nil {
		return c, err
	}

	if c.Data, off, err = readClassData(buf, off); err != nil {
		return c, err
	}

	c.Fields = make([]Field, 0, c.FieldCount)
	for i := uint64(0); i < c.FieldCount; i++ {
		field, err := readField(buf, off)
		if err != nil {
			return c, err
		}
		off += field.EncodedSize
		c.Fields = append(c.Fields, field)
	}

	c.Methods = make([]Method, 0, c.MethodCount)
	for i := uint64(0); i < c.MethodCount; i++ {
		method, err := readMethod(buf, off)
		if err != nil {
			return c, err
		}
		off += method.EncodedSize
		c.Methods = append(c.Methods, method)
	}

	return c, nil
}

// ReadClassIndex walks the N class-index offsets starting at
// h.ClassIdxOff and decodes each one as a ForeignClass (if it falls in
// the foreign interval) or a Class otherwise.
func ReadClassIndex(buf []byte, h Header) (classes map[uint32]Class, foreign map[uint32]ForeignClass, err error) {
	classes = make(map[uint32]Class, h.NumClasses)
	foreign = make(map[uint32]ForeignClass)

	off := int(h.ClassIdxOff)
	for i := uint32(0); i < h.NumClasses; i++ {
		entryOff, next, e := cursor.U32(buf, off)
		if e != nil {
			return nil, nil, e
		}
		off = next

		if h.IsForeignOffset(entryOff) {
			fc, e := readForeignClass(buf, int(entryOff))
			if e != nil {
				return nil, nil, e
			}
			foreign[entryOff] = fc
			continue
		}

		cl, e := readClass(buf, int(entryOff))
		if e != nil {
			return nil, nil, e
		}
		classes[entryOff] = cl
	}

	return classes, foreign, nil
}
