package container

import "github.com/arkbc/abcdis/internal/cursor"

// Method is a decoded method record, spec.md §3 "Method" / §4.4
// "Method decoding". ProtoIdx is retained but never resolved — proto
// decoding is out of scope (spec.md §1).
type Method struct {
	// Offset is this method's own file offset; it is the resolution key
	// for "which region does this method belong to" (spec.md §3
	// Region invariant).
	Offset      uint32
	ClassIdx    uint16
	ProtoIdx    uint16
	NameOff     uint32
	Access      AccessFlags
	Data        MethodData
	EncodedSize int
}

func readMethod(buf []byte, off int) (Method, error) {
	start := off
	var m Method
	m.Offset = uint32(start)
	var err error

	if m.ClassIdx, off, err = cursor.U16(buf, off); err != nil {
		return m, err
	}
	if m.ProtoIdx, off, err = cursor.U16(buf, off); err != nil {
		return m, err
	}
	if m.NameOff, off, err = cursor.U32(buf, off); err != nil {
		return m, err
	}
	accessVal, off2, err := cursor.Uleb128(buf, off)
	if err != nil {
		return m, err
	}
	off = off2
	m.Access = AccessFlags(accessVal)

	if m.Data, off, err = readMethodData(buf, off); err != nil {
		return m, err
	}

	m.EncodedSize = off - start
	return m, nil
}

// Code is a decoded Code record (spec.md §3 "Code" / §4.5).
type Code struct {
	NumRegs      uint64
	NumArgs      uint64
	Instructions []byte
	TryBlocks    []TryBlock
}

// TryBlock describes one exception-handling range within a method's
// code. Handler resolution is not performed by this package — control
// flow reconstruction is out of scope (spec.md §1 Non-goals).
type TryBlock struct {
	StartPC    uint64
	Length     uint64
	NumCatches uint64
	Catches    []CatchBlock
}

// CatchBlock is one catch clause of a TryBlock.
type CatchBlock struct {
	TypeIdx   uint64
	HandlerPC uint64
	CatchType uint64
}

// ResolveMethodSignature renders "ClassName->methodName" for the
// method record at methodOff: class_idx indexes the enclosing
// region's own class-region-index (not the file-wide class offset
// table), per the method-signature derivation spec.md §4.8's MethodID
// format unit and §4.7's METHOD literal tag both rely on.
func ResolveMethodSignature(buf []byte, region Region, methodOff uint32) (string, error) {
	classIdx, next, err := cursor.U16(buf, int(methodOff))
	if err != nil {
		return "", err
	}
	// proto_idx occupies the next 2 bytes and is not used for rendering.
	nameOff, _, err := cursor.U32(buf, next+2)
	if err != nil {
		return "", err
	}

	className := "<unresolved-class>"
	if int(classIdx) < len(region.ClassIndex) {
		className = region.ClassIndex[classIdx].Name
	}

	methodName, _, err := ReadString(buf, int(nameOff))
	if err != nil {
		methodName = "<unresolved-name>"
	}

	return className + "->" + methodName, nil
}

// ReadCode decodes a Code record at off, per spec.md §4.5.
func ReadCode(buf []byte, off int) (Code, error) {
	var c Code
	var err error

	if c.NumRegs, off, err = cursor.Uleb128(buf, off); err != nil {
		return c, err
	}
	if c.NumArgs, off, err = cursor.Uleb128(buf, off); err != nil {
		return c, err
	}
	codeSize, off2, err := cursor.Uleb128(buf, off)
	if err != nil {
		return c, err
	}
	off = off2
	triesSize, off3, err := cursor.Uleb128(buf, off)
	if err != nil {
		return c, err
	}
	off = off3

	insns, off4, err := cursor.Bytes(buf, off, int(codeSize))
	if err != nil {
		return c, err
	}
	off = off4
	// Copy so the decoded Code does not alias the source buffer's
	// lifetime in a surprising way for callers that keep Code around
	// longer than the file model.
	c.Instructions = append([]byte(nil), insns...)

	c.TryBlocks = make([]TryBlock, 0, triesSize)
	for i := uint64(0); i < triesSize; i++ {
		var tb TryBlock
		if tb.StartPC, off, err = cursor.Uleb128(buf, off); err != nil {
			return c, err
		}
		if tb.Length, off, err = cursor.Uleb128(buf, off); err != nil {
			return c, err
		}
		if tb.NumCatches, off, err = cursor.Uleb128(buf, off); err != nil {
			return c, err
		}
		tb.Catches = make([]CatchBlock, 0, tb.NumCatches)
		for j := uint64(0); j < tb.NumCatches; j++ {
			var cb CatchBlock
			if cb.TypeIdx, off, err = cursor.Uleb128(buf, off); err != nil {
				return c, err
			}
			if cb.HandlerPC, off, err = cursor.Uleb128(buf, off); err != nil {
				return c, err
			}
			if cb.CatchType, off, err = cursor.Uleb128(buf, off); err != nil {
				return c, err
			}
			tb.Catches = append(tb.Catches, cb)
		}
		c.TryBlocks = append(c.TryBlocks, tb)
	}

	return c, nil
}
