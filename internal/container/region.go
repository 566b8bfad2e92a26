package container

import "github.com/arkbc/abcdis/internal/cursor"

// regionHeaderSize is the on-disk size of one fixed RegionHeader: 10
// little-endian u32 fields, spec.md §4.6.
const regionHeaderSize = 10 * 4

// primitiveNames maps a class-region-index raw value <= 0x0b to its
// primitive type name, spec.md §3 "Region" class-region-index.
var primitiveNames = [...]string{
	"u1", "i8", "u8", "i16", "u16", "i32", "u32", "f32", "f64", "i64", "u64", "any",
}

const maxPrimitiveTag = 0x0b

// maxSubIndexCount is the largest field/proto sub-index count the
// decoder reads; a larger count is treated as "no such table", per
// spec.md §4.6 step 2's sentinel predicate: any count greater than
// 65536 is rejected rather than
// specifically requiring the wire value 0xFFFFFFFF.
const maxSubIndexCount = 65536

// FieldType is a resolved entry of a region's class-region-index:
// either a primitive name or the name of a class (foreign or main).
type FieldType struct {
	Name string
}

// Region is one entry of the segmented region index: a contiguous
// [Start, End) offset interval plus four sub-indices, spec.md §3
// "Region" / §4.6.
type Region struct {
	Start uint32
	End   uint32

	ClassIndex []FieldType
	MSLIndex   []uint32 // method/string/literal-region-index offsets
	FieldIndex []uint32 // present only when count <= maxSubIndexCount
	ProtoIndex []uint32 // present only when count <= maxSubIndexCount
}

// Contains reports whether off lies within [Start, End).
func (r Region) Contains(off uint32) bool {
	return off >= r.Start && off < r.End
}

// MSLOffset dereferences a 16-bit MSL operand index against this
// region's MSL table.
func (r Region) MSLOffset(idx uint16) (uint32, bool) {
	if int(idx) >= len(r.MSLIndex) {
		return 0, false
	}
	return r.MSLIndex[idx], true
}

// ReadRegions decodes h.RegionSize RegionHeader entries starting at
// h.RegionOff, materializing each one's four sub-indices. classes and
// foreign are the already-decoded class tables, needed to resolve
// class-region-index entries that point at a class rather than naming
// a primitive.
func ReadRegions(buf []byte, h Header, classes map[uint32]Class, foreign map[uint32]ForeignClass) ([]Region, error) {
	regions := make([]Region, 0, h.RegionSize)

	for i := uint32(0); i < h.RegionSize; i++ {
		headerOff := int(h.RegionOff) + int(i)*regionHeaderSize
		off := headerOff

		var r Region
		var err error
		if r.Start, off, err = cursor.U32(buf, off); err != nil {
			return nil, err
		}
		if r.End, off, err = cursor.U32(buf, off); err != nil {
			return nil, err
		}

		classIdxSize, off2, err := cursor.U32(buf, off)
		if err != nil {
			return nil, err
		}
		off = off2
		classIdxOff, off3, err := cursor.U32(buf, off)
		if err != nil {
			return nil, err
		}
		off = off3

		mslSize, off4, err := cursor.U32(buf, off)
		if err != nil {
			return nil, err
		}
		off = off4
		mslOff, off5, err := cursor.U32(buf, off)
		if err != nil {
			return nil, err
		}
		off = off5

		fieldIdxSize, off6, err := cursor.U32(buf, off)
		if err != nil {
			return nil, err
		}
		off = off6
		fieldIdxOff, off7, err := cursor.U32(buf, off)
		if err != nil {
			return nil, err
		}
		off = off7

		protoIdxSize, off8, err := cursor.U32(buf, off)
		if err != nil {
			return nil, err
		}
		off = off8
		protoIdxOff, _, err := cursor.U32(buf, off)
		if err != nil {
			return nil, err
		}

		if r.ClassIndex, err = readClassRegionIndex(buf, classIdxOff, classIdxSize, h, classes, foreign); err != nil {
			return nil, err
		}
		if r.MSLIndex, err = readU32Vector(buf, mslOff, mslSize); err != nil {
			return nil, err
		}
		if fieldIdxSize <= maxSubIndexCount {
			if r.FieldIndex, err = readU32Vector(buf, fieldIdxOff, fieldIdxSize); err != nil {
				return nil, err
			}
		}
		if protoIdxSize <= maxSubIndexCount {
			if r.ProtoIndex, err = readU32Vector(buf, protoIdxOff, protoIdxSize); err != nil {
				return nil, err
			}
		}

		regions = append(regions, r)
	}

	return regions, nil
}

func readU32Vector(buf []byte, off, count uint32) ([]uint32, error) {
	out := make([]uint32, 0, count)
	pos := int(off)
	for i := uint32(0); i < count; i++ {
		v, next, err := cursor.U32(buf, pos)
		if err != nil {
			return nil, err
		}
		pos = next
		out = append(out, v)
	}
	return out, nil
}

func readClassRegionIndex(buf []byte, off, count uint32, h Header, classes map[uint32]Class, foreign map[uint32]ForeignClass) ([]FieldType, error) {
	out := make([]FieldType, 0, count)
	for i := uint32(0); i < count; i++ {
		slotOff := int(off) + int(i)*4
		v, _, err := cursor.U32(buf, slotOff)
		if err != nil {
			return nil, err
		}

		if v <= maxPrimitiveTag {
			out = append(out, FieldType{Name: primitiveNames[v]})
			continue
		}

		if h.IsForeignOffset(v) {
			if fc, ok := foreign[v]; ok {
				out = append(out, FieldType{Name: fc.Name})
				continue
			}
		}
		if cl, ok := classes[v]; ok {
			out = append(out, FieldType{Name: cl.Name})
			continue
		}
		out = append(out, FieldType{Name: "<unresolved>"})
	}
	return out, nil
}

// FindRegion returns the first region containing off, per spec.md
// §4.6's "regions are disjoint; count is small — linear scan is
// adequate".
func FindRegion(regions []Region, off uint32) (Region, bool) {
	for _, r := range regions {
		if r.Contains(off) {
			return r, true
		}
	}
	return Region{}, false
}
