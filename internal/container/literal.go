package container

import (
	"fmt"
	"math"

	"github.com/arkbc/abcdis/internal/cursor"
)

// Literal tag values, per spec.md §4.7 "Literal array pool" and the
// ArkTS LiteralTag enum it was distilled from. Each literal inside an
// array is a (tag byte, fixed-size payload) pair; the payload size is
// wholly determined by the tag, never by a length field of its own.
const (
	literalTagTagValue             = 0x00
	literalTagBool                 = 0x01
	literalTagInteger              = 0x02
	literalTagFloat                = 0x03
	literalTagDouble               = 0x04
	literalTagString               = 0x05
	literalTagMethod               = 0x06
	literalTagGeneratorMethod      = 0x07
	literalTagAccessor             = 0x08
	literalTagMethodAffiliate      = 0x09
	literalTagArrayU1              = 0x0a
	literalTagArrayU8              = 0x0b
	literalTagArrayI8              = 0x0c
	literalTagArrayU16             = 0x0d
	literalTagArrayI16             = 0x0e
	literalTagArrayU32             = 0x0f
	literalTagArrayI32             = 0x10
	literalTagArrayU64             = 0x11
	literalTagArrayI64             = 0x12
	literalTagArrayF32             = 0x13
	literalTagArrayF64             = 0x14
	literalTagArrayString          = 0x15
	literalTagAsyncGeneratorMethod = 0x16
	literalTagLiteralBufferIndex   = 0x17
	literalTagLiteralArray         = 0x18
	literalTagBuiltinTypeIndex     = 0x19
	literalTagGetter               = 0x1a
	literalTagSetter               = 0x1b
	literalTagNullValue            = 0xff
)

// literalArrayTagSize gives the fixed payload size, in bytes, that
// follows a literal-array-element tag byte (spec.md §4.7: "the tag
// value alone determines how many bytes follow; there is no embedded
// length field"). Most tags are 4 bytes wide; DOUBLE and ARRAY_F64 are
// 8, TAG_VALUE/BOOL/ACCESSOR/BUILTIN_TYPE_INDEX/NULL_VALUE are 1, and
// METHOD_AFFILIATE is 2. Note ARRAY_U64/ARRAY_I64 advance only 4
// bytes despite their name, matching the reference decoder exactly.
func literalArrayTagSize(tag uint8) (int, bool) {
	switch tag {
	case literalTagTagValue, literalTagBool, literalTagAccessor,
		literalTagBuiltinTypeIndex, literalTagNullValue:
		return 1, true
	case literalTagMethodAffiliate:
		return 2, true
	case literalTagDouble, literalTagArrayF64:
		return 8, true
	case literalTagInteger, literalTagFloat, literalTagString, literalTagMethod,
		literalTagGeneratorMethod, literalTagArrayU1, literalTagArrayU8,
		literalTagArrayI8, literalTagArrayU16, literalTagArrayI16,
		literalTagArrayU32, literalTagArrayI32, literalTagArrayU64,
		literalTagArrayI64, literalTagArrayF32, literalTagArrayString,
		literalTagAsyncGeneratorMethod, literalTagLiteralBufferIndex,
		literalTagLiteralArray, literalTagGetter, literalTagSetter:
		return 4, true
	default:
		return 0, false
	}
}

// renderLiteral formats one (tag, payload-offset) pair into the
// comma-separated rendering spec.md §4.7 specifies, e.g. "i32:
// 0x2a, " or `str: "hi", `. region resolves METHOD operands to a
// qualified "ClassName->methodName" signature the same way a
// MethodID format unit does (internal/disasm). Only BOOL, INTEGER,
// FLOAT, DOUBLE, STRING, METHOD, GENERATOR_METHOD, ACCESSOR,
// METHOD_AFFILIATE and GETTER contribute rendered text; every other
// tag only advances the cursor past its payload.
func renderLiteral(buf []byte, region Region, tag uint8, off int) (string, int, error) {
	switch tag {
	case literalTagBool:
		v, next, err := cursor.U8(buf, off)
		if err != nil {
			return "", off, err
		}
		return fmt.Sprintf("bool: %t, ", v != 0), next, nil
	case literalTagInteger:
		v, next, err := cursor.U32(buf, off)
		if err != nil {
			return "", off, err
		}
		return fmt.Sprintf("i32: 0x%x, ", v), next, nil
	case literalTagFloat:
		v, next, err := cursor.U32BE(buf, off)
		if err != nil {
			return "", off, err
		}
		return fmt.Sprintf("f32: %v, ", math.Float32frombits(v)), next, nil
	case literalTagDouble:
		v, next, err := cursor.U64BE(buf, off)
		if err != nil {
			return "", off, err
		}
		return fmt.Sprintf("f64: %v, ", math.Float64frombits(v)), next, nil
	case literalTagString:
		stringOff, next, err := cursor.U32(buf, off)
		if err != nil {
			return "", off, err
		}
		s, _, err := ReadString(buf, int(stringOff))
		if err != nil {
			return "", off, err
		}
		return fmt.Sprintf("str: %q, ", s), next, nil
	case literalTagMethod:
		methodOff, next, err := cursor.U32(buf, off)
		if err != nil {
			return "", off, err
		}
		sig, err := ResolveMethodSignature(buf, region, methodOff)
		if err != nil {
			sig = fmt.Sprintf("<unresolved@0x%x>", methodOff)
		}
		return fmt.Sprintf("Method: %s, ", sig), next, nil
	case literalTagGeneratorMethod:
		methodOff, next, err := cursor.U32(buf, off)
		if err != nil {
			return "", off, err
		}
		return fmt.Sprintf("GeneratorMethod: %d, ", methodOff), next, nil
	case literalTagAccessor:
		v, next, err := cursor.U8(buf, off)
		if err != nil {
			return "", off, err
		}
		return fmt.Sprintf("Accessor: %d, ", v), next, nil
	case literalTagMethodAffiliate:
		v, next, err := cursor.U16(buf, off)
		if err != nil {
			return "", off, err
		}
		return fmt.Sprintf("MethodAffiliate: %d, ", v), next, nil
	case literalTagGetter:
		v, next, err := cursor.U32(buf, off)
		if err != nil {
			return "", off, err
		}
		return fmt.Sprintf("Getter: 0x%x, ", v), next, nil
	default:
		// TAG_VALUE, every ARRAY_* tag, ASYNC_GENERATOR_METHOD,
		// LITERAL_BUFFER_INDEX, LITERAL_ARRAY, BUILTIN_TYPE_INDEX,
		// SETTER and NULL_VALUE: cursor-advance only, no rendered text.
		size, ok := literalArrayTagSize(tag)
		if !ok {
			return "", off, fmt.Errorf("container: unknown literal tag 0x%02x", tag)
		}
		_, next, err := cursor.Bytes(buf, off, size)
		if err != nil {
			return "", off, err
		}
		return "", next, nil
	}
}

// ReadLiteralArrayPool decodes h.NumLiteralArrays array headers from
// h.LiteralArrayIdxOff, rendering each array's elements to a single
// text string keyed by the array's own file offset. regions is the
// already-decoded region index (spec.md §4.7 step 1, "locate the
// enclosing region"); it lets METHOD literals resolve a qualified
// signature the same way a MethodID operand does. Per spec.md §4.7
// and §7, an individual array's decode failure is swallowed: the
// array is omitted from the result and the caller is expected to
// surface warnings through onWarning rather than abort the whole
// file. An unknown element tag inside an otherwise-readable array is
// not such a failure: it only halts that array's remaining elements
// (spec.md §4.7's tag table, "other: terminate array early"), and the
// array's partial rendering is still inserted into the result.
func ReadLiteralArrayPool(buf []byte, h Header, regions []Region, onWarning func(offset uint32, err error)) map[uint32]string {
	out := make(map[uint32]string, h.NumLiteralArrays)

	off := int(h.LiteralArrayIdxOff)
	for i := uint32(0); i < h.NumLiteralArrays; i++ {
		arrayOff, next, err := cursor.U32(buf, off)
		if err != nil {
			if onWarning != nil {
				onWarning(0, err)
			}
			break
		}
		off = next

		region, _ := FindRegion(regions, arrayOff)
		warn := func(err error) {
			if onWarning != nil {
				onWarning(arrayOff, err)
			}
		}

		rendered, err := renderLiteralArray(buf, int(arrayOff), region, warn)
		if err != nil {
			warn(err)
			continue
		}
		out[arrayOff] = rendered
	}

	return out
}

// renderLiteralArray decodes one array: a plain 4-byte little-endian
// element count (spec.md §4.7 step 2 — not a ULEB128 field), followed
// by that many (tag, payload) pairs. An unknown tag halts decoding of
// this array only, reporting it through warn and returning whatever
// was rendered so far rather than an error, matching the Rust
// reference's warn-then-break-then-insert behavior.
func renderLiteralArray(buf []byte, off int, region Region, warn func(error)) (string, error) {
	count, off2, err := cursor.U32(buf, off)
	if err != nil {
		return "", err
	}
	off = off2

	var s string
	for i := uint32(0); i < count; i++ {
		tag, next, err := cursor.U8(buf, off)
		if err != nil {
			return s, err
		}
		off = next

		if _, ok := literalArrayTagSize(tag); !ok {
			if warn != nil {
				warn(fmt.Errorf("container: unknown literal tag 0x%02x, halting array early", tag))
			}
			break
		}

		piece, next2, err := renderLiteral(buf, region, tag, off)
		if err != nil {
			return s, err
		}
		off = next2
		s += piece
	}

	return s, nil
}
