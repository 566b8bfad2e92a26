// Package disasm walks a method's code bytes against the isa tables
// and the owning region's symbol tables to produce human-readable
// instruction listings, spec.md §4.9 "Decoder (C8)".
package disasm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arkbc/abcdis/internal/container"
	"github.com/arkbc/abcdis/internal/cursor"
	"github.com/arkbc/abcdis/internal/isa"
)

// ErrUnknownOpcode is returned when neither the prefix nor the
// ordinary table has an entry for the byte(s) at the cursor. Per
// spec.md §4.9 step 2.iii this aborts the whole method, it is not a
// per-instruction skip.
var ErrUnknownOpcode = errors.New("disasm: unknown opcode")

// Instruction is one decoded line: the raw instruction bytes, the
// mnemonic, and its rendered operand text in encounter order.
type Instruction struct {
	Offset   int
	Raw      []byte
	Mnemonic string
	Operands []string
}

// HexDump renders Raw as the uppercase hex dump spec.md §4.9 step 3
// asks each line to lead with.
func (in Instruction) HexDump() string {
	var b strings.Builder
	for _, by := range in.Raw {
		fmt.Fprintf(&b, "%02X", by)
	}
	return b.String()
}

// String renders one full disassembly line: hex dump, mnemonic, then
// space-joined operands.
func (in Instruction) String() string {
	if len(in.Operands) == 0 {
		return fmt.Sprintf("%s: %s", in.HexDump(), in.Mnemonic)
	}
	return fmt.Sprintf("%s: %s %s", in.HexDump(), in.Mnemonic, strings.Join(in.Operands, " "))
}

// Method decodes the given code's instruction bytes, resolving
// MSL-scoped operands (LiteralID/StringID/MethodID) against region
// and the string/literal pools owned by the whole file. buf is the
// full container byte buffer, needed to dereference string and method
// offsets the operands point at.
func Method(buf []byte, region container.Region, literalArrays map[uint32]string, code container.Code) ([]Instruction, error) {
	insns := code.Instructions
	size := len(insns)

	var out []Instruction
	cur := 0
	for cur < size {
		start := cur
		entry, ok := lookupAt(insns, cur)
		if !ok {
			return out, fmt.Errorf("%w: at instruction offset %d", ErrUnknownOpcode, cur)
		}

		operands, next, err := decodeOperands(buf, insns, cur+opcodeWidth(entry), region, literalArrays, entry)
		if err != nil {
			return out, err
		}
		cur = next

		out = append(out, Instruction{
			Offset:   start,
			Raw:      append([]byte(nil), insns[start:cur]...),
			Mnemonic: entry.Mnemonic,
			Operands: operands,
		})
	}

	return out, nil
}

// lookupAt implements spec.md §4.9 step 2: try the 2-byte prefix
// table first (when at least 2 bytes remain), falling back to the
// 1-byte ordinary table.
func lookupAt(insns []byte, off int) (isa.Entry, bool) {
	if len(insns)-off >= 2 {
		prefixKey, _, err := cursor.U16(insns, off)
		if err == nil {
			if e, ok := isa.Lookup(prefixKey, insns[off]); ok {
				return e, true
			}
		}
	}
	ordinaryKey, _, err := cursor.U8(insns, off)
	if err != nil {
		return isa.Entry{}, false
	}
	return isa.Lookup(0xffff, ordinaryKey)
}

func opcodeWidth(e isa.Entry) int {
	if len(e.Units) > 0 && e.Units[0] == isa.UPrefixOpcode {
		return 2
	}
	return 1
}

// decodeOperands walks e.Operands(), rendering each into text and
// advancing off by each unit's byte size.
func decodeOperands(buf, insns []byte, off int, region container.Region, literalArrays map[uint32]string, e isa.Entry) ([]string, int, error) {
	var rendered []string

	for _, unit := range e.Operands() {
		switch unit {
		case isa.URR:
			_, next, err := cursor.U8(insns, off)
			if err != nil {
				return rendered, off, err
			}
			off = next

		case isa.URRRR:
			_, next, err := cursor.U16(insns, off)
			if err != nil {
				return rendered, off, err
			}
			off = next

		case isa.UV4V4:
			b, next, err := cursor.U8(insns, off)
			if err != nil {
				return rendered, off, err
			}
			off = next
			low := b & 0x0f
			high := (b >> 4) & 0x0f
			rendered = append(rendered, fmt.Sprintf("v%d", low), fmt.Sprintf("v%d", high))

		case isa.UV8:
			b, next, err := cursor.U8(insns, off)
			if err != nil {
				return rendered, off, err
			}
			off = next
			rendered = append(rendered, fmt.Sprintf("v%d", b))

		case isa.UV16:
			v, next, err := cursor.U16(insns, off)
			if err != nil {
				return rendered, off, err
			}
			off = next
			rendered = append(rendered, fmt.Sprintf("v%d", v))

		case isa.UImm4Imm4:
			b, next, err := cursor.U8(insns, off)
			if err != nil {
				return rendered, off, err
			}
			off = next
			low := b & 0x0f
			high := (b >> 4) & 0x0f
			rendered = append(rendered, fmt.Sprintf("+%d", low), fmt.Sprintf("+%d", high))

		case isa.UImm8:
			b, next, err := cursor.U8(insns, off)
			if err != nil {
				return rendered, off, err
			}
			off = next
			rendered = append(rendered, fmt.Sprintf("+%d", int8(b)))

		case isa.UImm16:
			v, next, err := cursor.U16(insns, off)
			if err != nil {
				return rendered, off, err
			}
			off = next
			rendered = append(rendered, fmt.Sprintf("+%d", int16(v)))

		case isa.UImm32:
			v, next, err := cursor.U32(insns, off)
			if err != nil {
				return rendered, off, err
			}
			off = next
			rendered = append(rendered, fmt.Sprintf("+%d", int32(v)))

		case isa.UImm64:
			v, next, err := cursor.U64(insns, off)
			if err != nil {
				return rendered, off, err
			}
			off = next
			rendered = append(rendered, fmt.Sprintf("+%d", int64(v)))

		case isa.ULiteralID:
			idx, next, err := cursor.U16(insns, off)
			if err != nil {
				return rendered, off, err
			}
			off = next
			text := resolveLiteralArray(region, literalArrays, idx)
			rendered = append(rendered, fmt.Sprintf("{ %s }", text))

		case isa.UStringID:
			idx, next, err := cursor.U16(insns, off)
			if err != nil {
				return rendered, off, err
			}
			off = next
			text := resolveString(buf, region, idx)
			rendered = append(rendered, fmt.Sprintf("%q", text))

		case isa.UMethodID:
			idx, next, err := cursor.U16(insns, off)
			if err != nil {
				return rendered, off, err
			}
			off = next
			sig := resolveMethodSignature(buf, region, idx)
			rendered = append(rendered, sig)

		default:
			return rendered, off, fmt.Errorf("disasm: unsupported format unit %v", unit)
		}
	}

	return rendered, off, nil
}

func resolveLiteralArray(region container.Region, literalArrays map[uint32]string, idx uint16) string {
	off, ok := region.MSLOffset(idx)
	if !ok {
		return "<out-of-range>"
	}
	text, ok := literalArrays[off]
	if !ok {
		return "<unresolved>"
	}
	return text
}

func resolveString(buf []byte, region container.Region, idx uint16) string {
	off, ok := region.MSLOffset(idx)
	if !ok {
		return "<out-of-range>"
	}
	s, _, err := container.ReadString(buf, int(off))
	if err != nil {
		return "<unresolved>"
	}
	return s
}

// resolveMethodSignature renders "ClassName->methodName" for a
// MethodID operand: the MSL entry points at a raw Method record,
// resolved through container.ResolveMethodSignature's class-index
// lookup (the same resolution internal/container's own literal-array
// METHOD rendering uses).
func resolveMethodSignature(buf []byte, region container.Region, idx uint16) string {
	methodOff, ok := region.MSLOffset(idx)
	if !ok {
		return "<out-of-range>"
	}

	sig, err := container.ResolveMethodSignature(buf, region, methodOff)
	if err != nil {
		return "<unresolved>"
	}
	return sig
}
