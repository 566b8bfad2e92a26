package tools

import (
	"fmt"
	"strings"

	"github.com/arkbc/abcdis/internal/disasm"
)

// ListingStyle controls how FormatListing lays out a method's
// disassembly.
type ListingStyle int

const (
	// ListingDefault aligns offset, hex bytes, mnemonic and operands
	// into fixed columns.
	ListingDefault ListingStyle = iota
	// ListingCompact drops column alignment in favor of one
	// tab-separated line per instruction.
	ListingCompact
)

// ListingOptions controls FormatListing's column layout.
type ListingOptions struct {
	Style         ListingStyle
	OffsetColumn  int // column the offset field starts at (always 0)
	HexColumn     int // column the raw-byte hex dump starts at
	MnemonicColumn int // column the mnemonic starts at
	OperandColumn int // column operands start at
}

// DefaultListingOptions returns the layout FormatListing uses unless
// told otherwise.
func DefaultListingOptions() *ListingOptions {
	return &ListingOptions{
		Style:          ListingDefault,
		HexColumn:      10,
		MnemonicColumn: 28,
		OperandColumn:  44,
	}
}

// CompactListingOptions returns a tab-separated, unaligned layout.
func CompactListingOptions() *ListingOptions {
	return &ListingOptions{Style: ListingCompact}
}

// FormatListing renders a method's decoded instructions as an aligned
// text listing: offset, raw hex bytes, mnemonic, operands.
func FormatListing(qualifiedName string, insns []disasm.Instruction, opts *ListingOptions) string {
	if opts == nil {
		opts = DefaultListingOptions()
	}

	var out strings.Builder
	out.WriteString(qualifiedName)
	out.WriteString(":\n")

	for _, in := range insns {
		line := strings.Builder{}

		offset := fmt.Sprintf("%04x:", in.Offset)
		line.WriteString(offset)

		if opts.Style == ListingCompact {
			line.WriteString("\t")
			line.WriteString(in.HexDump())
			line.WriteString("\t")
			line.WriteString(in.Mnemonic)
			if len(in.Operands) > 0 {
				line.WriteString("\t")
				line.WriteString(strings.Join(in.Operands, ", "))
			}
			out.WriteString(line.String())
			out.WriteString("\n")
			continue
		}

		padToColumn(&line, opts.HexColumn)
		line.WriteString(in.HexDump())

		padToColumn(&line, opts.MnemonicColumn)
		line.WriteString(in.Mnemonic)

		if len(in.Operands) > 0 {
			padToColumn(&line, opts.OperandColumn)
			line.WriteString(strings.Join(in.Operands, ", "))
		}

		out.WriteString(line.String())
		out.WriteString("\n")
	}

	return out.String()
}

// padToColumn pads sb with spaces until it reaches column, or a single
// space if it has already passed it.
func padToColumn(sb *strings.Builder, column int) {
	current := sb.Len()
	switch {
	case current < column:
		sb.WriteString(strings.Repeat(" ", column-current))
	case current == column:
	default:
		sb.WriteString(" ")
	}
}
