// Package tools holds standalone analyses that run over an already
// decoded abcfile.File: a method cross-reference builder and a set of
// structural validators, both supplemental to the core disassembler
// (spec.md §6 "Supplemented Features").
package tools

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arkbc/abcdis/abcfile"
)

// Reference is one call site referring to a method, found while
// disassembling a caller's code.
type Reference struct {
	Caller         string
	InstructionOff int
}

// MethodXRef is a target method and every call site that names it via
// a MethodID operand.
type MethodXRef struct {
	Method     string
	References []Reference
}

// BuildXRef disassembles every method in f and records, for each
// MethodID operand encountered, which caller referenced which callee.
// Methods with no code (abstract/native) are skipped as callers but
// still appear as xref targets if referenced.
func BuildXRef(f *abcfile.File) map[string]*MethodXRef {
	xrefs := make(map[string]*MethodXRef)

	ensure := func(name string) *MethodXRef {
		x, ok := xrefs[name]
		if !ok {
			x = &MethodXRef{Method: name}
			xrefs[name] = x
		}
		return x
	}

	for _, caller := range f.MethodNames() {
		ensure(caller)

		insns, err := f.DisassembleMethod(caller)
		if err != nil {
			continue
		}

		for _, in := range insns {
			if !strings.Contains(in.Mnemonic, "call") && !isMethodDefiner(in.Mnemonic) {
				continue
			}
			for _, operand := range in.Operands {
				if !strings.Contains(operand, "->") {
					continue
				}
				target := ensure(operand)
				target.References = append(target.References, Reference{
					Caller:         caller,
					InstructionOff: in.Offset,
				})
			}
		}
	}

	return xrefs
}

// isMethodDefiner reports whether a mnemonic's operand set can carry
// a MethodID even though the mnemonic itself doesn't read "call"
// (definefunc, definemethod and friends reference a method literally,
// not by invoking it).
func isMethodDefiner(mnemonic string) bool {
	return strings.HasPrefix(mnemonic, "define") || strings.Contains(mnemonic, "createregexp")
}

// XRefReport renders a BuildXRef result as a sorted, human-readable
// text report, mirroring the symbol cross-reference report style this
// package is grounded on.
func XRefReport(xrefs map[string]*MethodXRef) string {
	names := make([]string, 0, len(xrefs))
	for name := range xrefs {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString("Method Cross-Reference\n")
	sb.WriteString("=======================\n\n")

	for _, name := range names {
		x := xrefs[name]
		sb.WriteString(name)
		sb.WriteString("\n")
		if len(x.References) == 0 {
			sb.WriteString("  Referenced:  (never)\n")
			continue
		}
		sb.WriteString(fmt.Sprintf("  Referenced:  %d time(s)\n", len(x.References)))
		for _, ref := range x.References {
			sb.WriteString(fmt.Sprintf("    from %s at +0x%x\n", ref.Caller, ref.InstructionOff))
		}
	}

	return sb.String()
}
