// Package abcfile is the public facade over a decoded Ark bytecode
// container: three-phase construction (header, then class/region
// index, then the literal-array pool) followed by read-only queries,
// spec.md §4.10 "File model (C9)".
package abcfile

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/arkbc/abcdis/internal/container"
	"github.com/arkbc/abcdis/internal/disasm"
)

// ErrInvalidMethodReference identifies a --method argument that does
// not name a disassemblable method in this file, spec.md §7's
// InvalidMethodReference error kind. Callers distinguish it from
// I/O or parse failures: spec.md §6 requires this case to print a
// diagnostic and exit 0.
var ErrInvalidMethodReference = errors.New("abcfile: invalid method reference")

// File is the immutable, fully-decoded view of one .abc container. A
// File is safe for concurrent read-only use once New returns: nothing
// in this package mutates buf or the decoded tables afterward.
type File struct {
	buf []byte

	header   container.Header
	classes  map[uint32]container.Class
	foreign  map[uint32]container.ForeignClass
	regions  []container.Region
	literals map[uint32]string
}

// New decodes buf into a File. Construction succeeds only if the
// header and class/region parsing succeed; per spec.md §4.10 failure
// semantics, individual literal-array decode failures are logged
// through warn (nil is fine — warnings are simply dropped) rather
// than aborting construction.
func New(buf []byte, warn func(format string, args ...any)) (*File, error) {
	if warn == nil {
		warn = func(string, ...any) {}
	}

	h, err := container.ReadHeader(buf)
	if err != nil {
		return nil, fmt.Errorf("abcfile: header: %w", err)
	}

	classes, foreign, err := container.ReadClassIndex(buf, h)
	if err != nil {
		return nil, fmt.Errorf("abcfile: class index: %w", err)
	}

	regions, err := container.ReadRegions(buf, h, classes, foreign)
	if err != nil {
		return nil, fmt.Errorf("abcfile: region index: %w", err)
	}

	literals := container.ReadLiteralArrayPool(buf, h, regions, func(offset uint32, err error) {
		warn("abcfile: literal array at 0x%x: %v", offset, err)
	})

	return &File{
		buf:      buf,
		header:   h,
		classes:  classes,
		foreign:  foreign,
		regions:  regions,
		literals: literals,
	}, nil
}

// Header returns the decoded container header.
func (f *File) Header() container.Header {
	return f.header
}

// Classes returns the mapping from class offset to decoded Class.
func (f *File) Classes() map[uint32]container.Class {
	return f.classes
}

// ForeignClasses returns the mapping from offset to ForeignClass,
// kept separate from Classes per spec.md §9's open-question decision:
// a foreign class is a stub reference, not a fully decoded class, and
// collapsing the two would hide that distinction from callers.
func (f *File) ForeignClasses() map[uint32]container.ForeignClass {
	return f.foreign
}

// Regions returns the region index, a supplemented query beyond
// spec.md's original surface: regions are the mechanism behind every
// other qualified-name lookup, and exposing them directly lets
// callers (the explorer, the API) inspect MSL-scope boundaries.
func (f *File) Regions() []container.Region {
	return f.regions
}

// ClassNames returns every decoded (non-foreign) class's name.
func (f *File) ClassNames() []string {
	names := make([]string, 0, len(f.classes))
	for _, c := range f.classes {
		names = append(names, c.Name)
	}
	sort.Strings(names)
	return names
}

// MethodNames returns every method's qualified name, "ClassName->methodName".
func (f *File) MethodNames() []string {
	var names []string
	for _, c := range f.classes {
		for _, m := range c.Methods {
			name, _, err := container.ReadString(f.buf, int(m.NameOff))
			if err != nil {
				continue
			}
			names = append(names, c.Name+"->"+name)
		}
	}
	sort.Strings(names)
	return names
}

// knownMSLTargets returns the set of file offsets already accounted
// for as method or literal-array targets, used to filter Strings().
func (f *File) knownMSLTargets() map[uint32]struct{} {
	known := make(map[uint32]struct{}, len(f.literals))
	for off := range f.literals {
		known[off] = struct{}{}
	}
	for _, c := range f.classes {
		for _, m := range c.Methods {
			known[m.Offset] = struct{}{}
		}
	}
	return known
}

// Strings returns the distinct strings reachable through any region's
// MSL index, excluding offsets already known to be methods or literal
// arrays, per spec.md §4.10.
func (f *File) Strings() []string {
	known := f.knownMSLTargets()
	seen := make(map[string]struct{})
	var out []string

	for _, r := range f.regions {
		for _, off := range r.MSLIndex {
			if _, ok := known[off]; ok {
				continue
			}
			s, _, err := container.ReadString(f.buf, int(off))
			if err != nil {
				continue
			}
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}

	sort.Strings(out)
	return out
}

// findMethod locates the Class and Method for a qualified name
// "ClassName->methodName".
func (f *File) findMethod(qualifiedName string) (container.Class, container.Method, bool) {
	className, methodName, ok := strings.Cut(qualifiedName, "->")
	if !ok {
		return container.Class{}, container.Method{}, false
	}

	for _, c := range f.classes {
		if c.Name != className {
			continue
		}
		for _, m := range c.Methods {
			name, _, err := container.ReadString(f.buf, int(m.NameOff))
			if err != nil || name != methodName {
				continue
			}
			return c, m, true
		}
	}
	return container.Class{}, container.Method{}, false
}

// DisassembleMethod runs the C8 decoder over the named method's code,
// locating its owning region by the method's own file offset, per
// spec.md §4.10.
func (f *File) DisassembleMethod(qualifiedName string) ([]disasm.Instruction, error) {
	_, m, ok := f.findMethod(qualifiedName)
	if !ok {
		return nil, fmt.Errorf("%w: no such method %q", ErrInvalidMethodReference, qualifiedName)
	}
	if !m.Data.HasCode {
		return nil, fmt.Errorf("%w: method %q has no code", ErrInvalidMethodReference, qualifiedName)
	}

	region, ok := container.FindRegion(f.regions, m.Offset)
	if !ok {
		return nil, fmt.Errorf("abcfile: no region contains method %q at offset 0x%x", qualifiedName, m.Offset)
	}

	code, err := container.ReadCode(f.buf, int(m.Data.CodeOff))
	if err != nil {
		return nil, fmt.Errorf("abcfile: code for %q: %w", qualifiedName, err)
	}

	return disasm.Method(f.buf, region, f.literals, code)
}

// DefaultWarn logs via the standard logger, the ambient-logging
// convention this module uses outside of the explorer/API's own
// loggers. Pass it to New when the caller has no warning sink of its
// own.
func DefaultWarn(format string, args ...any) {
	log.Printf(format, args...)
}
