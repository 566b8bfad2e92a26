package tools_test

import (
	"testing"

	"github.com/arkbc/abcdis/abcfile"
	"github.com/arkbc/abcdis/internal/container"
	"github.com/arkbc/abcdis/tools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildOneMethodNoCalls is the S2 scenario: one class, one method,
// code is a single returnundefined with no MethodID operands.
func buildOneMethodNoCalls() []byte {
	var b minimalBuilder

	b.buf = make([]byte, container.HeaderSize)
	copy(b.buf[0:8], []byte{'P', 'A', 'N', 'D', 'A', 0, 0, 0})

	classIdxOff := b.offset()
	classIdxSlot := b.u32(0)

	classOff := b.offset()
	b.str("Lfoo/Bar;")
	b.u32(0)
	b.uleb(0)
	b.uleb(0)
	b.uleb(1)
	b.u8(0x00)

	b.u16(0)
	b.u16(0)
	nameOffSlot := b.u32(0)
	b.uleb(0)
	b.u8(0x01)
	codeOffSlot := b.u32(0)
	b.u8(0x00)

	nameOff := b.str("baz")
	b.patchU32(nameOffSlot, nameOff)

	codeOff := b.offset()
	b.uleb(0)
	b.uleb(0)
	b.uleb(1)
	b.uleb(0)
	b.u8(0x65)
	b.patchU32(codeOffSlot, codeOff)

	b.patchU32(classIdxSlot, classOff)

	regionOff := b.offset()
	b.u32(0)
	b.u32(1_000_000)
	for i := 0; i < 8; i++ {
		b.u32(0)
	}

	fileSize := b.offset()
	b.patchU32(16, fileSize)
	b.patchU32(28, 1)
	b.patchU32(32, classIdxOff)
	b.patchU32(52, 1)
	b.patchU32(56, regionOff)

	return b.buf
}

func TestBuildXRefNoCalls(t *testing.T) {
	f, err := abcfile.New(buildOneMethodNoCalls(), nil)
	require.NoError(t, err)

	xrefs := tools.BuildXRef(f)
	require.Contains(t, xrefs, "Lfoo/Bar;->baz")
	assert.Empty(t, xrefs["Lfoo/Bar;->baz"].References)
}

func TestXRefReportFormatsNeverReferenced(t *testing.T) {
	f, err := abcfile.New(buildOneMethodNoCalls(), nil)
	require.NoError(t, err)

	report := tools.XRefReport(tools.BuildXRef(f))
	assert.Contains(t, report, "Lfoo/Bar;->baz")
	assert.Contains(t, report, "(never)")
}
