package disasm_test

import (
	"testing"

	"github.com/arkbc/abcdis/internal/container"
	"github.com/arkbc/abcdis/internal/disasm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethodPrefixOpcode(t *testing.T) {
	// Scenario S6: FE 07 00 -> throw.ifsupernotcorrectcall +0, 3 bytes
	// consumed.
	code := container.Code{Instructions: []byte{0xfe, 0x07, 0x00}}

	insns, err := disasm.Method(nil, container.Region{}, nil, code)
	require.NoError(t, err)
	require.Len(t, insns, 1)

	assert.Equal(t, "throw.ifsupernotcorrectcall", insns[0].Mnemonic)
	assert.Equal(t, []string{"+0"}, insns[0].Operands)
	assert.Equal(t, "FE0700", insns[0].HexDump())
}

func TestMethodOrdinarySequence(t *testing.T) {
	// ldundefined; return
	code := container.Code{Instructions: []byte{0x00, 0x64}}

	insns, err := disasm.Method(nil, container.Region{}, nil, code)
	require.NoError(t, err)
	require.Len(t, insns, 2)
	assert.Equal(t, "ldundefined", insns[0].Mnemonic)
	assert.Equal(t, "return", insns[1].Mnemonic)
}

func TestMethodUnknownOpcode(t *testing.T) {
	code := container.Code{Instructions: []byte{0xdc}} // gap byte, unassigned
	_, err := disasm.Method(nil, container.Region{}, nil, code)
	assert.ErrorIs(t, err, disasm.ErrUnknownOpcode)
}

func TestMethodV4V4Operands(t *testing.T) {
	// mov vA, vB: opcode 0x44, operand byte 0x21 -> low=1, high=2
	code := container.Code{Instructions: []byte{0x44, 0x21}}
	insns, err := disasm.Method(nil, container.Region{}, nil, code)
	require.NoError(t, err)
	require.Len(t, insns, 1)
	assert.Equal(t, "mov", insns[0].Mnemonic)
	assert.Equal(t, []string{"v1", "v2"}, insns[0].Operands)
}

func TestMethodStringID(t *testing.T) {
	// lda.str @AAAA: opcode 0x3e followed by u16 MSL index 0.
	buf := make([]byte, 32)
	// String at offset 10: length field = (2 << 1) | 1 = 5 (ASCII, 2 units), then "hi", then NUL terminator.
	stringOff := 10
	buf[stringOff] = 0x05 // (2<<1)|1
	copy(buf[stringOff+1:], []byte("hi"))
	buf[stringOff+3] = 0x00

	region := container.Region{MSLIndex: []uint32{uint32(stringOff)}}
	code := container.Code{Instructions: []byte{0x3e, 0x00, 0x00}}

	insns, err := disasm.Method(buf, region, nil, code)
	require.NoError(t, err)
	require.Len(t, insns, 1)
	assert.Equal(t, "lda.str", insns[0].Mnemonic)
	assert.Equal(t, []string{`"hi"`}, insns[0].Operands)
}
