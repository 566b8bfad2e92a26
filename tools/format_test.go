package tools_test

import (
	"testing"

	"github.com/arkbc/abcdis/abcfile"
	"github.com/arkbc/abcdis/tools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatListingDefault(t *testing.T) {
	f, err := abcfile.New(buildOneMethodNoCalls(), nil)
	require.NoError(t, err)

	insns, err := f.DisassembleMethod("Lfoo/Bar;->baz")
	require.NoError(t, err)

	listing := tools.FormatListing("Lfoo/Bar;->baz", insns, nil)
	assert.Contains(t, listing, "Lfoo/Bar;->baz:")
	assert.Contains(t, listing, "returnundefined")
	assert.Contains(t, listing, "65") // hex dump of the single 0x65 byte
}

func TestFormatListingCompact(t *testing.T) {
	f, err := abcfile.New(buildOneMethodNoCalls(), nil)
	require.NoError(t, err)

	insns, err := f.DisassembleMethod("Lfoo/Bar;->baz")
	require.NoError(t, err)

	listing := tools.FormatListing("Lfoo/Bar;->baz", insns, tools.CompactListingOptions())
	assert.Contains(t, listing, "\t")
	assert.Contains(t, listing, "returnundefined")
}
