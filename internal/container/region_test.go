package container_test

import (
	"testing"

	"github.com/arkbc/abcdis/internal/container"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func putU32At(buf []byte, off int, v uint32) {
	buf[off] = byte(v)
	buf[off+1] = byte(v >> 8)
	buf[off+2] = byte(v >> 16)
	buf[off+3] = byte(v >> 24)
}

// buildOneRegion lays out a single RegionHeader at offset regionOff
// plus its class-index (one primitive slot) and MSL vector (one
// offset) immediately after, mirroring region.go's field order.
func buildOneRegion(start, end uint32) ([]byte, container.Header) {
	const regionOff = 0
	classIdxOff := uint32(container.HeaderSize) // placeholder layout below, not used by these fixtures directly
	_ = classIdxOff

	headerSize := 10 * 4
	classIdxDataOff := uint32(headerSize)
	mslDataOff := classIdxDataOff + 4 // one class-index slot (u32)

	buf := make([]byte, int(mslDataOff)+4) // plus one MSL slot (u32)

	putU32At(buf, 0, start)
	putU32At(buf, 4, end)
	putU32At(buf, 8, 1)               // class_idx_size
	putU32At(buf, 12, classIdxDataOff) // class_idx_off
	putU32At(buf, 16, 1)               // msl_size
	putU32At(buf, 20, mslDataOff)      // msl_off
	putU32At(buf, 24, 0)               // field_idx_size
	putU32At(buf, 28, 0)               // field_idx_off
	putU32At(buf, 32, 0)               // proto_idx_size
	putU32At(buf, 36, 0)               // proto_idx_off

	putU32At(buf, int(classIdxDataOff), 0x05) // primitive tag i32
	putU32At(buf, int(mslDataOff), 0x1234)    // one MSL offset

	h := container.Header{RegionSize: 1, RegionOff: uint32(regionOff)}
	return buf, h
}

func TestReadRegionsOneRegion(t *testing.T) {
	buf, h := buildOneRegion(100, 200)

	regions, err := container.ReadRegions(buf, h, nil, nil)
	require.NoError(t, err)
	require.Len(t, regions, 1)

	r := regions[0]
	assert.Equal(t, uint32(100), r.Start)
	assert.Equal(t, uint32(200), r.End)
	require.Len(t, r.ClassIndex, 1)
	assert.Equal(t, "i32", r.ClassIndex[0].Name)

	off, ok := r.MSLOffset(0)
	require.True(t, ok)
	assert.Equal(t, uint32(0x1234), off)

	_, ok = r.MSLOffset(1)
	assert.False(t, ok)
}

func TestRegionContains(t *testing.T) {
	r := container.Region{Start: 10, End: 20}
	assert.True(t, r.Contains(10))
	assert.True(t, r.Contains(19))
	assert.False(t, r.Contains(20))
	assert.False(t, r.Contains(9))
}

func TestFindRegionDisjoint(t *testing.T) {
	regions := []container.Region{
		{Start: 0, End: 10},
		{Start: 10, End: 20},
	}
	r, ok := container.FindRegion(regions, 15)
	require.True(t, ok)
	assert.Equal(t, uint32(10), r.Start)

	_, ok = container.FindRegion(regions, 25)
	assert.False(t, ok)
}
