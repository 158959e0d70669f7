package tetrabsp

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadGLTFLevel(t *testing.T) {

	level, err := LoadGLTFLevelFile("./testdata/tworooms.gltf", nil)
	require.NoError(t, err)
	require.Equal(t, 2, level.PartitionCount())
	require.NoError(t, level.Validate())

	roomA := level.FindPartition("RoomA")
	roomB := level.FindPartition("RoomB")
	require.NotNil(t, roomA)
	require.NotNil(t, roomB)

	assert.Len(t, roomA.Segments, 4)
	assert.Len(t, roomB.Segments, 4)
	assert.True(t, roomA.Neighbors.Contains(roomB.ID))
	assert.True(t, roomB.Neighbors.Contains(roomA.ID))

	assert.InDelta(t, 0.75, roomA.Properties.Get("light").AsFloat64(), 1e-9)
	assert.Equal(t, "far", roomB.Properties.Get("tag").AsString())

	id, ok := level.PartitionContaining(Vector{15, 5})
	require.True(t, ok)
	assert.Equal(t, roomB.ID, id)

	doors := 0
	for _, part := range level.Partitions {
		for _, seg := range part.Segments {
			if seg.Back == NoPartition {
				continue
			}
			require.NotNil(t, seg.Wall)
			assert.True(t, seg.Wall.IsClosed())
			assert.False(t, seg.Wall.IsSolid())
			doors++
		}
	}
	assert.Equal(t, 2, doors)

}

func TestLoadGLTFLevelWalk(t *testing.T) {

	data, err := os.ReadFile("./testdata/tworooms.gltf")
	require.NoError(t, err)

	level, err := LoadGLTFLevel(bytes.NewReader(data), nil)
	require.NoError(t, err)

	viewer, err := NewViewer(level)
	require.NoError(t, err)
	require.NoError(t, viewer.Render(Vector{5, 5}, Angle0, nil))
	assert.Equal(t, []PartitionID{0, 1}, viewer.Order())

	cfg := DefaultConfig()
	cfg.ClosedWalls = ClosedWallsOcclude
	viewer, err = NewViewer(level, WithConfig(cfg))
	require.NoError(t, err)
	require.NoError(t, viewer.Render(Vector{5, 5}, Angle0, nil))
	assert.Equal(t, []PartitionID{0}, viewer.Order())

}

func TestLoadGLTFLevelPrefix(t *testing.T) {

	level, err := LoadGLTFLevelFile("./testdata/tworooms.gltf", &GLTFLevelOptions{PartitionPrefix: "RoomB", Scale: 2})
	require.NoError(t, err)
	require.Equal(t, 1, level.PartitionCount())

	id, ok := level.PartitionContaining(Vector{30, 15})
	require.True(t, ok)
	assert.Equal(t, PartitionID(0), id)

	// Shared edges need both partitions; alone, RoomB is walled in.
	for _, seg := range level.Partitions[0].Segments {
		assert.Equal(t, NoPartition, seg.Back)
	}

}

func TestLoadGLTFLevelSplitEdges(t *testing.T) {

	level, err := LoadGLTFLevelFile("./testdata/fourrooms.gltf", nil)
	require.NoError(t, err)
	require.NoError(t, level.Validate())

	entry := level.FindPartition("Entry")
	hall := level.FindPartition("Hall")
	study := level.FindPartition("Study")
	annex := level.FindPartition("Annex")

	// The hall's upper edge is split where the study and annex meet.
	assert.Len(t, hall.Segments, 5)
	assert.Len(t, hall.Neighbors, 3)
	assert.True(t, hall.Neighbors.Contains(study.ID))
	assert.True(t, hall.Neighbors.Contains(annex.ID))

	wallTo := func(part *Partition, other PartitionID) *Wall {
		for _, seg := range part.Segments {
			if seg.Back == other {
				return seg.Wall
			}
		}
		return nil
	}

	window := wallTo(entry, hall.ID)
	require.NotNil(t, window)
	assert.Equal(t, WallTwoSided, window.Flags)
	assert.Same(t, window, wallTo(hall, entry.ID))

	door := wallTo(hall, study.ID)
	require.NotNil(t, door)
	assert.True(t, door.IsClosed())

	divider := wallTo(annex, study.ID)
	require.NotNil(t, divider)
	assert.True(t, divider.IsSolid())

	assert.Nil(t, wallTo(hall, annex.ID))

}

func TestLoadGLTFLevelBadData(t *testing.T) {
	_, err := LoadGLTFLevel(strings.NewReader("{not gltf"), nil)
	assert.Error(t, err)
}

func BenchmarkLoadGLTFLevel(b *testing.B) {
	b.StopTimer()
	data, err := os.ReadFile("./testdata/tworooms.gltf")
	if err != nil {
		b.Fatal(err)
	}
	b.StartTimer()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		_, err = LoadGLTFLevel(bytes.NewReader(data), nil)
		if err != nil {
			b.Fatal(err)
		}
	}
}
