package chunk

import (
	"testing"

	"github.com/Faultbox/voxelgard/internal/game/blocks"
)

func TestVoxelChunkOutOfBoundsReadsAir(t *testing.T) {
	c := NewVoxelChunk(blocks.DefaultRegistry())

	probes := [][3]int{
		{-1, 0, 0}, {SizeX, 0, 0},
		{0, -1, 0}, {0, SizeY, 0},
		{0, 0, -1}, {0, 0, SizeZ},
	}
	for _, p := range probes {
		if got := c.Get(p[0], p[1], p[2]); got != blocks.AirID {
			t.Errorf("Get(%v) = %d, want air", p, got)
		}
	}
}

func TestVoxelChunkOutOfBoundsWritesDropped(t *testing.T) {
	c := NewVoxelChunk(blocks.DefaultRegistry())

	c.Set(-1, 0, 0, blocks.StoneID)
	c.Set(SizeX, 10, 5, blocks.StoneID)
	c.Set(0, SizeY, 0, blocks.StoneID)

	// Nothing inside may have changed
	for x := 0; x < SizeX; x++ {
		for z := 0; z < SizeZ; z++ {
			if c.Get(x, 0, z) != blocks.AirID || c.Get(x, SizeY-1, z) != blocks.AirID {
				t.Fatalf("out-of-bounds write leaked into the grid at x=%d z=%d", x, z)
			}
		}
	}
}

func TestVoxelChunkSetGetRoundTrip(t *testing.T) {
	c := NewVoxelChunk(blocks.DefaultRegistry())

	c.Set(3, 200, 7, blocks.DirtID)
	if got := c.Get(3, 200, 7); got != blocks.DirtID {
		t.Errorf("Get = %d, want dirt", got)
	}

	c.Set(3, 200, 7, blocks.AirID)
	if got := c.Get(3, 200, 7); got != blocks.AirID {
		t.Errorf("Get after clearing = %d, want air", got)
	}
}

func TestIsSolidRespectsBlockProperties(t *testing.T) {
	c := NewVoxelChunk(blocks.DefaultRegistry())

	c.Set(0, 0, 0, blocks.StoneID)
	c.Set(1, 0, 0, blocks.WaterID)
	c.Set(2, 0, 0, 999) // unregistered ID

	if !c.IsSolid(0, 0, 0) {
		t.Error("stone must be solid")
	}
	if c.IsSolid(1, 0, 0) {
		t.Error("water must not occlude")
	}
	if c.IsSolid(2, 0, 0) {
		t.Error("unknown block type must not occlude")
	}
	if c.IsSolid(5, 5, 5) {
		t.Error("air must not occlude")
	}
	if c.IsSolid(-1, 0, 0) {
		t.Error("out-of-bounds must not occlude")
	}
}

func TestShouldRenderFace(t *testing.T) {
	c := NewVoxelChunk(blocks.DefaultRegistry())

	c.Set(5, 10, 5, blocks.StoneID)
	c.Set(6, 10, 5, blocks.StoneID)

	if c.ShouldRenderFace(5, 10, 5, blocks.FaceRight) {
		t.Error("face against a solid neighbor must be hidden")
	}
	if !c.ShouldRenderFace(5, 10, 5, blocks.FaceLeft) {
		t.Error("face against air must be exposed")
	}
	if !c.ShouldRenderFace(5, 10, 5, blocks.FaceTop) {
		t.Error("top face against air must be exposed")
	}
	if c.ShouldRenderFace(4, 10, 5, blocks.FaceRight) {
		t.Error("air renders no faces")
	}

	// Water neighbor does not occlude
	c.Set(5, 11, 5, blocks.WaterID)
	if !c.ShouldRenderFace(5, 10, 5, blocks.FaceTop) {
		t.Error("face against water must be exposed")
	}
}
