package generator

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/voxelgard/internal/game/blocks"
)

func TestNoiseDeterministicAcrossInstances(t *testing.T) {
	a := NewPerlinNoise(1337)
	b := NewPerlinNoise(1337)

	for i := 0; i < 1000; i++ {
		x := float64(i) * 0.173
		y := float64(i) * 0.311
		if va, vb := a.Noise(x, y), b.Noise(x, y); va != vb {
			t.Fatalf("Noise(%v, %v) differs between same-seed instances: %v vs %v", x, y, va, vb)
		}
	}
}

func TestNoiseSeedChangesOutput(t *testing.T) {
	a := NewPerlinNoise(1)
	b := NewPerlinNoise(2)

	differs := false
	for i := 0; i < 100 && !differs; i++ {
		x := float64(i)*0.7 + 0.25
		differs = a.Noise(x, x) != b.Noise(x, x)
	}
	if !differs {
		t.Error("expected different seeds to produce different noise")
	}
}

func TestNoiseZeroAtLatticePoints(t *testing.T) {
	n := NewPerlinNoise(42)

	// The gradient dot product vanishes when the distance vector is
	// zero, so integer coordinates always yield exactly 0.
	for _, p := range [][2]float64{{0, 0}, {1, 0}, {5, 7}, {-3, 2}, {255, 255}} {
		if v := n.Noise(p[0], p[1]); v != 0 {
			t.Errorf("Noise(%v, %v) = %v, want 0", p[0], p[1], v)
		}
	}
}

func TestPermutationTableIsValid(t *testing.T) {
	for _, seed := range []int64{0, 1, 1337, -99} {
		n := NewPerlinNoise(seed)

		var seen [256]bool
		for _, v := range n.p[:256] {
			if v < 0 || v > 255 {
				t.Fatalf("seed %d: table entry %d out of range", seed, v)
			}
			if seen[v] {
				t.Fatalf("seed %d: value %d appears twice", seed, v)
			}
			seen[v] = true
		}

		for i := 0; i < 256; i++ {
			if n.p[i] != n.p[256+i] {
				t.Fatalf("seed %d: table not duplicated at %d", seed, i)
			}
		}
	}
}

func TestNoiseStaysBounded(t *testing.T) {
	n := NewPerlinNoise(99)

	for i := 0; i < 10000; i++ {
		x := float64(i%173) * 0.317
		y := float64(i%251) * 0.457
		v := n.Noise(x, y)
		if gomath.Abs(v) > 1.5 {
			t.Fatalf("Noise(%v, %v) = %v, outside expected range", x, y, v)
		}
	}
}

func TestNoiseContinuity(t *testing.T) {
	n := NewPerlinNoise(7)

	// A tiny step must not jump; catches broken table wrap or fade
	const eps = 1e-4
	for i := 0; i < 500; i++ {
		x := float64(i) * 0.613
		y := float64(i) * 0.419
		d := gomath.Abs(n.Noise(x+eps, y) - n.Noise(x, y))
		if d > 0.01 {
			t.Fatalf("discontinuity at (%v, %v): delta %v", x, y, d)
		}
	}
}

func TestFBMDeterministicAndBounded(t *testing.T) {
	a := NewTerrain(1337, DefaultParams())
	b := NewTerrain(1337, DefaultParams())

	for x := -50; x <= 50; x += 7 {
		for z := -50; z <= 50; z += 7 {
			ha, hb := a.HeightAt(x, z), b.HeightAt(x, z)
			if ha != hb {
				t.Fatalf("HeightAt(%d, %d) differs: %d vs %d", x, z, ha, hb)
			}
		}
	}
}

func TestFBMRange(t *testing.T) {
	n := NewPerlinNoise(31337)

	for i := 0; i < 10000; i++ {
		x := float64(i%211) * 0.113
		y := float64(i%307) * 0.207
		v := n.FBM(x, y, 4, 0.5)
		if gomath.Abs(v) > 1.5 {
			t.Fatalf("FBM(%v, %v) = %v, outside expected range", x, y, v)
		}
	}
}

func TestHeightAtOriginScenario(t *testing.T) {
	// seed 1, scale 0.03, single octave, base 50, amplitude 80:
	// the origin samples the noise lattice exactly, so the height is
	// the base height for any seed.
	tr := NewTerrain(1, Params{
		Scale:       0.03,
		Octaves:     1,
		Persistence: 0.5,
		BaseHeight:  50,
		Amplitude:   80,
		WaterLevel:  18,
	})

	if h := tr.HeightAt(0, 0); h != 50 {
		t.Errorf("HeightAt(0, 0) = %d, want 50", h)
	}

	// And it reproduces across fresh instances at non-lattice points
	tr2 := NewTerrain(1, tr.Params())
	for _, p := range [][2]int{{7, -13}, {100, 42}, {-5, -5}} {
		if a, b := tr.HeightAt(p[0], p[1]), tr2.HeightAt(p[0], p[1]); a != b {
			t.Errorf("HeightAt(%d, %d) not reproducible: %d vs %d", p[0], p[1], a, b)
		}
	}
}

func TestHeightAtOriginEqualsBaseHeight(t *testing.T) {
	p := DefaultParams()
	p.BaseHeight = 50

	tr := NewTerrain(12345, p)

	// FBM at the origin samples the lattice at every octave, so the
	// noise term is exactly zero regardless of seed.
	if h := tr.HeightAt(0, 0); h != 50 {
		t.Errorf("HeightAt(0, 0) = %d, want 50", h)
	}
}

func TestHeightStaysWithinAmplitude(t *testing.T) {
	p := DefaultParams()
	tr := NewTerrain(555, p)

	lo := p.BaseHeight - p.Amplitude - 1
	hi := p.BaseHeight + p.Amplitude + 1
	for x := -100; x <= 100; x += 3 {
		for z := -100; z <= 100; z += 3 {
			h := tr.HeightAt(x, z)
			if h < lo || h > hi {
				t.Fatalf("HeightAt(%d, %d) = %d, outside [%d, %d]", x, z, h, lo, hi)
			}
		}
	}
}

// flatParams removes noise influence so every column has a known height.
func flatParams(base, water int) Params {
	p := DefaultParams()
	p.BaseHeight = base
	p.Amplitude = 0
	p.WaterLevel = water
	return p
}

func TestGenerateChunkStratigraphy(t *testing.T) {
	// Base 10, water 5: surface is grassland, no flooding
	tr := NewTerrain(1, flatParams(10, 5))

	chunk := tr.GenerateChunk(0, 0, 16)

	byPos := make(map[[3]int]uint32, len(chunk))
	for _, b := range chunk {
		byPos[[3]int{b.X, b.Y, b.Z}] = b.Type
	}

	col := func(y int) uint32 { return byPos[[3]int{3, y, 3}] }

	if col(0) != blocks.StoneID {
		t.Errorf("y=0 is %d, want bedrock stone", col(0))
	}
	if col(10) != blocks.GrassID {
		t.Errorf("surface is %d, want grass", col(10))
	}
	for y := 8; y <= 9; y++ {
		if col(y) != blocks.DirtID {
			t.Errorf("y=%d is %d, want dirt band", y, col(y))
		}
	}
	for y := 1; y <= 6; y++ {
		if col(y) != blocks.StoneID {
			t.Errorf("y=%d is %d, want stone", y, col(y))
		}
	}
	if _, ok := byPos[[3]int{3, 11, 3}]; ok {
		t.Error("expected air above the surface")
	}
}

func TestGenerateChunkBeachAndWater(t *testing.T) {
	// Base 10, water 20: every column floods up to the water level
	tr := NewTerrain(1, flatParams(10, 20))

	chunk := tr.GenerateChunk(2, -1, 16)

	byPos := make(map[[3]int]uint32, len(chunk))
	for _, b := range chunk {
		byPos[[3]int{b.X, b.Y, b.Z}] = b.Type
	}

	x, z := 2*16+5, -1*16+7
	if got := byPos[[3]int{x, 10, z}]; got != blocks.SandID {
		t.Errorf("submerged surface is %d, want sand", got)
	}
	for y := 11; y <= 20; y++ {
		if got := byPos[[3]int{x, y, z}]; got != blocks.WaterID {
			t.Errorf("y=%d is %d, want water", y, got)
		}
	}
	if _, ok := byPos[[3]int{x, 21, z}]; ok {
		t.Error("expected air above the water level")
	}
}

func TestGenerateRegionOmitsWater(t *testing.T) {
	tr := NewTerrain(1, flatParams(10, 20))

	region := tr.GenerateRegion(8, 8, 0, 0)

	for _, b := range region {
		if b.Type == blocks.WaterID {
			t.Fatalf("region generation emitted water at (%d, %d, %d)", b.X, b.Y, b.Z)
		}
	}
}

func TestGenerateRegionCentering(t *testing.T) {
	tr := NewTerrain(1, flatParams(4, 0))

	region := tr.GenerateRegion(8, 6, 100, -40)

	for _, b := range region {
		if b.X < 96 || b.X > 103 {
			t.Fatalf("block X %d outside [96, 103]", b.X)
		}
		if b.Z < -43 || b.Z > -38 {
			t.Fatalf("block Z %d outside [-43, -38]", b.Z)
		}
	}
}

func TestMountainSurfaceIsStone(t *testing.T) {
	p := DefaultParams()
	tr := NewTerrain(1, p)

	surface := p.BaseHeight + p.Amplitude // above the 70% threshold
	if got := tr.blockTypeAt(surface, surface); got != blocks.StoneID {
		t.Errorf("high surface is %d, want stone", got)
	}
}
