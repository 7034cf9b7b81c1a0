// Package generator produces terrain from seeded Perlin noise.
package generator

import (
	"math"
	"math/rand"
)

// PerlinNoise is a classic 2D Perlin noise generator. Two instances
// built with the same seed produce identical output for all inputs.
type PerlinNoise struct {
	// Permutation of [0,256) duplicated to 512 entries so p[X+1]
	// never needs wrapping.
	p [512]int
}

// NewPerlinNoise builds a noise generator whose permutation table is
// shuffled by the given seed.
func NewPerlinNoise(seed int64) *PerlinNoise {
	n := &PerlinNoise{}

	var table [256]int
	for i := range table {
		table[i] = i
	}

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(table), func(i, j int) {
		table[i], table[j] = table[j], table[i]
	})

	copy(n.p[:256], table[:])
	copy(n.p[256:], table[:])

	return n
}

// Noise returns 2D Perlin noise at (x, y), approximately in [-1, 1].
// Output is exactly 0 at integer lattice points.
func (n *PerlinNoise) Noise(x, y float64) float64 {
	xi := int(math.Floor(x)) & 255
	yi := int(math.Floor(y)) & 255

	x -= math.Floor(x)
	y -= math.Floor(y)

	u := fade(x)
	v := fade(y)

	a := n.p[xi] + yi
	b := n.p[xi+1] + yi

	return lerp(v,
		lerp(u, grad(n.p[a], x, y),
			grad(n.p[b], x-1, y)),
		lerp(u, grad(n.p[a+1], x, y-1),
			grad(n.p[b+1], x-1, y-1)))
}

// FBM sums octaves of noise, doubling frequency and scaling amplitude
// by persistence each octave, normalized back to roughly [-1, 1].
func (n *PerlinNoise) FBM(x, y float64, octaves int, persistence float64) float64 {
	var total, maxValue float64
	frequency := 1.0
	amplitude := 1.0

	for i := 0; i < octaves; i++ {
		total += n.Noise(x*frequency, y*frequency) * amplitude
		maxValue += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxValue
}

// fade is the improved Perlin smoothstep 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// grad selects one of 16 gradient directions from the hash and returns
// its dot product with the distance vector.
func grad(hash int, x, y float64) float64 {
	h := hash & 15

	u := y
	if h < 8 {
		u = x
	}

	var v float64
	switch {
	case h < 4:
		v = y
	case h == 12 || h == 14:
		v = x
	}

	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}
