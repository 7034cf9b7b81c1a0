package chunk

import (
	gomath "math"
	"sort"

	"go.uber.org/zap"

	"github.com/Faultbox/voxelgard/internal/engine/mesh"
	"github.com/Faultbox/voxelgard/internal/game/generator"
	"github.com/Faultbox/voxelgard/internal/logger"
	"github.com/Faultbox/voxelgard/pkg/math"
)

// Coord addresses a chunk column in the XZ plane.
type Coord struct {
	X, Z int
}

// Mesher turns a voxel grid into per-block-type mesh data.
type Mesher interface {
	Mesh(*VoxelChunk) BlockMeshes
}

// Culler decides whether a world-space box is worth drawing.
type Culler interface {
	IsBoxVisible(mesh.AABB) bool
}

// Drawable is a chunk mesh uploaded to the render backend.
type Drawable interface {
	Draw()
	Destroy()
}

// Backend uploads mesh data placed at a world origin.
type Backend interface {
	Upload(data *mesh.Data, origin math.Vec3) (Drawable, error)
}

// Generator produces the blocks of a chunk column.
type Generator interface {
	GenerateChunk(chunkX, chunkZ, chunkSize int) []generator.Block
}

// Chunk is one loaded column: its voxels, world bounds and GPU meshes.
type Chunk struct {
	Coord  Coord
	Voxels *VoxelChunk
	Bounds mesh.AABB

	draws map[uint32]Drawable
	dirty bool
}

func newChunk(coord Coord, voxels *VoxelChunk) *Chunk {
	origin := math.Vec3{X: float32(coord.X * SizeX), Z: float32(coord.Z * SizeZ)}
	return &Chunk{
		Coord:  coord,
		Voxels: voxels,
		Bounds: mesh.AABB{
			Min: origin,
			Max: origin.Add(math.Vec3{X: SizeX, Y: SizeY, Z: SizeZ}),
		},
		dirty: true,
	}
}

// Dirty reports whether the chunk needs remeshing before its next draw.
func (c *Chunk) Dirty() bool {
	return c.dirty
}

// MarkDirty forces a remesh on the chunk's next visible frame.
func (c *Chunk) MarkDirty() {
	c.dirty = true
}

func (c *Chunk) destroyDraws() {
	for _, d := range c.draws {
		d.Destroy()
	}
	c.draws = nil
}

// Manager streams chunks around the player: it generates columns
// inside the render distance, drops columns far outside it, and
// remeshes dirty chunks lazily when they come into view.
type Manager struct {
	chunks    map[Coord]*Chunk
	mesher    Mesher
	gen       Generator
	backend   Backend
	newVoxels func() *VoxelChunk

	renderDistance int
}

// ManagerConfig collects the Manager's collaborators. NewVoxels
// builds an empty voxel grid bound to the game's block registry.
type ManagerConfig struct {
	Mesher         Mesher
	Generator      Generator
	Backend        Backend
	NewVoxels      func() *VoxelChunk
	RenderDistance int
}

// unloadMargin keeps chunks a little beyond the load radius so small
// player movements do not thrash generation.
const unloadMargin = 2

// NewManager creates a chunk manager. Render distance is in chunks;
// zero loads only the chunk the player stands in.
func NewManager(cfg ManagerConfig) *Manager {
	distance := cfg.RenderDistance
	if distance < 0 {
		distance = 0
	}

	return &Manager{
		chunks:         make(map[Coord]*Chunk),
		mesher:         cfg.Mesher,
		gen:            cfg.Generator,
		backend:        cfg.Backend,
		newVoxels:      cfg.NewVoxels,
		renderDistance: distance,
	}
}

// SetRenderDistance changes the load radius in chunks.
func (m *Manager) SetRenderDistance(distance int) {
	m.renderDistance = distance
}

// LoadedChunkCount returns how many chunks are resident.
func (m *Manager) LoadedChunkCount() int {
	return len(m.chunks)
}

// ChunkAt returns the loaded chunk at a coordinate, or nil.
func (m *Manager) ChunkAt(coord Coord) *Chunk {
	return m.chunks[coord]
}

// Update loads missing chunks in a circle around the player and
// unloads chunks that fell far outside it.
func (m *Manager) Update(playerPos math.Vec3) {
	center := Coord{
		X: int(gomath.Floor(float64(playerPos.X) / SizeX)),
		Z: int(gomath.Floor(float64(playerPos.Z) / SizeZ)),
	}

	r := m.renderDistance
	for dx := -r; dx <= r; dx++ {
		for dz := -r; dz <= r; dz++ {
			if dx*dx+dz*dz > r*r {
				continue
			}

			coord := Coord{X: center.X + dx, Z: center.Z + dz}
			if _, ok := m.chunks[coord]; !ok {
				m.generate(coord)
			}
		}
	}

	limit := r + unloadMargin
	for coord, chunk := range m.chunks {
		dx := coord.X - center.X
		dz := coord.Z - center.Z
		if dx*dx+dz*dz > limit*limit {
			chunk.destroyDraws()
			delete(m.chunks, coord)
		}
	}
}

// Render draws the chunks the frustum can see, remeshing dirty ones
// first. Chunks outside the frustum keep their dirty flag until they
// come back into view.
func (m *Manager) Render(culler Culler) error {
	for _, chunk := range m.chunks {
		if !culler.IsBoxVisible(chunk.Bounds) {
			continue
		}

		if chunk.dirty {
			if err := m.rebuild(chunk); err != nil {
				return err
			}
		}

		// Ascending type ID keeps frame output deterministic and
		// submits transparent water, the highest ID, after the
		// opaque types.
		ids := make([]uint32, 0, len(chunk.draws))
		for id := range chunk.draws {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		for _, id := range ids {
			chunk.draws[id].Draw()
		}
	}
	return nil
}

// generate fills a fresh voxel grid from the terrain generator.
func (m *Manager) generate(coord Coord) {
	voxels := m.newVoxels()

	for _, b := range m.gen.GenerateChunk(coord.X, coord.Z, SizeX) {
		voxels.Set(b.X-coord.X*SizeX, b.Y, b.Z-coord.Z*SizeZ, b.Type)
	}

	m.chunks[coord] = newChunk(coord, voxels)

	logger.Debug("generated chunk",
		zap.Int("x", coord.X),
		zap.Int("z", coord.Z),
		zap.Int("loaded", len(m.chunks)),
	)
}

// rebuild remeshes a chunk and reuploads its per-type draws.
func (m *Manager) rebuild(chunk *Chunk) error {
	chunk.destroyDraws()
	chunk.draws = make(map[uint32]Drawable)

	for typeID, data := range m.mesher.Mesh(chunk.Voxels) {
		if data.Empty() {
			continue
		}

		draw, err := m.backend.Upload(data, chunk.Bounds.Min)
		if err != nil {
			return err
		}
		chunk.draws[typeID] = draw
	}

	chunk.dirty = false
	return nil
}
