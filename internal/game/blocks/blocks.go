// Package blocks defines block types and the registry that owns them.
package blocks

import "fmt"

// Face identifies one of the six cube faces.
type Face int

const (
	FaceFront Face = iota
	FaceBack
	FaceLeft
	FaceRight
	FaceTop
	FaceBottom
)

// FaceCount is the number of cube faces.
const FaceCount = 6

// AirID is the reserved type ID for empty space.
const AirID uint32 = 0

// Definition describes one block type. Textures holds one atlas texture
// name per face, indexed by Face.
type Definition struct {
	ID          uint32
	Name        string
	Textures    [FaceCount]string
	Transparent bool
	Solid       bool
	Hardness    float32
}

// Texture returns the atlas texture name for the given face.
func (d *Definition) Texture(face Face) string {
	return d.Textures[face]
}

// UniformTextures fills all six faces with the same texture name.
func UniformTextures(name string) [FaceCount]string {
	var t [FaceCount]string
	for i := range t {
		t[i] = name
	}
	return t
}

// TopSideBottom fills the top and bottom faces and uses side for the
// four lateral faces, the usual pattern for grass and logs.
func TopSideBottom(top, side, bottom string) [FaceCount]string {
	return [FaceCount]string{
		FaceFront:  side,
		FaceBack:   side,
		FaceLeft:   side,
		FaceRight:  side,
		FaceTop:    top,
		FaceBottom: bottom,
	}
}

// Registry assigns IDs to block definitions and resolves them by ID or
// name. ID 0 is reserved for air and never assigned.
type Registry struct {
	byID   map[uint32]*Definition
	byName map[string]*Definition
	nextID uint32
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:   make(map[uint32]*Definition),
		byName: make(map[string]*Definition),
		nextID: 1,
	}
}

// Register adds a definition and assigns it the next free ID.
// The definition's ID field is ignored on input and overwritten.
func (r *Registry) Register(def Definition) (*Definition, error) {
	if def.Name == "" {
		return nil, fmt.Errorf("block definition needs a name")
	}
	if _, ok := r.byName[def.Name]; ok {
		return nil, fmt.Errorf("block %q already registered", def.Name)
	}

	def.ID = r.nextID
	r.nextID++

	d := &def
	r.byID[d.ID] = d
	r.byName[d.Name] = d
	return d, nil
}

// ByID returns the definition for an ID, or nil for air and unknown IDs.
func (r *Registry) ByID(id uint32) *Definition {
	return r.byID[id]
}

// ByName returns the definition for a name, or nil if not registered.
func (r *Registry) ByName(name string) *Definition {
	return r.byName[name]
}

// Count returns the number of registered block types.
func (r *Registry) Count() int {
	return len(r.byID)
}

// All calls fn for every registered definition. Iteration order is
// unspecified.
func (r *Registry) All(fn func(*Definition)) {
	for _, d := range r.byID {
		fn(d)
	}
}

// Well-known block IDs as assigned by DefaultRegistry.
const (
	GrassID uint32 = iota + 1
	DirtID
	StoneID
	WoodID
	LeavesID
	SandID
	WaterID
)

// DefaultRegistry builds the standard block set. Registration order is
// fixed so the IDs match the exported constants.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	mustRegister := func(def Definition) {
		if _, err := r.Register(def); err != nil {
			panic(err)
		}
	}

	mustRegister(Definition{
		Name:     "grass",
		Textures: TopSideBottom("grass_carried", "grass_side_carried", "dirt"),
		Solid:    true,
		Hardness: 0.6,
	})
	mustRegister(Definition{
		Name:     "dirt",
		Textures: UniformTextures("dirt"),
		Solid:    true,
		Hardness: 0.5,
	})
	mustRegister(Definition{
		Name:     "stone",
		Textures: UniformTextures("stone"),
		Solid:    true,
		Hardness: 1.5,
	})
	mustRegister(Definition{
		Name:     "wood",
		Textures: TopSideBottom("pale_oak_log_top", "pale_oak_log_side", "pale_oak_log_top"),
		Solid:    true,
		Hardness: 2.0,
	})
	mustRegister(Definition{
		Name:        "leaves",
		Textures:    UniformTextures("azalea_leaves"),
		Transparent: true,
		Solid:       true,
		Hardness:    0.2,
	})
	mustRegister(Definition{
		Name:     "sand",
		Textures: UniformTextures("sand"),
		Solid:    true,
		Hardness: 0.5,
	})
	mustRegister(Definition{
		Name:        "water",
		Textures:    UniformTextures("water"),
		Transparent: true,
		Solid:       false,
		Hardness:    100,
	})

	return r
}
