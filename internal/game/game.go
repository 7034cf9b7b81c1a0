// Package game wires the engine and world packages into the main loop.
package game

import (
	"fmt"
	gomath "math"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/voxelgard/internal/config"
	"github.com/Faultbox/voxelgard/internal/engine/camera"
	"github.com/Faultbox/voxelgard/internal/engine/input"
	"github.com/Faultbox/voxelgard/internal/engine/mesh"
	"github.com/Faultbox/voxelgard/internal/engine/renderer"
	"github.com/Faultbox/voxelgard/internal/engine/texture"
	"github.com/Faultbox/voxelgard/internal/engine/window"
	"github.com/Faultbox/voxelgard/internal/game/blocks"
	"github.com/Faultbox/voxelgard/internal/game/chunk"
	"github.com/Faultbox/voxelgard/internal/game/generator"
	"github.com/Faultbox/voxelgard/internal/logger"
	"github.com/Faultbox/voxelgard/pkg/math"
)

// Game owns the window, the world and the render state.
type Game struct {
	cfg *config.Config

	window *window.Window
	input  *input.Input
	camera *camera.FlyCamera

	terrain  *generator.Terrain
	chunks   *chunk.Manager
	blockRen *renderer.BlockRenderer
	atlasTex uint32

	width  int
	height int

	running bool
}

// New builds the whole stack: window and GL context, texture atlas,
// block registry, terrain generator, mesher and chunk manager.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		cfg:    cfg,
		width:  cfg.Graphics.Width,
		height: cfg.Graphics.Height,
	}

	var err error
	g.window, err = window.New(window.Config{
		Title:      "Voxelgard",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	if err := gl.Init(); err != nil {
		g.window.Close()
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.ClearColor(0.53, 0.71, 0.92, 1.0) // sky

	atlas, err := texture.LoadAtlas(cfg.Data.AtlasMeta)
	if err != nil {
		g.window.Close()
		return nil, err
	}

	g.atlasTex, err = texture.LoadTexture2D(cfg.Data.AtlasImage)
	if err != nil {
		g.window.Close()
		return nil, err
	}

	g.blockRen, err = renderer.NewBlockRenderer()
	if err != nil {
		g.window.Close()
		return nil, err
	}

	registry := blocks.DefaultRegistry()

	g.terrain = generator.NewTerrain(cfg.World.Seed, generator.Params{
		Scale:       cfg.Terrain.Scale,
		Octaves:     cfg.Terrain.Octaves,
		Persistence: cfg.Terrain.Persistence,
		BaseHeight:  cfg.Terrain.BaseHeight,
		Amplitude:   cfg.Terrain.Amplitude,
		WaterLevel:  cfg.Terrain.WaterLevel,
	})

	mesher, err := newMesher(cfg.World.Mesher, atlas, registry)
	if err != nil {
		g.window.Close()
		return nil, err
	}

	g.chunks = chunk.NewManager(chunk.ManagerConfig{
		Mesher:         mesher,
		Generator:      g.terrain,
		Backend:        glBackend{},
		NewVoxels:      func() *chunk.VoxelChunk { return chunk.NewVoxelChunk(registry) },
		RenderDistance: cfg.World.RenderDistance,
	})

	// Spawn above the terrain at the origin
	spawnY := float32(g.terrain.HeightAt(0, 0) + 20)
	g.camera = camera.NewFlyCamera(math.Vec3{X: 8, Y: spawnY, Z: 8})

	g.input = input.New()
	g.window.SetRelativeMouseMode(true)

	logger.Info("game initialized",
		zap.Int64("seed", cfg.World.Seed),
		zap.Int("render_distance", cfg.World.RenderDistance),
		zap.String("mesher", cfg.World.Mesher),
	)

	return g, nil
}

// newMesher picks the mesher implementation by name. Unknown names
// fall back to greedy with a warning.
func newMesher(name string, atlas chunk.AtlasUV, registry *blocks.Registry) (chunk.Mesher, error) {
	switch name {
	case "faces":
		return chunk.NewFaceMesher(atlas, registry)
	case "greedy", "":
		return chunk.NewGreedyMesher(atlas, registry)
	default:
		logger.Warn("unknown mesher, using greedy", zap.String("mesher", name))
		return chunk.NewGreedyMesher(atlas, registry)
	}
}

// glBackend uploads chunk meshes to GPU buffers. Each chunk mesh
// draws as a single instance translated to the chunk origin.
type glBackend struct{}

func (glBackend) Upload(data *mesh.Data, origin math.Vec3) (chunk.Drawable, error) {
	m := renderer.UploadMesh(data, 1)
	if err := m.AddInstance(math.Translate(origin.X, origin.Y, origin.Z)); err != nil {
		m.Destroy()
		return nil, err
	}
	return m, nil
}

// Run drives the frame loop until quit.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frames := 0
	fpsTimer := time.Now()

	logger.Info("starting game loop")

	for g.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if g.input.Update() {
			g.running = false
			break
		}

		if resize, ok := g.input.Resized(); ok {
			g.width, g.height = resize.Width, resize.Height
			gl.Viewport(0, 0, int32(g.width), int32(g.height))
		}

		g.update(dt)

		if err := g.render(); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		g.window.SwapBuffers()

		frames++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("frame stats",
				zap.Int("fps", frames),
				zap.Int("chunks", g.chunks.LoadedChunkCount()),
			)
			frames = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// update advances the camera and streams chunks around it.
func (g *Game) update(dt float32) {
	dx, dy := g.input.MouseDelta()
	g.camera.HandleMouse(dx, dy)

	forward, right, up := g.input.MoveAxes()
	g.camera.Move(forward, right, up, dt)

	g.chunks.Update(g.camera.Position)
}

// render draws the visible chunks.
func (g *Game) render() error {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	aspect := float32(g.width) / float32(g.height)
	fov := float32(float64(g.cfg.Graphics.FOV) * gomath.Pi / 180)

	// Far plane just past the loaded chunk circle
	far := float32((g.cfg.World.RenderDistance + 2) * chunk.SizeX)
	if far < chunk.SizeY {
		far = chunk.SizeY
	}

	proj := math.Perspective(fov, aspect, 0.1, far)
	viewProj := proj.Mul(g.camera.ViewMatrix())

	var frustum camera.Frustum
	frustum.ExtractFromMatrix(viewProj)

	lightDir := math.Vec3{X: 0.4, Y: -0.8, Z: 0.3}.Normalize()
	g.blockRen.Begin(viewProj, lightDir)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, g.atlasTex)

	return g.chunks.Render(&frustum)
}

// Close releases GPU and window resources.
func (g *Game) Close() {
	logger.Info("closing game")

	if g.blockRen != nil {
		g.blockRen.Destroy()
	}
	if g.atlasTex != 0 {
		gl.DeleteTextures(1, &g.atlasTex)
	}
	if g.window != nil {
		g.window.Close()
	}
}
