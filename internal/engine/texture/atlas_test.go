package texture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/voxelgard/internal/logger"
)

func TestMain(m *testing.M) {
	// Atlas lookups log through the global logger
	logger.InitWithOptions("error", logger.FileOptions{}, false)
	os.Exit(m.Run())
}

const testAtlasJSON = `{
  "texture_size": 8,
  "atlas_size": 32,
  "textures_per_row": 4,
  "textures": {
    "grass_carried": {
      "index": 0,
      "uv": {"min": [0.0, 0.75], "max": [0.25, 1.0]}
    },
    "dirt": {
      "index": 1,
      "uv": {"min": [0.25, 0.75], "max": [0.5, 1.0]}
    },
    "stone": {
      "index": 2,
      "uv": {"min": [0.5, 0.75], "max": [0.75, 1.0]}
    }
  }
}`

func writeTestAtlas(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "atlas.json")
	if err := os.WriteFile(path, []byte(testAtlasJSON), 0644); err != nil {
		t.Fatalf("failed to write test atlas: %v", err)
	}
	return path
}

func TestLoadAtlas(t *testing.T) {
	a, err := LoadAtlas(writeTestAtlas(t))
	if err != nil {
		t.Fatalf("LoadAtlas failed: %v", err)
	}

	if a.TextureCount() != 3 {
		t.Errorf("expected 3 textures, got %d", a.TextureCount())
	}

	uv := a.UV("dirt")
	if uv.MinU != 0.25 || uv.MinV != 0.75 || uv.MaxU != 0.5 || uv.MaxV != 1.0 {
		t.Errorf("dirt UV = %+v, want {0.25 0.75 0.5 1}", uv)
	}

	if !a.HasTexture("stone") {
		t.Error("expected HasTexture(stone) to be true")
	}
	if a.HasTexture("lava") {
		t.Error("expected HasTexture(lava) to be false")
	}
}

func TestAtlasFallback(t *testing.T) {
	a, err := LoadAtlas(writeTestAtlas(t))
	if err != nil {
		t.Fatalf("LoadAtlas failed: %v", err)
	}

	// Unknown names resolve to the lowest-index texture, deterministically
	got := a.UV("no_such_texture")
	want := a.UV("grass_carried")
	if got != want {
		t.Errorf("fallback UV = %+v, want first texture %+v", got, want)
	}

	// Repeated lookups return the same rectangle
	if again := a.UV("no_such_texture"); again != got {
		t.Errorf("fallback not deterministic: %+v then %+v", got, again)
	}
}

func TestLoadAtlasMissing(t *testing.T) {
	if _, err := LoadAtlas("/nonexistent/atlas.json"); err == nil {
		t.Error("expected error for missing atlas file, got nil")
	}
}

func TestLoadAtlasInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write bad atlas: %v", err)
	}
	if _, err := LoadAtlas(path); err == nil {
		t.Error("expected error for invalid atlas JSON, got nil")
	}
}
