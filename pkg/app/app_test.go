package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestNewAppWithPlaceholderSprites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.yaml")
	if err := os.WriteFile(path, []byte("screenWidth: 640\nscreenHeight: 480\nenemyCount: 3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	a, err := NewApp(Config{ConfigPath: path, AssetsDir: t.TempDir(), Seed: 7})
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}

	if w, h := a.Layout(1920, 1080); w != 640 || h != 480 {
		t.Errorf("Layout() = %dx%d, want 640x480", w, h)
	}
	if a.worldConfig.Seed != 7 {
		t.Errorf("seed flag should override config, got %d", a.worldConfig.Seed)
	}
	// 资源目录中没有图标文件
	if icon := a.WindowIcon(); icon != nil {
		t.Errorf("expected no window icon, got %d images", len(icon))
	}
}

func TestNewAppErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		yaml string
	}{
		{"invalid config", "enemyCount: 0\n"},
		{"unknown key name", "keys:\n  fire: NoSuchKey\n"},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, fmt.Sprintf("world%d.yaml", i))
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := NewApp(Config{ConfigPath: path, AssetsDir: dir}); err == nil {
				t.Error("NewApp() should fail before the main loop starts")
			}
		})
	}

	if _, err := NewApp(Config{ConfigPath: filepath.Join(dir, "missing.yaml"), AssetsDir: dir}); err == nil {
		t.Error("missing config file should be an error")
	}
}

func TestIsTermination(t *testing.T) {
	if !IsTermination(ebiten.Termination) {
		t.Error("ebiten.Termination should be a normal exit")
	}
	if !IsTermination(fmt.Errorf("wrapped: %w", ebiten.Termination)) {
		t.Error("wrapped termination should be a normal exit")
	}
	if IsTermination(errors.New("boom")) {
		t.Error("other errors are not a normal exit")
	}
}
