package game

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/gonewx/invaders/pkg/config"
	"github.com/gonewx/invaders/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// 资源缺失时占位精灵的颜色
var placeholderColors = map[types.SpriteID]color.RGBA{
	types.SpritePlayer:     {R: 80, G: 200, B: 120, A: 255},
	types.SpriteEnemy:      {R: 220, G: 60, B: 60, A: 255},
	types.SpriteBullet:     {R: 250, G: 220, B: 60, A: 255},
	types.SpriteBackground: {R: 8, G: 8, B: 24, A: 255},
}

// ResourceManager is responsible for centralized management of sprite images.
// It loads each image once from the assets directory and caches it.
//
// Missing image files are not fatal: a solid placeholder of the configured size
// is generated instead, so the game stays playable without any assets.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. All images are loaded on the main
// goroutine before the game loop starts.
//
// Usage:
//
//	rm := NewResourceManager("assets")
//	if err := rm.LoadSprites(cfg); err != nil {
//	    log.Fatalf("Failed to load sprites: %v", err)
//	}
//	img := rm.SpriteImage(types.SpritePlayer)
type ResourceManager struct {
	assetsDir  string
	imageCache map[string]*ebiten.Image         // Cache for loaded images: path -> Image
	sprites    map[types.SpriteID]*ebiten.Image // Sprite ID -> loaded image or placeholder
}

// NewResourceManager creates a ResourceManager reading files under assetsDir.
func NewResourceManager(assetsDir string) *ResourceManager {
	return &ResourceManager{
		assetsDir:  assetsDir,
		imageCache: make(map[string]*ebiten.Image),
		sprites:    make(map[types.SpriteID]*ebiten.Image),
	}
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
//
// Returns an error wrapping fs.ErrNotExist if the file does not exist,
// or a decode error if the file is corrupted.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	img, err := decodeImageFile(path)
	if err != nil {
		return nil, err
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// LoadSprites 加载玩家、敌人、子弹和背景图片
//
// 对每个精灵：
//   - 文件存在：加载图片，并用图片实际尺寸覆盖配置中的精灵尺寸
//   - 文件不存在：生成配置尺寸的纯色占位图，记录警告
//   - 文件损坏：返回错误
//
// 必须在创建 World 之前调用，碰撞盒尺寸取自覆盖后的配置。
func (rm *ResourceManager) LoadSprites(cfg *config.WorldConfig) error {
	ids := []types.SpriteID{
		types.SpritePlayer,
		types.SpriteEnemy,
		types.SpriteBullet,
		types.SpriteBackground,
	}

	for _, id := range ids {
		path := rm.assetPath(cfg.AssetPath(id))
		img, err := rm.LoadImage(path)
		switch {
		case err == nil:
			bounds := img.Bounds()
			if id != types.SpriteBackground {
				cfg.SetSpriteSize(id, bounds.Dx(), bounds.Dy())
			}
			log.Printf("[ResourceManager] 加载精灵 %s: %s (%dx%d)", id, path, bounds.Dx(), bounds.Dy())

		case errors.Is(err, fs.ErrNotExist):
			size := cfg.SpriteSize(id)
			img = newPlaceholder(size.Width, size.Height, placeholderColors[id])
			log.Printf("[ResourceManager] 警告: 找不到 %s，使用 %dx%d 占位图", path, size.Width, size.Height)

		default:
			return fmt.Errorf("failed to load sprite %s: %w", id, err)
		}
		rm.sprites[id] = img
	}

	// 图片尺寸可能让配置失效（如精灵比屏幕大）
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("sprite sizes do not fit world: %w", err)
	}
	return nil
}

// SpriteImage 返回精灵图片，未加载时返回 nil
func (rm *ResourceManager) SpriteImage(id types.SpriteID) *ebiten.Image {
	return rm.sprites[id]
}

// LoadIcon 加载窗口图标
// 图标是可选的，文件不存在或无法解码时返回 false
func (rm *ResourceManager) LoadIcon(cfg *config.WorldConfig) (image.Image, bool) {
	if cfg.Assets.Icon == "" {
		return nil, false
	}
	path := rm.assetPath(cfg.Assets.Icon)
	img, err := decodeImageFile(path)
	if err != nil {
		log.Printf("[ResourceManager] 跳过窗口图标: %v", err)
		return nil, false
	}
	return img, true
}

func (rm *ResourceManager) assetPath(name string) string {
	return filepath.Join(rm.assetsDir, name)
}

// decodeImageFile 读取并解码图片文件（PNG/JPEG）
func decodeImageFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

func newPlaceholder(width, height int, c color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(width, height)
	img.Fill(c)
	return img
}
