// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来：加载配置和精灵、创建模拟世界、
// 组装场景，并实现 ebiten.Game 接口。
package app

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"log"

	"github.com/gonewx/invaders/pkg/config"
	"github.com/gonewx/invaders/pkg/game"
	"github.com/gonewx/invaders/pkg/input"
	"github.com/gonewx/invaders/pkg/scenes"
	"github.com/gonewx/invaders/pkg/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// WindowTitle 窗口标题
const WindowTitle = "Space Invaders"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Debug 绘制调试信息
	Debug bool
	// ConfigPath 世界配置文件路径，为空则使用嵌入的默认配置
	ConfigPath string
	// AssetsDir 精灵图片目录
	AssetsDir string
	// Seed 非 0 时覆盖配置文件中的随机种子
	Seed int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	resourceManager          *game.ResourceManager
	worldConfig              *config.WorldConfig
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// SetupLogging 配置日志输出，非 verbose 模式下丢弃所有日志
func SetupLogging(verbose bool) {
	if !verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}
}

// NewApp 创建并初始化游戏应用
//
// 配置、精灵或按键绑定出错时返回错误，此时主循环尚未启动。
func NewApp(cfg Config) (*App, error) {
	SetupLogging(cfg.Verbose)

	worldConfig, err := config.ResolveWorldConfig(cfg.ConfigPath, cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("世界配置加载失败: %w", err)
	}

	// 精灵尺寸以图片为准，必须在创建世界之前加载
	resourceManager := game.NewResourceManager(cfg.AssetsDir)
	if err := resourceManager.LoadSprites(worldConfig); err != nil {
		return nil, fmt.Errorf("精灵加载失败: %w", err)
	}

	bindings, err := input.ParseBindings(worldConfig.Keys)
	if err != nil {
		return nil, fmt.Errorf("按键绑定无效: %w", err)
	}

	world, err := sim.NewWorld(worldConfig, sim.NewRand(worldConfig))
	if err != nil {
		return nil, fmt.Errorf("世界创建失败: %w", err)
	}

	poller := input.NewPoller(input.EbitenKeySource{}, bindings)

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewGameScene(world, resourceManager, poller, cfg.Debug))
	log.Printf("[App] 游戏场景就绪: debug=%v", cfg.Debug)

	return &App{
		sceneManager:    sceneManager,
		resourceManager: resourceManager,
		worldConfig:     worldConfig,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次），场景请求退出后返回 ebiten.Termination
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			w, h := a.ScreenSize()
			ebiten.SetWindowSize(w, h)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", w, h)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)

	if a.sceneManager.QuitRequested() {
		log.Printf("[App] 退出游戏")
		return ebiten.Termination
	}
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.ScreenSize()
}

// ScreenSize 返回配置的屏幕尺寸
func (a *App) ScreenSize() (int, int) {
	return a.worldConfig.ScreenWidth, a.worldConfig.ScreenHeight
}

// WindowIcon 返回窗口图标，没有图标文件时返回 nil
func (a *App) WindowIcon() []image.Image {
	icon, ok := a.resourceManager.LoadIcon(a.worldConfig)
	if !ok {
		return nil
	}
	return []image.Image{icon}
}

// IsTermination 判断 RunGame 返回的错误是否为正常退出
func IsTermination(err error) bool {
	return errors.Is(err, ebiten.Termination)
}
