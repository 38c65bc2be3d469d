package scenes

import (
	"log"

	"github.com/gonewx/invaders/pkg/game"
	"github.com/gonewx/invaders/pkg/input"
	"github.com/gonewx/invaders/pkg/sim"
	"github.com/gonewx/invaders/pkg/systems"
	"github.com/gonewx/invaders/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameScene 游戏场景
//
// 每个 tick 轮询一次输入并推进一帧模拟，Draw 时按绘制指令把精灵贴到屏幕上。
// 场景本身不包含任何游戏规则，规则全部在 sim.World 中。
type GameScene struct {
	world           *sim.World
	resourceManager *game.ResourceManager
	poller          *input.Poller

	// 最近一帧的模拟结果，Draw 使用
	lastFrame sim.FrameResult

	quitRequested bool
	debug         bool
	fires         int
}

// NewGameScene 创建游戏场景
//
// 参数:
//   - world: 已创建的模拟世界
//   - rm: 已调用 LoadSprites 的资源管理器
//   - poller: 输入轮询器
//   - debug: 是否绘制调试信息（帧号、存活敌人、碰撞盒）
func NewGameScene(world *sim.World, rm *game.ResourceManager, poller *input.Poller, debug bool) *GameScene {
	return &GameScene{
		world:           world,
		resourceManager: rm,
		poller:          poller,
		debug:           debug,
	}
}

// Update 推进一帧
//
// 退出请求在每帧开头检查：一旦请求退出就不再推进模拟，
// 检测到退出键的那一帧仍会完整执行。
func (s *GameScene) Update(deltaTime float64) {
	if s.quitRequested {
		return
	}

	in := s.poller.Poll()
	if in.Quit {
		s.quitRequested = true
		log.Printf("[GameScene] 收到退出请求: frame=%d", s.world.Frame()+1)
	}

	s.lastFrame = s.world.Step(in)
	if s.lastFrame.Fired {
		s.fires++
	}
}

// QuitRequested 实现 game.Quitter
func (s *GameScene) QuitRequested() bool {
	return s.quitRequested
}

// Draw 绘制背景和本帧所有绘制指令
func (s *GameScene) Draw(screen *ebiten.Image) {
	if bg := s.resourceManager.SpriteImage(types.SpriteBackground); bg != nil {
		screen.DrawImage(bg, &ebiten.DrawImageOptions{})
	}

	for _, cmd := range s.lastFrame.Commands {
		s.drawSprite(screen, cmd)
	}

	if s.debug {
		s.drawDebugOverlay(screen)
	}
}

// drawSprite 在指令位置绘制精灵（左上角锚点）
func (s *GameScene) drawSprite(screen *ebiten.Image, cmd systems.DrawCommand) {
	img := s.resourceManager.SpriteImage(cmd.Sprite)
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(cmd.X, cmd.Y)
	screen.DrawImage(img, op)
}

// LastFrame 返回最近一帧的模拟结果
func (s *GameScene) LastFrame() sim.FrameResult {
	return s.lastFrame
}
