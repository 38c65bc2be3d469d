package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene by one tick.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Quitter 是一个可选接口，场景通过它向应用层请求退出
//
// 场景在 Update 开头检测退出键，设置标志后本帧仍会完整执行；
// 应用层在 Update 返回后查询标志并结束主循环。
type Quitter interface {
	// QuitRequested 返回 true 表示场景请求结束游戏
	QuitRequested() bool
}
