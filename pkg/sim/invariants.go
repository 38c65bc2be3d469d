package sim

import (
	"fmt"

	"github.com/gonewx/invaders/pkg/ecs"
	"github.com/gonewx/invaders/pkg/types"
)

// InvariantChecker 逐帧检查世界状态是否满足运行规则
//
// 用于无头验证工具和长时间模拟测试：
//   - 实体数量不变，玩家 y 坐标不变
//   - 存活敌人数只减不增，死亡敌人不再移动
//   - Ready 子弹位于 (0, 0) 且不被绘制
//   - 绘制指令为 玩家、存活敌人、飞行中的子弹，顺序固定
type InvariantChecker struct {
	initialized  bool
	entityCount  int
	playerY      float64
	aliveEnemies int
	deadAt       map[ecs.EntityID][2]float64
}

// NewInvariantChecker 创建检查器，第一次 Check 时记录基准状态
func NewInvariantChecker() *InvariantChecker {
	return &InvariantChecker{
		deadAt: make(map[ecs.EntityID][2]float64),
	}
}

// Check 检查 Step 之后的世界状态
func (c *InvariantChecker) Check(w *World, res FrameResult) error {
	if !c.initialized {
		c.entityCount = w.EntityManager().EntityCount()
		_, c.playerY, _ = w.Position(w.Player())
		c.aliveEnemies = len(w.Enemies())
		c.initialized = true
	}

	if got := w.EntityManager().EntityCount(); got != c.entityCount {
		return fmt.Errorf("frame %d: entity count changed from %d to %d", res.Frame, c.entityCount, got)
	}

	if _, y, _ := w.Position(w.Player()); y != c.playerY {
		return fmt.Errorf("frame %d: player y changed from %.2f to %.2f", res.Frame, c.playerY, y)
	}

	alive := w.AliveEnemies()
	if alive > c.aliveEnemies {
		return fmt.Errorf("frame %d: alive enemies increased from %d to %d", res.Frame, c.aliveEnemies, alive)
	}
	if c.aliveEnemies-alive != res.Killed {
		return fmt.Errorf("frame %d: %d enemies died but %d kills reported", res.Frame, c.aliveEnemies-alive, res.Killed)
	}
	c.aliveEnemies = alive

	for _, id := range w.Enemies() {
		if w.IsAlive(id) {
			continue
		}
		x, y, _ := w.Position(id)
		if prev, seen := c.deadAt[id]; seen && (prev[0] != x || prev[1] != y) {
			return fmt.Errorf("frame %d: dead enemy %d moved from (%.2f, %.2f) to (%.2f, %.2f)",
				res.Frame, id, prev[0], prev[1], x, y)
		}
		c.deadAt[id] = [2]float64{x, y}
	}

	flying := w.BulletFlying()
	if !flying {
		if x, y, _ := w.Position(w.Bullet()); x != 0 || y != 0 {
			return fmt.Errorf("frame %d: ready bullet at (%.2f, %.2f), want (0, 0)", res.Frame, x, y)
		}
	}

	return checkCommands(res, alive, flying)
}

// checkCommands 校验绘制指令的数量和顺序
func checkCommands(res FrameResult, alive int, flying bool) error {
	want := 1 + alive
	if flying {
		want++
	}
	if len(res.Commands) != want {
		return fmt.Errorf("frame %d: %d draw commands, want %d", res.Frame, len(res.Commands), want)
	}

	expected := func(i int) types.SpriteID {
		switch {
		case i == 0:
			return types.SpritePlayer
		case i <= alive:
			return types.SpriteEnemy
		default:
			return types.SpriteBullet
		}
	}
	for i, cmd := range res.Commands {
		if cmd.Sprite != expected(i) {
			return fmt.Errorf("frame %d: draw command %d is %s, want %s", res.Frame, i, cmd.Sprite, expected(i))
		}
	}
	return nil
}
