package systems

import (
	"github.com/gonewx/invaders/pkg/components"
	"github.com/gonewx/invaders/pkg/ecs"
	"github.com/gonewx/invaders/pkg/types"
)

// DrawCommand 一条绘制指令：在 (X, Y) 处绘制精灵（左上角锚点）
type DrawCommand struct {
	Sprite types.SpriteID
	X      float64
	Y      float64
}

// RenderSystem 生成每帧的绘制指令列表
//
// 模拟核心不直接接触屏幕，只输出绘制指令，由前端负责实际绘制：
//  1. 玩家
//  2. 所有存活的敌人（按生成顺序）
//  3. 飞行中的子弹
//
// 死亡敌人和 Ready 状态的子弹不会出现在列表中。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	commands      []DrawCommand
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		commands:      make([]DrawCommand, 0, 16),
	}
}

// Commands 生成本帧绘制指令
//
// 返回的切片在下一次调用前有效，调用方如需保留应自行复制。
func (s *RenderSystem) Commands() []DrawCommand {
	s.commands = s.commands[:0]

	ships := ecs.GetEntitiesWith3[
		*components.KindComponent,
		*components.PositionComponent,
		*components.SpriteComponent,
	](s.entityManager)

	s.appendKind(ships, types.KindPlayer)
	s.appendKind(ships, types.KindEnemy)

	if b, ok := findBullet(s.entityManager); ok && b.bullet.IsFlying() {
		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, b.id); ok {
			s.commands = append(s.commands, DrawCommand{Sprite: sprite.Sprite, X: b.pos.X, Y: b.pos.Y})
		}
	}

	return s.commands
}

func (s *RenderSystem) appendKind(ids []ecs.EntityID, want types.EntityKind) {
	for _, id := range ids {
		kind, _ := ecs.GetComponent[*components.KindComponent](s.entityManager, id)
		if kind.Kind != want || !isAlive(s.entityManager, id) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		s.commands = append(s.commands, DrawCommand{Sprite: sprite.Sprite, X: pos.X, Y: pos.Y})
	}
}
