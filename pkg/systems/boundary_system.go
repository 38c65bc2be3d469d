package systems

import (
	"github.com/gonewx/invaders/pkg/components"
	"github.com/gonewx/invaders/pkg/config"
	"github.com/gonewx/invaders/pkg/ecs"
	"github.com/gonewx/invaders/pkg/types"
)

// BoundarySystem 处理实体越界
//
// 在移动积分之前执行，检查的是上一帧结束时的位置：
//   - 玩家：四个方向独立检查并环绕到对侧
//   - 敌人：碰到左右墙壁时翻转速度符号，下一次移动才会反向；竖直方向不处理
type BoundarySystem struct {
	entityManager *ecs.EntityManager
	config        *config.WorldConfig
}

// NewBoundarySystem 创建边界系统
func NewBoundarySystem(em *ecs.EntityManager, cfg *config.WorldConfig) *BoundarySystem {
	return &BoundarySystem{
		entityManager: em,
		config:        cfg,
	}
}

// Update 对所有玩家和存活敌人应用边界策略
func (s *BoundarySystem) Update() {
	ids := ecs.GetEntitiesWith3[
		*components.KindComponent,
		*components.PositionComponent,
		*components.CollisionComponent,
	](s.entityManager)

	for _, id := range ids {
		kind, _ := ecs.GetComponent[*components.KindComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)

		switch kind.Kind {
		case types.KindPlayer:
			s.wrap(pos, col)
		case types.KindEnemy:
			// 死亡敌人被冻结，翻转方向没有意义
			if !isAlive(s.entityManager, id) {
				continue
			}
			if speed, ok := ecs.GetComponent[*components.SpeedComponent](s.entityManager, id); ok {
				s.bounce(pos, col, speed)
			}
		}
	}
}

// wrap 玩家环绕：四个判断互不排斥，按顺序执行
func (s *BoundarySystem) wrap(pos *components.PositionComponent, col *components.CollisionComponent) {
	width := float64(s.config.ScreenWidth)
	height := float64(s.config.ScreenHeight)

	if pos.X > width {
		pos.X = 0
	}
	if pos.X+col.Width < 0 {
		pos.X = width
	}
	if pos.Y > height {
		pos.Y = 0
	}
	if pos.Y < 0 {
		pos.Y = height
	}
}

// bounce 敌人碰墙反弹
func (s *BoundarySystem) bounce(pos *components.PositionComponent, col *components.CollisionComponent, speed *components.SpeedComponent) {
	if pos.X+col.Width >= float64(s.config.ScreenWidth) || pos.X <= 0 {
		speed.Speed = -speed.Speed
	}
}
