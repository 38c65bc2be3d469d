package systems

import (
	"github.com/gonewx/invaders/pkg/components"
	"github.com/gonewx/invaders/pkg/config"
	"github.com/gonewx/invaders/pkg/control"
	"github.com/gonewx/invaders/pkg/ecs"
	"github.com/gonewx/invaders/pkg/types"
)

// MovementSystem 按实体种类计算速度并积分位置
//
// 规则：
//   - 玩家：左右键恰好按下一个时 VX = ±speed，都按或都不按时 VX = 0；VY 恒为 0
//   - 存活敌人：VX = speed（符号即方向），VY = 固定下移量
//   - 死亡敌人：不更新速度，也不移动
//
// 子弹不由本系统处理，见 BulletSystem。
type MovementSystem struct {
	entityManager *ecs.EntityManager
	config        *config.WorldConfig
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(em *ecs.EntityManager, cfg *config.WorldConfig) *MovementSystem {
	return &MovementSystem{
		entityManager: em,
		config:        cfg,
	}
}

// Update 每帧调用一次，在边界检查之后执行
func (s *MovementSystem) Update(in control.State) {
	ids := ecs.GetEntitiesWith3[
		*components.KindComponent,
		*components.PositionComponent,
		*components.VelocityComponent,
	](s.entityManager)

	for _, id := range ids {
		kind, _ := ecs.GetComponent[*components.KindComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		speed, ok := ecs.GetComponent[*components.SpeedComponent](s.entityManager, id)
		if !ok {
			continue
		}

		switch kind.Kind {
		case types.KindPlayer:
			vel.VX = playerVelocityX(in, speed.Speed)
			vel.VY = 0

		case types.KindEnemy:
			if !isAlive(s.entityManager, id) {
				continue
			}
			vel.VX = speed.Speed
			vel.VY = s.config.EnemyDrift

		default:
			continue
		}

		pos.X += vel.VX
		pos.Y += vel.VY
	}
}

// playerVelocityX 根据左右键计算玩家水平速度
func playerVelocityX(in control.State, speed float64) float64 {
	switch {
	case in.Left && !in.Right:
		return -speed
	case in.Right && !in.Left:
		return speed
	default:
		return 0
	}
}

// isAlive 查询实体存活状态，没有 LifeComponent 的实体视为存活
func isAlive(em *ecs.EntityManager, id ecs.EntityID) bool {
	life, ok := ecs.GetComponent[*components.LifeComponent](em, id)
	if !ok {
		return true
	}
	return life.Alive
}
