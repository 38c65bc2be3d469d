package systems

import (
	"log"

	"github.com/gonewx/invaders/pkg/components"
	"github.com/gonewx/invaders/pkg/config"
	"github.com/gonewx/invaders/pkg/ecs"
	"github.com/gonewx/invaders/pkg/types"
)

// PhysicsSystem 处理子弹与敌人的碰撞
//
// 每帧在所有位置更新完成之后执行一次。玩家不参与碰撞。
type PhysicsSystem struct {
	entityManager *ecs.EntityManager
	config        *config.WorldConfig
	bullets       *BulletSystem
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - em: 实体管理器，用于查询和操作实体组件
//   - cfg: 世界配置，决定死亡敌人是否仍拦截子弹
//   - bullets: 子弹系统，命中后通过它复位子弹
//
// 返回:
//   - *PhysicsSystem: 物理系统实例
func NewPhysicsSystem(em *ecs.EntityManager, cfg *config.WorldConfig, bullets *BulletSystem) *PhysicsSystem {
	return &PhysicsSystem{
		entityManager: em,
		config:        cfg,
		bullets:       bullets,
	}
}

// Update 检测飞行中的子弹与所有敌人的碰撞
//
// 子弹碰撞盒和飞行状态在本次检测开始时读取一次：
//   - 与子弹重叠的每个敌人都被标记为死亡（重复标记无副作用）
//   - 只要有任何重叠，子弹复位为 Ready 并回到 (0, 0)
//
// 配置 DeadEnemiesBlockBullets 为 false 时，死亡敌人不参与检测。
//
// 返回:
//   - int: 本帧新击杀的敌人数量
func (ps *PhysicsSystem) Update() int {
	b, ok := findBullet(ps.entityManager)
	if !ok || !b.bullet.IsFlying() {
		return 0
	}
	bulletBox := components.Hitbox(b.pos, b.col)

	enemies := ecs.GetEntitiesWith3[
		*components.KindComponent,
		*components.PositionComponent,
		*components.CollisionComponent,
	](ps.entityManager)

	hit := false
	killed := 0
	for _, id := range enemies {
		kind, _ := ecs.GetComponent[*components.KindComponent](ps.entityManager, id)
		if kind.Kind != types.KindEnemy {
			continue
		}

		alive := isAlive(ps.entityManager, id)
		if !alive && !ps.config.DeadEnemiesBlockBullets {
			continue
		}

		pos, _ := ecs.GetComponent[*components.PositionComponent](ps.entityManager, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](ps.entityManager, id)
		if !bulletBox.Intersects(components.Hitbox(pos, col)) {
			continue
		}

		hit = true
		if alive {
			if life, ok := ecs.GetComponent[*components.LifeComponent](ps.entityManager, id); ok {
				life.Alive = false
				killed++
				log.Printf("[PhysicsSystem] 敌人 %d 被击中: pos=(%.1f, %.1f)", id, pos.X, pos.Y)
			}
		}
	}

	if hit {
		ps.bullets.Reset()
	}
	return killed
}
