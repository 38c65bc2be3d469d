package systems

import (
	"log"

	"github.com/gonewx/invaders/pkg/components"
	"github.com/gonewx/invaders/pkg/ecs"
	"github.com/gonewx/invaders/pkg/types"
)

// BulletSystem 管理唯一子弹的生命周期状态机
//
// 状态转换:
//
//	Ready  --Fire()-->            Flying
//	Flying --飞出屏幕顶部(y<=0)--> Ready，位置复位到 (0, 0)
//	Flying --击中敌人-->           Ready（由 PhysicsSystem 调用 Reset）
//
// 飞行中再次开火被直接忽略，不会排队。
type BulletSystem struct {
	entityManager *ecs.EntityManager
}

// NewBulletSystem 创建子弹系统
func NewBulletSystem(em *ecs.EntityManager) *BulletSystem {
	return &BulletSystem{
		entityManager: em,
	}
}

// bulletParts 子弹实体及其常用组件
type bulletParts struct {
	id     ecs.EntityID
	bullet *components.BulletComponent
	pos    *components.PositionComponent
	vel    *components.VelocityComponent
	col    *components.CollisionComponent
}

// findBullet 查找子弹实体，世界中只存在一颗
func findBullet(em *ecs.EntityManager) (bulletParts, bool) {
	ids := ecs.GetEntitiesWith3[
		*components.BulletComponent,
		*components.PositionComponent,
		*components.CollisionComponent,
	](em)
	if len(ids) == 0 {
		return bulletParts{}, false
	}

	id := ids[0]
	b := bulletParts{id: id}
	b.bullet, _ = ecs.GetComponent[*components.BulletComponent](em, id)
	b.pos, _ = ecs.GetComponent[*components.PositionComponent](em, id)
	b.col, _ = ecs.GetComponent[*components.CollisionComponent](em, id)
	vel, ok := ecs.GetComponent[*components.VelocityComponent](em, id)
	if !ok {
		vel = &components.VelocityComponent{}
		em.AddComponent(id, vel)
	}
	b.vel = vel
	return b, true
}

// Fire 处理一次开火请求（边沿触发，每次按键调用一次）
//
// 仅在 Ready 状态下生效：子弹放到射手精灵水平中心、紧贴其上方，
// 然后进入 Flying。飞行中调用为空操作。
//
// 返回:
//   - bool: 本次请求是否真的发射了子弹
func (s *BulletSystem) Fire(shooter ecs.EntityID) bool {
	b, ok := findBullet(s.entityManager)
	if !ok || b.bullet.IsFlying() {
		return false
	}

	shooterPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, shooter)
	if !ok {
		return false
	}
	shooterCol, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, shooter)
	if !ok {
		return false
	}

	b.pos.X = shooterPos.X + shooterCol.Width/2
	b.pos.Y = shooterPos.Y - b.col.Height
	b.bullet.State = types.BulletFlying

	log.Printf("[BulletSystem] 发射子弹: pos=(%.1f, %.1f)", b.pos.X, b.pos.Y)
	return true
}

// Update 推进飞行中的子弹，并在飞出屏幕顶部时复位
func (s *BulletSystem) Update() {
	b, ok := findBullet(s.entityManager)
	if !ok {
		return
	}

	if !b.bullet.IsFlying() {
		b.vel.VX, b.vel.VY = 0, 0
		return
	}

	b.vel.VX = 0
	b.vel.VY = -b.bullet.Speed
	b.pos.Y += b.vel.VY

	if b.pos.Y <= 0 {
		resetBullet(b)
	}
}

// Reset 将子弹强制复位为 Ready
func (s *BulletSystem) Reset() {
	if b, ok := findBullet(s.entityManager); ok {
		resetBullet(b)
	}
}

// State 返回子弹当前状态，找不到子弹时视为 Ready
func (s *BulletSystem) State() types.BulletState {
	b, ok := findBullet(s.entityManager)
	if !ok {
		return types.BulletReady
	}
	return b.bullet.State
}

func resetBullet(b bulletParts) {
	b.bullet.State = types.BulletReady
	b.pos.X, b.pos.Y = 0, 0
	b.vel.VX, b.vel.VY = 0, 0
}
