package entities

import (
	"fmt"

	"github.com/gonewx/invaders/pkg/components"
	"github.com/gonewx/invaders/pkg/config"
	"github.com/gonewx/invaders/pkg/ecs"
	"github.com/gonewx/invaders/pkg/types"
)

// NewBullet 创建全局唯一的子弹实体
//
// 子弹在开局时创建一次并循环复用，初始状态为 Ready，位于 (0, 0)，
// 没有速度，也不会被绘制。
func NewBullet(em *ecs.EntityManager, cfg *config.WorldConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("world config cannot be nil")
	}

	size := cfg.SpriteSize(types.SpriteBullet)

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{})
	em.AddComponent(id, &components.VelocityComponent{})
	em.AddComponent(id, &components.CollisionComponent{
		Width:  float64(size.Width),
		Height: float64(size.Height),
	})
	em.AddComponent(id, &components.BulletComponent{
		State: types.BulletReady,
		Speed: cfg.BulletSpeed,
	})
	em.AddComponent(id, &components.SpriteComponent{Sprite: types.SpriteBullet})

	return id, nil
}
