package entities

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/gonewx/invaders/pkg/components"
	"github.com/gonewx/invaders/pkg/config"
	"github.com/gonewx/invaders/pkg/ecs"
	"github.com/gonewx/invaders/pkg/types"
)

// NewPlayer 创建玩家飞船实体
//
// 初始位置：水平方向 x = W/2 - 宽度，
// 竖直方向紧贴屏幕底部并留出 PlayerBottomMargin 的距离。
//
// 参数:
//   - em: 实体管理器
//   - cfg: 世界配置（屏幕尺寸、速度、精灵尺寸）
//
// 返回:
//   - ecs.EntityID: 玩家实体ID
//   - error: 参数无效时返回错误
func NewPlayer(em *ecs.EntityManager, cfg *config.WorldConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("world config cannot be nil")
	}

	size := cfg.SpriteSize(types.SpritePlayer)
	width, height := float64(size.Width), float64(size.Height)

	x := float64(cfg.ScreenWidth)/2 - width
	y := float64(cfg.ScreenHeight) - height - cfg.PlayerBottomMargin

	id := newShip(em, types.KindPlayer, types.SpritePlayer, x, y, cfg.PlayerSpeed, width, height)

	log.Printf("[ShipFactory] 创建玩家 %d: pos=(%.1f, %.1f), speed=%.2f", id, x, y, cfg.PlayerSpeed)
	return id, nil
}

// NewEnemy 创建敌人实体
//
// 敌人初始速度为正（向右），碰到墙壁后由边界系统翻转。
func NewEnemy(em *ecs.EntityManager, cfg *config.WorldConfig, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("world config cannot be nil")
	}

	size := cfg.SpriteSize(types.SpriteEnemy)
	id := newShip(em, types.KindEnemy, types.SpriteEnemy, x, y, cfg.EnemySpeed,
		float64(size.Width), float64(size.Height))

	return id, nil
}

// SpawnEnemies 在屏幕上半部分随机生成 cfg.EnemyCount 个敌人
//
// 出生点规则：
//   - x: [0, W - 敌人宽度] 内的随机整数
//   - y: [0, H] 内的随机整数除以 2
//
// 返回的 ID 顺序即生成顺序，也是每帧处理和绘制的顺序。
func SpawnEnemies(em *ecs.EntityManager, cfg *config.WorldConfig, rng *rand.Rand) ([]ecs.EntityID, error) {
	if rng == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}
	if cfg == nil {
		return nil, fmt.Errorf("world config cannot be nil")
	}

	maxX := cfg.ScreenWidth - cfg.SpriteSize(types.SpriteEnemy).Width
	if maxX < 0 {
		return nil, fmt.Errorf("enemy sprite wider than screen")
	}

	ids := make([]ecs.EntityID, 0, cfg.EnemyCount)
	for i := 0; i < cfg.EnemyCount; i++ {
		x := float64(rng.Intn(maxX + 1))
		y := float64(rng.Intn(cfg.ScreenHeight+1)) / 2

		id, err := NewEnemy(em, cfg, x, y)
		if err != nil {
			return nil, fmt.Errorf("failed to spawn enemy %d: %w", i, err)
		}
		ids = append(ids, id)
	}

	log.Printf("[ShipFactory] 生成 %d 个敌人", len(ids))
	return ids, nil
}

// newShip 组装玩家和敌人共有的组件
func newShip(em *ecs.EntityManager, kind types.EntityKind, sprite types.SpriteID,
	x, y, speed, width, height float64) ecs.EntityID {

	id := em.CreateEntity()
	em.AddComponent(id, &components.KindComponent{Kind: kind})
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.VelocityComponent{})
	em.AddComponent(id, &components.SpeedComponent{Speed: speed})
	em.AddComponent(id, &components.CollisionComponent{Width: width, Height: height})
	em.AddComponent(id, &components.LifeComponent{Alive: true})
	em.AddComponent(id, &components.SpriteComponent{Sprite: sprite})
	return id
}
