// Package sim 模拟核心
//
// 组装实体和系统，按固定顺序逐帧推进，并提供逐帧规则检查。
// 本包及其依赖都不引用图形或终端库，可以在没有显示设备的环境中构建和测试。
package sim

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gonewx/invaders/pkg/components"
	"github.com/gonewx/invaders/pkg/config"
	"github.com/gonewx/invaders/pkg/control"
	"github.com/gonewx/invaders/pkg/ecs"
	"github.com/gonewx/invaders/pkg/entities"
	"github.com/gonewx/invaders/pkg/systems"
	"github.com/gonewx/invaders/pkg/types"
)

// FrameResult 一帧模拟的输出
type FrameResult struct {
	// Frame 本帧序号，从 1 开始
	Frame uint64
	// Commands 本帧绘制指令，在下一次 Step 之前有效
	Commands []systems.DrawCommand
	// Fired 本帧是否真的发射了子弹
	Fired bool
	// Killed 本帧击杀的敌人数量
	Killed int
}

// World 模拟世界
//
// 持有全部实体和系统。实体在创建世界时一次性生成：
// 一个玩家、cfg.EnemyCount 个敌人和一颗循环复用的子弹，运行期间不会增删。
//
// World 不依赖任何前端，只接收输入快照、输出绘制指令，
// Ebitengine 窗口、终端前端和无头验证工具共用同一份模拟逻辑。
type World struct {
	entityManager *ecs.EntityManager
	config        *config.WorldConfig

	player  ecs.EntityID
	enemies []ecs.EntityID
	bullet  ecs.EntityID

	boundarySystem *systems.BoundarySystem
	movementSystem *systems.MovementSystem
	bulletSystem   *systems.BulletSystem
	physicsSystem  *systems.PhysicsSystem
	renderSystem   *systems.RenderSystem

	frame uint64
	kills int
}

// NewRand 根据配置种子创建随机源，种子为 0 时使用当前时间
func NewRand(cfg *config.WorldConfig) *rand.Rand {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[World] 随机种子: %d", seed)
	return rand.New(rand.NewSource(seed))
}

// NewWorld 创建模拟世界
//
// 参数:
//   - cfg: 已验证的世界配置，运行期间只读
//   - rng: 敌人出生位置的随机源
//
// 返回:
//   - *World: 初始状态的世界（第 0 帧）
//   - error: 配置无效或实体创建失败
func NewWorld(cfg *config.WorldConfig, rng *rand.Rand) (*World, error) {
	if cfg == nil {
		return nil, fmt.Errorf("world config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid world config: %w", err)
	}
	if rng == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}

	em := ecs.NewEntityManager()

	// 创建顺序决定每帧处理顺序：玩家、敌人、子弹
	player, err := entities.NewPlayer(em, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	enemies, err := entities.SpawnEnemies(em, cfg, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to spawn enemies: %w", err)
	}
	bullet, err := entities.NewBullet(em, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create bullet: %w", err)
	}

	bulletSystem := systems.NewBulletSystem(em)
	w := &World{
		entityManager:  em,
		config:         cfg,
		player:         player,
		enemies:        enemies,
		bullet:         bullet,
		boundarySystem: systems.NewBoundarySystem(em, cfg),
		movementSystem: systems.NewMovementSystem(em, cfg),
		bulletSystem:   bulletSystem,
		physicsSystem:  systems.NewPhysicsSystem(em, cfg, bulletSystem),
		renderSystem:   systems.NewRenderSystem(em),
	}

	log.Printf("[World] 世界创建完成: %dx%d, %d 个敌人, 实体总数 %d",
		cfg.ScreenWidth, cfg.ScreenHeight, len(enemies), em.EntityCount())
	return w, nil
}

// Step 推进一帧模拟
//
// 执行顺序固定：
//  1. 开火（边沿触发，飞行中忽略）
//  2. 边界处理（使用上一帧结束时的位置）
//  3. 速度计算与位置积分
//  4. 子弹飞行与出界复位
//  5. 子弹与敌人碰撞
//  6. 生成绘制指令
//
// 退出请求不在这里处理，由调用方在每帧开始前检查。
func (w *World) Step(in control.State) FrameResult {
	w.frame++

	fired := false
	if in.Fire {
		fired = w.bulletSystem.Fire(w.player)
	}

	w.boundarySystem.Update()
	w.movementSystem.Update(in)
	w.bulletSystem.Update()
	killed := w.physicsSystem.Update()
	w.kills += killed

	if killed > 0 {
		log.Printf("[World] 第 %d 帧击杀 %d 个敌人，剩余 %d", w.frame, killed, w.AliveEnemies())
	}

	return FrameResult{
		Frame:    w.frame,
		Commands: w.renderSystem.Commands(),
		Fired:    fired,
		Killed:   killed,
	}
}

// Frame 返回已完成的帧数
func (w *World) Frame() uint64 {
	return w.frame
}

// Kills 返回累计击杀数
func (w *World) Kills() int {
	return w.kills
}

// AliveEnemies 返回存活敌人数量
func (w *World) AliveEnemies() int {
	alive := 0
	for _, id := range w.enemies {
		if w.IsAlive(id) {
			alive++
		}
	}
	return alive
}

// BulletFlying 返回子弹是否在飞行中
func (w *World) BulletFlying() bool {
	return w.bulletSystem.State() == types.BulletFlying
}

// Config 返回世界配置
func (w *World) Config() *config.WorldConfig {
	return w.config
}

// EntityManager 返回实体管理器（供测试和调试工具直接检查组件）
func (w *World) EntityManager() *ecs.EntityManager {
	return w.entityManager
}

// Player 返回玩家实体ID
func (w *World) Player() ecs.EntityID {
	return w.player
}

// Enemies 返回敌人实体ID列表（生成顺序）
func (w *World) Enemies() []ecs.EntityID {
	return w.enemies
}

// Bullet 返回子弹实体ID
func (w *World) Bullet() ecs.EntityID {
	return w.bullet
}

// IsAlive 查询实体存活状态
func (w *World) IsAlive(id ecs.EntityID) bool {
	life, ok := ecs.GetComponent[*components.LifeComponent](w.entityManager, id)
	return ok && life.Alive
}

// Position 返回实体当前位置
func (w *World) Position(id ecs.EntityID) (x, y float64, ok bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](w.entityManager, id)
	if !ok {
		return 0, 0, false
	}
	return pos.X, pos.Y, true
}
