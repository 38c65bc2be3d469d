package systems

import (
	"testing"

	"github.com/gonewx/invaders/pkg/components"
	"github.com/gonewx/invaders/pkg/config"
	"github.com/gonewx/invaders/pkg/ecs"
	"github.com/gonewx/invaders/pkg/entities"
)

// testWorld 测试用的最小世界：一个玩家、一颗子弹，敌人按需添加
type testWorld struct {
	em     *ecs.EntityManager
	cfg    *config.WorldConfig
	player ecs.EntityID
	bullet ecs.EntityID
}

// newTestWorld 使用默认配置创建测试世界
// 默认配置：600x600，玩家 64x64 位于 (236, 526)，子弹 32x32
func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	return newTestWorldWithConfig(t, config.DefaultWorldConfig())
}

func newTestWorldWithConfig(t *testing.T, cfg *config.WorldConfig) *testWorld {
	t.Helper()
	em := ecs.NewEntityManager()

	player, err := entities.NewPlayer(em, cfg)
	if err != nil {
		t.Fatalf("NewPlayer() error = %v", err)
	}
	bullet, err := entities.NewBullet(em, cfg)
	if err != nil {
		t.Fatalf("NewBullet() error = %v", err)
	}

	return &testWorld{em: em, cfg: cfg, player: player, bullet: bullet}
}

// addEnemy 在指定位置添加一个存活敌人
func (w *testWorld) addEnemy(t *testing.T, x, y float64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewEnemy(w.em, w.cfg, x, y)
	if err != nil {
		t.Fatalf("NewEnemy() error = %v", err)
	}
	return id
}

func (w *testWorld) position(t *testing.T, id ecs.EntityID) *components.PositionComponent {
	t.Helper()
	pos, ok := ecs.GetComponent[*components.PositionComponent](w.em, id)
	if !ok {
		t.Fatalf("entity %d has no PositionComponent", id)
	}
	return pos
}

func (w *testWorld) speed(t *testing.T, id ecs.EntityID) *components.SpeedComponent {
	t.Helper()
	speed, ok := ecs.GetComponent[*components.SpeedComponent](w.em, id)
	if !ok {
		t.Fatalf("entity %d has no SpeedComponent", id)
	}
	return speed
}

func (w *testWorld) life(t *testing.T, id ecs.EntityID) *components.LifeComponent {
	t.Helper()
	life, ok := ecs.GetComponent[*components.LifeComponent](w.em, id)
	if !ok {
		t.Fatalf("entity %d has no LifeComponent", id)
	}
	return life
}

func (w *testWorld) bulletComp(t *testing.T) *components.BulletComponent {
	t.Helper()
	b, ok := ecs.GetComponent[*components.BulletComponent](w.em, w.bullet)
	if !ok {
		t.Fatal("bullet has no BulletComponent")
	}
	return b
}

// kill 直接把敌人标记为死亡
func (w *testWorld) kill(t *testing.T, id ecs.EntityID) {
	t.Helper()
	w.life(t, id).Alive = false
}

// approxEqual 浮点比较（累加 0.1、1.4 这类非二进制精确值时使用）
func approxEqual(a, b float64) bool {
	const epsilon = 1e-9
	diff := a - b
	return diff < epsilon && diff > -epsilon
}
