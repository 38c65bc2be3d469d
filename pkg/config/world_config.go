package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/gonewx/invaders/pkg/types"
	"gopkg.in/yaml.v3"
)

// WorldConfig 世界配置
//
// 启动时加载一次，之后在整个运行期间保持不变，
// 由需要屏幕边界或速度参数的系统通过指针共享（只读）。
//
// 配置文件位置: data/world.yaml
type WorldConfig struct {
	// ScreenWidth / ScreenHeight 逻辑屏幕尺寸（像素）
	ScreenWidth  int `yaml:"screenWidth"`
	ScreenHeight int `yaml:"screenHeight"`

	// EnemyCount 开局生成的敌人数量，运行期间不变
	EnemyCount int `yaml:"enemyCount"`

	// 速度参数（像素/帧）
	PlayerSpeed float64 `yaml:"playerSpeed"`
	EnemySpeed  float64 `yaml:"enemySpeed"`
	BulletSpeed float64 `yaml:"bulletSpeed"`
	// EnemyDrift 敌人每帧固定的下移量，所有敌人相同
	EnemyDrift float64 `yaml:"enemyDrift"`

	// PlayerBottomMargin 玩家飞船底边距屏幕底部的距离
	PlayerBottomMargin float64 `yaml:"playerBottomMargin"`

	// Seed 敌人出生位置的随机种子，0 表示使用当前时间
	Seed int64 `yaml:"seed"`

	// DeadEnemiesBlockBullets 已死亡敌人的碰撞盒是否仍能拦截子弹
	// true: 子弹穿过死亡敌人时复位（不会产生新的击杀）
	// false: 死亡敌人不参与任何碰撞检测
	DeadEnemiesBlockBullets bool `yaml:"deadEnemiesBlockBullets"`

	// Sprites 精灵尺寸，加载到图片后以图片实际尺寸为准
	Sprites SpriteSizes `yaml:"sprites"`

	// Keys 按键绑定（Ebitengine 按键名，如 "ArrowLeft", "Space"）
	Keys KeyBindings `yaml:"keys"`

	// Assets 图片资源文件名（相对于资源目录）
	Assets AssetPaths `yaml:"assets"`
}

// SpriteSize 精灵尺寸（像素）
type SpriteSize struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpriteSizes 各类精灵的尺寸
type SpriteSizes struct {
	Player SpriteSize `yaml:"player"`
	Enemy  SpriteSize `yaml:"enemy"`
	Bullet SpriteSize `yaml:"bullet"`
}

// KeyBindings 按键绑定
type KeyBindings struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
	Fire  string `yaml:"fire"`
	Quit  string `yaml:"quit"`
}

// AssetPaths 图片资源文件名
type AssetPaths struct {
	Player     string `yaml:"player"`
	Enemy      string `yaml:"enemy"`
	Bullet     string `yaml:"bullet"`
	Background string `yaml:"background"`
	Icon       string `yaml:"icon"`
}

// DefaultWorldConfig 返回默认世界配置（600x600，5 个敌人）
func DefaultWorldConfig() *WorldConfig {
	return &WorldConfig{
		ScreenWidth:             600,
		ScreenHeight:            600,
		EnemyCount:              5,
		PlayerSpeed:             2,
		EnemySpeed:              1.4,
		BulletSpeed:             2,
		EnemyDrift:              0.1,
		PlayerBottomMargin:      10,
		Seed:                    0,
		DeadEnemiesBlockBullets: true,
		Sprites: SpriteSizes{
			Player: SpriteSize{Width: 64, Height: 64},
			Enemy:  SpriteSize{Width: 64, Height: 64},
			Bullet: SpriteSize{Width: 32, Height: 32},
		},
		Keys: KeyBindings{
			Left:  "ArrowLeft",
			Right: "ArrowRight",
			Fire:  "Space",
			Quit:  "Escape",
		},
		Assets: AssetPaths{
			Player:     "player.png",
			Enemy:      "enemy.png",
			Bullet:     "bullet.png",
			Background: "background.png",
			Icon:       "gameicon.png",
		},
	}
}

// LoadWorldConfig 加载世界配置
//
// 从指定路径加载 YAML 格式的配置文件。文件中未出现的字段保留默认值。
//
// 参数:
//   - path: 配置文件路径（如 "data/world.yaml"）
//
// 返回:
//   - *WorldConfig: 加载并验证成功后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadWorldConfig(path string) (*WorldConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read world config: %w", err)
	}
	return ParseWorldConfig(data)
}

// ParseWorldConfig 从 YAML 数据解析世界配置
func ParseWorldConfig(data []byte) (*WorldConfig, error) {
	config := DefaultWorldConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse world config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid world config: %w", err)
	}

	return config, nil
}

// Validate 验证配置有效性
//
// 配置错误在进入主循环之前即失败：
//   - 屏幕尺寸、敌人数量、速度、精灵尺寸必须为正
//   - 下移量、底边距不能为负
//   - 所有浮点数必须是有限值
//   - 精灵不能大于屏幕
//   - 按键名不能为空
func (c *WorldConfig) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.EnemyCount <= 0 {
		return fmt.Errorf("enemyCount must be positive, got %d", c.EnemyCount)
	}

	speeds := []struct {
		name  string
		value float64
	}{
		{"playerSpeed", c.PlayerSpeed},
		{"enemySpeed", c.EnemySpeed},
		{"bulletSpeed", c.BulletSpeed},
	}
	for _, s := range speeds {
		if !isFinite(s.value) || s.value <= 0 {
			return fmt.Errorf("%s must be a positive finite number, got %v", s.name, s.value)
		}
	}
	if !isFinite(c.EnemyDrift) || c.EnemyDrift < 0 {
		return fmt.Errorf("enemyDrift must be a non-negative finite number, got %v", c.EnemyDrift)
	}
	if !isFinite(c.PlayerBottomMargin) || c.PlayerBottomMargin < 0 {
		return fmt.Errorf("playerBottomMargin must be a non-negative finite number, got %v", c.PlayerBottomMargin)
	}

	sprites := []struct {
		name string
		size SpriteSize
	}{
		{"player", c.Sprites.Player},
		{"enemy", c.Sprites.Enemy},
		{"bullet", c.Sprites.Bullet},
	}
	for _, s := range sprites {
		if s.size.Width <= 0 || s.size.Height <= 0 {
			return fmt.Errorf("%s sprite size must be positive, got %dx%d", s.name, s.size.Width, s.size.Height)
		}
		if s.size.Width > c.ScreenWidth || s.size.Height > c.ScreenHeight {
			return fmt.Errorf("%s sprite %dx%d does not fit screen %dx%d",
				s.name, s.size.Width, s.size.Height, c.ScreenWidth, c.ScreenHeight)
		}
	}

	if c.Keys.Left == "" || c.Keys.Right == "" || c.Keys.Fire == "" || c.Keys.Quit == "" {
		return errors.New("all key bindings (left, right, fire, quit) must be set")
	}

	return nil
}

// SpriteSize 返回指定精灵的尺寸
// 背景没有碰撞尺寸，返回屏幕尺寸
func (c *WorldConfig) SpriteSize(sprite types.SpriteID) SpriteSize {
	switch sprite {
	case types.SpritePlayer:
		return c.Sprites.Player
	case types.SpriteEnemy:
		return c.Sprites.Enemy
	case types.SpriteBullet:
		return c.Sprites.Bullet
	default:
		return SpriteSize{Width: c.ScreenWidth, Height: c.ScreenHeight}
	}
}

// SetSpriteSize 用图片实际尺寸覆盖配置中的精灵尺寸
// 只应在创建世界之前调用
func (c *WorldConfig) SetSpriteSize(sprite types.SpriteID, width, height int) {
	size := SpriteSize{Width: width, Height: height}
	switch sprite {
	case types.SpritePlayer:
		c.Sprites.Player = size
	case types.SpriteEnemy:
		c.Sprites.Enemy = size
	case types.SpriteBullet:
		c.Sprites.Bullet = size
	}
}

// AssetPath 返回指定精灵的图片文件名
func (c *WorldConfig) AssetPath(sprite types.SpriteID) string {
	switch sprite {
	case types.SpritePlayer:
		return c.Assets.Player
	case types.SpriteEnemy:
		return c.Assets.Enemy
	case types.SpriteBullet:
		return c.Assets.Bullet
	case types.SpriteBackground:
		return c.Assets.Background
	default:
		return ""
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
