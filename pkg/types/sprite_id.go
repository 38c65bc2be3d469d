package types

// SpriteID 精灵句柄
// 模拟核心只输出句柄，由前端（Ebitengine / 终端）映射到具体图像
type SpriteID int

const (
	SpritePlayer SpriteID = iota
	SpriteEnemy
	SpriteBullet
	SpriteBackground
)

// String 返回精灵名称，同时用作资源配置中的键
func (s SpriteID) String() string {
	switch s {
	case SpritePlayer:
		return "player"
	case SpriteEnemy:
		return "enemy"
	case SpriteBullet:
		return "bullet"
	case SpriteBackground:
		return "background"
	default:
		return "unknown"
	}
}
