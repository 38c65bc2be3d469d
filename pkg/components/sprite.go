package components

import "github.com/gonewx/invaders/pkg/types"

// SpriteComponent 存储实体的精灵句柄
// 具体图像由前端根据句柄查找，模拟核心不持有图像
type SpriteComponent struct {
	Sprite types.SpriteID
}
