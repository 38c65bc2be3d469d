package components

import "github.com/gonewx/invaders/pkg/utils"

// CollisionComponent 定义实体的碰撞检测边界框
// 尺寸等于精灵尺寸（像素），创建后固定
type CollisionComponent struct {
	Width  float64 // 碰撞盒宽度（像素）
	Height float64 // 碰撞盒高度（像素）
}

// Hitbox 根据位置和尺寸计算碰撞盒
//
// 碰撞盒不单独存储，每次按需从当前位置推导，
// 因此同一帧内所有读取方看到的都是最新位置。
func Hitbox(pos *PositionComponent, col *CollisionComponent) utils.Rect {
	return utils.NewRect(pos.X, pos.Y, col.Width, col.Height)
}
