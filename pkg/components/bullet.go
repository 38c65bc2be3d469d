package components

import "github.com/gonewx/invaders/pkg/types"

// BulletComponent 存储子弹的生命周期状态
//
// 全局只有一颗子弹，循环复用：Ready -> Flying -> Ready。
// 子弹只沿竖直方向移动，Speed 为固定的速率大小。
type BulletComponent struct {
	State types.BulletState
	Speed float64
}

// IsFlying 子弹是否处于飞行状态
func (b *BulletComponent) IsFlying() bool {
	return b.State == types.BulletFlying
}
