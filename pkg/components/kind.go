package components

import "github.com/gonewx/invaders/pkg/types"

// KindComponent 标识实体种类（玩家或敌人）
// 系统据此选择移动规则和边界策略
type KindComponent struct {
	Kind types.EntityKind
}

// LifeComponent 存储实体的存活状态
//
// 敌人被飞行中的子弹击中后 Alive 置为 false，且不会再恢复；
// 死亡的敌人仍保留在实体管理器中，只是不再移动、不再绘制。
// 玩家没有死亡模型，Alive 始终为 true。
type LifeComponent struct {
	Alive bool
}
