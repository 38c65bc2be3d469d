// Package types 定义共享的基础类型
package types

// EntityKind 定义实体的种类
// 创建时确定，运行期间不可变
type EntityKind int

const (
	// KindPlayer 玩家飞船：左右移动，发射子弹，越界环绕
	KindPlayer EntityKind = iota
	// KindEnemy 敌人：水平往返弹跳，同时缓慢下移
	KindEnemy
)

// String 返回种类名称（仅用于日志）
func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindEnemy:
		return "Enemy"
	default:
		return "Unknown"
	}
}
