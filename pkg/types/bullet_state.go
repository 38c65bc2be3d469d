package types

// BulletState 子弹生命周期状态
// 状态循环: Ready -> Flying -> Ready
type BulletState int

const (
	// BulletReady 就绪：不在屏幕上，不移动，不绘制
	BulletReady BulletState = iota
	// BulletFlying 飞行中：每帧向上移动并绘制
	BulletFlying
)

// String 返回状态名称（仅用于日志）
func (s BulletState) String() string {
	switch s {
	case BulletReady:
		return "Ready"
	case BulletFlying:
		return "Flying"
	default:
		return "Unknown"
	}
}
