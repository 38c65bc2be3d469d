package components

// PositionComponent 存储实体在世界坐标系中的位置
// X/Y 为精灵左上角坐标（像素），与 Ebitengine 的图片锚点一致
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 存储实体当前帧的速度（像素/帧）
// 每帧由移动系统或子弹系统重新计算，不是持久化输入
type VelocityComponent struct {
	VX float64
	VY float64
}

// SpeedComponent 存储实体的移动速率标量
// 玩家和子弹创建后不变；敌人碰到左右墙壁时由边界系统翻转符号，
// 符号即当前水平移动方向
type SpeedComponent struct {
	Speed float64
}
