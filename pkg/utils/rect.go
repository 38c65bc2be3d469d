package utils

// Rect 轴对齐矩形（AABB），用于碰撞检测
// X/Y 为左上角坐标，W/H 为宽高
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect 创建矩形
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right 返回右边界 X 坐标
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom 返回下边界 Y 坐标
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects 检查两个矩形是否重叠
//
// 使用严格不等式：仅边缘相接不算碰撞。
//
//	a.x < b.x+b.w && a.x+a.w > b.x && a.y < b.y+b.h && a.y+a.h > b.y
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}
