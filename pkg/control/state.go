// Package control 定义模拟核心每帧消费的输入快照
//
// 左右移动是"按住"语义（电平触发），开火和退出是"按下瞬间"语义（边沿触发）：
// 按住开火键跨越多帧也只产生一次开火事件。
//
// 本包不依赖任何前端库，窗口、终端和无头验证工具都把各自的按键状态转换成 State。
package control

// State 单帧输入快照
type State struct {
	Left  bool // 左移键当前按下
	Right bool // 右移键当前按下
	Fire  bool // 开火键在本帧由松开变为按下
	Quit  bool // 本帧请求退出
}

// EdgeDetector 上升沿检测器
// 仅在 松开 -> 按下 的那一帧返回 true
type EdgeDetector struct {
	wasPressed bool
}

// Update 输入本帧的按下状态，返回是否为上升沿
func (d *EdgeDetector) Update(pressed bool) bool {
	rising := pressed && !d.wasPressed
	d.wasPressed = pressed
	return rising
}

// Reset 清除历史状态
func (d *EdgeDetector) Reset() {
	d.wasPressed = false
}
